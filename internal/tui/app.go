// Package tui is the terminal front end: an editor page for one draft,
// a list page over the store, and a settings page for the citation format.
// All store access happens synchronously inside Update; the pages share
// exactly one draft at a time.
package tui

import (
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"

	"saveit/internal/config"
	"saveit/internal/database"
	"saveit/internal/editor"
)

// writeClipboard is swapped out in tests; clipboards need a display.
var writeClipboard = clipboard.WriteAll

// App is the bubbletea model for the whole application.
type App struct {
	cfg   *config.Config
	store *database.DB

	view View

	// editor page
	inputs []textinput.Model
	focus  int
	draft  *editor.Draft

	// list page
	sources []database.Source
	cursor  int

	// settings page
	templateInput textinput.Model

	status string
	err    error
	width  int
	height int
}

// NewApp creates the application model over an open store.
func NewApp(store *database.DB, cfg *config.Config) *App {
	inputs := make([]textinput.Model, fieldCount)
	placeholders := [fieldCount]string{
		"Title", "https://...", "Leave empty if unknown",
		editor.DateLayout, editor.DateLayout, "Comment",
	}
	for i := range inputs {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.CharLimit = 512
		inputs[i] = ti
	}
	inputs[fieldTitle].Focus()

	template := textinput.New()
	template.Placeholder = "[{INDEX}] {AUTHOR} ({P_DATE()}): {TITLE}"
	template.CharLimit = 512
	template.SetValue(cfg.Format.Custom)

	app := &App{
		cfg:           cfg,
		store:         store,
		view:          ViewEditor,
		inputs:        inputs,
		draft:         editor.NewDraft(time.Now()),
		templateInput: template,
	}
	app.loadDraftIntoInputs()
	return app
}

func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		switch a.view {
		case ViewEditor:
			return a.updateEditor(msg)
		case ViewList:
			return a.updateList(msg)
		case ViewSettings:
			return a.updateSettings(msg)
		}
	}
	return a, nil
}

func (a *App) View() string {
	var body string
	switch a.view {
	case ViewEditor:
		body = a.viewEditor()
	case ViewList:
		body = a.viewList()
	case ViewSettings:
		body = a.viewSettings()
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("saveit") + "  " + a.renderTabs() + "\n\n")
	b.WriteString(body)
	if a.err != nil {
		b.WriteString("\n" + errorStyle.Render("error: "+a.err.Error()))
	} else if a.status != "" {
		b.WriteString("\n" + statusStyle.Render(a.status))
	}
	return b.String()
}

func (a *App) renderTabs() string {
	tabs := make([]string, 0, 3)
	for _, v := range []View{ViewEditor, ViewList, ViewSettings} {
		if v == a.view {
			tabs = append(tabs, activeTabStyle.Render(v.String()))
		} else {
			tabs = append(tabs, tabStyle.Render(v.String()))
		}
	}
	return strings.Join(tabs, tabStyle.Render(" | "))
}

// switchTo changes pages and clears transient feedback.
func (a *App) switchTo(v View) {
	a.view = v
	a.status = ""
	a.err = nil
	if v == ViewList {
		a.refreshSources()
	}
	if v == ViewSettings {
		a.templateInput.Focus()
	}
}

// refreshSources reloads the list cache. Explicit reloads keep the store off
// the render path; the UI redraws far more often than the data changes.
func (a *App) refreshSources() {
	sources, err := a.store.GetAllSources()
	if err != nil {
		a.err = err
		log.Errorf("loading sources: %v", err)
		return
	}
	a.sources = sources
	if a.cursor >= len(a.sources) {
		a.cursor = len(a.sources) - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
}
