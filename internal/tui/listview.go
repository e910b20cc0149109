package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"

	"saveit/internal/database"
	"saveit/internal/editor"
	"saveit/internal/format"
)

func (a *App) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "up", "k":
		if a.cursor > 0 {
			a.cursor--
		}
	case "down", "j":
		if a.cursor < len(a.sources)-1 {
			a.cursor++
		}
	case "n":
		a.draft = editor.NewDraft(time.Now())
		a.loadDraftIntoInputs()
		a.setFocus(fieldTitle)
		a.switchTo(ViewEditor)
	case "e", "enter":
		if s := a.selected(); s != nil {
			a.editSource(s)
		}
	case "d":
		a.deleteSelected()
	case "c":
		if s := a.selected(); s != nil {
			a.copyText(format.Format(*s, a.style()), fmt.Sprintf("copied source [%d]", s.ID))
		}
	case "a":
		a.copyText(format.FormatAll(a.sources, a.style()), fmt.Sprintf("copied %d sources", len(a.sources)))
	case "r":
		a.refreshSources()
		a.status = "refreshed"
	case "s":
		a.switchTo(ViewSettings)
	case "esc":
		a.switchTo(ViewEditor)
	}
	return a, nil
}

func (a *App) selected() *database.Source {
	if a.cursor < 0 || a.cursor >= len(a.sources) {
		return nil
	}
	return &a.sources[a.cursor]
}

func (a *App) deleteSelected() {
	s := a.selected()
	if s == nil {
		return
	}
	if err := a.store.DeleteSource(s.ID); err != nil {
		a.err = err
		log.Errorf("deleting source %d: %v", s.ID, err)
		if errors.Is(err, database.ErrNotFound) {
			// Stale view; reload so the phantom row disappears.
			a.refreshSources()
		}
		return
	}
	a.status = fmt.Sprintf("deleted source [%d]", s.ID)
	a.refreshSources()
}

// copyText puts formatted citation text on the system clipboard. The
// formatter itself never touches the clipboard; this is the boundary.
func (a *App) copyText(text, okStatus string) {
	if err := writeClipboard(text); err != nil {
		a.err = fmt.Errorf("clipboard: %w", err)
		log.Errorf("clipboard write: %v", err)
		return
	}
	a.err = nil
	a.status = okStatus
}

func (a *App) style() format.Style {
	return format.Style{Standard: a.cfg.Format.Standard, Custom: a.cfg.Format.Custom}
}

func (a *App) viewList() string {
	if len(a.sources) == 0 {
		return entryStyle.Render("Empty") + "\n" +
			helpStyle.Render("n: new entry · s: settings · q: quit")
	}

	var b strings.Builder
	for i, s := range a.sources {
		line := a.renderEntry(s)
		if i == a.cursor {
			b.WriteString(selectedEntryStyle.Render("> "+line) + "\n")
		} else {
			b.WriteString(entryStyle.Render(line) + "\n")
		}
	}
	b.WriteString(helpStyle.Render(
		"c: copy · a: copy all · e: edit · d: delete · n: new · r: refresh · s: settings · q: quit"))
	return b.String()
}

func (a *App) renderEntry(s database.Source) string {
	title := "(untitled)"
	if s.Title != nil && *s.Title != "" {
		title = *s.Title
	}
	entry := fmt.Sprintf("[%d] %s", s.ID, title)
	if s.URL != nil && *s.URL != "" {
		entry += "  " + tabStyle.Render(*s.URL)
	}
	return entry
}
