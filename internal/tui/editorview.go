package tui

import (
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"

	"saveit/internal/database"
	"saveit/internal/editor"
)

var fieldLabels = [fieldCount]string{
	"Title:", "URL:", "Author:", "Date published:", "Date viewed:", "Comment:",
}

func (a *App) updateEditor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "down", "enter":
		a.setFocus((a.focus + 1) % fieldCount)
		return a, nil
	case "shift+tab", "up":
		a.setFocus((a.focus + fieldCount - 1) % fieldCount)
		return a, nil
	case "ctrl+u":
		a.draft.PublishedDateUnknown = !a.draft.PublishedDateUnknown
		return a, nil
	case "ctrl+s":
		a.saveDraft()
		return a, nil
	case "ctrl+x":
		a.clearDraft()
		a.status = "cleared"
		return a, nil
	case "esc":
		a.switchTo(ViewList)
		return a, nil
	}

	var cmd tea.Cmd
	a.inputs[a.focus], cmd = a.inputs[a.focus].Update(msg)
	a.status = ""
	a.err = nil
	return a, cmd
}

// saveDraft persists the current draft: a fresh draft becomes a new record
// (create, then fill), an attached draft overwrites its record. Storage
// failures are reported and leave the draft intact for another attempt.
func (a *App) saveDraft() {
	a.collectInputs()

	src, err := a.draft.ToSource()
	if err != nil {
		a.err = err
		return
	}

	if src.ID == 0 {
		created, err := a.store.CreateSource()
		if err != nil {
			a.err = err
			log.Errorf("creating source: %v", err)
			return
		}
		src.ID = created.ID
	}

	if err := a.store.UpdateSource(src); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			// The record went away under us; drop the stale reference.
			a.draft.ID = 0
			a.refreshSources()
		}
		a.err = err
		log.Errorf("saving source %d: %v", src.ID, err)
		return
	}

	a.err = nil
	a.status = fmt.Sprintf("saved source [%d]", src.ID)
	a.clearDraft()
}

// collectInputs copies the text fields back into the draft. The unknown flag
// is toggled directly on the draft and needs no copying.
func (a *App) collectInputs() {
	a.draft.Title = a.inputs[fieldTitle].Value()
	a.draft.URL = a.inputs[fieldURL].Value()
	a.draft.Author = a.inputs[fieldAuthor].Value()
	a.draft.PublishedDate = a.inputs[fieldPublished].Value()
	a.draft.ViewedDate = a.inputs[fieldViewed].Value()
	a.draft.Comment = a.inputs[fieldComment].Value()
}

func (a *App) loadDraftIntoInputs() {
	a.inputs[fieldTitle].SetValue(a.draft.Title)
	a.inputs[fieldURL].SetValue(a.draft.URL)
	a.inputs[fieldAuthor].SetValue(a.draft.Author)
	a.inputs[fieldPublished].SetValue(a.draft.PublishedDate)
	a.inputs[fieldViewed].SetValue(a.draft.ViewedDate)
	a.inputs[fieldComment].SetValue(a.draft.Comment)
}

func (a *App) clearDraft() {
	a.draft.Reset(time.Now())
	a.loadDraftIntoInputs()
	a.setFocus(fieldTitle)
}

// editSource loads a stored record into the editor as the active draft.
func (a *App) editSource(s *database.Source) {
	a.draft = editor.FromSource(s)
	a.loadDraftIntoInputs()
	a.setFocus(fieldTitle)
	a.switchTo(ViewEditor)
}

func (a *App) setFocus(i int) {
	a.inputs[a.focus].Blur()
	a.focus = i
	a.inputs[a.focus].Focus()
}

func (a *App) viewEditor() string {
	var b string
	for i := range a.inputs {
		label := labelStyle.Render(fieldLabels[i])
		if i == a.focus {
			label = focusedLabelStyle.Render(fieldLabels[i])
		}
		row := label + a.inputs[i].View()
		if i == fieldPublished {
			check := "[ ]"
			if a.draft.PublishedDateUnknown {
				check = "[x]"
			}
			row += tabStyle.Render("  " + check + " unknown (ctrl+u)")
		}
		b += row + "\n"
	}

	editing := "new entry"
	if a.draft.ID != 0 {
		editing = fmt.Sprintf("editing source [%d]", a.draft.ID)
	}
	b += helpStyle.Render(editing +
		" — tab: next field · ctrl+s: save · ctrl+x: clear · esc: list · ctrl+c: quit")
	return b
}
