package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"
)

func (a *App) updateSettings(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+t":
		if a.cfg.Format.Standard == "custom" {
			a.cfg.Format.Standard = "default"
		} else {
			a.cfg.Format.Standard = "custom"
		}
		return a, nil
	case "ctrl+s":
		a.cfg.Format.Custom = a.templateInput.Value()
		if err := a.cfg.Save(); err != nil {
			a.err = err
			log.Errorf("saving config: %v", err)
			return a, nil
		}
		a.status = "settings saved"
		return a, nil
	case "esc":
		a.switchTo(ViewList)
		return a, nil
	}

	var cmd tea.Cmd
	a.templateInput, cmd = a.templateInput.Update(msg)
	return a, cmd
}

func (a *App) viewSettings() string {
	standard := "default"
	custom := "custom"
	if a.cfg.Format.Standard == "custom" {
		custom = activeTabStyle.Render(custom)
	} else {
		standard = activeTabStyle.Render(standard)
	}

	return labelStyle.Render("Standard:") + standard + " / " + custom + "\n" +
		labelStyle.Render("Template:") + a.templateInput.View() + "\n" +
		helpStyle.Render("ctrl+t: toggle standard · ctrl+s: save settings · esc: list")
}
