// ABOUTME: Login form shown when no saved session exists
// ABOUTME: Email/password inputs feeding the session store
package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) handleLoginKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "tab", "shift+tab", "up", "down":
		m.loginFocus = 1 - m.loginFocus
		if m.loginFocus == 0 {
			m.emailInput.Focus()
			m.passwordInput.Blur()
		} else {
			m.emailInput.Blur()
			m.passwordInput.Focus()
		}
		return m, textinput.Blink
	case "enter":
		if m.loginFocus == 0 {
			m.loginFocus = 1
			m.emailInput.Blur()
			m.passwordInput.Focus()
			return m, textinput.Blink
		}
		m.loading = true
		m.err = nil
		return m, m.submitLogin()
	}

	var cmd tea.Cmd
	if m.loginFocus == 0 {
		m.emailInput, cmd = m.emailInput.Update(msg)
	} else {
		m.passwordInput, cmd = m.passwordInput.Update(msg)
	}
	return m, cmd
}

func (m Model) renderLoginView() string {
	s := titleStyle.Render("KINDRED") + "\n\n"
	s += "Sign in to your account\n\n"
	s += "  Email:    " + m.emailInput.View() + "\n"
	s += "  Password: " + m.passwordInput.View() + "\n"
	if m.loading {
		s += "\nSigning in..."
	}
	if m.err != nil {
		s += "\n" + errStyle.Render(m.err.Error())
	}
	s += helpStyle.Render("\n\nenter: sign in • tab: switch field • esc: quit")
	return s
}
