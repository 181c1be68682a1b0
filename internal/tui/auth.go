package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

func (a *App) handleAuthKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(m, a.keys.Submit):
		return a, a.submitAuth()
	case key.Matches(m, a.keys.ToggleAuth):
		if a.authMode == authSignIn {
			a.authMode = authRegister
		} else {
			a.authMode = authSignIn
		}
		a.authErr = ""
		return a, nil
	case key.Matches(m, a.keys.NextField), key.Matches(m, a.keys.PrevField):
		if a.email.Focused() {
			a.focusAuthField(1)
		} else {
			a.focusAuthField(0)
		}
		return a, nil
	}

	var cmd tea.Cmd
	if a.email.Focused() {
		a.email, cmd = a.email.Update(m)
	} else {
		a.password, cmd = a.password.Update(m)
	}
	return a, cmd
}

func (a *App) focusAuthField(i int) {
	if i == 0 {
		a.password.Blur()
		a.email.Focus()
		return
	}
	a.email.Blur()
	a.password.Focus()
}

// submitAuth signs in or registers. On failure the session is unchanged and
// the message is shown under the form.
func (a *App) submitAuth() tea.Cmd {
	email := strings.TrimSpace(a.email.Value())
	password := a.password.Value()

	var err error
	if a.authMode == authRegister {
		err = a.state.Session.Register(a.ctx, email, password)
	} else {
		err = a.state.Session.Login(a.ctx, email, password)
	}
	if err != nil {
		a.authErr = err.Error()
		a.log.Info("sign in rejected", zap.String("mode", string(a.authMode)), zap.Error(err))
		return nil
	}

	a.authErr = ""
	a.password.SetValue("")
	a.view = viewMenu
	return a.ensureCatalog()
}

func (a *App) renderAuth() string {
	var b strings.Builder
	b.WriteString(brandStyle.Render("Make Me Coffee") + "\n")
	b.WriteString(mutedStyle.Render("Coffee to go") + "\n\n")

	title := "Sign in"
	other := "No account? Register"
	if a.authMode == authRegister {
		title = "Register"
		other = "Have an account? Sign in"
	}
	b.WriteString(titleStyle.Render(title) + "\n")
	b.WriteString(a.email.View() + "\n")
	b.WriteString(a.password.View() + "\n")
	if a.authErr != "" {
		b.WriteString(statusErrStyle.Render(a.authErr) + "\n")
	}
	b.WriteString(fmt.Sprintf("\n%s\n", mutedStyle.Render(other+" (ctrl+r)")))
	b.WriteString(a.help.ShortHelpView(a.keys.authHelp()))
	return b.String()
}
