package tui

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"grana/internal/api"
	"grana/internal/ledger"
	"grana/internal/session"
	"grana/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// Field values live inside the form itself (keyed), read back with
// GetString on completion. The model is copied on every Update, so the
// form must not point into model fields.
func newLoginForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("email").
				Title("Email").
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("email is required")
					}
					return nil
				}),
			huh.NewInput().
				Key("password").
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Validate(func(s string) error {
					if s == "" {
						return errors.New("password is required")
					}
					return nil
				}),
		).Title("Sign in"),
	)
}

func newRegisterForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("name").
				Title("Name").
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("please enter your name")
					}
					return nil
				}),
			huh.NewInput().
				Key("email").
				Title("Email").
				Validate(func(s string) error {
					if !emailPattern.MatchString(strings.TrimSpace(s)) {
						return errors.New("please enter a valid email")
					}
					return nil
				}),
			huh.NewInput().
				Key("password").
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Validate(func(s string) error {
					if len(s) < 6 {
						return errors.New("password must be at least 6 characters")
					}
					return nil
				}),
		).Title("Create account"),
	)
}

// updateAuthKey handles key events on the auth screens before the form
// sees them, so screen switching still works while a form has focus.
func (a App) updateAuthKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+r":
		if a.screen == screenLogin && !a.authBusy {
			a.screen = screenRegister
			a.errMsg = ""
			a.infoMsg = ""
			a.registerForm = newRegisterForm()
			if a.width > 0 {
				a.registerForm = a.registerForm.WithWidth(a.width)
			}
			return a, a.registerForm.Init()
		}
	case "esc":
		if a.screen == screenRegister && !a.authBusy {
			return a.toLogin("")
		}
	}
	if a.authBusy {
		// A request is in flight; swallow input until it settles.
		return a, nil
	}
	return a.updateAuthForm(msg)
}

// updateAuthForm forwards a message to the active form and reacts to
// completion.
func (a App) updateAuthForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch a.screen {
	case screenLogin:
		if a.loginForm == nil {
			return a, nil
		}
		form, cmd := a.loginForm.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			a.loginForm = f
		}
		if a.loginForm.State == huh.StateCompleted {
			a.authBusy = true
			a.errMsg = ""
			return a, tea.Batch(a.loginCmd(), a.spinner.Tick)
		}
		return a, cmd

	case screenRegister:
		if a.registerForm == nil {
			return a, nil
		}
		form, cmd := a.registerForm.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			a.registerForm = f
		}
		if a.registerForm.State == huh.StateCompleted {
			a.authBusy = true
			a.errMsg = ""
			return a, tea.Batch(a.registerCmd(), a.spinner.Tick)
		}
		if a.registerForm.State == huh.StateAborted {
			return a.toLogin("")
		}
		return a, cmd
	}
	return a, nil
}

func (a App) loginCmd() tea.Cmd {
	client := a.client
	email := strings.TrimSpace(a.loginForm.GetString("email"))
	password := a.loginForm.GetString("password")
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		user, err := client.Login(ctx, email, password)
		return loginResultMsg{user: user, err: err}
	}
}

func (a App) registerCmd() tea.Cmd {
	client := a.client
	name := strings.TrimSpace(a.registerForm.GetString("name"))
	email := strings.TrimSpace(a.registerForm.GetString("email"))
	password := a.registerForm.GetString("password")
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		err := client.Register(ctx, name, email, password)
		return registerResultMsg{err: err}
	}
}

func (a App) handleLoginResult(msg loginResultMsg) (tea.Model, tea.Cmd) {
	a.authBusy = false
	if msg.err != nil {
		a.errMsg = loginFailureMessage(msg.err)
		// huh forms are one-shot once completed; rebuild for the retry.
		a.loginForm = newLoginForm()
		if a.width > 0 {
			a.loginForm = a.loginForm.WithWidth(a.width)
		}
		return a, a.loginForm.Init()
	}

	a.sess = session.Session{UserID: msg.user.ID, Name: msg.user.Name}
	if err := session.Save(a.sess); err != nil {
		// Session still works for this run; it just won't survive it.
		a.infoMsg = "signed in (session not saved: " + err.Error() + ")"
	}
	a.authed = true
	a.screen = screenLedger
	a.loginForm = nil
	a.errMsg = ""
	cmd := a.reload()
	return a, cmd
}

func (a App) handleRegisterResult(msg registerResultMsg) (tea.Model, tea.Cmd) {
	a.authBusy = false
	if msg.err != nil {
		a.errMsg = msg.err.Error()
		a.registerForm = newRegisterForm()
		if a.width > 0 {
			a.registerForm = a.registerForm.WithWidth(a.width)
		}
		return a, a.registerForm.Init()
	}
	return a.toLogin("Account created. Sign in to continue.")
}

// logout clears the stored identity and drops back to the login
// screen. The in-memory ledger goes with it.
func (a App) logout() (tea.Model, tea.Cmd) {
	_ = session.Clear()
	a.sess = session.Session{}
	a.authed = false
	a.led = ledger.Blank(a.cursor.Year, a.cursor.MonthIndex)
	a.busy = make(map[string]bool)
	a.grid.reset()
	return a.toLogin("")
}

func (a App) toLogin(info string) (tea.Model, tea.Cmd) {
	a.screen = screenLogin
	a.errMsg = ""
	a.infoMsg = info
	a.registerForm = nil
	a.loginForm = newLoginForm()
	if a.width > 0 {
		a.loginForm = a.loginForm.WithWidth(a.width)
	}
	return a, a.loginForm.Init()
}

func loginFailureMessage(err error) string {
	if errors.Is(err, api.ErrUnauthorized) {
		return "invalid email or password"
	}
	return err.Error()
}

func (a App) viewAuth() string {
	t := theme.Active

	titleStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	titleAltStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	errStyle := lipgloss.NewStyle().Foreground(t.Red)
	infoStyle := lipgloss.NewStyle().Foreground(t.Green)
	hintStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var b strings.Builder
	b.WriteString("\n  ")
	b.WriteString(titleStyle.Render("Finance"))
	b.WriteString(titleAltStyle.Render("Manager"))
	b.WriteString("\n\n")

	if a.errMsg != "" {
		b.WriteString("  " + errStyle.Render(a.errMsg) + "\n\n")
	} else if a.infoMsg != "" {
		b.WriteString("  " + infoStyle.Render(a.infoMsg) + "\n\n")
	}

	if a.authBusy {
		b.WriteString("  " + a.spinner.View())
		if a.screen == screenRegister {
			b.WriteString(" creating account…")
		} else {
			b.WriteString(" signing in…")
		}
		b.WriteString("\n")
		return b.String()
	}

	switch a.screen {
	case screenRegister:
		if a.registerForm != nil {
			b.WriteString(a.registerForm.View())
		}
		b.WriteString("\n" + hintStyle.Render("  esc back to sign in"))
	default:
		if a.loginForm != nil {
			b.WriteString(a.loginForm.View())
		}
		b.WriteString("\n" + hintStyle.Render("  ctrl+r create an account"))
	}
	return b.String()
}
