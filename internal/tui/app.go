// Package tui provides the interactive Bubble Tea dashboard for grana:
// the auth screens and the editable monthly ledger grid.
package tui

import (
	"context"
	"time"

	"grana/internal/api"
	"grana/internal/ledger"
	"grana/internal/session"
	"grana/internal/tui/theme"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Screen states.
const (
	screenLogin = iota
	screenRegister
	screenLedger
)

// ledgerLoadedMsg is sent when the dual month fetch settles. Carries
// the generation it was issued under so stale loads are dropped.
type ledgerLoadedMsg struct {
	generation int
	ledger     *ledger.Ledger
	err        error
}

// rowSavedMsg is sent when a row's create/update request settles.
type rowSavedMsg struct {
	generation int
	section    ledger.Section
	localKey   string
	err        error
}

// rowDeletedMsg is sent when a row's delete request settles.
type rowDeletedMsg struct {
	generation int
	section    ledger.Section
	localKey   string
	err        error
}

// loginResultMsg is sent when the login request settles.
type loginResultMsg struct {
	user api.User
	err  error
}

// registerResultMsg is sent when the registration request settles.
type registerResultMsg struct {
	err error
}

// App is the root Bubble Tea model.
type App struct {
	client *api.Client

	// Auth state
	screen       int
	sess         session.Session
	authed       bool
	loginForm    *huh.Form
	registerForm *huh.Form
	authBusy     bool
	infoMsg      string

	// Ledger state — exactly one ledger is live; month navigation
	// replaces it via a fresh fetch.
	cursor     ledger.MonthCursor
	led        *ledger.Ledger
	loading    bool
	generation int             // bumped on every (re)load; stale responses are ignored
	busy       map[string]bool // localKey -> write in flight
	errMsg     string

	grid gridState

	// UI state
	width    int
	height   int
	showHelp bool
	spinner  spinner.Model
}

const (
	minTerminalWidth = 80
	maxContentWidth  = 160
)

// NewApp creates the TUI model. When authed is false the app starts on
// the login screen; otherwise it loads the cursor's month immediately.
func NewApp(client *api.Client, sess session.Session, authed bool, cursor ledger.MonthCursor) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent)

	a := App{
		client:  client,
		sess:    sess,
		authed:  authed,
		cursor:  cursor,
		led:     ledger.Blank(cursor.Year, cursor.MonthIndex),
		busy:    make(map[string]bool),
		spinner: sp,
	}
	if authed {
		a.screen = screenLedger
		a.loading = true
	} else {
		a.screen = screenLogin
		a.loginForm = newLoginForm()
	}
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{a.spinner.Tick}
	switch a.screen {
	case screenLedger:
		cmds = append(cmds, a.loadLedgerCmd())
	case screenLogin:
		cmds = append(cmds, a.loginForm.Init())
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.loginForm != nil {
			a.loginForm = a.loginForm.WithWidth(msg.Width)
		}
		if a.registerForm != nil {
			a.registerForm = a.registerForm.WithWidth(msg.Width)
		}
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		switch a.screen {
		case screenLogin, screenRegister:
			return a.updateAuthKey(msg)
		default:
			return a.updateLedgerKey(msg)
		}

	case spinner.TickMsg:
		if a.loading || a.authBusy {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil

	case loginResultMsg:
		return a.handleLoginResult(msg)

	case registerResultMsg:
		return a.handleRegisterResult(msg)

	case ledgerLoadedMsg:
		if msg.generation != a.generation {
			// A navigation happened while this load was in flight.
			return a, nil
		}
		a.loading = false
		if msg.err != nil {
			// Either read failing fails the whole load: blank ledger,
			// banner, user retries via navigation or 'r'.
			a.errMsg = "failed to load the month: " + msg.err.Error()
			a.led = ledger.Blank(a.cursor.Year, a.cursor.MonthIndex)
			return a, nil
		}
		a.led = msg.ledger
		a.grid.clampTo(a.led)
		return a, nil

	case rowSavedMsg:
		delete(a.busy, msg.localKey)
		if msg.generation != a.generation {
			// User navigated away mid-save; reconcile on next load.
			return a, nil
		}
		if msg.err != nil {
			a.errMsg = saveFailureMessage(msg.section, msg.err)
			return a, nil
		}
		// Local identity must be reconciled with the persisted record,
		// so resynchronize the whole month.
		cmd := a.reload()
		return a, cmd

	case rowDeletedMsg:
		delete(a.busy, msg.localKey)
		if msg.generation != a.generation {
			return a, nil
		}
		if msg.err != nil {
			a.errMsg = "failed to delete " + msg.section.String() + ": " + msg.err.Error()
			return a, nil
		}
		cmd := a.reload()
		return a, cmd
	}

	// Forward everything else (cursor blinks etc.) to whatever owns
	// the focus.
	switch a.screen {
	case screenLogin, screenRegister:
		return a.updateAuthForm(msg)
	default:
		if a.grid.editing {
			var cmd tea.Cmd
			a.grid.input, cmd = a.grid.input.Update(msg)
			return a, cmd
		}
	}
	return a, nil
}

// reload starts a fresh fetch of the current month under a new
// generation, invalidating any responses still in flight.
func (a *App) reload() tea.Cmd {
	a.generation++
	a.loading = true
	a.errMsg = ""
	return tea.Batch(a.loadLedgerCmd(), a.spinner.Tick)
}

// navigate moves the cursor and replaces the ledger wholesale.
func (a *App) navigate(cur ledger.MonthCursor) tea.Cmd {
	a.cursor = cur
	a.led = ledger.Blank(cur.Year, cur.MonthIndex)
	a.grid.reset()
	return a.reload()
}

func (a App) loadLedgerCmd() tea.Cmd {
	client := a.client
	userID := a.sess.UserID
	cur := a.cursor
	generation := a.generation
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		data, err := client.FetchMonth(ctx, userID, cur.APIMonth())
		if err != nil {
			return ledgerLoadedMsg{generation: generation, err: err}
		}
		return ledgerLoadedMsg{
			generation: generation,
			ledger:     ledger.FromRecords(cur.Year, cur.MonthIndex, data.Expenses, data.Incomes),
		}
	}
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	switch a.screen {
	case screenLogin, screenRegister:
		return a.viewAuth()
	default:
		if a.showHelp {
			return a.viewHelp()
		}
		return a.viewLedger()
	}
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

func saveFailureMessage(section ledger.Section, err error) string {
	// The api client already surfaces the server's own message when
	// there is one; fall through to it.
	return "failed to save " + section.String() + ": " + err.Error()
}
