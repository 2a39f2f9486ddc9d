// Package tui implements the interactive terminal client: the view router,
// the Login/SignUp/Dashboard/Profile screens, toasts, and the loading
// indicator. State is split per screen the way the web client kept it per
// component; the session store is the only shared mutable state.
package tui

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/roomatch/roomatch-cli/internal/client/api"
	"github.com/roomatch/roomatch-cli/internal/client/config"
	"github.com/roomatch/roomatch-cli/internal/client/models"
	"github.com/roomatch/roomatch-cli/internal/client/session"
	"github.com/roomatch/roomatch-cli/internal/client/validate"
	"github.com/roomatch/roomatch-cli/internal/logging"
)

// Messages shown while a search is in flight, advanced on a timer.
var loaderMessages = []string{
	"Processing...",
	"Almost there...",
	"Finalizing...",
	"Hang tight...",
}

const loaderInterval = 2 * time.Second

type (
	// authResultMsg ends a login or sign-up request. It is the single exit
	// path for the auth loading flag.
	authResultMsg struct {
		sess   models.Session
		err    error
		signUp bool
	}

	// searchResultMsg ends a search request.
	searchResultMsg struct {
		results []models.SearchResult
		err     error
	}

	loaderTickMsg struct{}
)

// Model is the bubbletea model for the whole client.
type Model struct {
	ctx    context.Context
	cfg    *config.Config
	log    logging.Logger
	api    api.Client
	store  *session.Store
	styles Styles

	route  Route
	width  int
	height int

	login  authForm
	signUp authForm
	// one in-flight flag for both auth forms; re-submission while busy is
	// not prevented (matches the original client)
	authBusy bool

	query     textinput.Model
	results   []models.SearchResult
	searching bool
	loaderIdx int

	spin  spinner.Model
	toast toast
}

func NewModel(ctx context.Context, cfg *config.Config, log logging.Logger, apiClient api.Client, store *session.Store) Model {
	styles := DefaultStyles()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Loader

	query := textinput.New()
	query.Placeholder = "Search..."
	query.CharLimit = 256
	query.Width = 48
	query.Focus()

	return Model{
		ctx:    ctx,
		cfg:    cfg,
		log:    log,
		api:    apiClient,
		store:  store,
		styles: styles,

		// rehydration already happened, so the first render is final
		route: ResolveRoute(RouteDashboard, store.Current().IsAuthenticated),

		login:  newLoginForm(),
		signUp: newSignUpForm(),
		query:  query,
		spin:   sp,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// navigate applies the route guard and resets form state when leaving an
// auth screen (form state survives keystrokes, not navigation).
func (m *Model) navigate(target Route) {
	next := ResolveRoute(target, m.store.Current().IsAuthenticated)
	if next == m.route {
		return
	}
	if m.route == RouteLogin {
		m.login = newLoginForm()
	}
	if m.route == RouteSignUp {
		m.signUp = newSignUpForm()
	}
	m.route = next
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		return m.handleKey(msg)

	case spinner.TickMsg:
		if m.searching || m.authBusy {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
		return m, nil

	case loaderTickMsg:
		if !m.searching {
			return m, nil
		}
		m.loaderIdx = (m.loaderIdx + 1) % len(loaderMessages)
		return m, loaderTick()

	case toastExpireMsg:
		if m.toast.id == msg.id {
			m.toast = toast{}
		}
		return m, nil

	case authResultMsg:
		return m.handleAuthResult(msg)

	case searchResultMsg:
		return m.handleSearchResult(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.route {
	case RouteLogin:
		return m.updateLogin(msg)
	case RouteSignUp:
		return m.updateSignUp(msg)
	case RouteDashboard:
		return m.updateDashboard(msg)
	case RouteProfile:
		return m.updateProfile(msg)
	}
	return m, nil
}

// --- login -----------------------------------------------------------------

func (m Model) updateLogin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyTab, tea.KeyDown:
		m.login.cycleFocus(1)
		return m, nil
	case tea.KeyShiftTab, tea.KeyUp:
		m.login.cycleFocus(-1)
		return m, nil
	case tea.KeyCtrlN:
		m.navigate(RouteSignUp)
		return m, nil
	case tea.KeyEnter:
		return m.submitLogin()
	}

	cmd := m.login.update(msg)
	return m, cmd
}

func (m Model) submitLogin() (tea.Model, tea.Cmd) {
	email := m.login.value(validate.FieldEmail)
	password := m.login.value(validate.FieldPassword)

	if errs := validate.Login(email, password); len(errs) > 0 {
		m.login.errors = errs
		return m, nil
	}

	m.authBusy = true
	return m, tea.Batch(m.spin.Tick, loginCmd(m.ctx, m.api, email, password))
}

// --- sign-up ---------------------------------------------------------------

func (m Model) updateSignUp(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyTab, tea.KeyDown:
		m.signUp.cycleFocus(1)
		return m, nil
	case tea.KeyShiftTab, tea.KeyUp:
		m.signUp.cycleFocus(-1)
		return m, nil
	case tea.KeyEsc:
		m.navigate(RouteLogin)
		return m, nil
	case tea.KeyEnter:
		return m.submitSignUp()
	}

	cmd := m.signUp.update(msg)
	return m, cmd
}

func (m Model) submitSignUp() (tea.Model, tea.Cmd) {
	name := m.signUp.value(validate.FieldName)
	email := m.signUp.value(validate.FieldEmail)
	phone := m.signUp.value(validate.FieldPhone)
	password := m.signUp.value(validate.FieldPassword)

	if errs := validate.SignUp(name, email, phone, password); len(errs) > 0 {
		m.signUp.errors = errs
		return m, nil
	}

	m.authBusy = true
	return m, tea.Batch(m.spin.Tick, signUpCmd(m.ctx, m.api, name, email, phone, password))
}

// --- auth results ----------------------------------------------------------

func (m Model) handleAuthResult(msg authResultMsg) (tea.Model, tea.Cmd) {
	m.authBusy = false

	if msg.err != nil {
		cmd := m.authErrorToast(msg)
		return m, cmd
	}

	if err := m.store.Set(m.ctx, msg.sess); err != nil {
		m.log.Error(m.ctx, "session persist failed", "error", err)
		cmd := m.showToast(toastError, "Something went wrong. Try again")
		return m, cmd
	}

	text := "Signup successful!"
	if !msg.signUp && msg.sess.User != nil {
		text = "Welcome back, " + msg.sess.User.Name
	}
	cmd := m.showToast(toastSuccess, text)
	m.navigate(RouteDashboard)
	return m, cmd
}

// authErrorToast maps an auth failure to its notification (and, for a
// duplicate email, to a field error on the sign-up form).
func (m *Model) authErrorToast(msg authResultMsg) tea.Cmd {
	m.log.Warn(m.ctx, "auth request failed", "signup", msg.signUp, "error", msg.err)

	switch {
	case errors.Is(msg.err, api.ErrEmailTaken):
		m.signUp.setError(validate.FieldEmail, "This email is already registered")
		return m.showToast(toastError, "Email already registered")

	case errors.Is(msg.err, api.ErrUnavailable):
		return m.showToast(toastError, "Cannot connect to server. Is the backend running?")

	case errors.Is(msg.err, api.ErrNoToken):
		if msg.signUp {
			return m.showToast(toastError, "Signup failed")
		}
		return m.showToast(toastError, "Login failed")
	}

	var se *api.StatusError
	if errors.As(msg.err, &se) && se.Detail != "" {
		return m.showToast(toastError, se.Detail)
	}
	return m.showToast(toastError, "Something went wrong. Try again")
}

// --- dashboard -------------------------------------------------------------

func (m Model) updateDashboard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		// no minimum length, no debounce; an overlapping submit is allowed,
		// but the running loader tick chain must not be doubled up
		cmds := []tea.Cmd{m.spin.Tick, searchCmd(m.ctx, m.api, m.query.Value())}
		if !m.searching {
			m.searching = true
			m.loaderIdx = 0
			cmds = append(cmds, loaderTick())
		}
		return m, tea.Batch(cmds...)
	case tea.KeyCtrlP:
		m.navigate(RouteProfile)
		return m, nil
	case tea.KeyCtrlL:
		return m.logout()
	}

	var cmd tea.Cmd
	m.query, cmd = m.query.Update(msg)
	return m, cmd
}

func (m Model) handleSearchResult(msg searchResultMsg) (tea.Model, tea.Cmd) {
	// guaranteed cleanup: this is the only exit path for the loading flag
	m.searching = false

	if msg.err != nil {
		m.log.Warn(m.ctx, "search failed", "error", msg.err)
		// existing results stay on screen
		cmd := m.showToast(toastError, "Failed to send search request.")
		return m, cmd
	}

	m.results = msg.results
	return m, nil
}

// --- profile / logout ------------------------------------------------------

func (m Model) updateProfile(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlD:
		m.navigate(RouteDashboard)
		return m, nil
	case tea.KeyCtrlL:
		return m.logout()
	}
	return m, nil
}

// logout clears the session store (memory and durable keys) and lands on
// the login screen. There is no logout screen of its own.
func (m Model) logout() (tea.Model, tea.Cmd) {
	if err := m.store.Clear(m.ctx); err != nil {
		m.log.Error(m.ctx, "logout failed", "error", err)
		cmd := m.showToast(toastError, "Something went wrong. Try again")
		return m, cmd
	}
	m.api.SetToken("")
	m.results = nil
	m.query.SetValue("")

	cmd := m.showToast(toastSuccess, "Logged out successfully!")
	m.navigate(RouteLogin)
	return m, cmd
}

// --- commands --------------------------------------------------------------

func loginCmd(ctx context.Context, c api.Client, email, password string) tea.Cmd {
	return func() tea.Msg {
		sess, err := c.Login(ctx, email, password)
		return authResultMsg{sess: sess, err: err}
	}
}

func signUpCmd(ctx context.Context, c api.Client, name, email, phone, password string) tea.Cmd {
	return func() tea.Msg {
		sess, err := c.SignUp(ctx, name, email, phone, password)
		return authResultMsg{sess: sess, err: err, signUp: true}
	}
}

func searchCmd(ctx context.Context, c api.Client, query string) tea.Cmd {
	return func() tea.Msg {
		results, err := c.Search(ctx, query)
		return searchResultMsg{results: results, err: err}
	}
}

func loaderTick() tea.Cmd {
	return tea.Tick(loaderInterval, func(time.Time) tea.Msg {
		return loaderTickMsg{}
	})
}
