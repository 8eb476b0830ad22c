package app

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	analyticsdto "statdeck/internal/modules/analytics/dto"
	authdto "statdeck/internal/modules/auth/dto"
	usersdto "statdeck/internal/modules/users/dto"
	"statdeck/internal/ui/components"
	"statdeck/internal/ui/theme"
	analyticsview "statdeck/internal/ui/views/analytics"
	dashboardview "statdeck/internal/ui/views/dashboard"
	loginview "statdeck/internal/ui/views/login"
	"statdeck/internal/ui/views/placeholder"
	settingsview "statdeck/internal/ui/views/settings"
	usersview "statdeck/internal/ui/views/users"
)

// ─── ports ───────────────────────────────────────────────────────────────────

type authPort interface {
	Authenticate(ctx context.Context, input authdto.CredentialsInput) (authdto.SessionOutput, error)
	Logout(ctx context.Context) error
	Restore(ctx context.Context) (authdto.RestoreOutput, error)
}

type analyticsPort interface {
	Dashboard(ctx context.Context) (analyticsdto.DashboardOutput, error)
	Detail(ctx context.Context) (analyticsdto.DetailOutput, error)
}

type usersPort interface {
	ListUsers(ctx context.Context) (usersdto.ListOutput, error)
}

// ─── screens ─────────────────────────────────────────────────────────────────

type screenID int

const (
	screenDashboard screenID = iota
	screenAnalytics
	screenUsers
	screenSettings
	screenCount

	// screenUnknown marks a requested name with no screen behind it.
	screenUnknown screenID = -1
)

var screenNames = [screenCount]string{"dashboard", "analytics", "users", "settings"}

var screenLabels = [screenCount]string{"Dashboard", "Analytics", "Users", "Settings"}

const logoutLabel = "Logout"

func lookupScreen(name string) (screenID, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range screenNames {
		if n == name {
			return screenID(i), true
		}
	}
	return screenUnknown, false
}

// ─── async messages ───────────────────────────────────────────────────────────

type restoredMsg struct {
	out authdto.RestoreOutput
	err error
}

type loggedOutMsg struct{ err error }

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Screens key.Binding
	Cycle   key.Binding
	Move    key.Binding
	Enter   key.Binding
	Sidebar key.Binding
	Theme   key.Binding
	Logout  key.Binding
	Help    key.Binding
	Palette key.Binding
	Quit    key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Screens: key.NewBinding(key.WithKeys("1", "2", "3", "4"), key.WithHelp("1-4", "screen")),
		Cycle:   key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "next screen")),
		Move:    key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "move")),
		Enter:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Sidebar: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "sidebar")),
		Theme:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Logout:  key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "logout")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Palette: key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "palette")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Screens, k.Help, k.Palette, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Screens, k.Cycle, k.Move, k.Enter, k.Sidebar},
		{k.Theme, k.Logout},
		{k.Help, k.Palette, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Options carry startup choices from config and flags.
type Options struct {
	Dark          bool
	DefaultScreen string
	// StartScreen overrides DefaultScreen for the first screen after login.
	StartScreen string
}

// Model is the root Bubble Tea model. It owns the macro-state (signed in or
// not), screen routing, the shared theme, the help overlay and the command
// palette. Data loading is delegated to the screen views.
type Model struct {
	ctx    context.Context
	auth   authPort
	logger *zap.Logger

	loginView     loginview.Model
	dashView      dashboardview.Model
	analyticsView analyticsview.Model
	usersView     usersview.Model
	settingsView  settingsview.Model

	restoring     bool
	authenticated bool
	session       authdto.SessionOutput
	defaultScreen string
	startScreen   string
	active        screenID
	unknown       string

	mode     theme.Mode
	sidebar  components.Sidebar
	keys     keyMap
	help     help.Model
	showHelp bool
	palette  components.Palette
	status   string
	width    int
	height   int
}

// ─── constructor ─────────────────────────────────────────────────────────────

func NewModel(ctx context.Context, auth authPort, analytics analyticsPort, users usersPort, opts Options, logger *zap.Logger) Model {
	if ctx == nil {
		ctx = context.Background()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	defaultScreen := opts.DefaultScreen
	if strings.TrimSpace(defaultScreen) == "" {
		defaultScreen = screenNames[screenDashboard]
	}

	items := make([]string, 0, screenCount+1)
	items = append(items, screenLabels[:]...)
	items = append(items, logoutLabel)

	settingsV := settingsview.New()
	settingsV.SetDark(opts.Dark)

	return Model{
		ctx:           ctx,
		auth:          auth,
		logger:        logger.Named("ui"),
		loginView:     loginview.New(auth, logger),
		dashView:      dashboardview.New(analytics, logger),
		analyticsView: analyticsview.New(analytics, logger),
		usersView:     usersview.New(users, logger),
		settingsView:  settingsV,
		restoring:     true,
		defaultScreen: defaultScreen,
		startScreen:   opts.StartScreen,
		active:        screenDashboard,
		mode:          theme.NewMode(opts.Dark),
		sidebar:       components.Sidebar{Items: items, Focused: true},
		keys:          defaultKeys(),
		help:          help.New(),
		palette:       components.NewPalette(),
		status:        "ready",
	}
}

func (m Model) Init() tea.Cmd {
	return m.restoreCmd()
}

// Authenticated reports the macro-state.
func (m Model) Authenticated() bool { return m.authenticated }

// ActiveScreen returns the shown screen name, or the unknown name requested.
func (m Model) ActiveScreen() string {
	if m.active == screenUnknown {
		return m.unknown
	}
	return screenNames[m.active]
}

func (m Model) Dark() bool { return m.mode.Dark() }

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// The palette intercepts all input while open.
	if m.palette.Visible() {
		if _, ok := msg.(tea.KeyMsg); ok {
			var cmd tea.Cmd
			m.palette, cmd = m.palette.Update(msg)
			return m, cmd
		}
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.palette.SetWidth(min(m.width-4, 80))
		m.help.Width = m.width
		m.propagateSize()
		return m, nil

	case restoredMsg:
		m.restoring = false
		if msg.err != nil {
			m.logger.Error("restore session", zap.Error(msg.err))
		}
		if msg.out.Discarded {
			m.status = "stored session was unreadable and has been cleared"
		}
		if msg.err == nil && msg.out.Authenticated {
			return m, m.enter(msg.out.Session)
		}
		return m, m.loginView.Reset()

	case loginview.DoneMsg:
		var cmd tea.Cmd
		m.loginView, cmd = m.loginView.Update(msg)
		if msg.Err != nil || m.authenticated {
			return m, cmd
		}
		return m, tea.Batch(cmd, m.enter(msg.Session))

	case loggedOutMsg:
		if msg.err != nil {
			m.logger.Error("clear session", zap.Error(msg.err))
			m.status = "logout failed to clear the stored session"
		}
		return m, nil

	case settingsview.SetThemeMsg:
		m.mode.Set(msg.Dark)
		m.settingsView.SetDark(msg.Dark)
		return m, nil

	case components.PaletteSubmitMsg:
		return m.executePalette(msg.Input)

	case components.PaletteCancelMsg:
		m.status = "ready"
		return m, nil

	case tea.KeyMsg:
		if !m.authenticated {
			if msg.String() == "ctrl+c" {
				return m, tea.Quit
			}
			if m.restoring {
				return m, nil
			}
			var cmd tea.Cmd
			m.loginView, cmd = m.loginView.Update(msg)
			return m, cmd
		}
		return m.handleKey(msg)
	}

	return m, m.broadcast(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		if msg.String() == "?" || msg.String() == "esc" {
			m.showHelp = false
		}
		return m, nil
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "ctrl+l":
		return m, m.logout()
	case "t":
		m.mode.Toggle()
		m.settingsView.SetDark(m.mode.Dark())
		return m, nil
	case "?":
		m.showHelp = true
		return m, nil
	case ":":
		return m, m.palette.Open()
	case "1", "2", "3", "4":
		return m, m.show(screenID(msg.String()[0] - '1'))
	case "tab":
		return m, m.show(m.cycleFrom(1))
	case "shift+tab":
		return m, m.show(m.cycleFrom(-1))
	case "esc":
		m.sidebar.Focused = true
		return m, nil
	}

	if m.sidebar.Focused {
		switch msg.String() {
		case "up", "k":
			m.sidebar.Up()
		case "down", "j":
			m.sidebar.Down()
		case "enter", "right", "l":
			if m.sidebar.Cursor == int(screenCount) {
				return m, m.logout()
			}
			cmd := m.show(screenID(m.sidebar.Cursor))
			m.sidebar.Focused = false
			return m, cmd
		}
		return m, nil
	}

	var cmd tea.Cmd
	switch m.active {
	case screenUsers:
		m.usersView, cmd = m.usersView.Update(msg)
	case screenSettings:
		m.settingsView, cmd = m.settingsView.Update(msg)
	}
	return m, cmd
}

// broadcast hands non-key messages to every view. Load results carry a
// sequence number and spinner ticks an id, so views drop what is not theirs.
func (m *Model) broadcast(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, 6)
	if m.palette.Visible() {
		m.palette, cmds[5] = m.palette.Update(msg)
	}
	m.loginView, cmds[0] = m.loginView.Update(msg)
	m.dashView, cmds[1] = m.dashView.Update(msg)
	m.analyticsView, cmds[2] = m.analyticsView.Update(msg)
	m.usersView, cmds[3] = m.usersView.Update(msg)
	m.settingsView, cmds[4] = m.settingsView.Update(msg)
	return tea.Batch(cmds...)
}

// ─── transitions ──────────────────────────────────────────────────────────────

// enter switches to the signed-in state and shows the first screen.
func (m *Model) enter(session authdto.SessionOutput) tea.Cmd {
	m.authenticated = true
	m.session = session
	m.sidebar.User = session.UserName
	m.sidebar.Focused = true
	m.status = "signed in as " + session.UserName
	m.logger.Info("session active", zap.String("user", session.UserName))

	first := m.defaultScreen
	if m.startScreen != "" {
		first = m.startScreen
		m.startScreen = ""
	}
	return m.showByName(first)
}

// logout leaves the signed-in state immediately and clears the stored
// session in the background.
func (m *Model) logout() tea.Cmd {
	m.hideActive()
	m.authenticated = false
	m.session = authdto.SessionOutput{}
	m.sidebar.User = ""
	m.showHelp = false
	m.palette.Close()
	if id, ok := lookupScreen(m.defaultScreen); ok {
		m.active = id
		m.unknown = ""
	} else {
		m.active = screenUnknown
		m.unknown = m.defaultScreen
	}
	m.sidebar.Active = int(m.active)
	m.sidebar.Cursor = max(int(m.active), 0)
	m.status = "signed out"

	auth, ctx := m.auth, m.ctx
	return tea.Batch(m.loginView.Reset(), func() tea.Msg {
		return loggedOutMsg{err: auth.Logout(ctx)}
	})
}

func (m *Model) showByName(name string) tea.Cmd {
	if id, ok := lookupScreen(name); ok {
		return m.show(id)
	}
	m.hideActive()
	m.active = screenUnknown
	m.unknown = strings.TrimSpace(name)
	m.sidebar.Active = -1
	return nil
}

// show hides the current screen and shows id. Showing the active screen
// again refetches.
func (m *Model) show(id screenID) tea.Cmd {
	if id < 0 || id >= screenCount {
		return nil
	}
	m.hideActive()
	m.active = id
	m.unknown = ""
	m.sidebar.Active = int(id)
	m.sidebar.Cursor = int(id)

	switch id {
	case screenDashboard:
		return m.dashView.Show(m.ctx)
	case screenAnalytics:
		return m.analyticsView.Show(m.ctx)
	case screenUsers:
		return m.usersView.Show(m.ctx)
	case screenSettings:
		m.settingsView.SetDark(m.mode.Dark())
		return m.settingsView.Show(m.ctx)
	}
	return nil
}

func (m *Model) hideActive() {
	switch m.active {
	case screenDashboard:
		m.dashView.Hide()
	case screenAnalytics:
		m.analyticsView.Hide()
	case screenUsers:
		m.usersView.Hide()
	case screenSettings:
		m.settingsView.Hide()
	}
}

func (m Model) cycleFrom(step int) screenID {
	cur := m.active
	if cur == screenUnknown {
		cur = screenDashboard
		if step > 0 {
			return cur
		}
	}
	return (cur + screenID(step) + screenCount) % screenCount
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	st := m.mode.Styles()
	if !m.authenticated {
		if m.restoring {
			return st.App.Width(m.width).Height(m.height).Render(
				lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, st.Muted.Render("Restoring session…")))
		}
		return st.App.Width(m.width).Height(m.height).Render(m.loginView.View(st))
	}

	statusBar := m.renderStatusBar(st)
	contentH := max(m.height-lipgloss.Height(statusBar), 1)
	contentW := max(m.width-sidebarWidth, 10)

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(contentW).Height(contentH).
			Render(m.help.View(m.keys))
	case m.palette.Visible():
		content = lipgloss.Place(contentW, contentH,
			lipgloss.Center, lipgloss.Center, m.palette.View(st))
	default:
		content = lipgloss.NewStyle().Width(contentW).Height(contentH).Padding(0, 1).
			Render(m.activeView(st, contentW-2, contentH))
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, m.sidebar.View(st, contentH), content)
	return st.App.Render(lipgloss.JoinVertical(lipgloss.Left, body, statusBar))
}

const sidebarWidth = 26

func (m Model) activeView(st theme.Styles, width, height int) string {
	switch m.active {
	case screenDashboard:
		return m.dashView.View(st)
	case screenAnalytics:
		return m.analyticsView.View(st)
	case screenUsers:
		return m.usersView.View(st)
	case screenSettings:
		return m.settingsView.View(st)
	}
	return placeholder.View(st, m.unknown, width, height)
}

func (m Model) renderStatusBar(st theme.Styles) string {
	left := m.status
	right := st.Muted.Render("?:help  1-4:screens  t:theme  :::palette  q:quit")
	gap := max(m.width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + st.Bar.Width(m.width).Render(bar)
}

// ─── palette execution ────────────────────────────────────────────────────────

func (m Model) executePalette(input string) (tea.Model, tea.Cmd) {
	if strings.TrimSpace(input) == "" || !m.authenticated {
		return m, nil
	}
	parts := strings.Fields(input)

	switch parts[0] {
	case "goto":
		if len(parts) < 2 {
			m.status = "usage: goto <dashboard|analytics|users|settings>"
			return m, nil
		}
		m.sidebar.Focused = false
		return m, m.showByName(parts[1])

	case "logout":
		return m, m.logout()

	case "theme":
		m.mode.Toggle()
		m.settingsView.SetDark(m.mode.Dark())
		return m, nil

	case "help":
		m.showHelp = true
		return m, nil

	case "quit":
		return m, tea.Quit

	default:
		m.status = "unknown command: " + parts[0]
	}
	return m, nil
}

// ─── helpers ─────────────────────────────────────────────────────────────────

func (m *Model) propagateSize() {
	sz := tea.WindowSizeMsg{Width: max(m.width-sidebarWidth-2, 10), Height: max(m.height-2, 1)}
	m.loginView, _ = m.loginView.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
	m.dashView, _ = m.dashView.Update(sz)
	m.analyticsView, _ = m.analyticsView.Update(sz)
	m.usersView, _ = m.usersView.Update(sz)
	m.settingsView, _ = m.settingsView.Update(sz)
}

// ─── async commands ───────────────────────────────────────────────────────────

func (m Model) restoreCmd() tea.Cmd {
	auth, ctx := m.auth, m.ctx
	return func() tea.Msg {
		out, err := auth.Restore(ctx)
		return restoredMsg{out: out, err: err}
	}
}
