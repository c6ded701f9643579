package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Shivansh-2508/PGT-Portal/internal/cli/login"
	"github.com/Shivansh-2508/PGT-Portal/internal/cli/ui"
	"github.com/Shivansh-2508/PGT-Portal/internal/domain/entity"
)

// UI configuration constants
const (
	formWidth      = 60
	inputCharLimit = 128
	buttonIdle     = "Login"
	buttonPending  = "Loading..."
)

// Style definitions
var (
	dimStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	boldStyle        = lipgloss.NewStyle().Bold(true)
	accentStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	tabStyle         = lipgloss.NewStyle().Padding(0, 3).Background(lipgloss.Color("236"))
	tabOnStyle       = lipgloss.NewStyle().Padding(0, 3).Background(lipgloss.Color("250")).Foreground(lipgloss.Color("0")).Bold(true)
	buttonStyle      = lipgloss.NewStyle().Padding(0, 2).Background(lipgloss.Color("0")).Foreground(lipgloss.Color("231")).Bold(true)
	buttonOffStyle   = lipgloss.NewStyle().Padding(0, 2).Background(lipgloss.Color("238")).Foreground(lipgloss.Color("245"))
	placeholderStyle = lipgloss.NewStyle().Padding(1, 2).Background(lipgloss.Color("236")).Width(formWidth - 8).Align(lipgloss.Center)
	formStyle        = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("245")).Padding(1, 2).Width(formWidth)
)

// field identifies the focused form control
type field int

const (
	fieldRole field = iota
	fieldUsername
	fieldPassword
)

// LoginProgram encapsulates the login TUI program
type LoginProgram struct {
	model loginModel
}

// NewLoginProgram creates a login program over an initialized view
func NewLoginProgram(ctx context.Context, view *login.View) *LoginProgram {
	return &LoginProgram{model: initialModel(ctx, view)}
}

// Run starts the login TUI and returns the route the view left for, or ""
// when the user quit.
func (p *LoginProgram) Run() (string, error) {
	return p.run(tea.WithAltScreen())
}

func (p *LoginProgram) run(opts ...tea.ProgramOption) (string, error) {
	// Init cannot record a route, so a stored session is resolved up front
	if route, ok := p.model.view.Redirect(); ok {
		return route, nil
	}

	final, err := tea.NewProgram(p.model, opts...).Run()
	if err != nil {
		return "", err
	}

	route := final.(loginModel).route
	if route == "" {
		if r, ok := p.model.view.Redirect(); ok {
			route = r
		}
	}
	return route, nil
}

// loginModel is the Bubble Tea model wrapping the login view
type loginModel struct {
	ctx  context.Context
	view *login.View

	username textinput.Model
	password textinput.Model
	spinner  spinner.Model
	focus    field

	route string
	width int
}

func initialModel(ctx context.Context, view *login.View) loginModel {
	username := textinput.New()
	username.Placeholder = "Username"
	username.CharLimit = inputCharLimit
	username.Width = formWidth - 8
	username.SetValue(view.Username())

	password := textinput.New()
	password.Placeholder = "Password"
	password.CharLimit = inputCharLimit
	password.Width = formWidth - 8
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'
	password.SetValue(view.Password())

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return loginModel{
		ctx:      ctx,
		view:     view,
		username: username,
		password: password,
		spinner:  sp,
		focus:    fieldRole,
		width:    formWidth,
	}
}

// Message type definitions
type (
	loginResultMsg struct {
		creds   login.Credentials
		payload map[string]any
		err     error
	}
	slowNoticeMsg struct{}
)

// Init quits at once when a stored session already redirects
func (m loginModel) Init() tea.Cmd {
	if _, ok := m.view.Redirect(); ok {
		return tea.Quit
	}
	return textinput.Blink
}

// Update processes messages and updates the model (Bubble Tea interface)
func (m loginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmds = append(cmds, m.handleKeyPress(msg)...)

	case tea.WindowSizeMsg:
		m.width = msg.Width

	case loginResultMsg:
		m.view.Complete(m.ctx, msg.creds, msg.payload, msg.err)

	case slowNoticeMsg:
		m.view.ShowSlowNotice()

	case spinner.TickMsg:
		if m.view.Status() == login.StatusPending {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	// redirect guard runs after every message
	if route, ok := m.view.Redirect(); ok {
		m.route = route
		return m, tea.Quit
	}

	return m, tea.Batch(cmds...)
}

// handleKeyPress handles keyboard input
func (m *loginModel) handleKeyPress(msg tea.KeyMsg) []tea.Cmd {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return []tea.Cmd{tea.Quit}

	case tea.KeyCtrlR:
		m.view.RequestRegister()
		return nil

	case tea.KeyTab, tea.KeyDown:
		return []tea.Cmd{m.moveFocus(1)}

	case tea.KeyShiftTab, tea.KeyUp:
		return []tea.Cmd{m.moveFocus(-1)}

	case tea.KeyEnter:
		if m.focus == fieldUsername {
			return []tea.Cmd{m.moveFocus(1)}
		}
		return m.submit()
	}

	if m.focus == fieldRole {
		m.handleRoleKey(msg)
		return nil
	}

	var cmd tea.Cmd
	if m.focus == fieldUsername {
		m.username, cmd = m.username.Update(msg)
		m.view.SetUsername(m.username.Value())
	} else {
		m.password, cmd = m.password.Update(msg)
		m.view.SetPassword(m.password.Value())
	}
	return []tea.Cmd{cmd}
}

// handleRoleKey switches the role with arrows or the role initials
func (m *loginModel) handleRoleKey(msg tea.KeyMsg) {
	switch msg.Type {
	case tea.KeyLeft:
		m.view.SelectRole(entity.RoleStaff)
		return
	case tea.KeyRight:
		m.view.SelectRole(entity.RoleStudent)
		return
	}

	switch strings.ToLower(msg.String()) {
	case "s", "1":
		m.view.SelectRole(entity.RoleStaff)
	case "t", "2":
		m.view.SelectRole(entity.RoleStudent)
	}
}

// moveFocus cycles focus; the credential fields only exist once a role is selected
func (m *loginModel) moveFocus(delta int) tea.Cmd {
	count := 1
	if m.view.Role() != entity.RoleNone {
		count = 3
	}
	next := (int(m.focus) + delta + count) % count
	return m.setFocus(field(next))
}

func (m *loginModel) setFocus(f field) tea.Cmd {
	m.focus = f
	m.username.Blur()
	m.password.Blur()

	switch f {
	case fieldUsername:
		return m.username.Focus()
	case fieldPassword:
		return m.password.Focus()
	}
	return nil
}

// submit starts a login: the request and the slow notice run as commands
func (m *loginModel) submit() []tea.Cmd {
	creds, err := m.view.Submit()
	if err != nil {
		return nil
	}

	view, ctx := m.view, m.ctx
	return []tea.Cmd{
		m.spinner.Tick,
		tea.Tick(view.NoticeDelay(), func(time.Time) tea.Msg {
			return slowNoticeMsg{}
		}),
		func() tea.Msg {
			payload, err := view.Authenticate(ctx, creds)
			return loginResultMsg{creds: creds, payload: payload, err: err}
		},
	}
}

// View renders nothing while the redirect guard holds, the form otherwise
func (m loginModel) View() string {
	if _, ok := m.view.Redirect(); ok {
		return ""
	}

	var parts []string

	if m.view.NoticeVisible() {
		parts = append(parts, ui.Styles.Notice.Width(max(m.width, formWidth)).Render(m.view.Message()), "")
	}

	parts = append(parts, accentStyle.Render("🏛  ")+boldStyle.Render(ui.PortalTitle), "")
	parts = append(parts, formStyle.Render(m.renderForm()))
	parts = append(parts, dimStyle.Render("←/→ role • Tab next field • Enter login • Ctrl+R register • Esc quit"))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m loginModel) renderForm() string {
	role := m.view.Role()

	var rows []string
	rows = append(rows, m.renderRoleTabs(role), "", roleIcon(role), "")

	if role == entity.RoleNone {
		rows = append(rows, placeholderStyle.Render("Select User Type"))
	} else {
		rows = append(rows, m.username.View(), m.password.View(), "", m.renderButton())
	}

	if strip := ui.RenderErrorStrip(m.view.Err()); strip != "" {
		rows = append(rows, "", strip)
	}

	rows = append(rows, "", dimStyle.Render("Click to ")+boldStyle.Underline(true).Render("Register")+dimStyle.Render(" (Ctrl+R)"))

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m loginModel) renderRoleTabs(selected entity.Role) string {
	tabs := make([]string, 0, len(entity.Roles))
	for _, r := range entity.Roles {
		style := tabStyle
		if r == selected {
			style = tabOnStyle
		}
		tabs = append(tabs, style.Render(r.Title()))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	if m.focus == fieldRole {
		row = accentStyle.Render("› ") + row
	} else {
		row = "  " + row
	}
	return row
}

func (m loginModel) renderButton() string {
	if m.view.Status() == login.StatusPending {
		return buttonOffStyle.Render(m.spinner.View() + " " + buttonPending)
	}
	return buttonStyle.Render(buttonIdle)
}

func roleIcon(r entity.Role) string {
	switch r {
	case entity.RoleStudent:
		return accentStyle.Render("🎓 Student login")
	case entity.RoleStaff:
		return accentStyle.Render("👤 Staff login")
	default:
		return accentStyle.Render("🏛  Portal login")
	}
}
