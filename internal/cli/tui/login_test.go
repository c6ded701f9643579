package tui

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Shivansh-2508/PGT-Portal/internal/cli/login"
	"github.com/Shivansh-2508/PGT-Portal/internal/cli/session"
	"github.com/Shivansh-2508/PGT-Portal/internal/domain"
	"github.com/Shivansh-2508/PGT-Portal/internal/domain/entity"
	"github.com/Shivansh-2508/PGT-Portal/internal/domain/mocks"
)

func newTestModel(t *testing.T, stored map[string]string) (loginModel, *mocks.MockAuthenticator) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	auth := &mocks.MockAuthenticator{}
	repo := session.NewRepository(mocks.NewMockKeyValueStore(stored), logger)

	view := login.NewView(auth, session.NewContext(), repo, logger)
	view.Initialize(context.Background())

	return initialModel(context.Background(), view), auth
}

func update(t *testing.T, m loginModel, msg tea.Msg) (loginModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(loginModel), cmd
}

func typeText(t *testing.T, m loginModel, text string) loginModel {
	t.Helper()
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return m
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestModel_SubmitWithoutRole(t *testing.T) {
	m, auth := newTestModel(t, nil)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if !domain.IsValidation(m.view.Err()) {
		t.Fatalf("Err() = %v, want validation error", m.view.Err())
	}
	if len(auth.Calls()) != 0 {
		t.Error("no request may be issued without a role")
	}
	if isQuit(cmd) {
		t.Error("model must not quit")
	}
	if !strings.Contains(m.View(), "Select User Type") {
		t.Error("view should show the Select User Type message")
	}
}

func TestModel_FormFlow(t *testing.T) {
	m, _ := newTestModel(t, nil)

	if strings.Contains(m.View(), "Password") {
		t.Error("credential fields must be hidden until a role is selected")
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if m.view.Role() != entity.RoleStudent {
		t.Fatalf("Role() = %q, want student", m.view.Role())
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = typeText(t, m, "alice")
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter}) // next field
	m = typeText(t, m, "pw")

	if m.view.Username() != "alice" || m.view.Password() != "pw" {
		t.Fatalf("fields = (%q, %q), want (alice, pw)", m.view.Username(), m.view.Password())
	}

	// switching role keeps the credentials
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if m.view.Role() != entity.RoleStaff {
		t.Fatalf("Role() = %q, want staff", m.view.Role())
	}
	if m.view.Username() != "alice" || m.view.Password() != "pw" {
		t.Errorf("role switch cleared credentials")
	}

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("submit should schedule the request")
	}
	if m.view.Status() != login.StatusPending {
		t.Error("status should be pending after submit")
	}
	if !strings.Contains(m.View(), "Loading...") {
		t.Error("button should read Loading... while pending")
	}
}

func TestModel_SuccessRedirects(t *testing.T) {
	m, _ := newTestModel(t, nil)
	m.view.SelectRole(entity.RoleStudent)
	creds, err := m.view.Submit()
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	m, cmd := update(t, m, loginResultMsg{creds: creds, payload: map[string]any{"_id": "u1", "name": "A"}})

	if !isQuit(cmd) {
		t.Fatal("model should quit once authenticated")
	}
	if m.route != login.RouteDash {
		t.Errorf("route = %q, want %q", m.route, login.RouteDash)
	}
	if m.View() != "" {
		t.Error("view must render nothing while redirecting")
	}
}

func TestModel_FailureShowsError(t *testing.T) {
	m, _ := newTestModel(t, nil)
	m.view.SelectRole(entity.RoleStaff)
	creds, _ := m.view.Submit()

	reqErr := &domain.RequestError{StatusCode: 401, Body: []byte(`{"message":"Invalid credentials"}`)}
	m, cmd := update(t, m, loginResultMsg{creds: creds, err: reqErr})

	if isQuit(cmd) {
		t.Fatal("model must stay open after a failure")
	}
	if !errors.Is(m.view.Err(), reqErr) {
		t.Errorf("Err() = %v, want %v", m.view.Err(), reqErr)
	}
	view := m.View()
	if !strings.Contains(view, "Invalid credentials") {
		t.Error("error strip should show the server message")
	}
	if !strings.Contains(view, "Login") || strings.Contains(view, "Loading...") {
		t.Error("button should be back to Login")
	}
}

func TestModel_StoredSessionQuitsImmediately(t *testing.T) {
	m, auth := newTestModel(t, map[string]string{
		session.StorageKey: `{"_id":"u1","userType":"staff"}`,
	})

	if !isQuit(m.Init()) {
		t.Fatal("Init() should quit when a stored session exists")
	}
	if m.View() != "" {
		t.Error("form must not render")
	}
	if len(auth.Calls()) != 0 {
		t.Error("no request may be issued")
	}
}

func TestLoginProgram_StoredSessionReturnsDash(t *testing.T) {
	m, auth := newTestModel(t, map[string]string{
		session.StorageKey: `{"_id":"u1","userType":"student"}`,
	})

	p := &LoginProgram{model: m}
	route, err := p.run(tea.WithInput(nil), tea.WithOutput(io.Discard))
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if route != login.RouteDash {
		t.Errorf("route = %q, want %q", route, login.RouteDash)
	}
	if len(auth.Calls()) != 0 {
		t.Errorf("requests = %d, want 0", len(auth.Calls()))
	}
}

func TestModel_SlowNoticeAndRegister(t *testing.T) {
	m, _ := newTestModel(t, nil)

	m, _ = update(t, m, slowNoticeMsg{})
	if !strings.Contains(m.View(), "NOTE:") {
		t.Error("slow notice should be rendered")
	}

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})
	if !isQuit(cmd) || m.route != login.RouteRegister {
		t.Errorf("ctrl+r: route = %q, quit = %v", m.route, isQuit(cmd))
	}
}
