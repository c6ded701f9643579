// Package login implements the portal login view: role selection, credential
// submission, session persistence and the redirect guard. It holds no
// terminal code; the tui package and the plain prompt flow both drive it.
package login

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/Shivansh-2508/PGT-Portal/internal/cli/session"
	"github.com/Shivansh-2508/PGT-Portal/internal/domain"
	"github.com/Shivansh-2508/PGT-Portal/internal/domain/entity"
)

// Navigation targets
const (
	RouteDash     = "./dash"
	RouteRegister = "./register/reg_student"
)

// SlowNoticeDelay is how long a submission waits before the cold-start notice
const SlowNoticeDelay = 4 * time.Second

// SlowNotice warns that the hosted backend may be waking up
const SlowNotice = "NOTE: Web Services on the free instance type are automatically spun down after 15 minutes of inactivity. " +
	"When a new request for a free service comes in, Render spins it up again so it can process the request. " +
	"This will cause a delay in the response of the first request after a period of inactivity while the instance spins up."

// Status is the submission status of the form
type Status int

const (
	StatusIdle Status = iota
	StatusPending
)

// Credentials is the snapshot taken at submit time
type Credentials struct {
	Role     entity.Role
	Username string
	Password string
}

// Option configures a View
type Option func(*View)

// WithNoticeDelay overrides SlowNoticeDelay
func WithNoticeDelay(d time.Duration) Option {
	return func(v *View) { v.noticeDelay = d }
}

// WithNoticeHandler is called each time the slow notice fires while visible
func WithNoticeHandler(fn func(message string)) Option {
	return func(v *View) { v.onNotice = fn }
}

// View is the login form state. Methods are safe to call from the notice
// timer and the UI loop at the same time.
type View struct {
	auth     domain.Authenticator
	sessions *session.Context
	repo     *session.Repository
	logger   *slog.Logger

	noticeDelay time.Duration
	onNotice    func(string)

	mu       sync.Mutex
	username string
	password string
	role     entity.Role
	err      error
	status   Status
	message  string
	route    string
}

// NewView creates a login view over its collaborators
func NewView(auth domain.Authenticator, sessions *session.Context, repo *session.Repository, logger *slog.Logger, opts ...Option) *View {
	v := &View{
		auth:        auth,
		sessions:    sessions,
		repo:        repo,
		logger:      logger,
		noticeDelay: SlowNoticeDelay,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Initialize hydrates the session context from durable storage when a record
// exists, then resets the role selection and the notice.
func (v *View) Initialize(ctx context.Context) {
	s, ok, err := v.repo.Load(ctx)
	switch {
	case err != nil:
		v.logger.Warn("could not read stored session", "error", err)
	case ok:
		v.sessions.Set(s)
		v.logger.Debug("session restored", "authenticated", s.IsAuthenticated())
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	v.role = entity.RoleNone
	v.message = ""
}

// SelectRole sets the role; credentials are kept
func (v *View) SelectRole(r entity.Role) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.role = r
}

// SetUsername updates the username field
func (v *View) SetUsername(s string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.username = s
}

// SetPassword updates the password field
func (v *View) SetPassword(s string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.password = s
}

// Submit validates the form and moves it to pending. The returned
// credentials are passed to Authenticate and then Complete. A second call
// while pending fails with domain.ErrSubmitInFlight and changes nothing.
func (v *View) Submit() (Credentials, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.status == StatusPending {
		return Credentials{}, domain.ErrSubmitInFlight
	}
	if v.role == entity.RoleNone {
		v.err = domain.NewValidationError(domain.MsgSelectUserType)
		return Credentials{}, v.err
	}

	v.status = StatusPending
	return Credentials{Role: v.role, Username: v.username, Password: v.password}, nil
}

// Authenticate performs the login request. It touches no view state and may
// run off the UI loop.
func (v *View) Authenticate(ctx context.Context, creds Credentials) (map[string]any, error) {
	return v.auth.Login(ctx, creds.Role, creds.Username, creds.Password)
}

// Complete applies the outcome of Authenticate. On success the session is
// written to durable storage and then to the session context; on failure the
// error is kept for display and the form becomes submittable again.
func (v *View) Complete(ctx context.Context, creds Credentials, payload map[string]any, err error) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.status = StatusIdle

	if err != nil {
		v.err = err
		v.logger.Info("login failed", "role", string(creds.Role), "error", err)
		return err
	}

	s := entity.NewSession(payload, creds.Role)
	if saveErr := v.repo.Save(ctx, s); saveErr != nil {
		v.err = saveErr
		return saveErr
	}
	v.sessions.Set(s)
	v.err = nil

	v.logger.Info("login succeeded", "role", string(creds.Role), "authenticated", s.IsAuthenticated())
	return nil
}

// Login runs Submit, Authenticate and Complete in sequence and arms the slow
// notice timer. The timer is never stopped, so the notice may fire after the
// login has already resolved.
func (v *View) Login(ctx context.Context) error {
	creds, err := v.Submit()
	if err != nil {
		return err
	}

	time.AfterFunc(v.noticeDelay, v.ShowSlowNotice)

	payload, err := v.Authenticate(ctx, creds)
	return v.Complete(ctx, creds, payload, err)
}

// NoticeDelay returns the delay before the slow notice
func (v *View) NoticeDelay() time.Duration {
	return v.noticeDelay
}

// ShowSlowNotice sets the informational message. The notice handler only
// runs while the notice is visible: no current error and no redirect.
func (v *View) ShowSlowNotice() {
	authenticated := v.sessions.Authenticated()

	v.mu.Lock()
	v.message = SlowNotice
	fn := v.onNotice
	visible := v.err == nil && v.route == "" && !authenticated
	v.mu.Unlock()

	if fn != nil && visible {
		fn(SlowNotice)
	}
}

// RequestRegister navigates to the registration screen
func (v *View) RequestRegister() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.route = RouteRegister
}

// Redirect is evaluated on every render. It reports the route to leave for:
// the dashboard whenever the session context is authenticated, otherwise a
// manually requested route.
func (v *View) Redirect() (string, bool) {
	if v.sessions.Authenticated() {
		return RouteDash, true
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	if v.route != "" {
		return v.route, true
	}
	return "", false
}

// Username returns the username field
func (v *View) Username() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.username
}

// Password returns the password field
func (v *View) Password() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.password
}

// Role returns the selected role
func (v *View) Role() entity.Role {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.role
}

// Err returns the current error
func (v *View) Err() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.err
}

// Status returns the submission status
func (v *View) Status() Status {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.status
}

// Message returns the informational message
func (v *View) Message() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.message
}

// NoticeVisible reports whether the notice banner is shown; an error hides it
func (v *View) NoticeVisible() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.message != "" && v.err == nil
}
