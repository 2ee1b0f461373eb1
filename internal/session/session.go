// Package session owns the process-wide authentication state: the bearer
// token and the cached current-user record. Views never touch ambient
// globals; they hold a *Manager and read through its accessors.
//
// Invariant: the cached user is present only while a token is present and
// was accepted by the backend. Token and user are set and cleared together,
// under one lock, so no reader ever observes a half-torn session.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/donapoint/donapoint/internal/api"
	"github.com/donapoint/donapoint/internal/logging"
	"github.com/donapoint/donapoint/internal/models"
	"github.com/donapoint/donapoint/internal/repositories/metadata"
)

// ErrNoToken is returned by Login when a 2xx response carries no access
// token. It is a failure result, not a panic.
var ErrNoToken = errors.New("no access token in login response")

// Event describes a session state change delivered to subscribers.
type Event int

const (
	// EventLoggedIn fires after a successful login.
	EventLoggedIn Event = iota
	// EventLoggedOut fires after an explicit logout.
	EventLoggedOut
	// EventExpired fires when a 401 tears the session down; the UI should
	// drop the user back to the login prompt.
	EventExpired
	// EventUserUpdated fires when the cached user record is replaced.
	EventUserUpdated
)

// Manager is the session manager. Construct with NewManager, register its
// Token method as the API client's token provider and HandleUnauthorized as
// the 401 hook, then call Restore once at startup.
type Manager struct {
	client api.Client
	store  metadata.Repository
	log    logging.Logger

	mu    sync.Mutex
	token string
	user  *models.Creator
	subs  []func(Event)
}

func NewManager(client api.Client, store metadata.Repository, log logging.Logger) *Manager {
	return &Manager{client: client, store: store, log: log}
}

// Subscribe registers a callback invoked on every session state change.
// Callbacks run synchronously on the mutating goroutine and must not block.
func (m *Manager) Subscribe(fn func(Event)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subs = append(m.subs, fn)
}

func (m *Manager) notify(ev Event) {
	m.mu.Lock()
	subs := make([]func(Event), len(m.subs))
	copy(subs, m.subs)
	m.mu.Unlock()

	for _, fn := range subs {
		fn(ev)
	}
}

// Token returns the current bearer token, or "" when unauthenticated.
// Intended as the API client's token provider.
func (m *Manager) Token() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token
}

// CurrentUser returns a copy of the cached user, or nil when unauthenticated.
func (m *Manager) CurrentUser() *models.Creator {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.user == nil {
		return nil
	}
	u := *m.user
	return &u
}

func (m *Manager) IsAuthenticated() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.user != nil
}

func (m *Manager) IsVerified() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.user != nil && m.user.Verified
}

// Restore attempts to resume a persisted session at startup. A missing
// token is the normal unauthenticated state and is not an error. A token
// the backend no longer accepts is cleared; nothing is retried.
func (m *Manager) Restore(ctx context.Context) error {
	token, err := m.store.Get(ctx, metadata.TokenKey)
	if err != nil {
		return fmt.Errorf("reading persisted token: %w", err)
	}
	if token == "" {
		return nil
	}

	m.mu.Lock()
	m.token = token
	m.mu.Unlock()

	user, err := m.client.GetMe(ctx)
	if err != nil {
		m.log.Warn(ctx, "persisted token rejected, clearing session", "err", err)
		m.clear(ctx)
		return nil
	}

	m.mu.Lock()
	m.user = user
	m.mu.Unlock()

	m.notify(EventLoggedIn)
	return nil
}

// Login exchanges a third-party identity assertion for a backend token,
// persists it, then fetches and caches the current user. Every failure
// leaves the session unauthenticated: a response without a token, a
// persistence failure, or a failed user fetch.
func (m *Manager) Login(ctx context.Context, idToken string) error {
	token, err := m.client.Login(ctx, idToken)
	if err != nil {
		return fmt.Errorf("login error: %w", err)
	}
	if token == "" {
		return ErrNoToken
	}

	if err := m.store.Set(ctx, metadata.TokenKey, token); err != nil {
		return fmt.Errorf("persisting token: %w", err)
	}

	m.mu.Lock()
	m.token = token
	m.mu.Unlock()

	user, err := m.client.GetMe(ctx)
	if err != nil {
		m.clear(ctx)
		return fmt.Errorf("fetching current user: %w", err)
	}

	m.mu.Lock()
	m.user = user
	m.mu.Unlock()

	// Account hint only; losing it costs nothing.
	if err := m.store.Set(ctx, metadata.AccountEmailKey, user.Email); err != nil {
		m.log.Warn(ctx, "could not persist account hint", "err", err)
	}

	m.notify(EventLoggedIn)
	return nil
}

// Logout clears the persisted token and the cached user. No backend call
// is made.
func (m *Manager) Logout(ctx context.Context) error {
	err := m.clear(ctx)
	m.notify(EventLoggedOut)
	return err
}

// HandleUnauthorized is the API gateway's 401 hook. Whatever operation
// triggered the response, the session ends here and subscribers are told to
// send the user back to login.
func (m *Manager) HandleUnauthorized() {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	m.mu.Lock()
	hadSession := m.token != "" || m.user != nil
	m.mu.Unlock()
	if !hadSession {
		return
	}

	if err := m.clear(ctx); err != nil {
		m.log.Error(ctx, "failed to clear session after 401", "err", err)
	}
	m.notify(EventExpired)
}

// SetUser replaces the cached user record, e.g. after a profile update.
// Ignored while unauthenticated.
func (m *Manager) SetUser(user *models.Creator) {
	m.mu.Lock()
	if m.token == "" || user == nil {
		m.mu.Unlock()
		return
	}
	u := *user
	m.user = &u
	m.mu.Unlock()

	m.notify(EventUserUpdated)
}

// TokenExpiry peeks at the bearer token's exp claim without verifying the
// signature. Display only; the backend remains the authority.
func (m *Manager) TokenExpiry() (time.Time, bool) {
	token := m.Token()
	if token == "" {
		return time.Time{}, false
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

// clear drops the in-memory pair first so no caller can observe a token
// without its user, then removes the persisted copies.
func (m *Manager) clear(ctx context.Context) error {
	m.mu.Lock()
	m.token = ""
	m.user = nil
	m.mu.Unlock()

	if err := m.store.DeleteMany(ctx, metadata.TokenKey, metadata.AccountEmailKey); err != nil {
		return fmt.Errorf("clearing persisted session: %w", err)
	}
	return nil
}
