package session

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/sugarstack/sweetshop-cli/internal/models"
	"github.com/sugarstack/sweetshop-cli/internal/models/dto"
)

// State is the session lifecycle position. Loading lasts from construction
// until Initialize resolves, after which the state is always one of
// Authenticated or Unauthenticated.
type State int

const (
	StateLoading State = iota
	StateAuthenticated
	StateUnauthenticated
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unauthenticated"
	}
}

// AuthAPI captures the auth operations the manager needs from the API client.
type AuthAPI interface {
	Me(ctx context.Context) (models.Identity, error)
	Login(ctx context.Context, creds dto.LoginRequest) (models.Identity, error)
	Register(ctx context.Context, creds dto.RegisterRequest) (models.Identity, error)
	Logout(ctx context.Context) error
	SetToken(token string)
}

// Manager owns the current Identity. It is the only writer of session state;
// consumers read snapshots through State and Identity.
type Manager struct {
	api   AuthAPI
	cache tokenCache
	log   *logrus.Logger

	mu       sync.RWMutex
	state    State
	identity *models.Identity
}

// NewManager returns a manager in the loading state. Call Initialize before
// rendering any guarded view.
func NewManager(api AuthAPI, tokenCachePath string, log *logrus.Logger) *Manager {
	return &Manager{
		api:   api,
		cache: tokenCache{path: tokenCachePath},
		log:   log,
		state: StateLoading,
	}
}

// Initialize performs the one-time session probe. A cached, unexpired bearer
// token is installed first so the probe can ride on it; a cached token that has
// already expired resolves to unauthenticated without a network call. Probe
// failure is not an error: it is the expected signal for "no session".
func (m *Manager) Initialize(ctx context.Context) {
	if token := m.cache.load(); token != "" {
		if tokenExpired(token, time.Now()) {
			m.log.Debug("cached token expired, skipping session probe")
			m.cache.clear()
			m.become(StateUnauthenticated, nil)
			return
		}
		m.api.SetToken(token)
	}

	identity, err := m.api.Me(ctx)
	if err != nil {
		m.log.WithError(err).Debug("session probe resolved to unauthenticated")
		m.become(StateUnauthenticated, nil)
		return
	}
	m.become(StateAuthenticated, &identity)
}

// Login submits credentials. On success the identity is installed and
// returned; on failure the session state is untouched and the error carries
// the server's message when one was provided.
func (m *Manager) Login(ctx context.Context, creds dto.LoginRequest) (models.Identity, error) {
	identity, err := m.api.Login(ctx, creds)
	if err != nil {
		return models.Identity{}, err
	}
	m.establish(identity)
	return identity, nil
}

// Register creates an account. A success response establishes the session
// directly, exactly like a login.
func (m *Manager) Register(ctx context.Context, creds dto.RegisterRequest) (models.Identity, error) {
	identity, err := m.api.Register(ctx, creds)
	if err != nil {
		return models.Identity{}, err
	}
	m.establish(identity)
	return identity, nil
}

// Logout ends the session. The local identity is cleared no matter what the
// server says: the user asked to be logged out, so they are. A failed network
// call is logged and swallowed.
func (m *Manager) Logout(ctx context.Context) {
	if err := m.api.Logout(ctx); err != nil {
		m.log.WithError(err).Warn("logout request failed, clearing session locally anyway")
	}
	m.api.SetToken("")
	m.cache.clear()
	m.become(StateUnauthenticated, nil)
}

// State returns the current lifecycle state.
func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// Identity returns a copy of the current identity and whether one exists.
func (m *Manager) Identity() (models.Identity, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.identity == nil {
		return models.Identity{}, false
	}
	return *m.identity, true
}

func (m *Manager) establish(identity models.Identity) {
	if identity.Token != "" {
		m.api.SetToken(identity.Token)
		if err := m.cache.save(identity.Token); err != nil {
			m.log.WithError(err).Warn("could not persist session token")
		}
	}
	m.become(StateAuthenticated, &identity)
}

func (m *Manager) become(state State, identity *models.Identity) {
	m.mu.Lock()
	m.state = state
	m.identity = identity
	m.mu.Unlock()
}
