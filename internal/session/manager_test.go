package session

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sugarstack/sweetshop-cli/internal/models"
	"github.com/sugarstack/sweetshop-cli/internal/models/dto"
)

type fakeAuthAPI struct {
	meIdentity    models.Identity
	meErr         error
	loginIdentity models.Identity
	loginErr      error
	logoutErr     error

	meCalls     int
	logoutCalls int
	token       string
}

func (f *fakeAuthAPI) Me(ctx context.Context) (models.Identity, error) {
	f.meCalls++
	return f.meIdentity, f.meErr
}

func (f *fakeAuthAPI) Login(ctx context.Context, creds dto.LoginRequest) (models.Identity, error) {
	return f.loginIdentity, f.loginErr
}

func (f *fakeAuthAPI) Register(ctx context.Context, creds dto.RegisterRequest) (models.Identity, error) {
	return f.loginIdentity, f.loginErr
}

func (f *fakeAuthAPI) Logout(ctx context.Context) error {
	f.logoutCalls++
	return f.logoutErr
}

func (f *fakeAuthAPI) SetToken(token string) { f.token = token }

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "u1",
		"exp": exp.Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestInitializeResolvesSession(t *testing.T) {
	api := &fakeAuthAPI{meIdentity: models.Identity{ID: "u1", Name: "Asha", Role: models.RoleAdmin}}
	m := NewManager(api, "", quietLogger())

	require.Equal(t, StateLoading, m.State())
	m.Initialize(context.Background())

	assert.Equal(t, StateAuthenticated, m.State())
	identity, ok := m.Identity()
	require.True(t, ok)
	assert.Equal(t, "Asha", identity.Name)
	assert.True(t, identity.IsAdmin())
}

func TestInitializeProbeFailureIsUnauthenticated(t *testing.T) {
	api := &fakeAuthAPI{meErr: errors.New("401")}
	m := NewManager(api, "", quietLogger())

	m.Initialize(context.Background())

	assert.Equal(t, StateUnauthenticated, m.State())
	_, ok := m.Identity()
	assert.False(t, ok)
}

func TestInitializeSkipsProbeForExpiredCachedToken(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	cache := tokenCache{path: path}
	require.NoError(t, cache.save(signedToken(t, time.Now().Add(-time.Hour))))

	api := &fakeAuthAPI{meIdentity: models.Identity{ID: "u1"}}
	m := NewManager(api, path, quietLogger())
	m.Initialize(context.Background())

	assert.Equal(t, StateUnauthenticated, m.State())
	assert.Zero(t, api.meCalls, "expired token must short-circuit the probe")
	assert.Empty(t, cache.load(), "expired token should be evicted")
}

func TestInitializeUsesCachedTokenForProbe(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	token := signedToken(t, time.Now().Add(time.Hour))
	require.NoError(t, tokenCache{path: path}.save(token))

	api := &fakeAuthAPI{meIdentity: models.Identity{ID: "u1"}}
	m := NewManager(api, path, quietLogger())
	m.Initialize(context.Background())

	assert.Equal(t, StateAuthenticated, m.State())
	assert.Equal(t, token, api.token)
	assert.Equal(t, 1, api.meCalls)
}

func TestLoginSuccess(t *testing.T) {
	api := &fakeAuthAPI{
		meErr:         errors.New("no session"),
		loginIdentity: models.Identity{ID: "u1", Email: "a@b.com", Role: models.RoleUser},
	}
	m := NewManager(api, "", quietLogger())
	m.Initialize(context.Background())

	identity, err := m.Login(context.Background(), dto.LoginRequest{Email: "a@b.com", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", identity.Email)
	assert.Equal(t, StateAuthenticated, m.State())
}

func TestLoginFailureLeavesIdentityUnset(t *testing.T) {
	api := &fakeAuthAPI{meErr: errors.New("no session"), loginErr: errors.New("Invalid credentials")}
	m := NewManager(api, "", quietLogger())
	m.Initialize(context.Background())

	_, err := m.Login(context.Background(), dto.LoginRequest{Email: "a@b.com", Password: "wrong"})
	require.Error(t, err)

	assert.Equal(t, StateUnauthenticated, m.State())
	_, ok := m.Identity()
	assert.False(t, ok)
}

func TestRegisterIsAutoLogin(t *testing.T) {
	api := &fakeAuthAPI{meErr: errors.New("no session"), loginIdentity: models.Identity{ID: "u2", Name: "Ravi"}}
	m := NewManager(api, "", quietLogger())
	m.Initialize(context.Background())

	_, err := m.Register(context.Background(), dto.RegisterRequest{Name: "Ravi", Email: "r@b.com", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, StateAuthenticated, m.State())
}

func TestLoginPersistsToken(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	token := signedToken(t, time.Now().Add(time.Hour))
	api := &fakeAuthAPI{loginIdentity: models.Identity{ID: "u1", Token: token}}
	m := NewManager(api, path, quietLogger())

	_, err := m.Login(context.Background(), dto.LoginRequest{Email: "a@b.com", Password: "pw"})
	require.NoError(t, err)

	assert.Equal(t, token, api.token)
	assert.Equal(t, token, tokenCache{path: path}.load())
}

func TestLogoutAlwaysClearsIdentity(t *testing.T) {
	for name, logoutErr := range map[string]error{
		"server success": nil,
		"server failure": errors.New("connection refused"),
	} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "token")
			require.NoError(t, tokenCache{path: path}.save(signedToken(t, time.Now().Add(time.Hour))))

			api := &fakeAuthAPI{
				loginIdentity: models.Identity{ID: "u1"},
				logoutErr:     logoutErr,
			}
			m := NewManager(api, path, quietLogger())
			_, err := m.Login(context.Background(), dto.LoginRequest{Email: "a@b.com", Password: "pw"})
			require.NoError(t, err)

			m.Logout(context.Background())

			assert.Equal(t, StateUnauthenticated, m.State())
			_, ok := m.Identity()
			assert.False(t, ok)
			assert.Empty(t, api.token)
			assert.Empty(t, tokenCache{path: path}.load())
		})
	}
}

func TestTokenExpired(t *testing.T) {
	now := time.Now()
	assert.True(t, tokenExpired("not-a-jwt", now))
	assert.True(t, tokenExpired(signedToken(t, now.Add(-time.Minute)), now))
	assert.False(t, tokenExpired(signedToken(t, now.Add(time.Minute)), now))
}
