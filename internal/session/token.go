package session

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// tokenCache persists the bearer token handed back by login/register so the
// next start can resume the session without fresh credentials.
type tokenCache struct {
	path string
}

func (c tokenCache) load() string {
	if c.path == "" {
		return ""
	}
	data, err := os.ReadFile(c.path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

func (c tokenCache) save(token string) error {
	if c.path == "" || token == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(c.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(c.path, []byte(token), 0o600)
}

func (c tokenCache) clear() {
	if c.path == "" {
		return
	}
	os.Remove(c.path)
}

// tokenExpired inspects a JWT's exp claim without verifying the signature. The
// client holds no signing secret; this is only a fast negative that lets the
// startup probe be skipped for a token the server is guaranteed to reject.
// Malformed tokens and tokens without exp count as expired.
func tokenExpired(token string, now time.Time) bool {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return true
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return true
	}
	return exp.Before(now)
}
