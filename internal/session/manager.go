// Package session holds the browser session: a signed cookie carrying the
// backend-issued token, hydrated into a user via /auth/me on each request.
// The backend stays the authentication truth; this package only caches it.
package session

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/alamin-islam0/care-xyz-frontend/internal/backend"
	"github.com/alamin-islam0/care-xyz-frontend/internal/models"
)

// CookieName matches the storage key the CareXYZ web clients have always
// used for the token.
const CookieName = "carexyz_token"

const (
	defaultMaxAge = 24 * time.Hour
	hydrateTTL    = 5 * time.Minute
)

var ErrInvalidSession = errors.New("session token rejected by backend")

type Manager struct {
	backend *backend.Client
	cache   *redis.Client
	secret  []byte
	secure  bool
	log     zerolog.Logger
}

func NewManager(api *backend.Client, cache *redis.Client, secret string, secure bool, log zerolog.Logger) *Manager {
	return &Manager{
		backend: api,
		cache:   cache,
		secret:  []byte(secret),
		secure:  secure,
		log:     log,
	}
}

// Login stores the backend token in the session cookie. The cookie lifetime
// is bounded by the token's own exp claim when one is readable.
func (m *Manager) Login(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, m.seal(token), int(m.maxAge(token).Seconds()), "/", "", m.secure, true)
}

// Logout clears the cookie and evicts the cached hydration, so a stale
// token can never resurrect the session.
func (m *Manager) Logout(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, "", -1, "/", "", m.secure, true)
	m.evict(c.Request.Context(), token)
}

// Clear drops the cookie without touching the cache. Used when hydration
// already proved the token dead.
func (m *Manager) Clear(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, "", -1, "/", "", m.secure, true)
}

// Token extracts and verifies the session token from the request cookie.
func (m *Manager) Token(c *gin.Context) (string, bool) {
	raw, err := c.Cookie(CookieName)
	if err != nil || raw == "" {
		return "", false
	}
	return m.open(raw)
}

// Hydrate resolves a token to its user, via the cache when available. An
// unauthorized answer from the backend means the session is dead
// (ErrInvalidSession); a transport failure is returned as-is so the caller
// can degrade without discarding a possibly valid token.
func (m *Manager) Hydrate(ctx context.Context, token string) (*models.User, error) {
	if u := m.cached(ctx, token); u != nil {
		return u, nil
	}

	user, err := m.backend.Me(ctx, token)
	if err != nil {
		if backend.IsUnauthorized(err) {
			return nil, ErrInvalidSession
		}
		return nil, err
	}

	m.store(ctx, token, user)
	return user, nil
}

// --------- hydration cache ---------

func (m *Manager) cacheKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return "carexyz:session:" + hex.EncodeToString(sum[:])
}

func (m *Manager) cached(ctx context.Context, token string) *models.User {
	if m.cache == nil {
		return nil
	}

	data, err := m.cache.Get(ctx, m.cacheKey(token)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			m.log.Warn().Err(err).Msg("session cache read failed")
		}
		return nil
	}

	var user models.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil
	}
	return &user
}

func (m *Manager) store(ctx context.Context, token string, user *models.User) {
	if m.cache == nil {
		return
	}

	data, err := json.Marshal(user)
	if err != nil {
		return
	}
	if err := m.cache.Set(ctx, m.cacheKey(token), data, hydrateTTL).Err(); err != nil {
		m.log.Warn().Err(err).Msg("session cache write failed")
	}
}

func (m *Manager) evict(ctx context.Context, token string) {
	if m.cache == nil || token == "" {
		return
	}
	if err := m.cache.Del(ctx, m.cacheKey(token)).Err(); err != nil {
		m.log.Warn().Err(err).Msg("session cache evict failed")
	}
}

// --------- cookie sealing ---------

func (m *Manager) sign(payload string) string {
	mac := hmac.New(sha256.New, m.secret)
	mac.Write([]byte(payload))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

func (m *Manager) seal(token string) string {
	payload := base64.RawURLEncoding.EncodeToString([]byte(token))
	return payload + "." + m.sign(payload)
}

func (m *Manager) open(sealed string) (string, bool) {
	payload, sig, ok := strings.Cut(sealed, ".")
	if !ok {
		return "", false
	}
	if !hmac.Equal([]byte(sig), []byte(m.sign(payload))) {
		return "", false
	}

	token, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil {
		return "", false
	}
	return string(token), true
}

// maxAge reads the token's exp claim without verifying the signature; the
// backend holds the signing key, we only need the lifetime hint.
func (m *Manager) maxAge(token string) time.Duration {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return defaultMaxAge
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return defaultMaxAge
	}

	remaining := time.Until(exp.Time)
	if remaining <= 0 || remaining > defaultMaxAge {
		return defaultMaxAge
	}
	return remaining
}
