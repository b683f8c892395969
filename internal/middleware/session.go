package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/alamin-islam0/care-xyz-frontend/internal/models"
	"github.com/alamin-islam0/care-xyz-frontend/internal/session"
)

const (
	ContextUser  = "currentUser"
	ContextToken = "currentToken"
)

// LoadSession hydrates the session cookie into the request context. It never
// aborts; guards downstream decide what an absent user means. A token the
// backend rejects is cleared silently, so an expired session just looks
// logged out.
func LoadSession(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := sessions.Token(c)
		if !ok {
			c.Next()
			return
		}

		user, err := sessions.Hydrate(c.Request.Context(), token)
		if err != nil {
			if err == session.ErrInvalidSession {
				sessions.Clear(c)
			}
			c.Next()
			return
		}

		c.Set(ContextUser, user)
		c.Set(ContextToken, token)
		c.Next()
	}
}

// CurrentUser returns the hydrated user, or nil when unauthenticated.
func CurrentUser(c *gin.Context) *models.User {
	if v, ok := c.Get(ContextUser); ok {
		if u, ok := v.(*models.User); ok {
			return u
		}
	}
	return nil
}

func CurrentToken(c *gin.Context) string {
	if v, ok := c.Get(ContextToken); ok {
		if t, ok := v.(string); ok {
			return t
		}
	}
	return ""
}
