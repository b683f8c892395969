package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alamin-islam0/care-xyz-frontend/internal/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// asUser injects a hydrated session the way LoadSession would.
func asUser(user *models.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		if user != nil {
			c.Set(ContextUser, user)
			c.Set(ContextToken, "tok")
		}
		c.Next()
	}
}

func newRouter(user *models.User) *gin.Engine {
	r := gin.New()
	r.Use(asUser(user))

	guarded := r.Group("/")
	guarded.Use(RequireAuth())
	guarded.GET("/my-bookings", func(c *gin.Context) {
		c.String(http.StatusOK, "guarded content")
	})

	admin := r.Group("/admin")
	admin.Use(RequireAdmin())
	admin.GET("", func(c *gin.Context) {
		c.String(http.StatusOK, "admin content")
	})

	return r
}

func TestRequireAuthRedirectsAnonymousWithReturnPath(t *testing.T) {
	r := newRouter(nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/my-bookings", nil))

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login?redirect=%2Fmy-bookings", w.Header().Get("Location"))
	assert.NotContains(t, w.Body.String(), "guarded content")
}

func TestRequireAuthPassesAuthenticatedUser(t *testing.T) {
	r := newRouter(&models.User{ID: "u1", Role: models.RoleUser})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/my-bookings", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "guarded content")
}

func TestRequireAdminRedirectsAnonymousToLogin(t *testing.T) {
	r := newRouter(nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login?redirect=%2Fadmin", w.Header().Get("Location"))
	assert.NotContains(t, w.Body.String(), "admin content")
}

func TestRequireAdminRedirectsNonAdminHome(t *testing.T) {
	r := newRouter(&models.User{ID: "u1", Role: models.RoleUser})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
	assert.NotContains(t, w.Body.String(), "admin content")
}

func TestRequireAdminPassesAdmin(t *testing.T) {
	r := newRouter(&models.User{ID: "u1", Role: models.RoleAdmin})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "admin content")
}

func TestRedirectPreservesQueryString(t *testing.T) {
	r := newRouter(nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/my-bookings?page=2", nil))

	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login?redirect=%2Fmy-bookings%3Fpage%3D2", w.Header().Get("Location"))
}

func TestCurrentUserHelpers(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	assert.Nil(t, CurrentUser(c))
	assert.Empty(t, CurrentToken(c))

	u := &models.User{ID: "u1"}
	c.Set(ContextUser, u)
	c.Set(ContextToken, "tok")

	assert.Equal(t, u, CurrentUser(c))
	assert.Equal(t, "tok", CurrentToken(c))
}
