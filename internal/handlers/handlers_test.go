package handlers

import (
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/alamin-islam0/care-xyz-frontend/internal/activity"
	"github.com/alamin-islam0/care-xyz-frontend/internal/backend"
	"github.com/alamin-islam0/care-xyz-frontend/internal/middleware"
	"github.com/alamin-islam0/care-xyz-frontend/internal/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newEngine parses the real templates, so these tests double as a check
// that every page still renders.
func newEngine() *gin.Engine {
	r := gin.New()
	r.LoadHTMLGlob("../../templates/*.html")
	return r
}

func fakeAPI(t *testing.T, handler http.HandlerFunc) *backend.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return backend.NewClient(srv.URL, zerolog.Nop(), nil)
}

func newDispatcher(t *testing.T) *activity.Dispatcher {
	t.Helper()
	d := activity.NewDispatcher(zerolog.Nop())
	t.Cleanup(d.Close)
	return d
}

// asUser injects a hydrated session the way middleware.LoadSession would.
func asUser(user *models.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		if user != nil {
			c.Set(middleware.ContextUser, user)
			c.Set(middleware.ContextToken, "tok")
		}
		c.Next()
	}
}

func postForm(r *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.ServeHTTP(w, req)
	return w
}

func flashMessage(t *testing.T, w *httptest.ResponseRecorder) (kind, message string) {
	t.Helper()
	for _, ck := range w.Result().Cookies() {
		if ck.Name != "carexyz_flash" || ck.Value == "" {
			continue
		}
		decoded, err := base64.RawURLEncoding.DecodeString(ck.Value)
		require.NoError(t, err)
		kind, message, _ = strings.Cut(string(decoded), "|")
		return kind, message
	}
	t.Fatal("no flash cookie set")
	return "", ""
}
