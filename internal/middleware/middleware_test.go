package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipient-srv/internal/model"
	"recipient-srv/pkg/log"
	"recipient-srv/pkg/scope"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func newTestRouter(t *testing.T) (*gin.Engine, scope.Manager, *model.Scope) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	manager, err := scope.New(testSecret)
	require.NoError(t, err)

	var seen model.Scope
	mw := New(log.NewNop(), manager)

	r := gin.New()
	r.Use(Recovery(log.NewNop()))
	r.GET("/protected", mw.Auth(), func(c *gin.Context) {
		seen, _ = scope.GetScopeFromContext(c.Request.Context())
		c.Status(http.StatusNoContent)
	})
	r.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})
	return r, manager, &seen
}

func TestAuth(t *testing.T) {
	r, manager, seen := newTestRouter(t)

	tenantToken, err := manager.CreateToken(scope.Payload{UserID: "user-1", EnvironmentID: "env-1", OrganizationID: "org-1"})
	require.NoError(t, err)
	noTenantToken, err := manager.CreateToken(scope.Payload{UserID: "user-1"})
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{name: "missing header", header: "", wantStatus: http.StatusUnauthorized},
		{name: "not bearer", header: "Basic abc", wantStatus: http.StatusUnauthorized},
		{name: "bad token", header: "Bearer abc.def.ghi", wantStatus: http.StatusUnauthorized},
		{name: "no tenant", header: "Bearer " + noTenantToken, wantStatus: http.StatusForbidden},
		{name: "valid", header: "Bearer " + tenantToken, wantStatus: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}

	assert.Equal(t, "user-1", seen.UserID)
	assert.Equal(t, "env-1", seen.EnvironmentID)
	assert.Equal(t, "org-1", seen.OrganizationID)
}

func TestRecovery(t *testing.T) {
	r, _, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), `"error_code":500`)
}

func TestCORS(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name    string
		origins []string
		origin  string
		want    string
	}{
		{name: "wildcard echoes origin", origins: []string{"*"}, origin: "https://app.example.com", want: "https://app.example.com"},
		{name: "exact match", origins: []string{"https://a.io"}, origin: "https://a.io", want: "https://a.io"},
		{name: "subdomain suffix", origins: []string{"*.example.com"}, origin: "https://app.example.com", want: "https://app.example.com"},
		{name: "not allowed", origins: []string{"https://a.io"}, origin: "https://b.io", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.Use(CORS(tt.origins))
			r.POST("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

			req := httptest.NewRequest(http.MethodOptions, "/x", nil)
			req.Header.Set("Origin", tt.origin)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusNoContent, w.Code)
			assert.Equal(t, tt.want, w.Header().Get("Access-Control-Allow-Origin"))
			assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), "Authorization")
		})
	}
}

func TestCORS_PassesThroughNonPreflight(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CORS([]string{"*"}))
	r.POST("/x", func(c *gin.Context) { c.Status(http.StatusAccepted) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/x", nil))

	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Expose-Headers"), "X-Transaction-Id")
}
