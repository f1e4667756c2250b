package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"keyblogger/internal/auth"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func protectedServer() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/whoami", AuthRequired(), func(c *gin.Context) {
		username, _ := CurrentUser(c)
		c.String(http.StatusOK, username)
	})
	return r
}

func TestAuthRequired(t *testing.T) {
	r := protectedServer()
	token, err := auth.CreateToken("alice")
	require.NoError(t, err)

	tests := []struct {
		name       string
		authHeader string
		query      string
		wantCode   int
		wantBody   string
	}{
		{"bearer token", "Bearer " + token, "", http.StatusOK, "alice"},
		{"legacy query param", "", "?_token=" + token, http.StatusOK, "alice"},
		{"missing token", "", "", http.StatusUnauthorized, ""},
		{"garbage token", "Bearer garbage", "", http.StatusUnauthorized, ""},
		{"wrong scheme", "Basic " + token, "", http.StatusUnauthorized, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami"+tt.query, nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantCode, w.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, w.Body.String())
			}
		})
	}
}
