package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docs-admin/pkg/config"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	config.SiteRoot = t.TempDir()
	config.JWTSecret = "test-secret"
	config.AdminUsername = "admin"
	config.AdminPassword = "hunter2"

	return NewRouter()
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func loginToken(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/admin/login", "", gin.H{
		"username": "admin",
		"password": "hunter2",
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestLoginIssuesToken(t *testing.T) {
	r := setupRouter(t)

	token := loginToken(t, r)

	w := doJSON(t, r, http.MethodGet, "/api/admin/verify", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, true, body["valid"])
	user := body["user"].(map[string]interface{})
	assert.Equal(t, "admin", user["username"])
}

func TestLoginWrongPassword(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/admin/login", "", gin.H{
		"username": "admin",
		"password": "wrong",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "Invalid credentials", body["error"])
	assert.NotContains(t, body, "token")
}

func TestProtectedRouteWithoutToken(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/admin/docs", "", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Access token required", decodeBody(t, w)["error"])
}

func TestProtectedRouteWithGarbageToken(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/admin/docs", "not-a-jwt", nil)
	require.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Invalid or expired token", decodeBody(t, w)["error"])
}

func TestTokenSignedWithOtherSecretRejected(t *testing.T) {
	r := setupRouter(t)
	token := loginToken(t, r)

	config.JWTSecret = "rotated-secret"
	w := doJSON(t, r, http.MethodGet, "/api/admin/verify", token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestPublicNavigationNeedsNoToken(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/admin/public/navigation", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Contains(t, body, "navbar")
}
