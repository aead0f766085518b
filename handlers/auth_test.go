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

	"dreamydestiny/config"
	"dreamydestiny/middleware"
)

func setupAuthRouter(t *testing.T) http.Handler {
	t.Helper()
	gin.SetMode(gin.TestMode)
	config.AppConfig = config.Config{JWTSecret: "test-secret", Env: "test"}

	h := NewAuthHandler()
	r := gin.New()
	r.POST("/jwt", h.IssueTokenHandler)
	r.POST("/logout", h.LogoutHandler)
	// CookieAuth is not mounted on any data route; exercise it directly.
	r.GET("/whoami", middleware.CookieAuth(), func(c *gin.Context) {
		claims, _ := c.Get(middleware.ClaimsContextKey)
		c.JSON(http.StatusOK, claims)
	})
	return r
}

func issueToken(t *testing.T, r http.Handler, claims map[string]interface{}) *http.Cookie {
	t.Helper()
	payload, err := json.Marshal(claims)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/jwt", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())

	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == middleware.TokenCookieName {
			return cookie
		}
	}
	t.Fatal("token cookie not set")
	return nil
}

func TestIssueToken_SetsHTTPOnlyCookie(t *testing.T) {
	r := setupAuthRouter(t)

	cookie := issueToken(t, r, map[string]interface{}{"email": "a@b.com"})
	assert.True(t, cookie.HttpOnly)
	assert.NotEmpty(t, cookie.Value)
	// Session cookie: no Max-Age set on issuance.
	assert.Equal(t, 0, cookie.MaxAge)
}

func TestCookieAuth_AuthorizesIssuedToken(t *testing.T) {
	r := setupAuthRouter(t)
	cookie := issueToken(t, r, map[string]interface{}{"email": "a@b.com"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(cookie)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var claims map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &claims))
	assert.Equal(t, "a@b.com", claims["email"])
}

func TestCookieAuth_MissingCookie(t *testing.T) {
	r := setupAuthRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"message":"not authorized"}`, w.Body.String())
}

func TestCookieAuth_TamperedToken(t *testing.T) {
	r := setupAuthRouter(t)
	cookie := issueToken(t, r, map[string]interface{}{"email": "a@b.com"})
	cookie.Value += "tampered"

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(cookie)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogout_ClearsCookie(t *testing.T) {
	r := setupAuthRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/logout", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())

	var cleared *http.Cookie
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == middleware.TokenCookieName {
			cleared = cookie
		}
	}
	require.NotNil(t, cleared)
	assert.Empty(t, cleared.Value)
	assert.Negative(t, cleared.MaxAge)
}

func TestLogout_ClearedCookieNoLongerAuthorizes(t *testing.T) {
	r := setupAuthRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/logout", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var cleared *http.Cookie
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == middleware.TokenCookieName {
			cleared = cookie
		}
	}
	require.NotNil(t, cleared)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(cleared)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
