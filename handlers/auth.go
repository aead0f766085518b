package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"dreamydestiny/config"
	"dreamydestiny/middleware"
	"dreamydestiny/utils"
)

// AuthHandler issues and clears the auth token cookie.
type AuthHandler struct{}

// NewAuthHandler creates the auth handler.
func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

// cookieSameSite matches the deployed frontend: cross-site cookies in
// production, strict otherwise.
func cookieSameSite() http.SameSite {
	if config.IsProduction() {
		return http.SameSiteNoneMode
	}
	return http.SameSiteStrictMode
}

// IssueTokenHandler handles POST /jwt. The request body is signed as-is
// into a token and set as an HTTP-only session cookie.
func (h *AuthHandler) IssueTokenHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var claims map[string]interface{}
	if err := c.ShouldBindJSON(&claims); err != nil {
		logger.Warn("Invalid token request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := utils.GenerateToken(claims)
	if err != nil {
		logger.Error("Failed to sign token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to sign token"})
		return
	}

	c.SetSameSite(cookieSameSite())
	c.SetCookie(middleware.TokenCookieName, token, 0, "/", "", config.IsProduction(), true)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// LogoutHandler handles POST /logout. Clearing is idempotent whether or
// not a cookie was present.
func (h *AuthHandler) LogoutHandler(c *gin.Context) {
	c.SetSameSite(cookieSameSite())
	c.SetCookie(middleware.TokenCookieName, "", -1, "/", "", config.IsProduction(), true)
	c.JSON(http.StatusOK, gin.H{"success": true})
}
