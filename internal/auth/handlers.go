package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	provider *LocalProvider
}

func NewHandlers(provider *LocalProvider) *Handlers {
	return &Handlers{provider: provider}
}

func (h *Handlers) Login(c *gin.Context) {
	var creds Credentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request format"})
		return
	}

	user, err := h.provider.Authenticate(creds)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication failed"})
		return
	}

	tokens, err := h.provider.GenerateTokens(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "token generation failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":   user,
		"tokens": tokens,
	})
}

func (h *Handlers) Refresh(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refresh_token" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request format"})
		return
	}

	tokens, err := h.provider.RefreshToken(req.RefreshToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "token refresh failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"tokens": tokens})
}
