package handler

import (
	"errors"
	"net/http"

	"gemini-nlp/internal/auth/credentials"
	"gemini-nlp/internal/logger"
	"gemini-nlp/internal/session"

	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	previousID, _ := session.FromRequest(c.Request)
	sess, err := h.controller.Login(
		c.Request.Context(),
		req.Email,
		req.Password,
		previousID,
	)

	if errors.Is(err, credentials.ErrInvalidCredentials) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}
	if err != nil {
		logger.Error("login failed", map[string]any{"error": err})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "session error"})
		return
	}

	h.cookies.Issue(c.Writer, sess)

	c.JSON(http.StatusOK, gin.H{"status": "logged_in", "email": sess.Email})
}
