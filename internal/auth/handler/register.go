package handler

import (
	"errors"
	"net/http"

	"gemini-nlp/internal/auth/credentials"
	"gemini-nlp/internal/logger"

	"github.com/gin-gonic/gin"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates the account only. Unlike login it issues no session;
// the caller logs in afterwards.
func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	err := h.controller.Register(
		c.Request.Context(),
		req.Name,
		req.Email,
		req.Password,
	)

	switch {
	case err == nil:
		c.JSON(http.StatusCreated, gin.H{"status": "registered"})
	case errors.Is(err, credentials.ErrAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": "account already exists"})
	case errors.Is(err, credentials.ErrPasswordTooLong):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "password too long"})
	default:
		logger.Error("register failed", map[string]any{"error": err})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "registration error"})
	}
}
