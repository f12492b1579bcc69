package handler

import (
	"context"
	"net/http"

	"gemini-nlp/internal/logger"
	"gemini-nlp/internal/middleware"
	"gemini-nlp/internal/session"

	"github.com/gin-gonic/gin"
)

// Controller is the auth surface the handlers drive.
type Controller interface {
	Register(ctx context.Context, name, email, password string) error
	Login(ctx context.Context, email, password, previousID string) (session.Session, error)
	Logout(ctx context.Context, sessionID string) error
}

type Handler struct {
	controller Controller
	auth       *middleware.AuthMiddleware
	cookies    session.Cookies
}

func NewHandler(
	controller Controller,
	auth *middleware.AuthMiddleware,
	cookies session.Cookies,
) *Handler {
	return &Handler{
		controller: controller,
		auth:       auth,
		cookies:    cookies,
	}
}

// RegisterRoutes mounts the JSON auth API under r.
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.POST("/register", h.Register)
	r.POST("/login", h.Login)
	r.POST("/logout", h.Logout)
	r.GET("/me", middleware.GinRequireAuth(h.auth), h.Me)
}

func (h *Handler) Logout(c *gin.Context) {
	// 1. Read session cookie (same pattern as auth middleware)
	if sessionID, ok := session.FromRequest(c.Request); ok {
		// 2. Delete session from store (best-effort)
		if err := h.controller.Logout(c.Request.Context(), sessionID); err != nil {
			logger.Error("logout failed", map[string]any{"error": err})
		}
	}

	// 3. Clear cookie (must pass options)
	h.cookies.Clear(c.Writer)

	// 4. Idempotent response
	c.Status(http.StatusNoContent)
}

func (h *Handler) Me(c *gin.Context) {
	st := middleware.StateFromContext(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{
		"email": st.Identity.Email,
		"name":  st.Identity.Name,
	})
}
