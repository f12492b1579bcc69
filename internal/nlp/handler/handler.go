package handler

import (
	"context"
	"errors"
	"net/http"

	"gemini-nlp/internal/logger"
	"gemini-nlp/internal/nlp"

	"github.com/gin-gonic/gin"
)

// Runner executes a text operation.
type Runner interface {
	Run(ctx context.Context, op nlp.Operation, text string) (nlp.Result, error)
}

type Handler struct {
	runner Runner
}

func NewHandler(runner Runner) *Handler {
	return &Handler{runner: runner}
}

type operationRequest struct {
	Text string `json:"text"`
}

// RegisterRoutes mounts the operation API. Callers guard r with auth.
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.POST("/operations/:op", h.Operate)
}

func (h *Handler) Operate(c *gin.Context) {
	op, ok := nlp.ParseOperation(c.Param("op"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown operation"})
		return
	}

	var req operationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	res, err := h.runner.Run(c.Request.Context(), op, req.Text)

	var warn *nlp.ValidationWarning
	var genErr *nlp.GenerationError
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{
			"operation": res.Operation.String(),
			"text":      res.Text,
		})
	case errors.As(err, &warn):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "validation",
			"message": warn.Message,
		})
	case errors.As(err, &genErr):
		logger.Error("text generation failed", map[string]any{
			"operation": op.String(),
			"error":     genErr.Err,
		})
		c.JSON(http.StatusBadGateway, gin.H{"error": "generation failed"})
	default:
		logger.Error("operation failed", map[string]any{"operation": op.String(), "error": err})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
