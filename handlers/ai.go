package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"eliezerclean/models"
	"eliezerclean/services/assistant"
)

// AIHandler serves the chat assistant endpoints.
type AIHandler struct {
	Svc    assistant.AssistantService
	Logger *zap.Logger
}

func NewAIHandler(svc assistant.AssistantService, logger *zap.Logger) *AIHandler {
	return &AIHandler{Svc: svc, Logger: logger}
}

// AIChatHandler handles POST /api/ai/chat.
func (h *AIHandler) AIChatHandler(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "message": err.Error()})
		return
	}

	resp, err := h.Svc.Chat(c.Request.Context(), req)
	if err != nil {
		h.Logger.Error("AIChatHandler: chat failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "chat failed", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// AIStatusHandler handles GET /api/ai/status.
func (h *AIHandler) AIStatusHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.Svc.Status())
}
