package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"eliezerclean/models"
	"eliezerclean/services/contact"
)

// ContactHandler serves the contact form endpoints.
type ContactHandler struct {
	Svc    contact.ContactService
	Logger *zap.Logger
}

func NewContactHandler(svc contact.ContactService, logger *zap.Logger) *ContactHandler {
	return &ContactHandler{Svc: svc, Logger: logger}
}

// SubmitContact handles POST /api/contact.
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var msg models.ContactMessage
	if err := c.ShouldBindJSON(&msg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "message": err.Error()})
		return
	}

	confirmation, fieldErrs, err := h.Svc.Submit(c.Request.Context(), msg)
	if err != nil {
		h.Logger.Error("SubmitContact: dispatch failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": contact.MsgContactFailure})
		return
	}
	if len(fieldErrs) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": fieldErrs})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": confirmation})
}

// GetContactSubjects handles GET /api/contact/subjects.
func (h *ContactHandler) GetContactSubjects(c *gin.Context) {
	c.JSON(http.StatusOK, contact.Subjects)
}
