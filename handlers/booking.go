package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"eliezerclean/models"
	"eliezerclean/services/booking"
)

// BookingHandler exposes the booking wizard session operations.
type BookingHandler struct {
	Svc    booking.BookingSessionService
	Logger *zap.Logger
}

func NewBookingHandler(svc booking.BookingSessionService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Svc: svc, Logger: logger}
}

// InitiateSession handles POST /api/booking/session.
func (h *BookingHandler) InitiateSession(c *gin.Context) {
	session, err := h.Svc.Initiate(c.Request.Context())
	if err != nil {
		h.Logger.Error("InitiateSession: failed to create session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create booking session"})
		return
	}
	c.JSON(http.StatusOK, session)
}

// UpdateSession handles PATCH /api/booking/session/:sessionID.
// Validation errors for the touched fields are advisory and returned
// alongside the updated session.
func (h *BookingHandler) UpdateSession(c *gin.Context) {
	sessionID := c.Param("sessionID")
	var upd models.DraftUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "message": err.Error()})
		return
	}

	session, fieldErrs, err := h.Svc.Update(c.Request.Context(), sessionID, upd)
	if err != nil {
		h.sessionError(c, "UpdateSession", sessionID, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session, "errors": fieldErrs})
}

// AdvanceSession handles POST /api/booking/session/:sessionID/advance.
func (h *BookingHandler) AdvanceSession(c *gin.Context) {
	sessionID := c.Param("sessionID")
	session, fieldErrs, err := h.Svc.Advance(c.Request.Context(), sessionID)
	if err != nil {
		h.sessionError(c, "AdvanceSession", sessionID, err)
		return
	}
	if len(fieldErrs) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": fieldErrs})
		return
	}
	c.JSON(http.StatusOK, session)
}

// BackSession handles POST /api/booking/session/:sessionID/back.
func (h *BookingHandler) BackSession(c *gin.Context) {
	sessionID := c.Param("sessionID")
	session, err := h.Svc.Back(c.Request.Context(), sessionID)
	if err != nil {
		h.sessionError(c, "BackSession", sessionID, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// ConfirmBooking handles POST /api/booking/session/:sessionID/confirm.
func (h *BookingHandler) ConfirmBooking(c *gin.Context) {
	sessionID := c.Param("sessionID")
	resp, fieldErrs, err := h.Svc.Confirm(c.Request.Context(), sessionID)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrSessionNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "booking session not found or expired"})
		case errors.Is(err, booking.ErrNotReadyToConfirm):
			c.JSON(http.StatusConflict, gin.H{"error": "booking is not at the review step"})
		case errors.Is(err, booking.ErrSubmissionInFlight):
			c.JSON(http.StatusConflict, gin.H{"error": "a submission is already in progress"})
		default:
			h.Logger.Error("ConfirmBooking: dispatch failed", zap.String("sessionId", sessionID), zap.Error(err))
			c.JSON(http.StatusBadGateway, gin.H{"error": booking.MsgBookingFailure})
		}
		return
	}
	if len(fieldErrs) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": fieldErrs})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CancelSession handles DELETE /api/booking/session/:sessionID.
func (h *BookingHandler) CancelSession(c *gin.Context) {
	sessionID := c.Param("sessionID")
	if err := h.Svc.Cancel(c.Request.Context(), sessionID); err != nil {
		h.sessionError(c, "CancelSession", sessionID, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}

func (h *BookingHandler) sessionError(c *gin.Context, op, sessionID string, err error) {
	if errors.Is(err, booking.ErrSessionNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "booking session not found or expired"})
		return
	}
	h.Logger.Error(op+": unexpected failure", zap.String("sessionId", sessionID), zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}
