package booking

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"eliezerclean/models"
	"eliezerclean/services/catalog"
	"eliezerclean/services/mail"

	"go.uber.org/zap"
)

// How long a confirm may keep its in-flight lock before it is considered
// abandoned and a manual retry becomes possible again.
const submitLockTTL = 30 * time.Second

// Upper bound on the dispatch call itself.
const dispatchTimeout = 10 * time.Second

// Confirm finalizes the booking: it re-validates the whole draft, dispatches
// the notification email and, on success, discards the session so the wizard
// restarts empty. On failure the session is left untouched for a manual
// retry. At most one dispatch is in flight per session.
func (s *DefaultBookingSessionService) Confirm(ctx context.Context, sessionID string) (*models.ConfirmationResponse, []models.FieldError, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}
	if session.Step != FinalStep {
		return nil, nil, ErrNotReadyToConfirm
	}

	if errs := ValidateDraft(session.Draft, s.now()); len(errs) > 0 {
		return nil, errs, nil
	}

	lockKey := "booking:submitting:" + sessionID
	locked, err := s.Cache.SetNX(ctx, lockKey, "1", submitLockTTL).Result()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to acquire submission lock: %w", err)
	}
	if !locked {
		return nil, nil, ErrSubmissionInFlight
	}
	defer s.Cache.Del(ctx, lockKey)

	sendCtx, cancel := context.WithTimeout(ctx, dispatchTimeout)
	defer cancel()
	if err := s.Dispatcher.Send(sendCtx, mail.TemplateBooking, s.Inbox, dispatchFields(session.Draft)); err != nil {
		s.Logger.Error("booking dispatch failed", zap.String("sessionId", sessionID), zap.Error(err))
		return nil, nil, fmt.Errorf("booking dispatch failed: %w", err)
	}

	// Dispatched: the draft leaves the system, the wizard restarts empty.
	if err := s.Cache.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		s.Logger.Warn("failed to clear confirmed session", zap.String("sessionId", sessionID), zap.Error(err))
	}

	d := session.Draft
	label := catalog.ServiceTypeLabel(d.ServiceType)
	s.Logger.Info("booking confirmed",
		zap.String("sessionId", sessionID),
		zap.String("serviceType", d.ServiceType),
		zap.String("date", d.Date))

	return &models.ConfirmationResponse{
		Message:           fmt.Sprintf(MsgBookingSuccess, label, d.Date, d.Time),
		ServiceLabel:      label,
		Date:              d.Date,
		Time:              d.Time,
		EstimatedPrice:    d.EstimatedPrice,
		EstimatedDuration: d.EstimatedDuration,
	}, nil, nil
}

// dispatchFields flattens the draft into the template field map.
func dispatchFields(d models.BookingDraft) map[string]string {
	labels := make([]string, 0, len(d.Extras))
	for _, e := range d.Extras {
		labels = append(labels, catalog.ExtraLabel(e))
	}

	fields := map[string]string{
		"service":            catalog.ServiceTypeLabel(d.ServiceType),
		"date":               d.Date,
		"time":               d.Time,
		"name":               d.Name,
		"phone":              d.Phone,
		"address":            d.Address,
		"notes":              d.Notes,
		"extras":             strings.Join(labels, ", "),
		"estimated_price":    strconv.FormatFloat(d.EstimatedPrice, 'f', -1, 64) + " RON",
		"estimated_duration": d.EstimatedDuration,
	}
	if d.ServiceType == models.ServiceCar {
		fields["car_category"] = catalog.CarCategoryLabel(d.CarCategory)
	} else {
		fields["size"] = strconv.Itoa(d.Size) + " m²"
	}
	return fields
}
