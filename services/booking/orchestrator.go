package booking

import (
	"context"
	"encoding/json"
	"fmt"

	"eliezerclean/models"
	"eliezerclean/services/pricing"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Initiate creates a new wizard session at step 1 with an empty draft.
func (s *DefaultBookingSessionService) Initiate(ctx context.Context) (*models.BookingSession, error) {
	session := models.BookingSession{
		SessionID: uuid.New().String(),
		Step:      1,
		Draft: models.BookingDraft{
			Size:   50,
			Extras: []string{},
		},
		CreatedAt: s.now(),
	}
	pricing.Reprice(&session.Draft)

	if err := s.saveSession(ctx, &session); err != nil {
		return nil, err
	}
	s.Logger.Info("booking session initiated", zap.String("sessionId", session.SessionID))
	return &session, nil
}

// Update applies a partial draft update and recomputes the estimate. Rule
// failures on the touched fields are reported back but never reject the
// edit; only step transitions are gated on validity.
func (s *DefaultBookingSessionService) Update(ctx context.Context, sessionID string, upd models.DraftUpdate) (*models.BookingSession, []models.FieldError, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}

	applyUpdate(&session.Draft, upd)
	pricing.Reprice(&session.Draft)

	if err := s.saveSession(ctx, session); err != nil {
		return nil, nil, err
	}
	return session, validateTouched(session.Draft, upd, s.now()), nil
}

// Advance moves to the next step when every field required by the current
// step is valid; otherwise the state is left unchanged and the field errors
// are returned. Clamped at the review step.
func (s *DefaultBookingSessionService) Advance(ctx context.Context, sessionID string) (*models.BookingSession, []models.FieldError, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}
	if session.Step >= FinalStep {
		return session, nil, nil
	}

	if errs := ValidateStep(session.Draft, session.Step, s.now()); len(errs) > 0 {
		return session, errs, nil
	}

	session.Step++
	if err := s.saveSession(ctx, session); err != nil {
		return nil, nil, err
	}
	return session, nil, nil
}

// Back moves to the previous step. It never validates and never clears data
// entered in the step being left. Clamped at step 1.
func (s *DefaultBookingSessionService) Back(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step > 1 {
		session.Step--
		if err := s.saveSession(ctx, session); err != nil {
			return nil, err
		}
	}
	return session, nil
}

// Cancel discards the session.
func (s *DefaultBookingSessionService) Cancel(ctx context.Context, sessionID string) error {
	if err := s.Cache.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to delete booking session: %w", err)
	}
	return nil
}

func sessionKey(sessionID string) string {
	return "booking:session:" + sessionID
}

func (s *DefaultBookingSessionService) loadSession(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	if sessionID == "" {
		return nil, ErrSessionNotFound
	}
	data, err := s.Cache.Get(ctx, sessionKey(sessionID)).Result()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load booking session: %w", err)
	}
	var session models.BookingSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse booking session: %w", err)
	}
	return &session, nil
}

func (s *DefaultBookingSessionService) saveSession(ctx context.Context, session *models.BookingSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal booking session: %w", err)
	}
	if err := s.Cache.Set(ctx, sessionKey(session.SessionID), data, s.ttl()).Err(); err != nil {
		return fmt.Errorf("failed to store booking session: %w", err)
	}
	return nil
}

// applyUpdate copies the non-nil update fields onto the draft. Extras are
// deduplicated; order is irrelevant to pricing.
func applyUpdate(d *models.BookingDraft, upd models.DraftUpdate) {
	if upd.ServiceType != nil {
		d.ServiceType = *upd.ServiceType
	}
	if upd.Size != nil {
		d.Size = *upd.Size
	}
	if upd.CarCategory != nil {
		d.CarCategory = *upd.CarCategory
	}
	if upd.Extras != nil {
		seen := make(map[string]bool, len(*upd.Extras))
		extras := make([]string, 0, len(*upd.Extras))
		for _, e := range *upd.Extras {
			if !seen[e] {
				seen[e] = true
				extras = append(extras, e)
			}
		}
		d.Extras = extras
	}
	if upd.Date != nil {
		d.Date = *upd.Date
	}
	if upd.Time != nil {
		d.Time = *upd.Time
	}
	if upd.Name != nil {
		d.Name = *upd.Name
	}
	if upd.Phone != nil {
		d.Phone = *upd.Phone
	}
	if upd.Address != nil {
		d.Address = *upd.Address
	}
	if upd.Notes != nil {
		d.Notes = *upd.Notes
	}
}
