package booking

import (
	"context"
	"time"

	"eliezerclean/models"
	"eliezerclean/services/mail"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// FinalStep is the review step; Confirm is only reachable from it.
const FinalStep = 4

// BookingSessionService defines the interface for managing a stateful
// booking wizard session.
type BookingSessionService interface {
	Initiate(ctx context.Context) (*models.BookingSession, error)
	Update(ctx context.Context, sessionID string, upd models.DraftUpdate) (*models.BookingSession, []models.FieldError, error)
	Advance(ctx context.Context, sessionID string) (*models.BookingSession, []models.FieldError, error)
	Back(ctx context.Context, sessionID string) (*models.BookingSession, error)
	Confirm(ctx context.Context, sessionID string) (*models.ConfirmationResponse, []models.FieldError, error)
	Cancel(ctx context.Context, sessionID string) error
}

// DefaultBookingSessionService implements BookingSessionService on top of a
// Redis session cache and a mail dispatcher.
type DefaultBookingSessionService struct {
	Cache      *redis.Client
	Dispatcher mail.Dispatcher
	Inbox      string
	TTL        time.Duration
	Logger     *zap.Logger
	Now        func() time.Time
}

func (s *DefaultBookingSessionService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultBookingSessionService) ttl() time.Duration {
	if s.TTL > 0 {
		return s.TTL
	}
	return 30 * time.Minute
}
