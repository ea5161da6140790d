package booking

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"eliezerclean/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// recordingDispatcher captures dispatched notifications and can be told to
// fail.
type recordingDispatcher struct {
	sent []sentMail
	fail error
}

type sentMail struct {
	templateID string
	recipient  string
	fields     map[string]string
}

func (d *recordingDispatcher) Send(ctx context.Context, templateID, recipient string, fields map[string]string) error {
	if d.fail != nil {
		return d.fail
	}
	d.sent = append(d.sent, sentMail{templateID: templateID, recipient: recipient, fields: fields})
	return nil
}

func newTestService(t *testing.T) (*DefaultBookingSessionService, *recordingDispatcher, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	dispatcher := &recordingDispatcher{}
	svc := &DefaultBookingSessionService{
		Cache:      client,
		Dispatcher: dispatcher,
		Inbox:      "inbox@example.com",
		Logger:     zap.NewNop(),
		Now:        func() time.Time { return fixedNow },
	}
	return svc, dispatcher, client
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func TestInitiate(t *testing.T) {
	svc, _, _ := newTestService(t)
	session, err := svc.Initiate(context.Background())
	require.NoError(t, err)

	assert.NotEmpty(t, session.SessionID)
	assert.Equal(t, 1, session.Step)
	assert.Equal(t, 50, session.Draft.Size)
	assert.Empty(t, session.Draft.ServiceType)
	assert.Equal(t, 0.0, session.Draft.EstimatedPrice)
}

func TestUpdateRecomputesEstimate(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()
	session, err := svc.Initiate(ctx)
	require.NoError(t, err)

	session, fieldErrs, err := svc.Update(ctx, session.SessionID, models.DraftUpdate{
		ServiceType: strPtr(models.ServiceHome),
		Size:        intPtr(80),
	})
	require.NoError(t, err)
	assert.Empty(t, fieldErrs)
	assert.Equal(t, 200.0, session.Draft.EstimatedPrice)
	assert.Equal(t, "3-5 ore", session.Draft.EstimatedDuration)

	extras := []string{"windows", "windows", "deep"}
	session, _, err = svc.Update(ctx, session.SessionID, models.DraftUpdate{Extras: &extras})
	require.NoError(t, err)
	assert.Equal(t, []string{"windows", "deep"}, session.Draft.Extras, "duplicates are dropped")
	assert.Equal(t, 300.0, session.Draft.EstimatedPrice)
}

func TestUpdateReportsAdvisoryErrors(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()
	session, err := svc.Initiate(ctx)
	require.NoError(t, err)

	// An invalid phone is stored anyway; the error is advisory.
	updated, fieldErrs, err := svc.Update(ctx, session.SessionID, models.DraftUpdate{Phone: strPtr("12345")})
	require.NoError(t, err)
	require.Len(t, fieldErrs, 1)
	assert.Equal(t, "phone", fieldErrs[0].Field)
	assert.Equal(t, "12345", updated.Draft.Phone)
}

func TestUpdateUnknownSession(t *testing.T) {
	svc, _, _ := newTestService(t)
	_, _, err := svc.Update(context.Background(), "missing", models.DraftUpdate{})
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestAdvanceGatedOnStepValidity(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()
	session, err := svc.Initiate(ctx)
	require.NoError(t, err)

	// No service selected, step 1 is incomplete.
	session, fieldErrs, err := svc.Advance(ctx, session.SessionID)
	require.NoError(t, err)
	require.NotEmpty(t, fieldErrs)
	assert.Equal(t, 1, session.Step)

	_, _, err = svc.Update(ctx, session.SessionID, models.DraftUpdate{
		ServiceType: strPtr(models.ServiceHome),
		Size:        intPtr(80),
	})
	require.NoError(t, err)

	session, fieldErrs, err = svc.Advance(ctx, session.SessionID)
	require.NoError(t, err)
	assert.Empty(t, fieldErrs)
	assert.Equal(t, 2, session.Step)
}

func TestBackNeverValidatesAndClamps(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()
	session, err := svc.Initiate(ctx)
	require.NoError(t, err)

	// Back at step 1 stays at step 1.
	session, err = svc.Back(ctx, session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, 1, session.Step)

	_, _, err = svc.Update(ctx, session.SessionID, models.DraftUpdate{
		ServiceType: strPtr(models.ServiceHome),
		Size:        intPtr(80),
	})
	require.NoError(t, err)
	session, _, err = svc.Advance(ctx, session.SessionID)
	require.NoError(t, err)
	require.Equal(t, 2, session.Step)

	// Enter a date, go back, the date survives.
	_, _, err = svc.Update(ctx, session.SessionID, models.DraftUpdate{Date: strPtr("2026-03-03")})
	require.NoError(t, err)
	session, err = svc.Back(ctx, session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, 1, session.Step)
	assert.Equal(t, "2026-03-03", session.Draft.Date)
}

// walkToReview fills a valid draft and advances a fresh session to step 4.
func walkToReview(t *testing.T, svc *DefaultBookingSessionService) string {
	t.Helper()
	ctx := context.Background()
	session, err := svc.Initiate(ctx)
	require.NoError(t, err)
	id := session.SessionID

	_, fieldErrs, err := svc.Update(ctx, id, models.DraftUpdate{
		ServiceType: strPtr(models.ServiceHome),
		Size:        intPtr(80),
	})
	require.NoError(t, err)
	require.Empty(t, fieldErrs)
	_, _, err = svc.Advance(ctx, id)
	require.NoError(t, err)

	_, fieldErrs, err = svc.Update(ctx, id, models.DraftUpdate{
		Date: strPtr("2026-03-03"),
		Time: strPtr("10:00"),
	})
	require.NoError(t, err)
	require.Empty(t, fieldErrs)
	_, _, err = svc.Advance(ctx, id)
	require.NoError(t, err)

	_, fieldErrs, err = svc.Update(ctx, id, models.DraftUpdate{
		Name:    strPtr("Ana Pop"),
		Phone:   strPtr("0755123456"),
		Address: strPtr("Str. Exemplu 1"),
	})
	require.NoError(t, err)
	require.Empty(t, fieldErrs)
	session, fieldErrs, err = svc.Advance(ctx, id)
	require.NoError(t, err)
	require.Empty(t, fieldErrs)
	require.Equal(t, FinalStep, session.Step)
	return id
}

func TestConfirmHappyPath(t *testing.T) {
	svc, dispatcher, _ := newTestService(t)
	ctx := context.Background()
	id := walkToReview(t, svc)

	resp, fieldErrs, err := svc.Confirm(ctx, id)
	require.NoError(t, err)
	require.Empty(t, fieldErrs)

	assert.Contains(t, resp.Message, "Curățenie Casă/Apartament")
	assert.Contains(t, resp.Message, "2026-03-03")
	assert.Contains(t, resp.Message, "10:00")
	assert.Equal(t, 200.0, resp.EstimatedPrice)
	assert.Equal(t, "3-5 ore", resp.EstimatedDuration)

	require.Len(t, dispatcher.sent, 1)
	mail := dispatcher.sent[0]
	assert.Equal(t, "inbox@example.com", mail.recipient)
	assert.Equal(t, "Ana Pop", mail.fields["name"])
	assert.Equal(t, "80 m²", mail.fields["size"])
	assert.True(t, strings.HasPrefix(mail.fields["estimated_price"], "200"))

	// A confirmed session is gone; the wizard restarts from scratch.
	_, _, err = svc.Update(ctx, id, models.DraftUpdate{})
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestConfirmRequiresReviewStep(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()
	session, err := svc.Initiate(ctx)
	require.NoError(t, err)

	_, _, err = svc.Confirm(ctx, session.SessionID)
	assert.ErrorIs(t, err, ErrNotReadyToConfirm)
}

func TestConfirmFailurePreservesDraft(t *testing.T) {
	svc, dispatcher, _ := newTestService(t)
	ctx := context.Background()
	id := walkToReview(t, svc)

	dispatcher.fail = errors.New("smtp down")
	_, _, err := svc.Confirm(ctx, id)
	require.Error(t, err)

	// The draft is untouched, so a manual retry can succeed.
	session, _, err := svc.Update(ctx, id, models.DraftUpdate{})
	require.NoError(t, err)
	assert.Equal(t, FinalStep, session.Step)
	assert.Equal(t, "Ana Pop", session.Draft.Name)

	dispatcher.fail = nil
	resp, fieldErrs, err := svc.Confirm(ctx, id)
	require.NoError(t, err)
	require.Empty(t, fieldErrs)
	assert.NotEmpty(t, resp.Message)
}

func TestConfirmRejectsConcurrentSubmission(t *testing.T) {
	svc, _, client := newTestService(t)
	ctx := context.Background()
	id := walkToReview(t, svc)

	// Simulate an in-flight submission holding the lock.
	require.NoError(t, client.Set(ctx, "booking:submitting:"+id, "1", time.Minute).Err())

	_, _, err := svc.Confirm(ctx, id)
	assert.ErrorIs(t, err, ErrSubmissionInFlight)
}

func TestCancel(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()
	session, err := svc.Initiate(ctx)
	require.NoError(t, err)

	require.NoError(t, svc.Cancel(ctx, session.SessionID))
	_, _, err = svc.Update(ctx, session.SessionID, models.DraftUpdate{})
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
