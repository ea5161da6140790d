package booking

import "errors"

var (
	// ErrSessionNotFound is returned when a session ID is unknown or expired.
	ErrSessionNotFound = errors.New("booking session not found or expired")
	// ErrSubmissionInFlight is returned when a confirm is already pending
	// for the session. At most one dispatch may be in flight per draft.
	ErrSubmissionInFlight = errors.New("a submission is already in progress for this session")
	// ErrNotReadyToConfirm is returned when Confirm is called before the
	// review step.
	ErrNotReadyToConfirm = errors.New("booking can only be confirmed from the final step")
)

// User-facing Romanian messages, matching the site copy.
const (
	MsgBookingSuccess = "Rezervarea pentru %s în data de %s la ora %s a fost trimisă cu succes! Vă vom contacta în curând pentru confirmare."
	MsgBookingFailure = "A apărut o eroare la trimiterea rezervării. Vă rugăm să încercați din nou sau să ne contactați telefonic."
)
