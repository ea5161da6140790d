// Package mail is the dispatch collaborator: it delivers booking and contact
// submissions to the business inbox. The transport is opaque to callers.
package mail

import "context"

// Template IDs understood by dispatchers.
const (
	TemplateBooking = "booking_request"
	TemplateContact = "contact_message"
)

// Dispatcher sends a templated notification to a recipient.
// Implementations can be swapped (SendGrid, SMTP, stub) without changing callers.
type Dispatcher interface {
	Send(ctx context.Context, templateID, recipient string, fields map[string]string) error
}
