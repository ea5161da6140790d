// Package contact handles contact form submissions.
package contact

import (
	"context"
	"fmt"
	"net/mail"
	"time"
	"unicode/utf8"

	"eliezerclean/models"
	dispatch "eliezerclean/services/mail"

	"go.uber.org/zap"
)

// Subject is one selectable contact form topic.
type Subject struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Subjects selectable on the contact form.
var Subjects = []Subject{
	{ID: "general", Label: "Informații Generale"},
	{ID: "booking", Label: "Programare Servicii"},
	{ID: "quote", Label: "Solicitare Ofertă de Preț"},
	{ID: "special", Label: "Cerere Specială"},
	{ID: "feedback", Label: "Feedback"},
	{ID: "other", Label: "Altele"},
}

const (
	MsgContactSuccess = "Mulțumim, %s! Mesajul dumneavoastră a fost trimis cu succes. Vă vom răspunde în cel mai scurt timp posibil."
	MsgContactFailure = "A apărut o eroare la trimiterea mesajului. Vă rugăm să încercați din nou sau să ne contactați telefonic."
)

// ContactService validates and dispatches contact messages.
type ContactService interface {
	Submit(ctx context.Context, msg models.ContactMessage) (string, []models.FieldError, error)
}

// DefaultContactService implements ContactService.
type DefaultContactService struct {
	Dispatcher dispatch.Dispatcher
	Inbox      string
	Logger     *zap.Logger
}

// Validate checks the contact form rules. Errors are values; they never block
// other fields.
func Validate(msg models.ContactMessage) []models.FieldError {
	var errs []models.FieldError
	if utf8.RuneCountInString(msg.Name) < 3 {
		errs = append(errs, models.FieldError{Field: "name", Message: "Numele trebuie să conțină cel puțin 3 caractere"})
	}
	if _, err := mail.ParseAddress(msg.Email); err != nil {
		errs = append(errs, models.FieldError{Field: "email", Message: "Adresa de email nu este validă"})
	}
	if subjectLabel(msg.Subject) == "" {
		errs = append(errs, models.FieldError{Field: "subject", Message: "Vă rugăm selectați un subiect"})
	}
	if utf8.RuneCountInString(msg.Message) < 10 {
		errs = append(errs, models.FieldError{Field: "message", Message: "Mesajul trebuie să conțină cel puțin 10 caractere"})
	}
	return errs
}

func subjectLabel(id string) string {
	for _, s := range Subjects {
		if s.ID == id {
			return s.Label
		}
	}
	return ""
}

// Submit validates the message and dispatches it to the business inbox.
// On success it returns the confirmation message for the sender.
func (s *DefaultContactService) Submit(ctx context.Context, msg models.ContactMessage) (string, []models.FieldError, error) {
	if errs := Validate(msg); len(errs) > 0 {
		return "", errs, nil
	}

	sendCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	fields := map[string]string{
		"from_name":  msg.Name,
		"from_email": msg.Email,
		"subject":    subjectLabel(msg.Subject),
		"message":    msg.Message,
	}
	if err := s.Dispatcher.Send(sendCtx, dispatch.TemplateContact, s.Inbox, fields); err != nil {
		s.Logger.Error("contact dispatch failed", zap.Error(err))
		return "", nil, fmt.Errorf("contact dispatch failed: %w", err)
	}

	return fmt.Sprintf(MsgContactSuccess, msg.Name), nil, nil
}
