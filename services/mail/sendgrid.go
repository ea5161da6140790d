package mail

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"
)

// SendGridDispatcher sends notifications via the SendGrid API.
type SendGridDispatcher struct {
	client    *sendgrid.Client
	fromEmail string
	fromName  string
	logger    *zap.Logger
}

// SendGridConfig holds configuration for SendGrid.
type SendGridConfig struct {
	APIKey    string
	FromEmail string
	FromName  string
}

// NewSendGridDispatcher creates a new SendGrid dispatcher, or nil when no
// API key is configured.
func NewSendGridDispatcher(cfg SendGridConfig, logger *zap.Logger) *SendGridDispatcher {
	if cfg.APIKey == "" {
		return nil
	}
	if cfg.FromName == "" {
		cfg.FromName = "EliezerCleaning"
	}
	return &SendGridDispatcher{
		client:    sendgrid.NewSendClient(cfg.APIKey),
		fromEmail: cfg.FromEmail,
		fromName:  cfg.FromName,
		logger:    logger,
	}
}

func subjectFor(templateID string) string {
	switch templateID {
	case TemplateBooking:
		return "Cerere nouă de rezervare"
	case TemplateContact:
		return "Mesaj nou de contact"
	default:
		return "Notificare EliezerCleaning"
	}
}

// Send renders the template fields into a plain-text body and mails it.
func (d *SendGridDispatcher) Send(ctx context.Context, templateID, recipient string, fields map[string]string) error {
	from := sgmail.NewEmail(d.fromName, d.fromEmail)
	to := sgmail.NewEmail("", recipient)

	// Deterministic body: fields rendered in key order.
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var body strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&body, "%s: %s\n", k, fields[k])
	}

	message := sgmail.NewSingleEmail(from, subjectFor(templateID), to, body.String(), body.String())
	response, err := d.client.SendWithContext(ctx, message)
	if err != nil {
		d.logger.Error("sendgrid send failed", zap.Error(err), zap.String("template", templateID))
		return fmt.Errorf("mail: sendgrid send failed: %w", err)
	}
	if response.StatusCode >= 400 {
		d.logger.Error("sendgrid returned error status",
			zap.Int("status", response.StatusCode), zap.String("template", templateID))
		return fmt.Errorf("mail: sendgrid returned status %d", response.StatusCode)
	}

	d.logger.Info("notification dispatched",
		zap.String("template", templateID), zap.Int("status", response.StatusCode))
	return nil
}
