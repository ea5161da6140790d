package mail

import (
	"context"

	"go.uber.org/zap"
)

// StubDispatcher logs instead of sending. Used when no API key is configured.
type StubDispatcher struct {
	logger *zap.Logger
}

func NewStubDispatcher(logger *zap.Logger) *StubDispatcher {
	return &StubDispatcher{logger: logger}
}

func (d *StubDispatcher) Send(ctx context.Context, templateID, recipient string, fields map[string]string) error {
	d.logger.Info("stub dispatcher: would send notification",
		zap.String("template", templateID), zap.String("recipient", recipient))
	return nil
}
