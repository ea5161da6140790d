package assistant

import (
	"context"
	"fmt"

	"eliezerclean/models"

	"go.uber.org/zap"
)

// DefaultAssistantService routes chats to Gemini when configured, falling
// back to the local responder otherwise. Conversation history is kept per
// client in the context store.
type DefaultAssistantService struct {
	Gemini *GeminiClient
	Local  *LocalResponder
	Store  *RedisContextStore
	Logger *zap.Logger
}

func (s *DefaultAssistantService) Status() models.AssistantStatus {
	status := models.AssistantStatus{Backend: "local"}
	if s.Gemini != nil {
		status.Backend = "gemini"
		status.GeminiConfigured = true
	}
	return status
}

// Chat answers the latest user message. The stored history plus the incoming
// messages form the conversation passed to the backend.
func (s *DefaultAssistantService) Chat(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error) {
	if len(req.Messages) == 0 {
		return nil, fmt.Errorf("chat request has no messages")
	}
	last := req.Messages[len(req.Messages)-1]
	if last.Role != "user" || last.Content == "" {
		return nil, fmt.Errorf("last chat message must be a non-empty user message")
	}

	history := &models.AssistantContext{}
	if s.Store != nil && req.ClientID != "" {
		stored, err := s.Store.Get(ctx, req.ClientID)
		if err != nil {
			s.Logger.Warn("failed to load chat context", zap.String("clientId", req.ClientID), zap.Error(err))
		} else {
			history = stored
		}
	}
	conversation := append(history.Messages, req.Messages...)

	reply, source, err := s.generate(ctx, conversation, last.Content)
	if err != nil {
		return nil, err
	}

	if s.Store != nil && req.ClientID != "" {
		history.Messages = append(conversation, models.ChatMessage{Role: "assistant", Content: reply})
		if err := s.Store.Set(ctx, req.ClientID, history); err != nil {
			s.Logger.Warn("failed to store chat context", zap.String("clientId", req.ClientID), zap.Error(err))
		}
	}

	return &models.ChatResponse{Reply: reply, Source: source}, nil
}

func (s *DefaultAssistantService) generate(ctx context.Context, conversation []models.ChatMessage, lastUserMessage string) (string, string, error) {
	if s.Gemini != nil {
		reply, err := s.Gemini.GenerateReply(ctx, conversation)
		if err == nil {
			return reply, "gemini", nil
		}
		// A hosted-model failure should not break the widget.
		s.Logger.Warn("gemini reply failed, using local responder", zap.Error(err))
	}
	reply, err := s.Local.Reply(ctx, lastUserMessage)
	if err != nil {
		return "", "", err
	}
	return reply, "local", nil
}
