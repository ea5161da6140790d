package assistant

import (
	"context"
	"fmt"
	"strings"

	"eliezerclean/models"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiClient passes the conversation through to the hosted model.
type GeminiClient struct {
	model *genai.GenerativeModel
}

func NewGeminiClient(apiKey string) (*GeminiClient, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel("models/gemini-1.5-pro")
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemPrompt)},
	}
	return &GeminiClient{model: model}, nil
}

// GenerateReply sends the conversation and returns the model's text.
func (g *GeminiClient) GenerateReply(ctx context.Context, messages []models.ChatMessage) (string, error) {
	var prompt strings.Builder
	for _, m := range messages {
		switch m.Role {
		case "user":
			prompt.WriteString("User: ")
		default:
			prompt.WriteString("Assistant: ")
		}
		prompt.WriteString(m.Content)
		prompt.WriteString("\n")
	}
	prompt.WriteString("Assistant:")

	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt.String()))
	if err != nil {
		return "", fmt.Errorf("gemini generate error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	return sb.String(), nil
}
