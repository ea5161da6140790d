package models

// ChatMessage is one turn of an assistant conversation.
type ChatMessage struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// ChatRequest is the payload coming from the frontend into /api/ai/chat.
type ChatRequest struct {
	ClientID string        `json:"clientId"`
	Messages []ChatMessage `json:"messages"`
}

// ChatResponse is what the handler returns to the frontend.
type ChatResponse struct {
	Reply  string `json:"reply"`
	Source string `json:"source"` // "gemini" or "local"
}

// AssistantStatus reports which chat backend is active.
type AssistantStatus struct {
	Backend          string `json:"backend"`
	GeminiConfigured bool   `json:"geminiConfigured"`
}

// AssistantContext is the per-client conversation history kept in cache.
type AssistantContext struct {
	Messages []ChatMessage `json:"messages"`
}
