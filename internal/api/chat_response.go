// File: internal/api/chat_response.go
package api

import "brainfeed/internal/model"

// swagger:model api.ChatResponse
type ChatResponse struct {
	ConversationID    int                   `json:"conversationId" example:"1"`
	SessionID         string                `json:"sessionId"`
	MessageID         int                   `json:"messageId" example:"12"`
	Response          string                `json:"response"`
	SuggestedArticles []model.ArticleDetail `json:"suggestedArticles"`
}
