// File: internal/api/conversation_response.go
package api

import "brainfeed/internal/model"

// swagger:model api.ConversationResponse
type ConversationResponse struct {
	model.Conversation
	Messages []model.ConversationMessage `json:"messages"`
}
