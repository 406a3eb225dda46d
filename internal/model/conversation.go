// File: internal/model/conversation.go
package model

import "time"

// 對話訊息角色
const (
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"
)

type Conversation struct {
	ID        int       `db:"id" json:"id"`
	SessionID string    `db:"session_id" json:"sessionId"`
	Title     string    `db:"title" json:"title"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

type ConversationMessage struct {
	ID             int       `db:"id" json:"id"`
	ConversationID int       `db:"conversation_id" json:"conversationId"`
	Role           string    `db:"role" json:"role"`
	Content        string    `db:"content" json:"content"`
	CreatedAt      time.Time `db:"created_at" json:"createdAt"`
}
