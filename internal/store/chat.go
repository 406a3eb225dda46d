// File: internal/store/chat.go
package store

import (
	"context"
	"fmt"

	"brainfeed/internal/database"
	"brainfeed/internal/model"
)

func GetConversationBySessionID(ctx context.Context, db database.DB, sessionID string) (*model.Conversation, error) {
	row := db.QueryRow(ctx,
		`SELECT id, session_id, title, created_at, updated_at
		 FROM conversations WHERE session_id = $1`,
		sessionID,
	)
	conv := &model.Conversation{}
	if err := row.Scan(&conv.ID, &conv.SessionID, &conv.Title, &conv.CreatedAt, &conv.UpdatedAt); err != nil {
		return nil, fmt.Errorf("GetConversationBySessionID: %w", err)
	}
	return conv, nil
}

func CreateConversation(ctx context.Context, db database.DB, sessionID string) (*model.Conversation, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO conversations (session_id)
		 VALUES ($1)
		 RETURNING id, session_id, title, created_at, updated_at`,
		sessionID,
	)
	conv := &model.Conversation{}
	if err := row.Scan(&conv.ID, &conv.SessionID, &conv.Title, &conv.CreatedAt, &conv.UpdatedAt); err != nil {
		return nil, fmt.Errorf("CreateConversation: %w", err)
	}
	return conv, nil
}

// AddConversationMessage 追加一則訊息並更新對話時間戳
func AddConversationMessage(ctx context.Context, db database.DB, conversationID int, role, content string) (*model.ConversationMessage, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO conversation_messages (conversation_id, role, content)
		 VALUES ($1, $2, $3)
		 RETURNING id, conversation_id, role, content, created_at`,
		conversationID,
		role,
		content,
	)
	m := &model.ConversationMessage{}
	if err := row.Scan(&m.ID, &m.ConversationID, &m.Role, &m.Content, &m.CreatedAt); err != nil {
		return nil, fmt.Errorf("AddConversationMessage: %w", err)
	}
	if _, err := db.Exec(ctx,
		`UPDATE conversations SET updated_at = now() WHERE id = $1`,
		conversationID,
	); err != nil {
		return nil, fmt.Errorf("AddConversationMessage: %w", err)
	}
	return m, nil
}

// ListConversationMessages 依建立順序列出對話的全部訊息
func ListConversationMessages(ctx context.Context, db database.DB, conversationID int) ([]model.ConversationMessage, error) {
	rows, err := db.Query(ctx,
		`SELECT id, conversation_id, role, content, created_at
		 FROM conversation_messages
		 WHERE conversation_id = $1
		 ORDER BY created_at, id`,
		conversationID,
	)
	if err != nil {
		return nil, fmt.Errorf("ListConversationMessages: %w", err)
	}
	defer rows.Close()

	var msgs []model.ConversationMessage
	for rows.Next() {
		var m model.ConversationMessage
		if err := rows.Scan(&m.ID, &m.ConversationID, &m.Role, &m.Content, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("ListConversationMessages: %w", err)
		}
		msgs = append(msgs, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListConversationMessages: %w", err)
	}
	return msgs, nil
}
