// File: internal/model/analytics.go
package model

import (
	"encoding/json"
	"time"
)

// AnalyticsEvent 紀錄一筆使用者行為事件
// Metadata 為不透明 JSON，僅保證存取，不解讀內容
type AnalyticsEvent struct {
	ID         int             `db:"id" json:"id"`
	SessionID  string          `db:"session_id" json:"sessionId"`
	ArticleID  *int            `db:"article_id" json:"articleId,omitempty"`
	CategoryID *int            `db:"category_id" json:"categoryId,omitempty"`
	Event      string          `db:"event" json:"event"`
	Metadata   json.RawMessage `db:"metadata" json:"metadata,omitempty"`
	CreatedAt  time.Time       `db:"created_at" json:"createdAt"`
}
