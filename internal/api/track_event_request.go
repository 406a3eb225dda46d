// File: internal/api/track_event_request.go
package api

import "encoding/json"

// TrackEventRequest 上報一筆使用行為事件
// Metadata 為不透明 JSON，僅保證存取，不解讀內容
// swagger:model api.TrackEventRequest
type TrackEventRequest struct {
	SessionID  string          `json:"sessionId" validate:"required" example:"e9b1c7a0"`
	Event      string          `json:"event" validate:"required" example:"view"`
	ArticleID  *int            `json:"articleId,omitempty" example:"3"`
	CategoryID *int            `json:"categoryId,omitempty" example:"1"`
	Metadata   json.RawMessage `json:"metadata,omitempty"`
}
