// File: internal/api/chat_request.go
package api

// swagger:model api.ChatRequest
type ChatRequest struct {
	// 省略時由伺服器產生新的對話 session
	SessionID string `json:"sessionId" example:"e9b1c7a0-5c9f-4c2f-9a68-2f0c9e3d4b5a"`
	Message   string `json:"message" validate:"required" example:"What is quantum computing?"`
}
