// File: internal/api/update_article_status_request.go
package api

// swagger:model api.UpdateArticleStatusRequest
type UpdateArticleStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=approved rejected" example:"approved"`
}
