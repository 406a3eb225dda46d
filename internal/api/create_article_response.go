// File: internal/api/create_article_response.go
package api

// swagger:model api.CreateArticleResponse
type CreateArticleResponse struct {
	ID      int    `json:"id" example:"7"`
	Message string `json:"message" example:"article created, waiting for approval"`
}
