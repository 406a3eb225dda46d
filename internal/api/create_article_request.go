// File: internal/api/create_article_request.go
package api

// swagger:model api.CreateArticleRequest
type CreateArticleRequest struct {
	Title      string `json:"title" validate:"required" example:"Understanding Quantum Computing"`
	Slug       string `json:"slug" validate:"required" example:"understanding-quantum-computing"`
	Excerpt    string `json:"excerpt" validate:"required" example:"A beginner-friendly introduction"`
	Content    string `json:"content" validate:"required"`
	CoverImage string `json:"coverImage" validate:"required" example:"https://example.com/cover.jpg"`
	CategoryID int    `json:"categoryId" validate:"required" example:"1"`
	AuthorID   int    `json:"authorId" validate:"required" example:"1"`
	ReadTime   int    `json:"readTime" example:"5"`
}
