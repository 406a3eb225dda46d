// File: internal/api/user_response.go
package api

// swagger:model api.UserResponse
type UserResponse struct {
	ID       int    `json:"id" example:"1"`
	Username string `json:"username" example:"writer1"`
	Name     string `json:"name" example:"Writer One"`
	Role     string `json:"role" example:"writer"`
}
