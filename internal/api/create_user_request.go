// File: internal/api/create_user_request.go
package api

// swagger:model api.CreateUserRequest
type CreateUserRequest struct {
	Username string `json:"username" validate:"required" example:"writer5"`
	Password string `json:"password" validate:"required,min=8" example:"Secret123!"`
	Role     string `json:"role" validate:"required,oneof=admin writer" example:"writer"`
	Name     string `json:"name" validate:"required" example:"Writer Five"`
}
