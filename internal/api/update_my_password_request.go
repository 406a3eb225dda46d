// File: internal/api/update_my_password_request.go
package api

// swagger:model api.UpdateMyPasswordRequest
type UpdateMyPasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required" example:"Secret123!"`
	NewPassword string `json:"new_password" validate:"required,min=8" example:"NewSecret456!"`
}
