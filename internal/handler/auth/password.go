// File: internal/handler/auth/password.go
package auth

import (
	"net/http"

	"brainfeed/internal/api"
	"brainfeed/internal/database"
	"brainfeed/internal/middleware"
	"brainfeed/internal/service"
	"brainfeed/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	hashPassword       = service.HashPassword
	updateUserPassword = store.UpdateUserPassword
)

// UpdateMyPasswordHandler 驗證舊密碼並更新為新密碼
// @Summary     更新自己的密碼
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body api.UpdateMyPasswordRequest true "密碼資料"
// @Success     204 "No Content"
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /auth/password [patch]
func UpdateMyPasswordHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.UpdateMyPasswordRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		s := middleware.CurrentSession(c)
		if s == nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "unauthorized"})
		}

		user, err := getUserByID(c.Request().Context(), db, s.UserID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		if _, err := authenticateUser(*user, req.OldPassword); err != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid current password"})
		}

		hash, err := hashPassword(req.NewPassword)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to hash new password"})
		}
		if err := updateUserPassword(c.Request().Context(), db, s.UserID, hash); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.NoContent(http.StatusNoContent)
	}
}
