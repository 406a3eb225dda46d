// File: internal/handler/auth/login.go
package auth

import (
	"net/http"

	"brainfeed/internal/api"
	"brainfeed/internal/database"
	"brainfeed/internal/service"
	"brainfeed/internal/session"
	"brainfeed/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	getUserByUsername = store.GetUserByUsername
	authenticateUser  = service.AuthenticateUser
)

// LoginHandler 驗證帳密並發放簽章 session cookie
// @Summary     登入使用者
// @Description 使用 Username 與 Password 進行驗證，成功後寫入 session cookie
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body api.LoginRequest true "登入資料"
// @Success     200 {object} api.LoginResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /auth/login [post]
func LoginHandler(db database.DB, sm *session.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		// 查無帳號與密碼錯誤回同一訊息
		user, err := getUserByUsername(c.Request().Context(), db, req.Username)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid credentials"})
		}
		authUser, err := authenticateUser(*user, req.Password)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid credentials"})
		}

		token, err := sm.Create(session.Session{
			UserID:   authUser.ID,
			Username: authUser.Username,
			Role:     authUser.Role,
		})
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to create session"})
		}
		session.WriteCookie(c, token, int(sm.TTL().Seconds()))

		return c.JSON(http.StatusOK, api.LoginResponse{User: api.UserResponse{
			ID:       authUser.ID,
			Username: authUser.Username,
			Name:     authUser.Name,
			Role:     authUser.Role,
		}})
	}
}
