// File: internal/handler/auth/logout.go
package auth

import (
	"net/http"

	"brainfeed/internal/session"

	"github.com/labstack/echo/v4"
)

// LogoutHandler 清除 session cookie
// token 本身無伺服器端狀態可註銷，登出即指示瀏覽器丟棄 cookie
// @Summary     登出使用者
// @Tags        auth
// @Produce     json
// @Success     200 {object} map[string]string
// @Router      /auth/logout [post]
func LogoutHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		session.ClearCookie(c)
		return c.JSON(http.StatusOK, map[string]string{"message": "logout successful"})
	}
}
