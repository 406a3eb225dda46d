// File: internal/middleware/middleware.go
package middleware

import (
	"net/http"

	"brainfeed/internal/model"
	"brainfeed/internal/session"

	"github.com/labstack/echo/v4"
)

const ContextSessionKey = "session"

// CurrentSession 取出目前請求的 session，匿名請求回傳 nil
func CurrentSession(c echo.Context) *session.Session {
	s, _ := c.Get(ContextSessionKey).(*session.Session)
	return s
}

// WithSession 嘗試解析 session cookie 並放入 context
// token 缺席、格式錯誤或簽章不符都視同匿名，絕不升級為任何角色
func WithSession(sm *session.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if token := session.ReadCookie(c); token != "" {
				if s := sm.Parse(token); s != nil {
					c.Set(ContextSessionKey, s)
				}
			}
			return next(c)
		}
	}
}

// RequireAuth 要求請求帶有效 session，否則回 401
func RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if CurrentSession(c) == nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
		}
		return next(c)
	}
}

// RequireAdmin 僅允許 admin 角色，匿名回 401，角色不足回 403
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return RequireAuth(func(c echo.Context) error {
		if CurrentSession(c).Role != model.RoleAdmin {
			return echo.NewHTTPError(http.StatusForbidden, "forbidden")
		}
		return next(c)
	})
}

// RequireWriter 允許 writer 或 admin 角色
// admin 不隱含繼承 writer，允許的角色由各路由明確列舉
func RequireWriter(next echo.HandlerFunc) echo.HandlerFunc {
	return RequireAuth(func(c echo.Context) error {
		role := CurrentSession(c).Role
		if role != model.RoleWriter && role != model.RoleAdmin {
			return echo.NewHTTPError(http.StatusForbidden, "forbidden")
		}
		return next(c)
	})
}
