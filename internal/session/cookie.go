// File: internal/session/cookie.go
package session

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// CookieName 為承載 session token 的 cookie 名稱
const CookieName = "session"

// WriteCookie 將 token 寫入回應的 session cookie
func WriteCookie(c echo.Context, token string, ttl int) {
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   ttl,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearCookie 要求瀏覽器丟棄 session cookie
func ClearCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ReadCookie 取出請求中的 session token，無 cookie 時回傳空字串
func ReadCookie(c echo.Context) string {
	cookie, err := c.Cookie(CookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}
