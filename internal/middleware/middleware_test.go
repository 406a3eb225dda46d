package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"brainfeed/internal/model"
	"brainfeed/internal/session"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func newContext(token string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: session.CookieName, Value: token})
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func withSession(t *testing.T, sm *session.Manager, token string, next echo.HandlerFunc) error {
	t.Helper()
	ctx, _ := newContext(token)
	return WithSession(sm)(next)(ctx)
}

func TestWithSession(t *testing.T) {
	sm := session.NewManager([]byte("s"), time.Hour)

	// 無 cookie：匿名
	err := withSession(t, sm, "", func(c echo.Context) error {
		require.Nil(t, CurrentSession(c))
		return nil
	})
	require.NoError(t, err)

	// 無效 token：匿名而非錯誤
	err = withSession(t, sm, "garbage.token", func(c echo.Context) error {
		require.Nil(t, CurrentSession(c))
		return nil
	})
	require.NoError(t, err)

	// 有效 token：注入 session
	tok, err := sm.Create(session.Session{UserID: 5, Username: "writer1", Role: model.RoleWriter})
	require.NoError(t, err)
	err = withSession(t, sm, tok, func(c echo.Context) error {
		s := CurrentSession(c)
		require.NotNil(t, s)
		require.Equal(t, 5, s.UserID)
		require.Equal(t, model.RoleWriter, s.Role)
		return nil
	})
	require.NoError(t, err)
}

func runGuard(guard func(echo.HandlerFunc) echo.HandlerFunc, s *session.Session) (bool, error) {
	ctx, _ := newContext("")
	if s != nil {
		ctx.Set(ContextSessionKey, s)
	}
	called := false
	err := guard(func(echo.Context) error { called = true; return nil })(ctx)
	return called, err
}

func TestRequireAuth(t *testing.T) {
	// 匿名：401
	called, err := runGuard(RequireAuth, nil)
	require.False(t, called)
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	require.Equal(t, http.StatusUnauthorized, he.Code)

	// 任一角色皆可
	called, err = runGuard(RequireAuth, &session.Session{UserID: 1, Role: model.RoleWriter})
	require.True(t, called)
	require.NoError(t, err)
}

func TestRequireAdmin(t *testing.T) {
	// 匿名一律 401，而非 403
	called, err := runGuard(RequireAdmin, nil)
	require.False(t, called)
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	require.Equal(t, http.StatusUnauthorized, he.Code)

	// writer：403
	called, err = runGuard(RequireAdmin, &session.Session{UserID: 2, Role: model.RoleWriter})
	require.False(t, called)
	require.ErrorAs(t, err, &he)
	require.Equal(t, http.StatusForbidden, he.Code)

	// admin：放行
	called, err = runGuard(RequireAdmin, &session.Session{UserID: 1, Role: model.RoleAdmin})
	require.True(t, called)
	require.NoError(t, err)
}

func TestRequireWriter(t *testing.T) {
	var he *echo.HTTPError

	// 匿名：401
	called, err := runGuard(RequireWriter, nil)
	require.False(t, called)
	require.ErrorAs(t, err, &he)
	require.Equal(t, http.StatusUnauthorized, he.Code)

	// 未知角色：403
	called, err = runGuard(RequireWriter, &session.Session{UserID: 9, Role: "reader"})
	require.False(t, called)
	require.ErrorAs(t, err, &he)
	require.Equal(t, http.StatusForbidden, he.Code)

	// writer 與 admin 都放行
	for _, role := range []string{model.RoleWriter, model.RoleAdmin} {
		called, err = runGuard(RequireWriter, &session.Session{UserID: 3, Role: role})
		require.True(t, called, role)
		require.NoError(t, err)
	}
}
