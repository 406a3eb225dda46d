package users

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"brainfeed/internal/database"
	"brainfeed/internal/model"
	"brainfeed/internal/service"
	"brainfeed/internal/store"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type structValidator struct{ v *validator.Validate }

func (s structValidator) Validate(i any) error { return s.v.Struct(i) }

func newCtx(body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = structValidator{v: validator.New()}
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestCreateUserHandler(t *testing.T) {
	t.Cleanup(func() {
		hashPassword = service.HashPassword
		createUser = store.CreateUser
	})

	body := `{"username":"writer5","password":"Secret123!","role":"writer","name":"Writer Five"}`

	// 角色不在白名單
	ctx, rec := newCtx(`{"username":"x","password":"Secret123!","role":"editor","name":"X"}`)
	require.NoError(t, CreateUserHandler(&database.FakeDB{})(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// 密碼太短
	ctx, rec = newCtx(`{"username":"x","password":"short","role":"writer","name":"X"}`)
	require.NoError(t, CreateUserHandler(&database.FakeDB{})(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// 成功：儲存的是雜湊而非明文
	hashPassword = func(password string) (string, error) {
		require.Equal(t, "Secret123!", password)
		return "hashed", nil
	}
	createUser = func(_ context.Context, _ database.DB, u *model.User) (*model.User, error) {
		require.Equal(t, "hashed", u.PasswordHash)
		require.Equal(t, model.RoleWriter, u.Role)
		u.ID = 5
		return u, nil
	}
	ctx, rec = newCtx(body)
	require.NoError(t, CreateUserHandler(&database.FakeDB{})(ctx))
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Contains(t, rec.Body.String(), `"id":5`)
	require.NotContains(t, rec.Body.String(), "hashed")

	// 帳號重複
	createUser = func(_ context.Context, _ database.DB, _ *model.User) (*model.User, error) {
		return nil, &pgconn.PgError{Code: "23505"}
	}
	ctx, rec = newCtx(body)
	require.NoError(t, CreateUserHandler(&database.FakeDB{})(ctx))
	require.Equal(t, http.StatusConflict, rec.Code)

	// 其他錯誤
	createUser = func(_ context.Context, _ database.DB, _ *model.User) (*model.User, error) {
		return nil, errors.New("down")
	}
	ctx, rec = newCtx(body)
	require.NoError(t, CreateUserHandler(&database.FakeDB{})(ctx))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
}
