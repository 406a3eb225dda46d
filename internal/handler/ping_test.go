package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"brainfeed/internal/database"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestPingHandler(t *testing.T) {
	e := echo.New()

	db := &database.FakeDB{PingFn: func(_ context.Context) error { return nil }}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, PingHandler(db)(e.NewContext(req, rec)))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "pong")

	db = &database.FakeDB{PingFn: func(_ context.Context) error { return errors.New("down") }}
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	rec = httptest.NewRecorder()
	require.NoError(t, PingHandler(db)(e.NewContext(req, rec)))
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
