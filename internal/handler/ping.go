// File: internal/handler/ping.go
package handler

import (
	"net/http"

	"brainfeed/internal/api"
	"brainfeed/internal/database"

	"github.com/labstack/echo/v4"
)

// PingHandler 健康檢查，確認資料庫連線仍然可用
// @Summary     健康檢查
// @Tags        system
// @Produce     json
// @Success     200 {object} map[string]string
// @Failure     503 {object} api.ErrorResponse
// @Router      /ping [get]
func PingHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := db.Ping(c.Request().Context()); err != nil {
			return c.JSON(http.StatusServiceUnavailable, api.ErrorResponse{Message: "database unavailable"})
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "pong"})
	}
}
