// File: internal/handler/analytics/analytics.go
package analytics

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"brainfeed/internal/api"
	"brainfeed/internal/cache"
	"brainfeed/internal/database"
	"brainfeed/internal/model"
	"brainfeed/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	insertAnalyticsEvent = store.InsertAnalyticsEvent
	getDashboardStats    = store.GetDashboardStats
	timeNow              = time.Now
)

// 儀表板彙總查詢成本高，短期快取即可吸收重複讀取
const dashboardCacheTTL = 5 * time.Minute

// TrackHandler 收錄一筆使用行為事件
// @Summary     上報事件
// @Tags        analytics
// @Accept      json
// @Produce     json
// @Param       body body api.TrackEventRequest true "事件內容"
// @Success     201 {object} api.SuccessResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /analytics/track [post]
func TrackHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.TrackEventRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		ev := &model.AnalyticsEvent{
			SessionID:  req.SessionID,
			ArticleID:  req.ArticleID,
			CategoryID: req.CategoryID,
			Event:      req.Event,
			Metadata:   req.Metadata,
		}
		if err := insertAnalyticsEvent(c.Request().Context(), db, ev); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to record event"})
		}
		return c.JSON(http.StatusCreated, api.SuccessResponse{Success: true})
	}
}

// DashboardHandler 回傳指定期間的彙總統計，僅限管理員
// 結果以期間為 key 快取於 redis，快取失效時重算
// @Summary     儀表板統計
// @Tags        analytics
// @Produce     json
// @Param       days query int false "統計期間天數，預設 30"
// @Success     200 {object} store.DashboardStats
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /analytics/dashboard [get]
func DashboardHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		days := 30
		if v := c.QueryParam("days"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n <= 0 {
				return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid days"})
			}
			days = n
		}

		ctx := c.Request().Context()
		cacheKey := fmt.Sprintf("analytics:dashboard:%dd", days)

		if cached, err := rdb.Get(ctx, cacheKey).Result(); err == nil {
			var stats store.DashboardStats
			if err := json.Unmarshal([]byte(cached), &stats); err == nil {
				return c.JSON(http.StatusOK, &stats)
			}
		}

		since := timeNow().AddDate(0, 0, -days)
		stats, err := getDashboardStats(ctx, db, since)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to compute stats"})
		}

		if payload, err := json.Marshal(stats); err == nil {
			// 快取寫入失敗只影響下次的延遲，不回傳錯誤
			rdb.Set(ctx, cacheKey, payload, dashboardCacheTTL)
		}
		return c.JSON(http.StatusOK, stats)
	}
}
