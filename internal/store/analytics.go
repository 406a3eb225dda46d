// File: internal/store/analytics.go
package store

import (
	"context"
	"fmt"
	"time"

	"brainfeed/internal/database"
	"brainfeed/internal/model"
)

func InsertAnalyticsEvent(ctx context.Context, db database.DB, ev *model.AnalyticsEvent) error {
	var metadata any
	if len(ev.Metadata) > 0 {
		metadata = []byte(ev.Metadata)
	}
	_, err := db.Exec(ctx,
		`INSERT INTO user_analytics (session_id, article_id, category_id, event, metadata)
		 VALUES ($1, $2, $3, $4, $5)`,
		ev.SessionID,
		ev.ArticleID,
		ev.CategoryID,
		ev.Event,
		metadata,
	)
	if err != nil {
		return fmt.Errorf("InsertAnalyticsEvent: %w", err)
	}
	return nil
}

// TopArticle 為儀表板上的文章瀏覽統計
type TopArticle struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	Views int    `json:"views"`
}

// DashboardStats 彙整 since 之後的使用行為統計
type DashboardStats struct {
	TotalSessions  int            `json:"totalSessions"`
	TotalEvents    int            `json:"totalEvents"`
	TopArticles    []TopArticle   `json:"topArticles"`
	EventBreakdown map[string]int `json:"eventBreakdown"`
	ChatSessions   int            `json:"chatSessions"`
	ChatMessages   int            `json:"chatMessages"`
	ScrollDepthAvg float64        `json:"scrollDepthAvg"`
}

// GetDashboardStats 以彙總查詢計算儀表板統計，彙整工作交給資料庫
func GetDashboardStats(ctx context.Context, db database.DB, since time.Time) (*DashboardStats, error) {
	stats := &DashboardStats{
		TopArticles:    []TopArticle{},
		EventBreakdown: map[string]int{},
	}

	row := db.QueryRow(ctx,
		`SELECT COUNT(DISTINCT session_id), COUNT(*)
		 FROM user_analytics WHERE created_at > $1`,
		since,
	)
	if err := row.Scan(&stats.TotalSessions, &stats.TotalEvents); err != nil {
		return nil, fmt.Errorf("GetDashboardStats: %w", err)
	}

	rows, err := db.Query(ctx,
		`SELECT a.id, a.title, COUNT(*) AS views
		 FROM user_analytics ua
		 JOIN articles a ON a.id = ua.article_id
		 WHERE ua.created_at > $1
		 GROUP BY a.id, a.title
		 ORDER BY views DESC, a.id
		 LIMIT 5`,
		since,
	)
	if err != nil {
		return nil, fmt.Errorf("GetDashboardStats: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var ta TopArticle
		if err := rows.Scan(&ta.ID, &ta.Title, &ta.Views); err != nil {
			return nil, fmt.Errorf("GetDashboardStats: %w", err)
		}
		stats.TopArticles = append(stats.TopArticles, ta)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("GetDashboardStats: %w", err)
	}

	rows, err = db.Query(ctx,
		`SELECT event, COUNT(*)
		 FROM user_analytics WHERE created_at > $1
		 GROUP BY event`,
		since,
	)
	if err != nil {
		return nil, fmt.Errorf("GetDashboardStats: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var (
			event string
			count int
		)
		if err := rows.Scan(&event, &count); err != nil {
			return nil, fmt.Errorf("GetDashboardStats: %w", err)
		}
		stats.EventBreakdown[event] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("GetDashboardStats: %w", err)
	}

	row = db.QueryRow(ctx,
		`SELECT COUNT(DISTINCT session_id), COUNT(*)
		 FROM user_analytics
		 WHERE event = 'chat' AND created_at > $1`,
		since,
	)
	if err := row.Scan(&stats.ChatSessions, &stats.ChatMessages); err != nil {
		return nil, fmt.Errorf("GetDashboardStats: %w", err)
	}

	row = db.QueryRow(ctx,
		`SELECT COALESCE(AVG((metadata->>'scrollDepth')::float8), 0)
		 FROM user_analytics
		 WHERE created_at > $1 AND metadata ? 'scrollDepth'`,
		since,
	)
	if err := row.Scan(&stats.ScrollDepthAvg); err != nil {
		return nil, fmt.Errorf("GetDashboardStats: %w", err)
	}

	return stats, nil
}
