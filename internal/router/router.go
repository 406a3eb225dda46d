// File: internal/router/router.go
package router

import (
	"github.com/labstack/echo/v4"

	"brainfeed/internal/ai"
	"brainfeed/internal/cache"
	"brainfeed/internal/database"
	"brainfeed/internal/handler"
	"brainfeed/internal/handler/analytics"
	"brainfeed/internal/handler/articles"
	"brainfeed/internal/handler/auth"
	"brainfeed/internal/handler/chat"
	"brainfeed/internal/handler/content"
	"brainfeed/internal/handler/users"
	"brainfeed/internal/middleware"
	"brainfeed/internal/session"
	"brainfeed/internal/worker"
)

// Setup 註冊所有路由與中介層
// session 解析掛在整個 /api 群組，匿名請求照常通過，由各路由的 guard 決定是否擋下
func Setup(e *echo.Echo, db database.DB, rdb cache.Cache, sm *session.Manager, client ai.Client, wp worker.Pool) {
	api := e.Group("/api", middleware.WithSession(sm))

	// 健康檢查
	api.GET("/ping", handler.PingHandler(db))

	// 登入流程與當前使用者
	api.POST("/auth/login", auth.LoginHandler(db, sm))
	api.POST("/auth/logout", auth.LogoutHandler())
	api.GET("/auth/me", auth.MeHandler(db), middleware.RequireAuth)
	api.PATCH("/auth/password", auth.UpdateMyPasswordHandler(db), middleware.RequireAuth)

	// 管理員建立帳號
	api.POST("/users", users.CreateUserHandler(db), middleware.RequireAdmin)

	// 文章：讀取公開，投稿限撰稿人以上，審核限管理員
	api.GET("/articles", articles.ListArticlesHandler(db))
	api.GET("/articles/:slug", articles.GetArticleHandler(db))
	api.POST("/articles", articles.CreateArticleHandler(db), middleware.RequireWriter)
	api.PATCH("/articles/:id/status", articles.UpdateArticleStatusHandler(db), middleware.RequireAdmin)
	api.POST("/articles/:id/click", articles.ClickHandler(db, wp))

	// 分類與作者
	api.GET("/categories", content.ListCategoriesHandler(db))
	api.GET("/authors", content.ListAuthorsHandler(db))

	// 聊天助理
	api.POST("/chat/message", chat.MessageHandler(db, client))
	api.GET("/chat/history/:sessionId", chat.HistoryHandler(db))

	// 行為分析：上報公開，儀表板限管理員
	api.POST("/analytics/track", analytics.TrackHandler(db))
	api.GET("/analytics/dashboard", analytics.DashboardHandler(db, rdb), middleware.RequireAdmin)
}
