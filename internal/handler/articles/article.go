// File: internal/handler/articles/article.go
package articles

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"brainfeed/internal/api"
	"brainfeed/internal/database"
	"brainfeed/internal/middleware"
	"brainfeed/internal/model"
	"brainfeed/internal/store"
	"brainfeed/internal/worker"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
)

var (
	listArticles     = store.ListArticles
	getArticleBySlug = store.GetArticleBySlug
	createArticle    = store.CreateArticle
	decideArticle    = store.DecideArticle
	incrementClicks  = store.IncrementClicks
)

// ListArticlesHandler 依條件列出文章
// 匿名請求一律只見 approved，status 與其他條件僅對登入請求生效
// @Summary     文章列表
// @Tags        articles
// @Produce     json
// @Param       category query string false "分類 slug"
// @Param       featured query boolean false "是否精選"
// @Param       search   query string false "標題關鍵字"
// @Param       status   query string false "審核狀態（需登入）"
// @Param       writerId query int false "撰稿人 ID"
// @Success     200 {array} model.ArticleDetail
// @Failure     500 {object} api.ErrorResponse
// @Router      /articles [get]
func ListArticlesHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var f store.ArticleFilter

		if v := c.QueryParam("category"); v != "" {
			f.Category = &v
		}
		if v := c.QueryParam("featured"); v != "" {
			featured := v == "true"
			f.Featured = &featured
		}
		if v := c.QueryParam("search"); v != "" {
			f.Search = &v
		}
		if v := c.QueryParam("writerId"); v != "" {
			id, err := strconv.Atoi(v)
			if err != nil {
				return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid writerId"})
			}
			f.WriterID = &id
		}

		// 可見性規則：匿名請求強制 approved，不理會客戶端的 status
		if middleware.CurrentSession(c) == nil {
			approved := model.StatusApproved
			f.Status = &approved
		} else if v := c.QueryParam("status"); v != "" {
			f.Status = &v
		}

		list, err := listArticles(c.Request().Context(), db, f)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to fetch articles"})
		}
		return c.JSON(http.StatusOK, list)
	}
}

// GetArticleHandler 以 slug 取得單篇文章
// 匿名請求看不到未核准文章，不存在與被隱藏同樣回 404
// @Summary     取得文章
// @Tags        articles
// @Produce     json
// @Param       slug path string true "文章 slug"
// @Success     200 {object} model.ArticleDetail
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /articles/{slug} [get]
func GetArticleHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		article, err := getArticleBySlug(c.Request().Context(), db, c.Param("slug"))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "article not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to fetch article"})
		}
		if middleware.CurrentSession(c) == nil && article.Status != model.StatusApproved {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "article not found"})
		}
		return c.JSON(http.StatusOK, article)
	}
}

// CreateArticleHandler 投稿新文章，狀態固定為 pending
// @Summary     投稿文章
// @Tags        articles
// @Accept      json
// @Produce     json
// @Param       body body api.CreateArticleRequest true "文章內容"
// @Success     201 {object} api.CreateArticleResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     409 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /articles [post]
func CreateArticleHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateArticleRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		s := middleware.CurrentSession(c)
		if s == nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "unauthorized"})
		}

		readTime := req.ReadTime
		if readTime <= 0 {
			readTime = 5
		}

		writerID := s.UserID
		article, err := createArticle(c.Request().Context(), db, &model.Article{
			Title:      req.Title,
			Slug:       req.Slug,
			Excerpt:    req.Excerpt,
			Content:    req.Content,
			CoverImage: req.CoverImage,
			CategoryID: req.CategoryID,
			AuthorID:   req.AuthorID,
			WriterID:   &writerID,
			ReadTime:   readTime,
		})
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) {
				switch pgErr.Code {
				case "23505":
					return c.JSON(http.StatusConflict, api.ErrorResponse{Message: "slug already exists"})
				case "23503":
					return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "unknown category or author"})
				}
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to create article"})
		}

		return c.JSON(http.StatusCreated, api.CreateArticleResponse{
			ID:      article.ID,
			Message: "article created, waiting for approval",
		})
	}
}

// UpdateArticleStatusHandler 裁決 pending 文章
// 已裁決的文章不可再轉移，重複裁決回 409
// @Summary     審核文章
// @Tags        articles
// @Accept      json
// @Produce     json
// @Param       id   path int true "文章 ID"
// @Param       body body api.UpdateArticleStatusRequest true "裁決結果"
// @Success     200 {object} map[string]string
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     409 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /articles/{id}/status [patch]
func UpdateArticleStatusHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid article ID"})
		}

		var req api.UpdateArticleStatusRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		if err := decideArticle(c.Request().Context(), db, id, req.Status); err != nil {
			switch {
			case errors.Is(err, store.ErrArticleNotFound):
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "article not found"})
			case errors.Is(err, store.ErrAlreadyDecided):
				return c.JSON(http.StatusConflict, api.ErrorResponse{Message: "article already decided"})
			default:
				return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to update article status"})
			}
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "article " + req.Status})
	}
}

// ClickHandler 累計文章點擊數
// 射後不理：回應一律成功，遞增交給 worker pool，儲存層失敗僅記錄
// @Summary     累計點擊
// @Tags        articles
// @Produce     json
// @Param       id path int true "文章 ID"
// @Success     200 {object} api.SuccessResponse
// @Failure     400 {object} api.ErrorResponse
// @Router      /articles/{id}/click [post]
func ClickHandler(db database.DB, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid article ID"})
		}

		logger := c.Logger()
		wp.Submit(func() {
			// 請求結束後 context 即失效，遞增使用獨立 context
			if err := incrementClicks(context.Background(), db, id); err != nil {
				logger.Errorf("increment clicks for article %d: %v", id, err)
			}
		})
		return c.JSON(http.StatusOK, api.SuccessResponse{Success: true})
	}
}
