// File: internal/handler/content/content.go
package content

import (
	"net/http"

	"brainfeed/internal/api"
	"brainfeed/internal/database"
	"brainfeed/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	listCategories = store.ListCategories
	listAuthors    = store.ListAuthors
)

// ListCategoriesHandler 列出全部分類
// @Summary     分類列表
// @Tags        content
// @Produce     json
// @Success     200 {array} model.Category
// @Failure     500 {object} api.ErrorResponse
// @Router      /categories [get]
func ListCategoriesHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		categories, err := listCategories(c.Request().Context(), db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to fetch categories"})
		}
		return c.JSON(http.StatusOK, categories)
	}
}

// ListAuthorsHandler 列出全部作者
// @Summary     作者列表
// @Tags        content
// @Produce     json
// @Success     200 {array} model.Author
// @Failure     500 {object} api.ErrorResponse
// @Router      /authors [get]
func ListAuthorsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		authors, err := listAuthors(c.Request().Context(), db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to fetch authors"})
		}
		return c.JSON(http.StatusOK, authors)
	}
}
