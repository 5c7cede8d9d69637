package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rujirapongsn2/ChatLibrary/internal/errors"
	"github.com/rujirapongsn2/ChatLibrary/internal/model"
	"github.com/rujirapongsn2/ChatLibrary/internal/service"
)

// BookHandler handles catalog endpoints.
type BookHandler struct {
	catalogService service.CatalogService
}

// NewBookHandler creates a new book handler.
func NewBookHandler(catalogService service.CatalogService) *BookHandler {
	return &BookHandler{catalogService: catalogService}
}

// SearchBooks godoc
// @Summary Search the catalog
// @Description Case-insensitive substring match over title, author, category and description. Without q the full catalog is returned.
// @Tags books
// @Produce json
// @Param q query string false "Search query"
// @Success 200 {array} model.Book
// @Failure 500 {object} errors.ErrorResponse
// @Router /books/search [get]
func (h *BookHandler) SearchBooks(c echo.Context) error {
	books, err := h.catalogService.SearchBooks(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	if books == nil {
		books = []model.Book{}
	}
	return c.JSON(http.StatusOK, books)
}
