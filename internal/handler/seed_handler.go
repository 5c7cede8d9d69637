package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rujirapongsn2/ChatLibrary/internal/errors"
	"github.com/rujirapongsn2/ChatLibrary/internal/service"
)

// SeedHandler handles catalog import endpoints.
type SeedHandler struct {
	catalogService service.CatalogService
}

// NewSeedHandler creates a new seed handler.
func NewSeedHandler(catalogService service.CatalogService) *SeedHandler {
	return &SeedHandler{catalogService: catalogService}
}

// SeedBookRequest represents one book in a catalog import.
type SeedBookRequest struct {
	Title           string  `json:"title" validate:"required"`
	Author          string  `json:"author" validate:"required"`
	ISBN            string  `json:"isbn" validate:"required"`
	Description     *string `json:"description"`
	Category        *string `json:"category"`
	ImageURL        *string `json:"image_url"`
	TotalCopies     int     `json:"total_copies" validate:"required,min=1"`
	AvailableCopies int     `json:"available_copies" validate:"min=0"`
}

// SeedBooksResponse represents the import result.
type SeedBooksResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}

// SeedBooks godoc
// @Summary Import catalog entries
// @Description Storage is in-process and transient, so imports go through the running server rather than a database.
// @Tags seed
// @Accept json
// @Produce json
// @Param request body []SeedBookRequest true "Books to import"
// @Success 200 {object} SeedBooksResponse
// @Failure 400 {object} errors.ErrorResponse
// @Router /seed/books [post]
func (h *SeedHandler) SeedBooks(c echo.Context) error {
	var req []SeedBookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}
	for _, item := range req {
		if err := c.Validate(&item); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
				Error: err.Error(),
				Code:  "VALIDATION_ERROR",
			})
		}
	}

	inputs := make([]service.CreateBookInput, 0, len(req))
	for _, item := range req {
		inputs = append(inputs, service.CreateBookInput{
			Title:           item.Title,
			Author:          item.Author,
			ISBN:            item.ISBN,
			Description:     item.Description,
			Category:        item.Category,
			ImageURL:        item.ImageURL,
			TotalCopies:     item.TotalCopies,
			AvailableCopies: item.AvailableCopies,
		})
	}

	count, err := h.catalogService.SeedBooks(c.Request().Context(), inputs)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, SeedBooksResponse{
		Message: "Books imported successfully",
		Count:   count,
	})
}
