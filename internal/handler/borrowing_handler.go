package handler

import (
	stderrors "errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/rujirapongsn2/ChatLibrary/internal/errors"
	"github.com/rujirapongsn2/ChatLibrary/internal/responder"
	"github.com/rujirapongsn2/ChatLibrary/internal/service"
)

// BorrowingHandler handles loan endpoints.
type BorrowingHandler struct {
	chatService    service.ChatService
	lendingService service.LendingService
}

// NewBorrowingHandler creates a new borrowing handler.
func NewBorrowingHandler(chatService service.ChatService, lendingService service.LendingService) *BorrowingHandler {
	return &BorrowingHandler{chatService: chatService, lendingService: lendingService}
}

// BorrowRequest represents a borrow request.
type BorrowRequest struct {
	BookID   int    `json:"book_id" validate:"required,min=1"`
	Language string `json:"language" validate:"omitempty,oneof=en th"`
}

// ReturnResponse represents a return confirmation.
type ReturnResponse struct {
	Message string `json:"message"`
}

// ListBorrowings godoc
// @Summary List the caller's active borrowings
// @Tags borrowings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} service.BorrowedBook
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /borrowings [get]
func (h *BorrowingHandler) ListBorrowings(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	borrowings, err := h.lendingService.ListActiveBorrowings(c.Request().Context(), userID)
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(http.StatusOK, borrowings)
}

// BorrowBook godoc
// @Summary Borrow a book
// @Tags borrowings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body BorrowRequest true "Borrow data"
// @Success 200 {object} service.BorrowResult
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /borrowings [post]
func (h *BorrowingHandler) BorrowBook(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req BorrowRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
	}

	result, err := h.chatService.BorrowBook(c.Request().Context(), userID, req.BookID, responder.Language(req.Language))
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

// ReturnBook godoc
// @Summary Return a borrowed book
// @Tags borrowings
// @Produce json
// @Security BearerAuth
// @Param id path int true "Borrowing ID"
// @Success 200 {object} ReturnResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /borrowings/{id}/return [patch]
func (h *BorrowingHandler) ReturnBook(c echo.Context) error {
	borrowingID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid borrowing id",
			Code:  "INVALID_ID",
		})
	}

	if err := h.chatService.ReturnBook(c.Request().Context(), borrowingID); err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(http.StatusOK, ReturnResponse{Message: "Book returned successfully"})
}

// mapError converts a domain error to an HTTP error. Invariant
// violations are a core bug: they get logged here, never swallowed.
func (h *BorrowingHandler) mapError(c echo.Context, err error) error {
	if stderrors.Is(err, errors.ErrInvariantViolation) {
		c.Logger().Errorf("availability invariant violated: %v", err)
	}
	httpErr := errors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}
