package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rujirapongsn2/ChatLibrary/internal/errors"
	"github.com/rujirapongsn2/ChatLibrary/internal/model"
	"github.com/rujirapongsn2/ChatLibrary/internal/responder"
	"github.com/rujirapongsn2/ChatLibrary/internal/service"
)

// ChatHandler handles conversation endpoints.
type ChatHandler struct {
	chatService service.ChatService
}

// NewChatHandler creates a new chat handler.
func NewChatHandler(chatService service.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// SendMessageRequest represents a chat message submission. IsUser
// defaults to true; a false value appends an assistant-authored
// message without generating a reply.
type SendMessageRequest struct {
	Message  string `json:"message" validate:"required"`
	IsUser   *bool  `json:"is_user"`
	Language string `json:"language" validate:"omitempty,oneof=en th"`
}

// GetMessages godoc
// @Summary Get the caller's conversation history
// @Tags chat
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.ChatMessage
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /chat/messages [get]
func (h *ChatHandler) GetMessages(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	messages, err := h.chatService.History(c.Request().Context(), userID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	if messages == nil {
		messages = []model.ChatMessage{}
	}
	return c.JSON(http.StatusOK, messages)
}

// SendMessage godoc
// @Summary Send a chat message
// @Description A user message runs a full conversation cycle and returns both the stored message and the assistant reply. A non-user message is only appended.
// @Tags chat
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SendMessageRequest true "Message data"
// @Success 200 {object} service.ChatExchange
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /chat/messages [post]
func (h *ChatHandler) SendMessage(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req SendMessageRequest
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

	if req.IsUser != nil && !*req.IsUser {
		message, err := h.chatService.AppendMessage(c.Request().Context(), userID, req.Message, false)
		if err != nil {
			httpErr := errors.MapErrorToHTTP(err)
			return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
		}
		return c.JSON(http.StatusOK, message)
	}

	exchange, err := h.chatService.SendMessage(c.Request().Context(), userID, req.Message, responder.Language(req.Language))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, exchange)
}
