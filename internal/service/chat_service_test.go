package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/rujirapongsn2/ChatLibrary/internal/errors"
	"github.com/rujirapongsn2/ChatLibrary/internal/repository"
	"github.com/rujirapongsn2/ChatLibrary/internal/responder"
)

func newChatFixture(t *testing.T) (ChatService, CatalogService) {
	t.Helper()

	bookRepo := repository.NewBookRepository()
	borrowingRepo := repository.NewBorrowingRepository()
	chatRepo := repository.NewChatRepository()

	catalog := NewCatalogService(bookRepo)
	lending := NewLendingService(bookRepo, borrowingRepo, decimal.RequireFromString("5.00"))
	chat := NewChatService(chatRepo, catalog, lending)

	inputs := []CreateBookInput{
		{Title: "Python Crash Course", Author: "Eric Matthes", ISBN: "978-1593279288", TotalCopies: 5, AvailableCopies: 3},
		{Title: "Automate the Boring Stuff with Python", Author: "Al Sweigart", ISBN: "978-1593275990", TotalCopies: 3, AvailableCopies: 0},
		{Title: "Learning Python", Author: "Mark Lutz", ISBN: "978-1449355739", TotalCopies: 4, AvailableCopies: 2},
		{Title: "Python Cookbook", Author: "David Beazley", ISBN: "978-1449340377", TotalCopies: 2, AvailableCopies: 2},
		{Title: "Fluent Python", Author: "Luciano Ramalho", ISBN: "978-1491946008", TotalCopies: 2, AvailableCopies: 1},
		{Title: "Effective Python", Author: "Brett Slatkin", ISBN: "978-0134853987", TotalCopies: 2, AvailableCopies: 2},
	}
	for _, input := range inputs {
		_, err := catalog.CreateBook(context.Background(), input)
		assert.NoError(t, err)
	}

	return chat, catalog
}

func TestChatService_SendMessage(t *testing.T) {
	chat, _ := newChatFixture(t)
	ctx := context.Background()

	exchange, err := chat.SendMessage(ctx, 1, "Do you have python books?", responder.LanguageEN)
	assert.NoError(t, err)
	assert.NotNil(t, exchange)

	assert.True(t, exchange.UserMessage.IsUser)
	assert.Equal(t, "Do you have python books?", exchange.UserMessage.Message)
	assert.False(t, exchange.Reply.IsUser)
	assert.Equal(t, "I found several Python programming books for you!", exchange.Reply.Message)
	assert.True(t, exchange.UserMessage.CreatedAt.Before(exchange.Reply.CreatedAt) ||
		exchange.UserMessage.ID < exchange.Reply.ID)
}

func TestChatService_SendMessageAttachesAtMostFiveBooks(t *testing.T) {
	chat, catalog := newChatFixture(t)
	ctx := context.Background()

	// The raw utterance is the search query. Six titles contain
	// "python", so the attachment must be capped at five.
	matches, err := catalog.SearchBooks(ctx, "python")
	assert.NoError(t, err)
	assert.Len(t, matches, 6)

	exchange, err := chat.SendMessage(ctx, 1, "python", responder.LanguageEN)
	assert.NoError(t, err)
	assert.Len(t, exchange.Reply.Books, 5)
	assert.Equal(t, matches[0].ID, exchange.Reply.Books[0].ID)
}

func TestChatService_SendMessageNoMatches(t *testing.T) {
	chat, _ := newChatFixture(t)

	exchange, err := chat.SendMessage(context.Background(), 1, "search for haskell", responder.LanguageEN)
	assert.NoError(t, err)
	assert.Empty(t, exchange.Reply.Books)
	assert.Equal(t,
		"I couldn't find any books matching your search. Would you like to try a different search term?",
		exchange.Reply.Message)
}

func TestChatService_History(t *testing.T) {
	chat, _ := newChatFixture(t)
	ctx := context.Background()

	_, err := chat.SendMessage(ctx, 1, "hello", responder.LanguageEN)
	assert.NoError(t, err)
	_, err = chat.SendMessage(ctx, 2, "other user's message", responder.LanguageEN)
	assert.NoError(t, err)

	history, err := chat.History(ctx, 1)
	assert.NoError(t, err)
	assert.Len(t, history, 2)
	assert.True(t, history[0].IsUser)
	assert.False(t, history[1].IsUser)
	assert.Equal(t, "hello", history[0].Message)
}

func TestChatService_AppendMessage(t *testing.T) {
	chat, _ := newChatFixture(t)
	ctx := context.Background()

	stored, err := chat.AppendMessage(ctx, 1, "welcome to the library", false)
	assert.NoError(t, err)
	assert.False(t, stored.IsUser)

	// Appending must not generate a reply.
	history, err := chat.History(ctx, 1)
	assert.NoError(t, err)
	assert.Len(t, history, 1)
}

func TestChatService_BorrowBook(t *testing.T) {
	chat, _ := newChatFixture(t)
	ctx := context.Background()

	result, err := chat.BorrowBook(ctx, 1, 1, responder.LanguageEN)
	assert.NoError(t, err)
	assert.Equal(t, 1, result.Borrowing.BookID)
	assert.False(t, result.Confirmation.IsUser)
	assert.Contains(t, result.Confirmation.Message, `"Python Crash Course"`)
	assert.Contains(t, result.Confirmation.Message, "14 days")

	history, err := chat.History(ctx, 1)
	assert.NoError(t, err)
	assert.Len(t, history, 1)
	assert.Equal(t, result.Confirmation.Message, history[0].Message)
}

func TestChatService_BorrowBookFailureLogsNothing(t *testing.T) {
	chat, _ := newChatFixture(t)
	ctx := context.Background()

	result, err := chat.BorrowBook(ctx, 1, 2, responder.LanguageEN)
	assert.ErrorIs(t, err, errors.ErrBookUnavailable)
	assert.Nil(t, result)

	history, err := chat.History(ctx, 1)
	assert.NoError(t, err)
	assert.Empty(t, history)

	result, err = chat.BorrowBook(ctx, 1, 99, responder.LanguageEN)
	assert.ErrorIs(t, err, errors.ErrBookNotFound)
	assert.Nil(t, result)
}

func TestChatService_ReturnBook(t *testing.T) {
	chat, _ := newChatFixture(t)
	ctx := context.Background()

	result, err := chat.BorrowBook(ctx, 1, 1, responder.LanguageEN)
	assert.NoError(t, err)

	assert.NoError(t, chat.ReturnBook(ctx, result.Borrowing.ID))
	assert.ErrorIs(t, chat.ReturnBook(ctx, result.Borrowing.ID), errors.ErrAlreadyReturned)
	assert.ErrorIs(t, chat.ReturnBook(ctx, 99), errors.ErrBorrowingNotFound)
}
