package service

import (
	"context"

	"github.com/rujirapongsn2/ChatLibrary/internal/model"
	"github.com/rujirapongsn2/ChatLibrary/internal/repository"
	"github.com/rujirapongsn2/ChatLibrary/internal/responder"
)

// maxAttachedBooks caps the candidate books attached to a reply.
const maxAttachedBooks = 5

// ChatExchange is one request/response cycle: the logged user message
// and the assistant reply, with candidate books attached to the reply.
type ChatExchange struct {
	UserMessage model.ChatMessage `json:"user_message"`
	Reply       model.ChatMessage `json:"reply"`
}

// BorrowResult is a successful borrow together with the confirmation
// message appended to the conversation.
type BorrowResult struct {
	Borrowing    model.Borrowing   `json:"borrowing"`
	Confirmation model.ChatMessage `json:"confirmation"`
}

// ChatService is the session orchestrator: it composes the catalog,
// the lending ledger and the responder into user-facing operations.
type ChatService interface {
	SendMessage(ctx context.Context, userID int, message string, lang responder.Language) (*ChatExchange, error)
	AppendMessage(ctx context.Context, userID int, message string, isUser bool) (*model.ChatMessage, error)
	History(ctx context.Context, userID int) ([]model.ChatMessage, error)
	BorrowBook(ctx context.Context, userID, bookID int, lang responder.Language) (*BorrowResult, error)
	ReturnBook(ctx context.Context, borrowingID int) error
}

type chatService struct {
	chatRepo repository.ChatRepository
	catalog  CatalogService
	lending  LendingService
}

// NewChatService creates a new chat service.
func NewChatService(
	chatRepo repository.ChatRepository,
	catalog CatalogService,
	lending LendingService,
) ChatService {
	return &chatService{
		chatRepo: chatRepo,
		catalog:  catalog,
		lending:  lending,
	}
}

// SendMessage runs one conversation cycle: log the utterance, search
// the catalog with the raw utterance, compute the reply, log it, and
// return both messages. Up to five candidate books ride along on the
// reply when the search matched anything.
func (s *chatService) SendMessage(ctx context.Context, userID int, message string, lang responder.Language) (*ChatExchange, error) {
	userMessage, err := s.chatRepo.Create(ctx, userID, message, true)
	if err != nil {
		return nil, err
	}

	candidates, err := s.catalog.SearchBooks(ctx, message)
	if err != nil {
		return nil, err
	}

	replyText := responder.Respond(message, lang, candidates)
	reply, err := s.chatRepo.Create(ctx, userID, replyText, false)
	if err != nil {
		return nil, err
	}
	if len(candidates) > 0 {
		if len(candidates) > maxAttachedBooks {
			candidates = candidates[:maxAttachedBooks]
		}
		reply.Books = candidates
	}

	return &ChatExchange{UserMessage: *userMessage, Reply: *reply}, nil
}

// AppendMessage stores a single message without generating a reply.
func (s *chatService) AppendMessage(ctx context.Context, userID int, message string, isUser bool) (*model.ChatMessage, error) {
	return s.chatRepo.Create(ctx, userID, message, isUser)
}

// History replays the user's conversation in chronological order.
func (s *chatService) History(ctx context.Context, userID int) ([]model.ChatMessage, error) {
	return s.chatRepo.ListByUser(ctx, userID)
}

// BorrowBook delegates to the lending ledger and, on success, appends
// a confirmation naming the title and the fixed 14-day period. On
// failure the error is surfaced and the conversation log is untouched.
func (s *chatService) BorrowBook(ctx context.Context, userID, bookID int, lang responder.Language) (*BorrowResult, error) {
	book, err := s.catalog.GetBook(ctx, bookID)
	if err != nil {
		return nil, err
	}

	borrowing, err := s.lending.Borrow(ctx, userID, bookID)
	if err != nil {
		return nil, err
	}

	confirmation, err := s.chatRepo.Create(ctx, userID, responder.BorrowConfirmation(lang, book.Title), false)
	if err != nil {
		return nil, err
	}

	return &BorrowResult{Borrowing: *borrowing, Confirmation: *confirmation}, nil
}

// ReturnBook delegates to the lending ledger with no further side
// effects.
func (s *chatService) ReturnBook(ctx context.Context, borrowingID int) error {
	return s.lending.Return(ctx, borrowingID)
}
