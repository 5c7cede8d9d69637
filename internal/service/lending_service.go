package service

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rujirapongsn2/ChatLibrary/internal/errors"
	"github.com/rujirapongsn2/ChatLibrary/internal/model"
	"github.com/rujirapongsn2/ChatLibrary/internal/repository"
)

// BorrowedBook is an active borrowing joined with its book, plus the
// late fee accrued so far (zero while the loan is not overdue).
type BorrowedBook struct {
	Borrowing  model.Borrowing `json:"borrowing"`
	Book       model.Book      `json:"book"`
	AccruedFee decimal.Decimal `json:"accrued_fee"`
}

// LendingService owns the loan ledger. It is the only writer of
// borrowing records and the only mutator of book availability.
type LendingService interface {
	ListActiveBorrowings(ctx context.Context, userID int) ([]BorrowedBook, error)
	Borrow(ctx context.Context, userID, bookID int) (*model.Borrowing, error)
	Return(ctx context.Context, borrowingID int) error
}

type lendingService struct {
	// mu is the single mutual-exclusion domain covering catalog and
	// ledger together: borrow and return touch both stores and must
	// not interleave.
	mu            sync.Mutex
	bookRepo      repository.BookRepository
	borrowingRepo repository.BorrowingRepository
	lateFeePerDay decimal.Decimal
}

// NewLendingService creates a new lending service. lateFeePerDay is
// the daily charge applied to overdue loans.
func NewLendingService(
	bookRepo repository.BookRepository,
	borrowingRepo repository.BorrowingRepository,
	lateFeePerDay decimal.Decimal,
) LendingService {
	return &lendingService{
		bookRepo:      bookRepo,
		borrowingRepo: borrowingRepo,
		lateFeePerDay: lateFeePerDay,
	}
}

// ListActiveBorrowings returns the user's non-returned borrowings
// joined with their books. A borrowing whose book is missing is
// silently excluded.
func (s *lendingService) ListActiveBorrowings(ctx context.Context, userID int) ([]BorrowedBook, error) {
	active, err := s.borrowingRepo.ListActiveByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	result := make([]BorrowedBook, 0, len(active))
	for _, borrowing := range active {
		book, err := s.bookRepo.FindByID(ctx, borrowing.BookID)
		if err != nil {
			return nil, err
		}
		if book == nil {
			continue
		}
		result = append(result, BorrowedBook{
			Borrowing:  borrowing,
			Book:       *book,
			AccruedFee: s.accruedFee(borrowing.DueAt, now),
		})
	}
	return result, nil
}

// accruedFee charges lateFeePerDay per whole day past the due date.
func (s *lendingService) accruedFee(dueAt, now time.Time) decimal.Decimal {
	if !now.After(dueAt) {
		return decimal.Zero
	}
	days := int64(now.Sub(dueAt).Hours() / 24)
	if days <= 0 {
		return decimal.Zero
	}
	return s.lateFeePerDay.Mul(decimal.NewFromInt(days))
}

// Borrow lends one copy of a book to a user. On success the book's
// availability drops by exactly one and a new borrowing due in 14 days
// is created; on failure nothing is mutated.
func (s *lendingService) Borrow(ctx context.Context, userID, bookID int) (*model.Borrowing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	book, err := s.bookRepo.FindByID(ctx, bookID)
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, errors.ErrBookNotFound
	}
	if !book.IsAvailable() {
		return nil, errors.ErrBookUnavailable
	}

	if err := s.bookRepo.AdjustAvailability(ctx, bookID, -1); err != nil {
		return nil, err
	}

	now := time.Now()
	borrowing, err := s.borrowingRepo.Create(ctx, &model.Borrowing{
		UserID:     userID,
		BookID:     bookID,
		BorrowedAt: now,
		DueAt:      now.Add(model.LoanPeriod),
	})
	if err != nil {
		// Undo the decrement so failure leaves the catalog untouched.
		_ = s.bookRepo.AdjustAvailability(ctx, bookID, 1)
		return nil, err
	}
	return borrowing, nil
}

// Return completes a borrowing: marks it returned, stamps ReturnedAt
// and hands the copy back to the catalog. An unknown id fails with
// ErrBorrowingNotFound and a second return with ErrAlreadyReturned;
// neither touches the availability counter.
func (s *lendingService) Return(ctx context.Context, borrowingID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	borrowing, err := s.borrowingRepo.FindByID(ctx, borrowingID)
	if err != nil {
		return err
	}
	if borrowing == nil {
		return errors.ErrBorrowingNotFound
	}
	if borrowing.IsReturned {
		return errors.ErrAlreadyReturned
	}

	// The increment goes through the guarded counter, so it can never
	// push availability past TotalCopies.
	if err := s.bookRepo.AdjustAvailability(ctx, borrowing.BookID, 1); err != nil {
		return err
	}

	now := time.Now()
	borrowing.IsReturned = true
	borrowing.ReturnedAt = &now
	if err := s.borrowingRepo.Update(ctx, borrowing); err != nil {
		_ = s.bookRepo.AdjustAvailability(ctx, borrowing.BookID, -1)
		return err
	}
	return nil
}
