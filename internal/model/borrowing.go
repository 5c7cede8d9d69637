package model

import "time"

// LoanPeriod is the fixed lending window. DueAt is computed once at
// borrow time and is not configurable per book or user.
const LoanPeriod = 14 * 24 * time.Hour

// Borrowing represents one loan of one book copy. A borrowing
// transitions exactly once, borrowed -> returned, and is never
// deleted afterwards.
type Borrowing struct {
	ID         int        `json:"id"`
	UserID     int        `json:"user_id"`
	BookID     int        `json:"book_id"`
	BorrowedAt time.Time  `json:"borrowed_at"`
	DueAt      time.Time  `json:"due_at"`
	ReturnedAt *time.Time `json:"returned_at,omitempty"`
	IsReturned bool       `json:"is_returned"`
}
