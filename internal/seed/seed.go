// Package seed loads the demo data set the service starts with:
// one user, five books and one active borrowing. Storage is transient,
// so this runs on every process start.
package seed

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/rujirapongsn2/ChatLibrary/internal/model"
	"github.com/rujirapongsn2/ChatLibrary/internal/repository"
	"github.com/rujirapongsn2/ChatLibrary/internal/service"
)

// DemoBooks is the seeded catalog. Book two starts with zero available
// copies on purpose: one copy is out on the demo borrowing and the
// rest are treated as lent elsewhere, so the unavailable path is
// reachable out of the box.
func DemoBooks() []service.CreateBookInput {
	return []service.CreateBookInput{
		{
			Title:           "Python Crash Course",
			Author:          "Eric Matthes",
			ISBN:            "978-1593279288",
			Description:     strPtr("A hands-on, project-based introduction to programming"),
			Category:        strPtr("Programming"),
			ImageURL:        strPtr("https://images.unsplash.com/photo-1515879218367-8466d910aaa4?auto=format&fit=crop&w=80&h=100"),
			TotalCopies:     5,
			AvailableCopies: 3,
		},
		{
			Title:           "Automate the Boring Stuff with Python",
			Author:          "Al Sweigart",
			ISBN:            "978-1593275990",
			Description:     strPtr("Practical programming for total beginners"),
			Category:        strPtr("Programming"),
			ImageURL:        strPtr("https://images.unsplash.com/photo-1544716278-ca5e3f4abd8c?auto=format&fit=crop&w=80&h=100"),
			TotalCopies:     3,
			AvailableCopies: 0,
		},
		{
			Title:           "Learning Python",
			Author:          "Mark Lutz",
			ISBN:            "978-1449355739",
			Description:     strPtr("Powerful object-oriented programming"),
			Category:        strPtr("Programming"),
			ImageURL:        strPtr("https://images.unsplash.com/photo-1551288049-bebda4e38f71?auto=format&fit=crop&w=80&h=100"),
			TotalCopies:     4,
			AvailableCopies: 2,
		},
		{
			Title:           "JavaScript: The Good Parts",
			Author:          "Douglas Crockford",
			ISBN:            "978-0596517748",
			Description:     strPtr("Unearthing the excellence in JavaScript"),
			Category:        strPtr("Programming"),
			ImageURL:        strPtr("https://images.unsplash.com/photo-1627398242454-45a1465c2479?auto=format&fit=crop&w=80&h=100"),
			TotalCopies:     6,
			AvailableCopies: 4,
		},
		{
			Title:           "Data Science from Scratch",
			Author:          "Joel Grus",
			ISBN:            "978-1492041139",
			Description:     strPtr("First principles with Python"),
			Category:        strPtr("Data Science"),
			ImageURL:        strPtr("https://images.unsplash.com/photo-1551288049-bebda4e38f71?auto=format&fit=crop&w=80&h=100"),
			TotalCopies:     3,
			AvailableCopies: 1,
		},
	}
}

// Demo seeds the demo user, the demo catalog and one week-old active
// borrowing of book two.
func Demo(
	ctx context.Context,
	userRepo repository.UserRepository,
	catalog service.CatalogService,
	borrowingRepo repository.BorrowingRepository,
) error {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash demo password: %w", err)
	}

	user, err := userRepo.Create(ctx, &model.User{
		Username:     "siriporn",
		PasswordHash: string(hash),
		Name:         "Siriporn Tanaka",
		StudentID:    "6234567890",
		Email:        strPtr("siriporn.t@student.chula.ac.th"),
	})
	if err != nil {
		return fmt.Errorf("seed demo user: %w", err)
	}

	var secondBookID int
	for i, input := range DemoBooks() {
		book, err := catalog.CreateBook(ctx, input)
		if err != nil {
			return fmt.Errorf("seed book %q: %w", input.Title, err)
		}
		if i == 1 {
			secondBookID = book.ID
		}
	}

	// Borrowed a week ago, so the loan sits halfway through the
	// standard 14-day window.
	borrowedAt := time.Now().Add(-7 * 24 * time.Hour)
	if _, err := borrowingRepo.Create(ctx, &model.Borrowing{
		UserID:     user.ID,
		BookID:     secondBookID,
		BorrowedAt: borrowedAt,
		DueAt:      borrowedAt.Add(model.LoanPeriod),
	}); err != nil {
		return fmt.Errorf("seed demo borrowing: %w", err)
	}

	return nil
}

func strPtr(s string) *string { return &s }
