package usecase

import (
	"context"

	"shortlink/internal/domain"
)

// LinkRepository is the store contract for links. Implementations must
// enforce the unique constraint on target URL atomically: Create either
// commits a new row or fails with domain.ErrDuplicateTargetURL, never a
// read-then-write race in this layer.
type LinkRepository interface {
	// Create inserts a link and assigns the code derived from its
	// store-assigned identifier in one atomic step. No reader ever
	// observes a committed row without its code.
	Create(ctx context.Context, targetURL string) (*domain.Link, error)

	// FindByTargetURL returns domain.ErrLinkNotFound when absent.
	FindByTargetURL(ctx context.Context, targetURL string) (*domain.Link, error)

	// FindByShortCode returns domain.ErrLinkNotFound when absent.
	FindByShortCode(ctx context.Context, code string) (*domain.Link, error)

	// List returns one page of links in stable id order.
	List(ctx context.Context, limit, offset int) ([]*domain.Link, error)

	// Count returns the total number of links.
	Count(ctx context.Context) (int64, error)
}

// ClickRepository is the store contract for click records and their
// aggregates.
type ClickRepository interface {
	// Insert records one click with its validity verdict and earnings,
	// stamping the click time.
	Insert(ctx context.Context, linkID int64, isValid bool, earnings float64) (*domain.Click, error)

	// CountValidByLinkID counts only valid clicks.
	CountValidByLinkID(ctx context.Context, linkID int64) (int64, error)

	// MonthlyValidCounts groups valid clicks by calendar month in a
	// single aggregate query, most recent month first.
	MonthlyValidCounts(ctx context.Context, linkID int64) (domain.MonthlyBreakdown, error)
}
