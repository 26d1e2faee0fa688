package sqlite

import (
	"context"
	"database/sql"
	"time"

	"shortlink/internal/domain"
	"shortlink/internal/repository/sqlite/sqlc"
	"shortlink/internal/usecase"

	"github.com/samber/lo"
)

// ClickRepository implements usecase.ClickRepository.
type ClickRepository struct {
	queries *sqlc.Queries
}

var _ usecase.ClickRepository = (*ClickRepository)(nil)

// NewClickRepository creates a sqlite-backed click repository.
func NewClickRepository(db *sql.DB) *ClickRepository {
	return &ClickRepository{queries: sqlc.New(db)}
}

// Insert records one click. The timestamp is stamped here, at insert time;
// validity and earnings arrive decided and are never revised.
func (r *ClickRepository) Insert(ctx context.Context, linkID int64, isValid bool, earnings float64) (*domain.Click, error) {
	row, err := r.queries.InsertClick(ctx, sqlc.InsertClickParams{
		LinkID:    linkID,
		ClickedAt: time.Now().UTC().Unix(),
		IsValid:   isValid,
		Earnings:  earnings,
	})
	if err != nil {
		return nil, err
	}
	return &domain.Click{
		ID:        row.ID,
		LinkID:    row.LinkID,
		ClickedAt: time.Unix(row.ClickedAt, 0).UTC(),
		IsValid:   row.IsValid,
		Earnings:  row.Earnings,
	}, nil
}

// CountValidByLinkID counts the clicks the fraud check judged legitimate.
func (r *ClickRepository) CountValidByLinkID(ctx context.Context, linkID int64) (int64, error) {
	return r.queries.CountValidClicks(ctx, linkID)
}

// MonthlyValidCounts returns valid-click counts grouped by calendar month,
// most recent month first. Grouping happens in one SQL aggregate, not by
// iterating raw clicks here.
func (r *ClickRepository) MonthlyValidCounts(ctx context.Context, linkID int64) (domain.MonthlyBreakdown, error) {
	rows, err := r.queries.MonthlyValidClicks(ctx, linkID)
	if err != nil {
		return nil, err
	}
	return lo.Map(rows, func(row sqlc.MonthlyValidClicksRow, _ int) domain.MonthCount {
		return domain.MonthCount{Month: row.Month, Clicks: row.Clicks}
	}), nil
}
