// Package sqlite implements the store contracts over sqlite using
// sqlc-generated queries.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"shortlink/internal/domain"
	"shortlink/internal/repository/sqlite/sqlc"
	"shortlink/internal/usecase"
	"shortlink/pkg/base62"

	"github.com/samber/lo"
)

// LinkRepository implements usecase.LinkRepository.
type LinkRepository struct {
	db      *sql.DB
	queries *sqlc.Queries
}

var _ usecase.LinkRepository = (*LinkRepository)(nil)

// NewLinkRepository creates a sqlite-backed link repository.
func NewLinkRepository(db *sql.DB) *LinkRepository {
	return &LinkRepository{db: db, queries: sqlc.New(db)}
}

// Create inserts a link and assigns the code encoded from its new
// identifier inside one transaction, so a committed row always carries its
// code. The UNIQUE constraint on target_url is the serialization point for
// concurrent creations; a violation surfaces as domain.ErrDuplicateTargetURL.
func (r *LinkRepository) Create(ctx context.Context, targetURL string) (*domain.Link, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	q := r.queries.WithTx(tx)
	row, err := q.CreateLink(ctx, sqlc.CreateLinkParams{
		TargetUrl: targetURL,
		CreatedAt: time.Now().UTC().Unix(),
	})
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicateTargetURL
		}
		return nil, err
	}

	code := base62.Encode(uint64(row.ID))
	if len(code) > domain.MaxShortCodeLength {
		return nil, fmt.Errorf("short code %q for id %d exceeds %d characters", code, row.ID, domain.MaxShortCodeLength)
	}
	if err := q.SetShortCode(ctx, sqlc.SetShortCodeParams{
		ShortCode: sql.NullString{String: code, Valid: true},
		ID:        row.ID,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	row.ShortCode = sql.NullString{String: code, Valid: true}
	return linkToDomain(row), nil
}

// FindByTargetURL retrieves a link by its target URL.
func (r *LinkRepository) FindByTargetURL(ctx context.Context, targetURL string) (*domain.Link, error) {
	row, err := r.queries.FindLinkByTargetURL(ctx, targetURL)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrLinkNotFound
		}
		return nil, err
	}
	return linkToDomain(row), nil
}

// FindByShortCode retrieves a link by its short code.
func (r *LinkRepository) FindByShortCode(ctx context.Context, code string) (*domain.Link, error) {
	row, err := r.queries.FindLinkByShortCode(ctx, sql.NullString{String: code, Valid: true})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrLinkNotFound
		}
		return nil, err
	}
	return linkToDomain(row), nil
}

// List returns one page of links ordered by id ascending. Insertion order
// never changes for committed rows, so repeated pages over unchanged data
// are consistent.
func (r *LinkRepository) List(ctx context.Context, limit, offset int) ([]*domain.Link, error) {
	rows, err := r.queries.ListLinks(ctx, sqlc.ListLinksParams{
		Limit:  int64(limit),
		Offset: int64(offset),
	})
	if err != nil {
		return nil, err
	}
	return lo.Map(rows, func(row sqlc.Link, _ int) *domain.Link {
		return linkToDomain(row)
	}), nil
}

// Count returns the total number of links.
func (r *LinkRepository) Count(ctx context.Context) (int64, error) {
	return r.queries.CountLinks(ctx)
}

func linkToDomain(row sqlc.Link) *domain.Link {
	return &domain.Link{
		ID:        row.ID,
		ShortCode: row.ShortCode.String,
		TargetURL: row.TargetUrl,
		CreatedAt: time.Unix(row.CreatedAt, 0).UTC(),
	}
}

// isUniqueViolation reports whether err is a sqlite UNIQUE constraint
// failure. The modernc driver exposes no typed error for this, so the
// message is the contract.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
