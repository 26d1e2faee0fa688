// Package usecase holds the service's coordination logic: short-link
// creation, redirect tracking, and statistics assembly.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/url"

	"shortlink/internal/domain"
	"shortlink/internal/fraud"

	"go.uber.org/zap"
)

// EarningsPerValidClick is the fixed amount one valid click earns. Total
// earnings are computed by multiplying this unit by the valid-click count;
// the stored per-click earnings agree only because the unit is constant. If
// the unit ever becomes variable (promotional rates), the stats path must
// switch to summing stored earnings instead.
const EarningsPerValidClick = 0.05

// LinkService orchestrates links, clicks, the codec, and the fraud check.
// It holds no mutable state of its own; concurrent requests share nothing
// but the store.
type LinkService struct {
	links   LinkRepository
	clicks  ClickRepository
	checker fraud.Checker
	logger  *zap.Logger
	baseURL string
}

// NewLinkService creates the service. baseURL is used only to format short
// URLs in responses.
func NewLinkService(links LinkRepository, clicks ClickRepository, checker fraud.Checker, logger *zap.Logger, baseURL string) *LinkService {
	return &LinkService{
		links:   links,
		clicks:  clicks,
		checker: checker,
		logger:  logger,
		baseURL: baseURL,
	}
}

// LinkResult is the creation response: the stored link plus its formatted
// short URL.
type LinkResult struct {
	ShortCode string `json:"short_code"`
	ShortURL  string `json:"short_url"`
	TargetURL string `json:"target_url"`
}

// CreateShortLink returns the canonical link for targetURL, creating it on
// first request. Creation is idempotent per target URL: however many
// callers race, all converge on the single committed row, which carries
// its code from the moment it is visible. The store's unique constraint on
// target URL is the only serialization point — a loser's insert fails with
// ErrDuplicateTargetURL and the winner's record is re-read, never
// surfacing the conflict.
func (s *LinkService) CreateShortLink(ctx context.Context, targetURL string) (*LinkResult, error) {
	if err := validateTargetURL(targetURL); err != nil {
		return nil, err
	}

	existing, err := s.links.FindByTargetURL(ctx, targetURL)
	if err == nil {
		return s.toResult(existing), nil
	}
	if !errors.Is(err, domain.ErrLinkNotFound) {
		return nil, err
	}

	link, err := s.links.Create(ctx, targetURL)
	if errors.Is(err, domain.ErrDuplicateTargetURL) {
		// Lost the race; the first committed row wins.
		winner, err := s.links.FindByTargetURL(ctx, targetURL)
		if err != nil {
			return nil, fmt.Errorf("failed to re-read link after duplicate insert: %w", err)
		}
		s.logger.Debug("concurrent creation resolved by re-read",
			zap.String("short_code", winner.ShortCode))
		return s.toResult(winner), nil
	}
	if err != nil {
		return nil, err
	}

	s.logger.Info("short link created",
		zap.Int64("id", link.ID),
		zap.String("short_code", link.ShortCode))
	return s.toResult(link), nil
}

// validateTargetURL guards the persistence layer independently of
// transport-level validation: only absolute http(s) URLs within the column
// limit get stored.
func validateTargetURL(targetURL string) error {
	if targetURL == "" {
		return fmt.Errorf("%w: target URL is required", domain.ErrInvalidURL)
	}
	if len(targetURL) > domain.MaxTargetURLLength {
		return fmt.Errorf("%w: target URL exceeds %d characters", domain.ErrInvalidURL, domain.MaxTargetURLLength)
	}
	parsed, err := url.ParseRequestURI(targetURL)
	if err != nil {
		return fmt.Errorf("%w: %s", domain.ErrInvalidURL, targetURL)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("%w: scheme must be http or https", domain.ErrInvalidURL)
	}
	if parsed.Host == "" {
		return fmt.Errorf("%w: missing host", domain.ErrInvalidURL)
	}
	return nil
}

// RedirectAndTrack resolves code to its target URL and records one click.
// An unknown code fails with domain.ErrLinkNotFound before anything is
// written. The fraud check runs exactly once, outside any store
// transaction, so its delay never holds a write lock; if it is cancelled,
// the error propagates and no click row exists at all.
func (s *LinkService) RedirectAndTrack(ctx context.Context, code string) (string, error) {
	link, err := s.links.FindByShortCode(ctx, code)
	if err != nil {
		return "", err
	}

	valid, err := s.checker.Validate(ctx)
	if err != nil {
		return "", err
	}

	earnings := 0.0
	if valid {
		earnings = EarningsPerValidClick
	}
	if _, err := s.clicks.Insert(ctx, link.ID, valid, earnings); err != nil {
		return "", fmt.Errorf("failed to record click: %w", err)
	}

	return link.TargetURL, nil
}

// GetStats assembles one page of per-link statistics. Links come back in
// the store's stable id order; each link's counts are store aggregates, and
// total earnings is the unit multiplied by the valid-click count. Pages
// past the data return empty content with correct totals.
func (s *LinkService) GetStats(ctx context.Context, page, size int) (*domain.StatsPage, error) {
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = 10
	}
	// Keep page*size inside int range; sqlite would read a wrapped
	// negative offset as zero and serve page-0 rows for a beyond-data page.
	if page > math.MaxInt/size {
		page = math.MaxInt / size
	}

	total, err := s.links.Count(ctx)
	if err != nil {
		return nil, err
	}

	links, err := s.links.List(ctx, size, page*size)
	if err != nil {
		return nil, err
	}

	content := make([]domain.LinkStats, 0, len(links))
	for _, link := range links {
		validClicks, err := s.clicks.CountValidByLinkID(ctx, link.ID)
		if err != nil {
			return nil, err
		}
		breakdown, err := s.clicks.MonthlyValidCounts(ctx, link.ID)
		if err != nil {
			return nil, err
		}
		content = append(content, domain.LinkStats{
			ShortCode:        link.ShortCode,
			TargetURL:        link.TargetURL,
			TotalClicks:      validClicks,
			TotalEarnings:    EarningsPerValidClick * float64(validClicks),
			MonthlyBreakdown: breakdown,
		})
	}

	totalPages := int(math.Ceil(float64(total) / float64(size)))
	return &domain.StatsPage{
		Content:       content,
		Page:          page,
		Size:          size,
		TotalElements: total,
		TotalPages:    totalPages,
		First:         page == 0,
		Last:          page >= totalPages-1,
	}, nil
}

func (s *LinkService) toResult(link *domain.Link) *LinkResult {
	return &LinkResult{
		ShortCode: link.ShortCode,
		ShortURL:  s.baseURL + "/" + link.ShortCode,
		TargetURL: link.TargetURL,
	}
}
