package cache

import (
	"context"

	"shortlink/internal/domain"
	"shortlink/internal/usecase"
)

// CachedLinkRepository decorates a LinkRepository with read-through caching
// of code lookups. Every other operation delegates untouched.
type CachedLinkRepository struct {
	repo  usecase.LinkRepository
	cache LinkCache
}

var _ usecase.LinkRepository = (*CachedLinkRepository)(nil)

// NewCachedLinkRepository wraps repo with cache.
func NewCachedLinkRepository(repo usecase.LinkRepository, cache LinkCache) *CachedLinkRepository {
	return &CachedLinkRepository{repo: repo, cache: cache}
}

// FindByShortCode checks the cache before the store. Only fully-coded links
// are cached; a link is never observable by code before its code is set, so
// cached entries are always complete.
func (r *CachedLinkRepository) FindByShortCode(ctx context.Context, code string) (*domain.Link, error) {
	if cached, err := r.cache.Get(ctx, code); err == nil && cached != nil {
		return cached, nil
	}

	link, err := r.repo.FindByShortCode(ctx, code)
	if err != nil {
		return nil, err
	}

	_ = r.cache.Set(ctx, link)
	return link, nil
}

func (r *CachedLinkRepository) Create(ctx context.Context, targetURL string) (*domain.Link, error) {
	return r.repo.Create(ctx, targetURL)
}

func (r *CachedLinkRepository) FindByTargetURL(ctx context.Context, targetURL string) (*domain.Link, error) {
	return r.repo.FindByTargetURL(ctx, targetURL)
}

// List is not cached: it pages over changing data.
func (r *CachedLinkRepository) List(ctx context.Context, limit, offset int) ([]*domain.Link, error) {
	return r.repo.List(ctx, limit, offset)
}

func (r *CachedLinkRepository) Count(ctx context.Context) (int64, error) {
	return r.repo.Count(ctx)
}
