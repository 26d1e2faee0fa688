package usecase_test

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"shortlink/internal/domain"
	"shortlink/internal/testutil/mocks"
	"shortlink/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testBaseURL = "http://localhost:8080"

func newTestService(t *testing.T) (*usecase.LinkService, *mocks.MockLinkRepository, *mocks.MockClickRepository, *mocks.MockChecker) {
	links := mocks.NewMockLinkRepository(t)
	clicks := mocks.NewMockClickRepository(t)
	checker := mocks.NewMockChecker(t)
	service := usecase.NewLinkService(links, clicks, checker, zap.NewNop(), testBaseURL)
	return service, links, clicks, checker
}

// TestCreateShortLink_NewTarget_ReturnsStoredCode verifies the single
// atomic insert for a first-seen target URL.
func TestCreateShortLink_NewTarget_ReturnsStoredCode(t *testing.T) {
	service, links, _, _ := newTestService(t)
	ctx := context.Background()
	target := "https://example.com/a"

	links.EXPECT().FindByTargetURL(ctx, target).Return(nil, domain.ErrLinkNotFound)
	// 97 encodes to "1Z" under the digits, uppercase, lowercase alphabet.
	links.EXPECT().Create(ctx, target).Return(&domain.Link{
		ID:        97,
		ShortCode: "1Z",
		TargetURL: target,
		CreatedAt: time.Now().UTC(),
	}, nil)

	result, err := service.CreateShortLink(ctx, target)

	require.NoError(t, err)
	assert.Equal(t, "1Z", result.ShortCode)
	assert.Equal(t, testBaseURL+"/1Z", result.ShortURL)
	assert.Equal(t, target, result.TargetURL)
}

// TestCreateShortLink_InvalidTarget_RejectedBeforeStore verifies the
// service-side URL guard fires without touching the repository.
func TestCreateShortLink_InvalidTarget_RejectedBeforeStore(t *testing.T) {
	service, _, _, _ := newTestService(t)
	ctx := context.Background()

	for _, target := range []string{
		"",
		"ftp://example.com/file",
		"not a url",
		"https://",
		"https://example.com/" + strings.Repeat("a", domain.MaxTargetURLLength),
	} {
		_, err := service.CreateShortLink(ctx, target)
		assert.ErrorIs(t, err, domain.ErrInvalidURL, "target %q", target)
	}
}

// TestCreateShortLink_ExistingTarget_ReturnsSameLink verifies idempotent
// creation: a known target returns the stored record untouched.
func TestCreateShortLink_ExistingTarget_ReturnsSameLink(t *testing.T) {
	service, links, _, _ := newTestService(t)
	ctx := context.Background()
	target := "https://example.com/a"

	links.EXPECT().FindByTargetURL(ctx, target).Return(&domain.Link{
		ID:        1,
		ShortCode: "1",
		TargetURL: target,
	}, nil)

	result, err := service.CreateShortLink(ctx, target)

	require.NoError(t, err)
	assert.Equal(t, "1", result.ShortCode)
	assert.Equal(t, testBaseURL+"/1", result.ShortURL)
}

// TestCreateShortLink_DuplicateInsert_RereadsWinner verifies the race path:
// the dedup lookup misses, the insert hits the unique constraint, and the
// winner's record is returned.
func TestCreateShortLink_DuplicateInsert_RereadsWinner(t *testing.T) {
	service, links, _, _ := newTestService(t)
	ctx := context.Background()
	target := "https://example.com/raced"
	winner := &domain.Link{ID: 5, ShortCode: "5", TargetURL: target}

	links.EXPECT().FindByTargetURL(ctx, target).Return(nil, domain.ErrLinkNotFound).Once()
	links.EXPECT().Create(ctx, target).Return(nil, domain.ErrDuplicateTargetURL)
	links.EXPECT().FindByTargetURL(ctx, target).Return(winner, nil).Once()

	result, err := service.CreateShortLink(ctx, target)

	require.NoError(t, err)
	assert.Equal(t, "5", result.ShortCode)
	assert.Equal(t, target, result.TargetURL)
}

// TestCreateShortLink_StoreError_Propagates verifies unexpected store
// failures are reported upward without retry.
func TestCreateShortLink_StoreError_Propagates(t *testing.T) {
	service, links, _, _ := newTestService(t)
	ctx := context.Background()
	storeErr := errors.New("disk full")

	links.EXPECT().FindByTargetURL(ctx, "https://example.com").Return(nil, storeErr)

	_, err := service.CreateShortLink(ctx, "https://example.com")
	assert.ErrorIs(t, err, storeErr)
}

// TestRedirectAndTrack_UnknownCode_RecordsNothing verifies a missing code
// fails before the fraud check and before any click insert.
func TestRedirectAndTrack_UnknownCode_RecordsNothing(t *testing.T) {
	service, links, _, _ := newTestService(t)
	ctx := context.Background()

	links.EXPECT().FindByShortCode(ctx, "nope").Return(nil, domain.ErrLinkNotFound)

	_, err := service.RedirectAndTrack(ctx, "nope")
	assert.ErrorIs(t, err, domain.ErrLinkNotFound)
}

// TestRedirectAndTrack_ValidClick_RecordsUnitEarnings verifies a click the
// checker approves is stored with the fixed unit amount.
func TestRedirectAndTrack_ValidClick_RecordsUnitEarnings(t *testing.T) {
	service, links, clicks, checker := newTestService(t)
	ctx := context.Background()
	link := &domain.Link{ID: 3, ShortCode: "3", TargetURL: "https://example.com/a"}

	links.EXPECT().FindByShortCode(ctx, "3").Return(link, nil)
	checker.EXPECT().Validate(ctx).Return(true, nil)
	clicks.EXPECT().Insert(ctx, int64(3), true, usecase.EarningsPerValidClick).Return(&domain.Click{ID: 1}, nil)

	target, err := service.RedirectAndTrack(ctx, "3")

	require.NoError(t, err)
	assert.Equal(t, "https://example.com/a", target)
}

// TestRedirectAndTrack_FraudulentClick_RecordsZeroEarnings verifies a
// rejected click is still recorded, with zero earnings.
func TestRedirectAndTrack_FraudulentClick_RecordsZeroEarnings(t *testing.T) {
	service, links, clicks, checker := newTestService(t)
	ctx := context.Background()
	link := &domain.Link{ID: 3, ShortCode: "3", TargetURL: "https://example.com/a"}

	links.EXPECT().FindByShortCode(ctx, "3").Return(link, nil)
	checker.EXPECT().Validate(ctx).Return(false, nil)
	clicks.EXPECT().Insert(ctx, int64(3), false, 0.0).Return(&domain.Click{ID: 2}, nil)

	target, err := service.RedirectAndTrack(ctx, "3")

	require.NoError(t, err)
	assert.Equal(t, "https://example.com/a", target)
}

// TestRedirectAndTrack_CancelledCheck_NoPartialClick verifies cancellation
// during the fraud check aborts before any write.
func TestRedirectAndTrack_CancelledCheck_NoPartialClick(t *testing.T) {
	service, links, _, checker := newTestService(t)
	ctx := context.Background()
	link := &domain.Link{ID: 3, ShortCode: "3", TargetURL: "https://example.com/a"}

	links.EXPECT().FindByShortCode(ctx, "3").Return(link, nil)
	checker.EXPECT().Validate(ctx).Return(false, context.Canceled)

	_, err := service.RedirectAndTrack(ctx, "3")
	assert.ErrorIs(t, err, context.Canceled)
}

// TestRedirectAndTrack_InsertFails_PropagatesError verifies failed click
// inserts are not retried or swallowed.
func TestRedirectAndTrack_InsertFails_PropagatesError(t *testing.T) {
	service, links, clicks, checker := newTestService(t)
	ctx := context.Background()
	link := &domain.Link{ID: 3, ShortCode: "3", TargetURL: "https://example.com/a"}
	insertErr := errors.New("locked")

	links.EXPECT().FindByShortCode(ctx, "3").Return(link, nil)
	checker.EXPECT().Validate(ctx).Return(true, nil)
	clicks.EXPECT().Insert(ctx, int64(3), true, usecase.EarningsPerValidClick).Return(nil, insertErr)

	_, err := service.RedirectAndTrack(ctx, "3")
	assert.ErrorIs(t, err, insertErr)
}

// TestGetStats_ComputesEarningsByMultiplication verifies total earnings is
// the unit times the valid-click count, with the breakdown passed through.
func TestGetStats_ComputesEarningsByMultiplication(t *testing.T) {
	service, links, clicks, _ := newTestService(t)
	ctx := context.Background()
	link := &domain.Link{ID: 1, ShortCode: "1", TargetURL: "https://example.com/a"}
	breakdown := domain.MonthlyBreakdown{
		{Month: "2026-09", Clicks: 2},
		{Month: "2026-08", Clicks: 1},
	}

	links.EXPECT().Count(ctx).Return(int64(1), nil)
	links.EXPECT().List(ctx, 10, 0).Return([]*domain.Link{link}, nil)
	clicks.EXPECT().CountValidByLinkID(ctx, int64(1)).Return(int64(3), nil)
	clicks.EXPECT().MonthlyValidCounts(ctx, int64(1)).Return(breakdown, nil)

	page, err := service.GetStats(ctx, 0, 10)

	require.NoError(t, err)
	require.Len(t, page.Content, 1)
	stats := page.Content[0]
	assert.Equal(t, int64(3), stats.TotalClicks)
	assert.InDelta(t, 0.15, stats.TotalEarnings, 1e-9)
	assert.Equal(t, breakdown, stats.MonthlyBreakdown)
}

// TestGetStats_PaginationMetadata verifies the envelope over 15 links with
// page size 5.
func TestGetStats_PaginationMetadata(t *testing.T) {
	service, links, clicks, _ := newTestService(t)
	ctx := context.Background()

	pageLinks := make([]*domain.Link, 5)
	for i := range pageLinks {
		pageLinks[i] = &domain.Link{ID: int64(i + 1), ShortCode: "c", TargetURL: "https://example.com"}
	}

	links.EXPECT().Count(mock.Anything).Return(int64(15), nil)
	links.EXPECT().List(mock.Anything, 5, 0).Return(pageLinks, nil).Once()
	links.EXPECT().List(mock.Anything, 5, 10).Return(pageLinks, nil).Once()
	clicks.EXPECT().CountValidByLinkID(mock.Anything, mock.Anything).Return(int64(0), nil)
	clicks.EXPECT().MonthlyValidCounts(mock.Anything, mock.Anything).Return(domain.MonthlyBreakdown{}, nil)

	first, err := service.GetStats(ctx, 0, 5)
	require.NoError(t, err)
	assert.Len(t, first.Content, 5)
	assert.Equal(t, int64(15), first.TotalElements)
	assert.Equal(t, 3, first.TotalPages)
	assert.True(t, first.First)
	assert.False(t, first.Last)

	last, err := service.GetStats(ctx, 2, 5)
	require.NoError(t, err)
	assert.False(t, last.First)
	assert.True(t, last.Last)
}

// TestGetStats_PageBeyondData_EmptyContentCorrectTotals verifies pages past
// the available data keep accurate metadata.
func TestGetStats_PageBeyondData_EmptyContentCorrectTotals(t *testing.T) {
	service, links, _, _ := newTestService(t)
	ctx := context.Background()

	links.EXPECT().Count(ctx).Return(int64(3), nil)
	links.EXPECT().List(ctx, 10, 50).Return([]*domain.Link{}, nil)

	page, err := service.GetStats(ctx, 5, 10)

	require.NoError(t, err)
	assert.Empty(t, page.Content)
	assert.Equal(t, int64(3), page.TotalElements)
	assert.Equal(t, 1, page.TotalPages)
	assert.False(t, page.First)
	assert.True(t, page.Last)
}

// TestGetStats_HugePageIndex_OffsetStaysNonNegative verifies an extreme
// page index cannot wrap the list offset and surface page-0 rows.
func TestGetStats_HugePageIndex_OffsetStaysNonNegative(t *testing.T) {
	service, links, _, _ := newTestService(t)
	ctx := context.Background()

	links.EXPECT().Count(ctx).Return(int64(3), nil)
	links.EXPECT().
		List(ctx, 100, mock.MatchedBy(func(offset int) bool { return offset >= 0 })).
		Return([]*domain.Link{}, nil)

	page, err := service.GetStats(ctx, math.MaxInt, 100)

	require.NoError(t, err)
	assert.Empty(t, page.Content)
	assert.Equal(t, int64(3), page.TotalElements)
	assert.False(t, page.First)
	assert.True(t, page.Last)
}

// TestGetStats_NoLinks_FirstAndLast verifies the empty-store envelope.
func TestGetStats_NoLinks_FirstAndLast(t *testing.T) {
	service, links, _, _ := newTestService(t)
	ctx := context.Background()

	links.EXPECT().Count(ctx).Return(int64(0), nil)
	links.EXPECT().List(ctx, 10, 0).Return([]*domain.Link{}, nil)

	page, err := service.GetStats(ctx, 0, 10)

	require.NoError(t, err)
	assert.Empty(t, page.Content)
	assert.Equal(t, 0, page.TotalPages)
	assert.True(t, page.First)
	assert.True(t, page.Last)
}
