package http_test

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"shortlink/internal/database"
	httphandler "shortlink/internal/delivery/http"
	"shortlink/internal/domain"
	"shortlink/internal/repository/sqlite"
	"shortlink/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// stubChecker always returns a fixed verdict without delay.
type stubChecker struct {
	verdict bool
}

func (c stubChecker) Validate(context.Context) (bool, error) {
	return c.verdict, nil
}

// setupServer wires a router against a fresh in-memory database.
func setupServer(t *testing.T, verdict bool) http.Handler {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.RunMigrations(db))

	service := usecase.NewLinkService(
		sqlite.NewLinkRepository(db),
		sqlite.NewClickRepository(db),
		stubChecker{verdict: verdict},
		zap.NewNop(),
		"http://localhost:8080",
	)
	handler := httphandler.NewHandler(service, zap.NewNop(), db)
	return httphandler.NewRouter(handler, zap.NewNop())
}

func createLink(t *testing.T, router http.Handler, target string) usecase.LinkResult {
	t.Helper()

	body, _ := json.Marshal(map[string]string{"target_url": target})
	req := httptest.NewRequest("POST", "/api/v1/links", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var result usecase.LinkResult
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&result))
	require.NotEmpty(t, result.ShortCode)
	return result
}

func getStats(t *testing.T, router http.Handler, query string) domain.StatsPage {
	t.Helper()

	req := httptest.NewRequest("GET", "/api/v1/stats"+query, nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var page domain.StatsPage
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&page))
	return page
}

// TestEndToEnd_CreateRedirectStats_TracksOneValidClick walks the whole flow
func TestEndToEnd_CreateRedirectStats_TracksOneValidClick(t *testing.T) {
	router := setupServer(t, true)

	link := createLink(t, router, "https://example.com/a")

	req := httptest.NewRequest("GET", "/"+link.ShortCode, nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	require.Equal(t, http.StatusFound, rr.Code)
	assert.Equal(t, "https://example.com/a", rr.Header().Get("Location"))

	page := getStats(t, router, "")
	require.Len(t, page.Content, 1)
	stats := page.Content[0]
	assert.Equal(t, link.ShortCode, stats.ShortCode)
	assert.Equal(t, "https://example.com/a", stats.TargetURL)
	assert.Equal(t, int64(1), stats.TotalClicks)
	assert.InDelta(t, 0.05, stats.TotalEarnings, 1e-9)
	require.Len(t, stats.MonthlyBreakdown, 1)
	assert.Equal(t, int64(1), stats.MonthlyBreakdown[0].Clicks)
}

// TestEndToEnd_FraudulentClicks_EarnNothing verifies invalid clicks count nowhere
func TestEndToEnd_FraudulentClicks_EarnNothing(t *testing.T) {
	router := setupServer(t, false)

	link := createLink(t, router, "https://example.com/b")

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest("GET", "/"+link.ShortCode, nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		require.Equal(t, http.StatusFound, rr.Code)
	}

	page := getStats(t, router, "")
	require.Len(t, page.Content, 1)
	assert.Equal(t, int64(0), page.Content[0].TotalClicks)
	assert.Zero(t, page.Content[0].TotalEarnings)
	assert.Empty(t, page.Content[0].MonthlyBreakdown)
}

// TestEndToEnd_SameTarget_ReturnsSameCode verifies idempotent creation
func TestEndToEnd_SameTarget_ReturnsSameCode(t *testing.T) {
	router := setupServer(t, true)

	first := createLink(t, router, "https://example.com/same")
	second := createLink(t, router, "https://example.com/same")

	assert.Equal(t, first.ShortCode, second.ShortCode)

	page := getStats(t, router, "")
	assert.Equal(t, int64(1), page.TotalElements)
}

// TestEndToEnd_ConcurrentCreation_ConvergesOnOneLink races many creators
func TestEndToEnd_ConcurrentCreation_ConvergesOnOneLink(t *testing.T) {
	router := setupServer(t, true)

	const workers = 8
	codes := make([]string, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			codes[i] = createLink(t, router, "https://example.com/raced").ShortCode
		}(i)
	}
	wg.Wait()

	for _, code := range codes {
		assert.Equal(t, codes[0], code)
	}

	page := getStats(t, router, "")
	assert.Equal(t, int64(1), page.TotalElements)
}

// TestEndToEnd_StatsPagination_SplitsPages verifies page envelope metadata
func TestEndToEnd_StatsPagination_SplitsPages(t *testing.T) {
	router := setupServer(t, true)

	for i := 0; i < 15; i++ {
		createLink(t, router, fmt.Sprintf("https://example.com/page/%d", i))
	}

	first := getStats(t, router, "?page=0&size=5")
	assert.Len(t, first.Content, 5)
	assert.Equal(t, int64(15), first.TotalElements)
	assert.Equal(t, 3, first.TotalPages)
	assert.True(t, first.First)
	assert.False(t, first.Last)

	last := getStats(t, router, "?page=2&size=5")
	assert.Len(t, last.Content, 5)
	assert.False(t, last.First)
	assert.True(t, last.Last)

	beyond := getStats(t, router, "?page=9&size=5")
	assert.Empty(t, beyond.Content)
	assert.Equal(t, int64(15), beyond.TotalElements)
}
