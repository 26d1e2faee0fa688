package domain

import "time"

const (
	// MaxTargetURLLength caps target URLs at the links table column size.
	MaxTargetURLLength = 2048

	// MaxShortCodeLength caps short codes; creation fails rather than
	// assign a longer code.
	MaxShortCodeLength = 10
)

// Link is a shortened link. The identifier is assigned by the store on
// insert and never reused; the short code is a pure function of the
// identifier and immutable once set, as is the target URL. Exactly one
// Link exists per distinct target URL.
type Link struct {
	ID        int64     `json:"id"`
	ShortCode string    `json:"short_code"`
	TargetURL string    `json:"target_url"`
	CreatedAt time.Time `json:"created_at"`
}

// Click is one recorded redirect event. Validity is decided once by the
// fraud check at creation; earnings follow from validity and are never
// recomputed. A Click is immutable after insert.
type Click struct {
	ID        int64     `json:"id"`
	LinkID    int64     `json:"link_id"`
	ClickedAt time.Time `json:"clicked_at"`
	IsValid   bool      `json:"is_valid"`
	Earnings  float64   `json:"earnings"`
}
