package domain

import (
	"bytes"
	"encoding/json"
)

// MonthCount is the number of valid clicks recorded in one calendar month.
type MonthCount struct {
	Month  string
	Clicks int64
}

// MonthlyBreakdown lists per-month valid-click counts, most recent month
// first. It marshals as a JSON object whose keys keep that order, which a
// plain map cannot guarantee.
type MonthlyBreakdown []MonthCount

// MarshalJSON renders the breakdown as {"YYYY-MM": count, ...} preserving
// slice order.
func (b MonthlyBreakdown) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, mc := range b {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(mc.Month)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		count, err := json.Marshal(mc.Clicks)
		if err != nil {
			return nil, err
		}
		buf.Write(count)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads the object form back into a slice, keeping the key
// order of the document.
func (b *MonthlyBreakdown) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	if _, err := dec.Token(); err != nil { // opening brace
		return err
	}
	out := MonthlyBreakdown{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		month := keyTok.(string)
		var clicks int64
		if err := dec.Decode(&clicks); err != nil {
			return err
		}
		out = append(out, MonthCount{Month: month, Clicks: clicks})
	}
	if _, err := dec.Token(); err != nil { // closing brace
		return err
	}
	*b = out
	return nil
}

// LinkStats is the derived, read-time view of one link. Nothing here is
// stored: counts come from aggregates over clicks and total earnings is
// the per-click unit multiplied by the valid-click count.
type LinkStats struct {
	ShortCode        string           `json:"short_code"`
	TargetURL        string           `json:"target_url"`
	TotalClicks      int64            `json:"total_clicks"`
	TotalEarnings    float64          `json:"total_earnings"`
	MonthlyBreakdown MonthlyBreakdown `json:"monthly_breakdown"`
}

// StatsPage is one page of link statistics with pagination metadata.
// Page indexes are zero-based.
type StatsPage struct {
	Content       []LinkStats `json:"content"`
	Page          int         `json:"page"`
	Size          int         `json:"size"`
	TotalElements int64       `json:"total_elements"`
	TotalPages    int         `json:"total_pages"`
	First         bool        `json:"first"`
	Last          bool        `json:"last"`
}
