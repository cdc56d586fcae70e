package vitrine

import (
	"strconv"
	"strings"
)

// PlaceholderPhotoURL substitutes for records that arrive without a
// photo. Renderers may special-case it.
const PlaceholderPhotoURL = "about:blank#placeholder"

// Record is one immutable external datum: a person shown on a tile. The
// engine only reads records; ownership stays with the data source.
type Record struct {
	Name     string
	PhotoURL string
	Country  string
	Interest string
	Age      int

	// NetWorth is in whole currency units. NetWorthKnown is false when
	// the source value was absent or unparsable; NetWorth is zero then.
	NetWorth      float64
	NetWorthKnown bool
}

// row is the loose wire shape of one tabular record. Numeric columns
// arrive as numbers or strings depending on the upstream export, so both
// are accepted.
type row struct {
	Name     string `json:"name"`
	Photo    string `json:"photo"`
	Country  string `json:"country"`
	Interest string `json:"interest"`
	Age      any    `json:"age"`
	NetWorth any    `json:"netWorth"`
}

// normalizeRow converts a loose row into a typed Record, degrading
// malformed optional fields to fallbacks instead of failing: a missing
// photo becomes PlaceholderPhotoURL and an unparsable net worth is
// marked unknown.
func normalizeRow(r row) Record {
	rec := Record{
		Name:     strings.TrimSpace(r.Name),
		PhotoURL: strings.TrimSpace(r.Photo),
		Country:  strings.TrimSpace(r.Country),
		Interest: strings.TrimSpace(r.Interest),
	}
	if rec.PhotoURL == "" {
		rec.PhotoURL = PlaceholderPhotoURL
	}
	if age, ok := looseNumber(r.Age); ok && age >= 0 {
		rec.Age = int(age)
	}
	if nw, ok := looseNumber(r.NetWorth); ok {
		rec.NetWorth = nw
		rec.NetWorthKnown = true
	}
	return rec
}

// looseNumber extracts a float from a JSON value that may be a number or
// a formatted string such as "$1,200,000".
func looseNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case string:
		s := strings.TrimSpace(n)
		s = strings.TrimPrefix(s, "$")
		s = strings.ReplaceAll(s, ",", "")
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
