package pagination

import (
	"math"
	"strconv"
	"strings"

	"gorm.io/gorm"
)

// Window bounds a client-supplied row limit.
type Window struct {
	Min     int
	Max     int
	Default int
}

// FeedWindow is the limit window of the community price feed.
var FeedWindow = Window{Min: 20, Max: 300, Default: 120}

// Clamp parses raw as a number and fits it into the window. Missing,
// unparsable and non-finite input yields Default; fractions are truncated
// toward zero before clamping.
func (w Window) Clamp(raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return w.Default
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return w.Default
	}
	v = math.Trunc(v)
	if v < float64(w.Min) {
		return w.Min
	}
	if v > float64(w.Max) {
		return w.Max
	}
	return int(v)
}

// ClampInt fits n into the window.
func (w Window) ClampInt(n int) int {
	if n < w.Min {
		return w.Min
	}
	if n > w.Max {
		return w.Max
	}
	return n
}

// Limit returns a GORM scope that applies LIMIT n.
func Limit(n int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Limit(n)
	}
}
