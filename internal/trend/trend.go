// Package trend derives the direction of a price against the next-older one.
package trend

import (
	"github.com/shopspring/decimal"
)

// Direction is the display class of a trend.
type Direction string

const (
	DirectionUp      Direction = "up"
	DirectionDown    Direction = "down"
	DirectionNeutral Direction = "neutral"
)

// Labels shown next to each price.
const (
	LabelNoReference = "no reference"
	LabelIncreased   = "increased"
	LabelDecreased   = "decreased"
	LabelUnchanged   = "unchanged"
)

// Trend compares one price with the previous (older) one.
// Delta is nil when there is nothing to compare against.
type Trend struct {
	Direction Direction        `json:"direction"`
	Label     string           `json:"label"`
	Delta     *decimal.Decimal `json:"delta,omitempty"`
	DeltaText string           `json:"deltaText,omitempty"`
}

// Compute returns the trend of current relative to previous.
func Compute(current decimal.Decimal, previous *decimal.Decimal) Trend {
	if previous == nil {
		return Trend{Direction: DirectionNeutral, Label: LabelNoReference}
	}

	delta := current.Sub(*previous).Round(2)
	switch delta.Sign() {
	case 1:
		return Trend{
			Direction: DirectionUp,
			Label:     LabelIncreased,
			Delta:     &delta,
			DeltaText: "+" + delta.StringFixed(2),
		}
	case -1:
		return Trend{
			Direction: DirectionDown,
			Label:     LabelDecreased,
			Delta:     &delta,
			DeltaText: "-" + delta.Abs().StringFixed(2),
		}
	default:
		return Trend{
			Direction: DirectionNeutral,
			Label:     LabelUnchanged,
			Delta:     &delta,
			DeltaText: "0.00",
		}
	}
}

// Sequence computes trends for prices ordered newest-first: element i is
// compared with element i+1, and the oldest element has no reference.
func Sequence(prices []decimal.Decimal) []Trend {
	trends := make([]Trend, len(prices))
	for i := range prices {
		var previous *decimal.Decimal
		if i+1 < len(prices) {
			previous = &prices[i+1]
		}
		trends[i] = Compute(prices[i], previous)
	}
	return trends
}
