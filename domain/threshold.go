package domain

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
	"golang.org/x/xerrors"
)

// Threshold is a USD floor a sale must strictly exceed. Never disables posting.
type Threshold struct {
	Usd   decimal.Decimal
	Never bool
}

func NewThreshold(usd float64) Threshold {
	if math.IsInf(usd, 1) || math.IsNaN(usd) {
		return Threshold{Never: true}
	}
	return Threshold{Usd: decimal.NewFromFloat(usd)}
}

func (t Threshold) Exceeded(usd decimal.Decimal) bool {
	return !t.Never && usd.GreaterThan(t.Usd)
}

func (t Threshold) String() string {
	if t.Never {
		return "never"
	}
	return "$" + t.Usd.StringFixed(2)
}

// ThresholdMatrix is collection x consumer -> threshold
type ThresholdMatrix map[Collection]map[string]Threshold

func (m ThresholdMatrix) Lookup(c Collection, consumer string) (Threshold, bool) {
	row, ok := m[c]
	if !ok {
		return Threshold{}, false
	}
	t, ok := row[consumer]
	return t, ok
}

// Validate checks every enabled collection has a threshold for every consumer
func (m ThresholdMatrix) Validate(enabled []Collection, consumers []string) error {
	for _, c := range enabled {
		for _, name := range consumers {
			if _, ok := m.Lookup(c, name); !ok {
				return xerrors.Errorf("%s/%s: %w", c, name, ErrIncompleteMatrix)
			}
		}
	}
	return nil
}

// ParseThresholdMatrix converts the config form, keys are collection names
func ParseThresholdMatrix(raw map[string]map[string]float64) (ThresholdMatrix, error) {
	m := ThresholdMatrix{}
	for name, row := range raw {
		c := Collection(name)
		if !c.Valid() {
			return nil, fmt.Errorf("unknown collection %q: %w", name, ErrBadParamInput)
		}
		m[c] = map[string]Threshold{}
		for consumer, usd := range row {
			if usd < 0 {
				return nil, fmt.Errorf("negative threshold %s/%s: %w", name, consumer, ErrBadParamInput)
			}
			m[c][consumer] = NewThreshold(usd)
		}
	}
	return m, nil
}
