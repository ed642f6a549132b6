package percent

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Complete returns the completion percentage as a truncated integer.
// Truncation is deliberate: the display must never round up past the real
// progress. A non-positive total yields exactly 0.
func Complete(completed, total float64) int {
	if total <= 0 {
		return 0
	}
	ratio := decimal.NewFromFloat(completed).
		Div(decimal.NewFromFloat(total)).
		Mul(hundred)
	return int(ratio.IntPart())
}
