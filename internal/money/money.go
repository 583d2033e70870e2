// Package money converts between decimal text amounts and integer cents.
// All balance arithmetic in the ledger happens on int64 cents; this package
// is the only place amounts cross between text and that representation.
package money

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Parse converts a decimal numeral into cents. Fractional parts beyond two
// places are rounded half-to-even before conversion. Malformed input and
// values outside the int64 cents range are reported as errors.
func Parse(text string) (int64, error) {
	d, err := decimal.NewFromString(text)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", text, err)
	}

	cents := d.RoundBank(2).Shift(2)
	bi := cents.BigInt()
	if !bi.IsInt64() {
		return 0, fmt.Errorf("amount %q overflows the supported range", text)
	}

	return bi.Int64(), nil
}

// Format renders cents as "<units>.<two digits>", e.g. 10000 -> "100.00".
func Format(cents int64) string {
	frac := cents % 100
	if frac < 0 {
		frac = -frac
	}
	return fmt.Sprintf("%d.%02d", cents/100, frac)
}
