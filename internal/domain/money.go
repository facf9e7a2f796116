package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// MinorUnits converts a major-unit amount such as "1299.90" to minor units,
// truncating anything below one minor unit.
func MinorUnits(major string) (int64, error) {
	d, err := decimal.NewFromString(major)
	if err != nil {
		return 0, fmt.Errorf("parse amount %q: %w", major, err)
	}
	minor := d.Mul(hundred).Truncate(0)
	if !minor.BigInt().IsInt64() {
		return 0, fmt.Errorf("amount %q out of range", major)
	}
	return minor.IntPart(), nil
}

// MajorUnits formats minor units back to a major-unit decimal string
func MajorUnits(minor int64) string {
	return decimal.New(minor, -2).StringFixed(2)
}
