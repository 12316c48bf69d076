package kernel

import (
	"fmt"
	"unicode/utf8"

	"bakery/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// MaxLength rejects a present string longer than limit runes.
// An absent value always passes.
func MaxLength(paramName string, value Optional[string], limit int) error {
	s, ok := value.Get()
	if !ok {
		return nil
	}
	if n := utf8.RuneCountInString(s); n > limit {
		return errs.NewValueIsInvalidErrorWithCause(
			paramName,
			fmt.Errorf("length %d exceeds %d characters", n, limit),
		)
	}
	return nil
}

// ExactLength rejects a present string whose length is not exactly n runes.
func ExactLength(paramName string, value Optional[string], n int) error {
	s, ok := value.Get()
	if !ok {
		return nil
	}
	if got := utf8.RuneCountInString(s); got != n {
		return errs.NewValueIsInvalidErrorWithCause(
			paramName,
			fmt.Errorf("length %d is not %d", got, n),
		)
	}
	return nil
}

// MaxAmount is the smallest amount that no longer fits a NUMERIC(10,2) column.
var MaxAmount = decimal.New(1, 8)

// MonetaryAmount rejects a present monetary amount below zero or one that does
// not fit NUMERIC(10,2) once rounded to cents.
func MonetaryAmount(paramName string, value Optional[decimal.Decimal]) error {
	d, ok := value.Get()
	if !ok {
		return nil
	}
	if d.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(
			paramName,
			fmt.Errorf("%s is negative", d.String()),
		)
	}
	if d.Round(2).GreaterThanOrEqual(MaxAmount) {
		return errs.NewValueIsInvalidErrorWithCause(
			paramName,
			fmt.Errorf("%s is not less than %s", d.String(), MaxAmount.String()),
		)
	}
	return nil
}

// IntInRange rejects a present integer outside [minValue, maxValue].
func IntInRange(paramName string, value Optional[int], minValue, maxValue int) error {
	v, ok := value.Get()
	if !ok {
		return nil
	}
	if v < minValue || v > maxValue {
		return errs.NewValueIsOutOfRangeError(paramName, v, minValue, maxValue)
	}
	return nil
}

// PositiveID rejects a present identifier that is zero or negative.
func PositiveID(paramName string, value Optional[int64]) error {
	id, ok := value.Get()
	if !ok {
		return nil
	}
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			paramName,
			fmt.Errorf("%d is not greater than 0", id),
		)
	}
	return nil
}
