package validate

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrAmountTooSmall    = errors.New("amount must be at least 0.50")
	ErrAmountTooLarge    = errors.New("amount must not exceed 1000.00")
	ErrAmountPrecision   = errors.New("amount must be expressed in whole cents")
	ErrAmountNotPositive = errors.New("amount must be positive")
)

var (
	minPledgeAmount = decimal.RequireFromString("0.50")
	maxPledgeAmount = decimal.RequireFromString("1000.00")
	centFactor      = decimal.NewFromInt(100)
)

// IsAmountError reports whether err is one of the amount validation
// failures above.
func IsAmountError(err error) bool {
	return errors.Is(err, ErrAmountTooSmall) ||
		errors.Is(err, ErrAmountTooLarge) ||
		errors.Is(err, ErrAmountPrecision) ||
		errors.Is(err, ErrAmountNotPositive)
}

func hasCentPrecision(amount decimal.Decimal) bool {
	return amount.Equal(amount.Round(2))
}

// PledgeAmountToCents validates a pledged total against the allowed
// bounds and cent precision, and converts it to integer cents.
func PledgeAmountToCents(amount decimal.Decimal) (int64, error) {
	if !hasCentPrecision(amount) {
		return 0, ErrAmountPrecision
	}
	if amount.LessThan(minPledgeAmount) {
		return 0, ErrAmountTooSmall
	}
	if amount.GreaterThan(maxPledgeAmount) {
		return 0, ErrAmountTooLarge
	}
	return amount.Mul(centFactor).IntPart(), nil
}

// DeltaAmountToCents validates an amount-sent delta: positive, whole
// cents. The upper bound is enforced against the pledge itself.
func DeltaAmountToCents(amount decimal.Decimal) (int64, error) {
	if !hasCentPrecision(amount) {
		return 0, ErrAmountPrecision
	}
	if !amount.IsPositive() {
		return 0, ErrAmountNotPositive
	}
	return amount.Mul(centFactor).IntPart(), nil
}

// CentsToDecimal renders integer cents back as a two-decimal amount.
func CentsToDecimal(cents int64) decimal.Decimal {
	return decimal.NewFromInt(cents).Div(centFactor)
}
