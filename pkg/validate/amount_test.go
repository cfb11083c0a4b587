package validate

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPledgeAmountToCents(t *testing.T) {
	tests := []struct {
		name        string
		amount      string
		expected    int64
		expectedErr error
	}{
		{name: "Lower bound", amount: "0.50", expected: 50},
		{name: "Upper bound", amount: "1000.00", expected: 100000},
		{name: "Mid range", amount: "50.00", expected: 5000},
		{name: "Whole number without decimals", amount: "10", expected: 1000},
		{name: "Below lower bound", amount: "0.49", expectedErr: ErrAmountTooSmall},
		{name: "Above upper bound", amount: "1000.01", expectedErr: ErrAmountTooLarge},
		{name: "Zero", amount: "0", expectedErr: ErrAmountTooSmall},
		{name: "Negative", amount: "-5.00", expectedErr: ErrAmountTooSmall},
		{name: "Sub-cent precision", amount: "10.005", expectedErr: ErrAmountPrecision},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cents, err := PledgeAmountToCents(decimal.RequireFromString(tt.amount))

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.True(t, IsAmountError(err))
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, cents)
		})
	}
}

func TestDeltaAmountToCents(t *testing.T) {
	tests := []struct {
		name        string
		amount      string
		expected    int64
		expectedErr error
	}{
		{name: "One cent", amount: "0.01", expected: 1},
		{name: "Typical delta", amount: "30.00", expected: 3000},
		{name: "Zero", amount: "0", expectedErr: ErrAmountNotPositive},
		{name: "Negative", amount: "-1.00", expectedErr: ErrAmountNotPositive},
		{name: "Sub-cent precision", amount: "1.001", expectedErr: ErrAmountPrecision},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cents, err := DeltaAmountToCents(decimal.RequireFromString(tt.amount))

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.True(t, IsAmountError(err))
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, cents)
		})
	}
}

func TestCentsToDecimal(t *testing.T) {
	assert.True(t, decimal.RequireFromString("50.00").Equal(CentsToDecimal(5000)))
	assert.True(t, decimal.RequireFromString("0.01").Equal(CentsToDecimal(1)))
}

func TestIsAmountError(t *testing.T) {
	assert.True(t, IsAmountError(ErrAmountTooSmall))
	assert.True(t, IsAmountError(ErrAmountPrecision))
	assert.False(t, IsAmountError(assert.AnError))
	assert.False(t, IsAmountError(nil))
}
