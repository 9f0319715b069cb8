package currencyutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{"Plain", "1234.56", "1234.56", false},
		{"US thousands separator", "1,234.56", "1234.56", false},
		{"Thousands only comma", "1,234", "1234", false},
		{"European format", "1.234,56", "1234.56", false},
		{"Comma decimal", "1234,56", "1234.56", false},
		{"Swiss apostrophe", "1'234.56", "1234.56", false},
		{"Negative", "-50.00", "-50", false},
		{"Currency symbol", "$1,234.56", "1234.56", false},
		{"CHF prefix", "CHF 1'000.00", "1000", false},
		{"Empty is zero", "", "0", false},
		{"Garbage", "12abc", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			amount, err := ParseAmount(tc.input)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, amount.String())
		})
	}
}

func TestStandardizeAmount(t *testing.T) {
	assert.Equal(t, "1234.56", StandardizeAmount("€1.234,56"))
	assert.Equal(t, "1234.56", StandardizeAmount("1 234,56"))
	assert.Equal(t, "-1234.56", StandardizeAmount("-1,234.56"))
}
