package recon

import (
	"testing"
	"time"

	"fjacquet/ledger-recon/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func tx(ledger models.LedgerID, amount string, y int, m time.Month, d int, desc string) models.Transaction {
	return models.Transaction{
		Date:        date(y, m, d),
		Description: desc,
		Amount:      decimal.RequireFromString(amount).Round(2),
		Ledger:      ledger,
	}
}

func TestGroup(t *testing.T) {
	transactions := []models.Transaction{
		tx("bank", "100.00", 2024, time.January, 5, "first"),
		tx("bank", "50.00", 2024, time.January, 6, "other"),
		tx("bank", "100.00", 2024, time.January, 7, "second"),
	}

	buckets := Group(transactions)
	require.Len(t, buckets, 2)

	hundred := buckets["100.00"]
	require.NotNil(t, hundred)
	require.Equal(t, 2, hundred.Count())
	assert.Equal(t, "first", hundred.Occurrences[0].Description, "bucket preserves source row order")
	assert.Equal(t, "second", hundred.Occurrences[1].Description)

	fifty := buckets["50.00"]
	require.NotNil(t, fifty)
	assert.Equal(t, 1, fifty.Count())
}

func TestGroupRoundedAmountsShareBucket(t *testing.T) {
	transactions := []models.Transaction{
		tx("bank", "10.00", 2024, time.January, 5, "a"),
		{Date: date(2024, time.January, 6), Description: "b", Amount: decimal.RequireFromString("10.001").Round(2), Ledger: "bank"},
	}

	buckets := Group(transactions)
	require.Len(t, buckets, 1)
	assert.Equal(t, 2, buckets["10.00"].Count())
}

func TestGroupEmptyInput(t *testing.T) {
	assert.Empty(t, Group(nil))
}
