// Package recon implements the reconciliation engine: amount grouping,
// mismatch classification and tolerance-windowed suppression.
package recon

import (
	"fjacquet/ledger-recon/internal/models"
)

// Group buckets canonical transactions by their rounded amount. Within a
// bucket, occurrences keep source row order; nothing is sorted. Pure function
// of its input sequence.
func Group(transactions []models.Transaction) map[string]*models.Bucket {
	buckets := make(map[string]*models.Bucket)
	for _, tx := range transactions {
		key := models.AmountKey(tx.Amount)
		bucket, ok := buckets[key]
		if !ok {
			bucket = &models.Bucket{Amount: tx.Amount.Round(2)}
			buckets[key] = bucket
		}
		bucket.Occurrences = append(bucket.Occurrences, tx.Occurrence())
	}
	return buckets
}
