package recon

import (
	"sort"

	"fjacquet/ledger-recon/internal/models"
)

// Classify performs a full outer join of the two bucket maps on the amount
// key. Amounts with equal occurrence counts are dropped silently; every
// amount with differing counts yields exactly one MismatchRecord. The result
// is sorted by ascending amount so output never depends on map iteration
// order.
func Classify(bucketsA, bucketsB map[string]*models.Bucket) []models.MismatchRecord {
	return classify(unionKeys(bucketsA, bucketsB), bucketsA, bucketsB)
}

// unionKeys collects every amount key present in either bucket map. Its size
// is the number of distinct amounts a reconciliation run compares.
func unionKeys(bucketsA, bucketsB map[string]*models.Bucket) map[string]bool {
	keys := make(map[string]bool, len(bucketsA)+len(bucketsB))
	for k := range bucketsA {
		keys[k] = true
	}
	for k := range bucketsB {
		keys[k] = true
	}
	return keys
}

func classify(keys map[string]bool, bucketsA, bucketsB map[string]*models.Bucket) []models.MismatchRecord {
	records := make([]models.MismatchRecord, 0)
	for key := range keys {
		a := bucketsA[key]
		b := bucketsB[key]

		record := models.MismatchRecord{}
		if a != nil {
			record.Amount = a.Amount
			record.CountA = a.Count()
			record.OccurrencesA = a.Occurrences
		}
		if b != nil {
			record.Amount = b.Amount
			record.CountB = b.Count()
			record.OccurrencesB = b.Occurrences
		}

		if record.CountA == record.CountB {
			continue
		}
		records = append(records, record)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Amount.LessThan(records[j].Amount)
	})

	return records
}
