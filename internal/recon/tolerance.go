package recon

import (
	"fjacquet/ledger-recon/internal/models"
)

// AnnotatedOccurrence is an occurrence from the excess side of a mismatch,
// marked as explained when a same-amount counterpart exists within the date
// tolerance window.
type AnnotatedOccurrence struct {
	models.Occurrence
	Explained bool
}

// Matcher suppresses mismatch occurrences that have a plausible same-amount
// counterpart in the other ledger within ToleranceDays calendar days.
//
// By default the check is a per-occurrence existence test: one counterpart
// may explain any number of occurrences. StrictPairing switches to
// one-to-one consumable pairing where each counterpart explains at most one
// occurrence, pairing in source row order.
type Matcher struct {
	ToleranceDays int
	StrictPairing bool
}

// Annotate marks each excess occurrence as explained or unexplained against
// the counterpart list. The comparison uses calendar-day distance on
// date-only values, symmetric in both directions; a distance of exactly
// ToleranceDays still explains.
func (m Matcher) Annotate(excess, counterpart []models.Occurrence) []AnnotatedOccurrence {
	annotated := make([]AnnotatedOccurrence, 0, len(excess))

	consumed := make([]bool, len(counterpart))
	for _, o := range excess {
		explained := false
		for i, c := range counterpart {
			if m.StrictPairing && consumed[i] {
				continue
			}
			if models.DayDistance(o.Date, c.Date) <= m.ToleranceDays {
				explained = true
				if m.StrictPairing {
					consumed[i] = true
				}
				break
			}
		}
		annotated = append(annotated, AnnotatedOccurrence{Occurrence: o, Explained: explained})
	}

	return annotated
}

// Unexplained returns only the occurrences that no counterpart explains.
func Unexplained(annotated []AnnotatedOccurrence) []AnnotatedOccurrence {
	out := make([]AnnotatedOccurrence, 0, len(annotated))
	for _, a := range annotated {
		if !a.Explained {
			out = append(out, a)
		}
	}
	return out
}
