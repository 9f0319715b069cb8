package recon

import (
	"fjacquet/ledger-recon/internal/logging"
	"fjacquet/ledger-recon/internal/models"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

func init() {
	logging.Register(log)
}

// SetLogger sets a custom logger for this package
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Mismatch is one classified amount mismatch with its excess-side occurrences
// annotated by the tolerance matcher.
type Mismatch struct {
	Record models.MismatchRecord
	Excess []AnnotatedOccurrence
}

// Unexplained returns the excess occurrences without a counterpart within
// tolerance.
func (m Mismatch) Unexplained() []AnnotatedOccurrence {
	return Unexplained(m.Excess)
}

// FullyExplained reports whether every excess occurrence has a counterpart
// within tolerance. Fully explained mismatches are suppressed from the
// report.
func (m Mismatch) FullyExplained() bool {
	return len(m.Unexplained()) == 0
}

// Result is the complete outcome of one reconciliation run.
type Result struct {
	LedgerA         models.LedgerID
	LedgerB         models.LedgerID
	BucketsCompared int
	Mismatches      []Mismatch
}

// SuppressedCount returns how many mismatched amounts the tolerance matcher
// fully explained away.
func (r *Result) SuppressedCount() int {
	n := 0
	for _, m := range r.Mismatches {
		if m.FullyExplained() {
			n++
		}
	}
	return n
}

// Reconciler runs the grouping, classification and tolerance stages over two
// normalized ledgers. It is a pure computation over immutable inputs; one
// instance per run, nothing shared.
type Reconciler struct {
	LedgerA models.LedgerID
	LedgerB models.LedgerID
	Matcher Matcher
}

// Reconcile groups both transaction sets by rounded amount, classifies the
// per-amount count mismatches, and annotates each mismatch's excess side
// against the other ledger's same-amount occurrences.
func (r Reconciler) Reconcile(transactionsA, transactionsB []models.Transaction) *Result {
	bucketsA := Group(transactionsA)
	bucketsB := Group(transactionsB)

	keys := unionKeys(bucketsA, bucketsB)
	records := classify(keys, bucketsA, bucketsB)

	mismatches := make([]Mismatch, 0, len(records))
	for _, record := range records {
		excess, counterpart := record.Excess()
		mismatches = append(mismatches, Mismatch{
			Record: record,
			Excess: r.Matcher.Annotate(excess, counterpart),
		})
	}

	log.WithFields(logrus.Fields{
		logging.FieldCount:     len(keys),
		logging.FieldTolerance: r.Matcher.ToleranceDays,
	}).Debugf("Classified %d mismatched amounts", len(mismatches))

	return &Result{
		LedgerA:         r.LedgerA,
		LedgerB:         r.LedgerB,
		BucketsCompared: len(keys),
		Mismatches:      mismatches,
	}
}
