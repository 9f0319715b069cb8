// Package report renders a reconciliation result as a human-readable text
// report. The output is not meant for machine parsing.
package report

import (
	"bytes"
	"fmt"
	"io"

	"fjacquet/ledger-recon/internal/dateutils"
	"fjacquet/ledger-recon/internal/models"
	"fjacquet/ledger-recon/internal/recon"
)

// Write renders the result to w: one section per excess direction, then a
// summary line. Output is byte-identical across runs for identical inputs;
// the engine already sorts mismatches by amount.
func Write(w io.Writer, result *recon.Result) error {
	var buf bytes.Buffer

	writeSection(&buf, result, true)
	writeSection(&buf, result, false)

	fmt.Fprintf(&buf, "Compared %d amounts: %d mismatched, %d fully explained by date tolerance.\n",
		result.BucketsCompared, len(result.Mismatches), result.SuppressedCount())

	_, err := w.Write(buf.Bytes())
	return err
}

// writeSection prints the mismatches whose excess side is ledger A when
// excessInA is true, ledger B otherwise. Fully explained mismatches print
// nothing, matching lines are never reported.
func writeSection(buf *bytes.Buffer, result *recon.Result, excessInA bool) {
	excessLedger, otherLedger := result.LedgerA, result.LedgerB
	if !excessInA {
		excessLedger, otherLedger = result.LedgerB, result.LedgerA
	}

	fmt.Fprintf(buf, "Transactions with more occurrences in %s than in %s\n", excessLedger, otherLedger)
	fmt.Fprintf(buf, "%3s %10s %6s %6s\n", "", "Amount", result.LedgerA, result.LedgerB)
	fmt.Fprintf(buf, "%3s %10s %6s %6s\n", "", "------", "------", "------")

	idx := 0
	for _, m := range result.Mismatches {
		if m.Record.ExcessInA() != excessInA {
			continue
		}
		unexplained := m.Unexplained()
		if len(unexplained) == 0 {
			continue
		}
		idx++
		fmt.Fprintf(buf, "%3d %10s %6d %6d\n", idx,
			m.Record.Amount.StringFixed(2), m.Record.CountA, m.Record.CountB)
		fmt.Fprintf(buf, "    Possible mismatches:\n")
		for _, o := range unexplained {
			writeOccurrence(buf, o.Occurrence)
		}
		fmt.Fprintln(buf)
	}
	fmt.Fprintln(buf)
}

func writeOccurrence(buf *bytes.Buffer, o models.Occurrence) {
	fmt.Fprintf(buf, "    %s: %s (no match)\n", dateutils.ToISODate(o.Date), o.Description)
}
