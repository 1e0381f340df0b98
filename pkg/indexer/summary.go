package indexer

import (
	"fmt"
	"io"
	"strings"
)

// Summary tallies one indexing run.
type Summary struct {
	Total   int
	Success int
	Errors  int
	// Missing and Failed hold reading ids in catalog order.
	Missing []string
	Failed  []string
}

// OK reports whether every reading was indexed.
func (s Summary) OK() bool {
	return s.Errors == 0 && s.Success == s.Total
}

// Print writes the end-of-run summary block.
func (s Summary) Print(w io.Writer) {
	rule := strings.Repeat("=", 40)

	fmt.Fprintf(w, "\n%s\n", rule)
	fmt.Fprintln(w, "Indexing complete!")
	fmt.Fprintf(w, "  Success: %d\n", s.Success)
	fmt.Fprintf(w, "  Errors: %d\n", s.Errors)
	if len(s.Missing) > 0 {
		fmt.Fprintf(w, "  Missing files: %s\n", strings.Join(s.Missing, ", "))
	}
	if len(s.Failed) > 0 {
		fmt.Fprintf(w, "  Failed: %s\n", strings.Join(s.Failed, ", "))
	}
	if skipped := s.Total - s.Success - s.Errors; skipped > 0 {
		fmt.Fprintf(w, "  Not processed: %d\n", skipped)
	}
	fmt.Fprintf(w, "%s\n\n", rule)
}
