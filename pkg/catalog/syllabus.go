package catalog

import (
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"readings-index/pkg/domain"
)

const readingsPrefix = "readings/"

// Report is the outcome of checking the catalog against the syllabus page
// and the readings directory.
type Report struct {
	// Unlinked holds ids of catalog entries whose file the syllabus never links.
	Unlinked []string
	// Uncatalogued holds linked PDF paths that have no catalog entry.
	Uncatalogued []string
	// DuplicateIDs holds ids used by more than one entry.
	DuplicateIDs []string
	// MissingFiles holds ids of entries whose file is not on disk.
	MissingFiles []string
}

// OK reports whether the check found nothing to fix.
func (r Report) OK() bool {
	return len(r.Unlinked) == 0 && len(r.Uncatalogued) == 0 &&
		len(r.DuplicateIDs) == 0 && len(r.MissingFiles) == 0
}

// ParseSyllabusLinks returns the PDF paths linked from the syllabus HTML,
// relative to the readings directory, in document order and without repeats.
// Only links that point into readings/ are considered.
func ParseSyllabusLinks(r io.Reader) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	seen := make(map[string]bool)
	var links []string

	doc.Find("a[href]").Each(func(i int, s *goquery.Selection) {
		href, exists := s.Attr("href")
		if !exists {
			return
		}

		rel, ok := readingPath(href)
		if !ok || seen[rel] {
			return
		}
		seen[rel] = true
		links = append(links, rel)
	})

	return links, nil
}

// readingPath turns an href into a path relative to the readings directory.
func readingPath(href string) (string, bool) {
	href = strings.TrimSpace(href)
	if i := strings.IndexAny(href, "?#"); i >= 0 {
		href = href[:i]
	}

	decoded, err := url.PathUnescape(href)
	if err != nil {
		return "", false
	}

	if !strings.HasSuffix(strings.ToLower(decoded), ".pdf") {
		return "", false
	}

	idx := strings.Index(decoded, readingsPrefix)
	if idx < 0 {
		return "", false
	}

	rel := decoded[idx+len(readingsPrefix):]
	if rel == "" {
		return "", false
	}
	return rel, true
}

// CheckSyllabus compares entries with the links found on the syllabus page and
// with the files present under readingsDir.
func CheckSyllabus(entries []domain.ReadingEntry, links []string, readingsDir string) Report {
	linked := make(map[string]bool, len(links))
	for _, l := range links {
		linked[l] = true
	}

	catalogued := make(map[string]bool, len(entries))
	report := Report{DuplicateIDs: DuplicateIDs(entries)}

	for _, e := range entries {
		catalogued[e.File] = true

		if !linked[e.File] {
			report.Unlinked = append(report.Unlinked, e.ID)
		}

		info, err := os.Stat(filepath.Join(readingsDir, e.File))
		if err != nil || info.IsDir() {
			report.MissingFiles = append(report.MissingFiles, e.ID)
		}
	}

	for _, l := range links {
		if !catalogued[l] {
			report.Uncatalogued = append(report.Uncatalogued, l)
		}
	}

	return report
}

// Print writes the report in a human-readable form.
func (r Report) Print(w io.Writer) {
	if r.OK() {
		fmt.Fprintln(w, "Catalog matches the syllabus.")
		return
	}

	printSection(w, "Catalog entries not linked from the syllabus", r.Unlinked)
	printSection(w, "Syllabus PDFs with no catalog entry", r.Uncatalogued)
	printSection(w, "Duplicate catalog ids", r.DuplicateIDs)
	printSection(w, "Catalog entries with no file on disk", r.MissingFiles)
}

func printSection(w io.Writer, heading string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(w, "%s (%d):\n", heading, len(items))
	for _, item := range items {
		fmt.Fprintf(w, "  - %s\n", item)
	}
}
