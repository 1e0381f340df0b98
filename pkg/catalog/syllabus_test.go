package catalog

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"readings-index/pkg/domain"
)

const syllabusHTML = `<!DOCTYPE html>
<html>
<body>
  <table class="schedule">
    <tr><td>Week 1</td>
      <td><a href="readings/Week%201_Parmenides/Week%201_Parmenides.pdf">Parmenides</a></td>
      <td><a href="./readings/Week 1_Parmenides/Week 1_Kingsley.pdf#page=3">Kingsley</a></td>
    </tr>
    <tr><td>Week 2</td>
      <td><a href="readings/Week%202_Aristotle/Week%202_Witt.PDF">Witt</a></td>
      <td><a href="readings/Week%201_Parmenides/Week%201_Parmenides.pdf">Parmenides again</a></td>
    </tr>
  </table>
  <a href="https://example.com/notes.pdf">External</a>
  <a href="readings/Week%202_Aristotle/">Folder</a>
  <a href="#top">Top</a>
</body>
</html>`

func TestParseSyllabusLinks(t *testing.T) {
	links, err := ParseSyllabusLinks(strings.NewReader(syllabusHTML))
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Week 1_Parmenides/Week 1_Parmenides.pdf",
		"Week 1_Parmenides/Week 1_Kingsley.pdf",
		"Week 2_Aristotle/Week 2_Witt.PDF",
	}, links)
}

func TestCheckSyllabus(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "Week 1"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Week 1", "a.pdf"), []byte("%PDF"), 0o644))

	entries := []domain.ReadingEntry{
		{ID: "a", File: "Week 1/a.pdf"},
		{ID: "b", File: "Week 1/b.pdf"},
		{ID: "a", File: "Week 1/a.pdf"},
	}
	links := []string{"Week 1/a.pdf", "Week 2/c.pdf"}

	report := CheckSyllabus(entries, links, dir)

	assert.False(t, report.OK())
	assert.Equal(t, []string{"b"}, report.Unlinked)
	assert.Equal(t, []string{"Week 2/c.pdf"}, report.Uncatalogued)
	assert.Equal(t, []string{"a"}, report.DuplicateIDs)
	assert.Equal(t, []string{"b"}, report.MissingFiles)

	var buf bytes.Buffer
	report.Print(&buf)
	assert.Contains(t, buf.String(), "Syllabus PDFs with no catalog entry (1):")
	assert.Contains(t, buf.String(), "  - Week 2/c.pdf")
}

func TestCheckSyllabus_Clean(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.pdf"), []byte("%PDF"), 0o644))

	report := CheckSyllabus([]domain.ReadingEntry{{ID: "a", File: "a.pdf"}}, []string{"a.pdf"}, dir)
	assert.True(t, report.OK())

	var buf bytes.Buffer
	report.Print(&buf)
	assert.Equal(t, "Catalog matches the syllabus.\n", buf.String())
}
