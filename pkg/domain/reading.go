package domain

import "time"

// ReadingEntry is one syllabus reading as listed in the catalog.
// File is relative to the readings directory.
type ReadingEntry struct {
	ID    string `yaml:"id" json:"id"`
	Week  int    `yaml:"week" json:"week"`
	Title string `yaml:"title" json:"title"`
	File  string `yaml:"file" json:"file"`
}

// ExtractionResult is the decoded text of a reading's PDF.
type ExtractionResult struct {
	Text      string
	PageCount int
}

// ReadingContent is the row upserted into the reading_content store.
// ID is the conflict key; ReadingID mirrors it so the search side can join
// against the schedule without knowing the store's key scheme.
type ReadingContent struct {
	ID        string    `json:"id" bson:"_id"`
	ReadingID string    `json:"reading_id" bson:"reading_id"`
	WeekNum   int       `json:"week_num" bson:"week_num"`
	Title     string    `json:"title" bson:"title"`
	Content   string    `json:"content" bson:"content"`
	PageCount int       `json:"page_count" bson:"page_count"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// NewReadingContent builds the store record for an entry and its extracted text.
// updatedAt is normalized to UTC.
func NewReadingContent(entry ReadingEntry, extracted *ExtractionResult, updatedAt time.Time) *ReadingContent {
	return &ReadingContent{
		ID:        entry.ID,
		ReadingID: entry.ID,
		WeekNum:   entry.Week,
		Title:     entry.Title,
		Content:   extracted.Text,
		PageCount: extracted.PageCount,
		UpdatedAt: updatedAt.UTC(),
	}
}
