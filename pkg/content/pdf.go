package content

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ledongthuc/pdf"

	"readings-index/pkg/domain"
)

var (
	ErrEmptyPDFPath    = errors.New("pdf path is empty")
	ErrEmptyPDFContent = errors.New("pdf content is empty")
	errNilPDFDocument  = errors.New("pdf document is nil")
)

// PDFExtractor extracts text and page counts from PDF files on disk.
type PDFExtractor struct{}

// NewPDFExtractor creates a new PDF extractor
func NewPDFExtractor() *PDFExtractor {
	return &PDFExtractor{}
}

// Extract implements indexer.Extractor.
func (e *PDFExtractor) Extract(path string) (*domain.ExtractionResult, error) {
	return ExtractPDF(path)
}

// ExtractPDF reads the whole file at path into memory and decodes it.
// Decoding is all-or-nothing: a page that fails to decode fails the file.
func ExtractPDF(path string) (*domain.ExtractionResult, error) {
	if path == "" {
		return nil, ErrEmptyPDFPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read pdf: %w", err)
	}

	return ExtractPDFBytes(data)
}

// ExtractPDFBytes decodes an in-memory PDF.
func ExtractPDFBytes(data []byte) (result *domain.ExtractionResult, err error) {
	if len(data) == 0 {
		return nil, ErrEmptyPDFContent
	}

	// The decoder panics on some malformed streams instead of returning an error.
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = fmt.Errorf("decode pdf: %v", r)
		}
	}()

	doc, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("decode pdf: %w", err)
	}

	text, err := extractTextFromPDFDocument(doc)
	if err != nil {
		return nil, fmt.Errorf("extract pdf text: %w", err)
	}

	return &domain.ExtractionResult{
		Text:      text,
		PageCount: doc.NumPage(),
	}, nil
}

// extractTextFromPDFDocument turns a pdf.Reader into a plain-text string.
func extractTextFromPDFDocument(doc *pdf.Reader) (string, error) {
	if doc == nil {
		return "", errNilPDFDocument
	}

	textReader, err := doc.GetPlainText()
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, textReader); err != nil {
		return "", err
	}

	return buf.String(), nil
}
