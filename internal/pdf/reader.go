// Package pdf is the input collaborator for the rename pipeline: it
// discovers PDF files, validates them, and extracts the plain text of their
// leading pages for the field extractor to work on.
package pdf

import (
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Reader extracts plain text from PDF files, bounded by page count and
// total text size so one oversized document cannot stall a run.
type Reader struct {
	maxFileSize int64
	maxTextSize int
}

// NewReader creates a reader enforcing the given file-size limit.
func NewReader(maxFileSize int64) *Reader {
	return &Reader{
		maxFileSize: maxFileSize,
		maxTextSize: 10 * 1024 * 1024,
	}
}

// ExtractText returns the plain text of up to req.MaxPages pages. Filing
// cover pages carry all the metadata this tool needs, so reading the whole
// document would be wasted work. Pages that fail to decode are skipped; the
// result is an error only when no text at all could be extracted.
func (r *Reader) ExtractText(req TextRequest) (*TextResult, error) {
	if req.Path == "" {
		return nil, fmt.Errorf("path cannot be empty")
	}

	fileInfo, err := os.Stat(req.Path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("file does not exist: %s", req.Path)
	}
	if err != nil {
		return nil, fmt.Errorf("cannot access file: %w", err)
	}
	if fileInfo.IsDir() {
		return nil, fmt.Errorf("path is a directory, not a file: %s", req.Path)
	}
	if fileInfo.Size() > r.maxFileSize {
		return nil, fmt.Errorf("file too large: %d bytes (max: %d bytes)",
			fileInfo.Size(), r.maxFileSize)
	}

	f, pdfReader, err := pdf.Open(req.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	pageLimit := pdfReader.NumPage()
	if req.MaxPages > 0 && req.MaxPages < pageLimit {
		pageLimit = req.MaxPages
	}

	var builder strings.Builder
	totalLength := 0
	pagesRead := 0

	for pageNum := 1; pageNum <= pageLimit; pageNum++ {
		page := pdfReader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}

		content, err := page.GetPlainText(nil)
		if err != nil {
			// One bad page must not lose the cover-page text.
			continue
		}

		if totalLength+len(content) > r.maxTextSize {
			remaining := r.maxTextSize - totalLength
			if remaining > 0 {
				builder.WriteString(content[:remaining])
			}
			pagesRead++
			break
		}

		builder.WriteString(content)
		builder.WriteString("\n")
		totalLength += len(content)
		pagesRead++
	}

	text := builder.String()
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("no text content could be extracted from PDF")
	}

	return &TextResult{
		Path:      req.Path,
		Text:      text,
		Pages:     pdfReader.NumPage(),
		PagesRead: pagesRead,
		Size:      fileInfo.Size(),
	}, nil
}
