package pdf

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Search discovers PDF files for a run.
type Search struct {
	maxFileSize int64
}

// NewSearch creates a new search handler.
func NewSearch(maxFileSize int64) *Search {
	return &Search{maxFileSize: maxFileSize}
}

// FindPDFsInDirectory returns the PDF files directly inside directory,
// sorted by path. Sorting fixes the processing order, which in turn fixes
// collision-ordinal assignment across identical runs.
func (s *Search) FindPDFsInDirectory(directory string) ([]FileInfo, error) {
	if directory == "" {
		return nil, fmt.Errorf("directory cannot be empty")
	}

	info, err := os.Stat(directory)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("directory does not exist: %s", directory)
	}
	if err != nil {
		return nil, fmt.Errorf("cannot access directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", directory)
	}

	entries, err := os.ReadDir(directory)
	if err != nil {
		return nil, fmt.Errorf("cannot read directory: %w", err)
	}

	var files []FileInfo
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !strings.HasSuffix(strings.ToLower(entry.Name()), ".pdf") {
			continue
		}

		entryInfo, err := entry.Info()
		if err != nil {
			continue
		}

		files = append(files, FileInfo{
			Path:         filepath.Join(directory, entry.Name()),
			Name:         entry.Name(),
			Size:         entryInfo.Size(),
			ModifiedTime: entryInfo.ModTime().Format("2006-01-02 15:04:05"),
		})
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].Path < files[j].Path
	})

	return files, nil
}

// CountPDFsInDirectory counts the PDF files directly inside directory.
func (s *Search) CountPDFsInDirectory(directory string) (int, error) {
	files, err := s.FindPDFsInDirectory(directory)
	if err != nil {
		return 0, err
	}
	return len(files), nil
}
