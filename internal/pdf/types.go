package pdf

// FileInfo describes one PDF file found during discovery.
type FileInfo struct {
	Path         string `json:"path"`
	Name         string `json:"name"`
	Size         int64  `json:"size"`
	ModifiedTime string `json:"modified_time"`
}

// TextRequest asks for the plain text of the first MaxPages pages of a PDF.
// A MaxPages of zero or less reads every page.
type TextRequest struct {
	Path     string `json:"path"`
	MaxPages int    `json:"max_pages"`
}

// TextResult carries the extracted text plus basic document facts.
type TextResult struct {
	Path      string `json:"path"`
	Text      string `json:"text"`
	Pages     int    `json:"pages"`
	PagesRead int    `json:"pages_read"`
	Size      int64  `json:"size"`
}

// ValidateRequest asks whether a file is a structurally readable PDF.
type ValidateRequest struct {
	Path string `json:"path"`
}

// ValidateResult reports the validation outcome. Message is set when the
// file failed validation.
type ValidateResult struct {
	Path    string `json:"path"`
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
}
