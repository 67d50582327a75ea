package pdf

// Service bundles the PDF components behind one facade for the pipeline
// and the MCP surface.
type Service struct {
	maxFileSize int64
	reader      *Reader
	validator   *Validator
	search      *Search
}

// NewService creates a PDF service enforcing the given file-size limit.
func NewService(maxFileSize int64) *Service {
	return &Service{
		maxFileSize: maxFileSize,
		reader:      NewReader(maxFileSize),
		validator:   NewValidator(maxFileSize),
		search:      NewSearch(maxFileSize),
	}
}

// ExtractText extracts the plain text of the leading pages of a PDF.
func (s *Service) ExtractText(req TextRequest) (*TextResult, error) {
	return s.reader.ExtractText(req)
}

// ValidateFile checks that a file is a readable PDF.
func (s *Service) ValidateFile(req ValidateRequest) (*ValidateResult, error) {
	return s.validator.ValidateFile(req)
}

// IsValidPDF performs a quick validation check on a file.
func (s *Service) IsValidPDF(filePath string) bool {
	return s.validator.IsValidPDF(filePath)
}

// FindPDFsInDirectory lists the PDF files in a directory, sorted by path.
func (s *Service) FindPDFsInDirectory(directory string) ([]FileInfo, error) {
	return s.search.FindPDFsInDirectory(directory)
}

// CountPDFsInDirectory counts the PDF files in a directory.
func (s *Service) CountPDFsInDirectory(directory string) (int, error) {
	return s.search.CountPDFsInDirectory(directory)
}

// GetMaxFileSize returns the configured file-size limit.
func (s *Service) GetMaxFileSize() int64 {
	return s.maxFileSize
}
