package pdf

import (
	"fmt"
	"os"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Validator checks that a file is a structurally readable PDF before any
// text extraction is attempted. Validation uses pdfcpu in relaxed mode:
// real-world filings are frequently produced by sloppy generators, and a
// document that merely bends the PDF rules should still be renamed.
type Validator struct {
	maxFileSize int64
	conf        *model.Configuration
}

// NewValidator creates a validator enforcing the given file-size limit.
func NewValidator(maxFileSize int64) *Validator {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	return &Validator{
		maxFileSize: maxFileSize,
		conf:        conf,
	}
}

// ValidateFile reports whether the file at req.Path is a readable PDF.
// Validation failure is a result, not an error: the error return is
// reserved for problems with the request itself.
func (v *Validator) ValidateFile(req ValidateRequest) (*ValidateResult, error) {
	result := &ValidateResult{Path: req.Path}

	if err := v.validatePDFFile(req.Path); err != nil {
		result.Message = err.Error()
		return result, nil
	}

	result.Valid = true
	return result, nil
}

// IsValidPDF is the quick boolean form of ValidateFile.
func (v *Validator) IsValidPDF(filePath string) bool {
	return v.validatePDFFile(filePath) == nil
}

func (v *Validator) validatePDFFile(filePath string) error {
	if filePath == "" {
		return fmt.Errorf("path cannot be empty")
	}

	fileInfo, err := os.Stat(filePath)
	if os.IsNotExist(err) {
		return fmt.Errorf("file does not exist: %s", filePath)
	}
	if err != nil {
		return fmt.Errorf("cannot access file: %w", err)
	}
	if fileInfo.IsDir() {
		return fmt.Errorf("path is a directory, not a file: %s", filePath)
	}
	if !strings.HasSuffix(strings.ToLower(filePath), ".pdf") {
		return fmt.Errorf("file is not a PDF: %s", filePath)
	}
	if fileInfo.Size() == 0 {
		return fmt.Errorf("file is empty: %s", filePath)
	}
	if fileInfo.Size() > v.maxFileSize {
		return fmt.Errorf("file too large: %d bytes (max: %d bytes)",
			fileInfo.Size(), v.maxFileSize)
	}

	if err := api.ValidateFile(filePath, v.conf); err != nil {
		return fmt.Errorf("invalid PDF file: %w", err)
	}

	return nil
}
