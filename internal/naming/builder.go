// Package naming renders canonical file names from extracted filing fields
// and keeps them unique within a run.
package naming

import (
	"regexp"
	"strings"

	"github.com/filingtools/secrename/internal/filing"
)

// Builder renders a FieldSet into a canonical name of the form
//
//	YYYY-MM-DD_FILINGTYPE_TICKER_FILER-NAME_X-XXPCT
//
// Trailing optional fields are dropped independently when absent, so a
// document with no ticker still gets a valid, shorter name. Building is
// pure: the same FieldSet always yields the same string.
type Builder struct {
	includePercent bool
}

// NewBuilder creates a builder that includes the ownership percentage in
// the canonical name whenever it was extracted.
func NewBuilder() *Builder {
	return &Builder{includePercent: true}
}

// NewBuilderWithOptions creates a builder with explicit control over the
// percent suffix. Omitting it yields shorter names; the collision resolver
// re-adds it when two documents would otherwise collide.
func NewBuilderWithOptions(includePercent bool) *Builder {
	return &Builder{includePercent: includePercent}
}

// Build renders the canonical name for fields.
func (b *Builder) Build(fields filing.FieldSet) string {
	return b.render(fields, b.includePercent)
}

// BuildWithPercent renders the canonical name with the percent suffix
// regardless of the builder's configuration.
func (b *Builder) BuildWithPercent(fields filing.FieldSet) string {
	return b.render(fields, true)
}

// IncludesPercent reports whether Build emits the percent suffix.
func (b *Builder) IncludesPercent() bool {
	return b.includePercent
}

func (b *Builder) render(fields filing.FieldSet, withPercent bool) string {
	var parts []string

	if !fields.FilingDate.IsZero() {
		parts = append(parts, fields.FilingDate.Format("2006-01-02"))
	}
	if fields.FilingType != "" {
		parts = append(parts, sanitizePart(fields.FilingType))
	}
	if fields.Ticker != "" {
		parts = append(parts, sanitizePart(fields.Ticker))
	}
	if fields.FilerName != "" {
		if p := sanitizePart(fields.FilerName); p != "" {
			parts = append(parts, p)
		}
	}
	if withPercent && fields.OwnershipPercent != "" {
		parts = append(parts, percentPart(fields.OwnershipPercent))
	}

	return strings.Join(parts, "_")
}

var (
	illegalChars = regexp.MustCompile(`[^A-Z0-9-]`)
	hyphenRuns   = regexp.MustCompile(`-+`)
)

// sanitizePart makes a field value safe for a file name: uppercase,
// separators become hyphens, everything outside [A-Z0-9-] is stripped, and
// hyphen runs collapse. "13G/A" becomes "13G-A", "BAILLIE GIFFORD & CO"
// becomes "BAILLIE-GIFFORD-CO".
func sanitizePart(s string) string {
	s = strings.ToUpper(s)
	s = strings.NewReplacer("/", "-", " ", "-", "&", "-", ".", "").Replace(s)
	s = illegalChars.ReplaceAllString(s, "")
	s = hyphenRuns.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// percentPart renders an ownership percentage with its source precision
// intact: "5.01" becomes "5-01PCT", "30.7" becomes "30-7PCT".
func percentPart(pct string) string {
	return strings.ReplaceAll(pct, ".", "-") + "PCT"
}
