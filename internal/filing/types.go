package filing

import "time"

// FieldSet holds the metadata extracted from one filing document. Every
// field is optional: the zero value means the field was not found. It is
// constructed once per document by the Extractor and immutable afterwards.
type FieldSet struct {
	// FilingType is the canonical filing-type code, e.g. "10-K" or "13G/A".
	FilingType string

	// FilingDate is the event or filing date. Zero when no parseable date
	// was found.
	FilingDate time.Time

	// Ticker is the issuer's stock symbol, 1-6 uppercase alphanumerics.
	Ticker string

	// FilerName is the normalized reporting-person name, uppercased with
	// single spaces between words, legal suffixes stripped.
	FilerName string

	// OwnershipPercent is the percent-of-class value exactly as it appears
	// in the source text ("5.01", "30.7"). Kept as a string so the original
	// decimal precision survives into the output name.
	OwnershipPercent string

	// PercentAmbiguous is set when more than one distinct value matched the
	// winning percentage rule. The first occurrence is used.
	PercentAmbiguous bool
}

// HasRequired reports whether the fields needed to name a document are
// present. Documents without a filing type or date are unprocessable.
func (f FieldSet) HasRequired() bool {
	return f.FilingType != "" && !f.FilingDate.IsZero()
}
