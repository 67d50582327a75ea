// Package filing extracts structured metadata from the text of SEC
// disclosure documents. Extraction is rule-based: each field is located by
// an ordered table of patterns evaluated most-specific-first, and every
// lookup is total: unmatched fields are simply absent from the result.
package filing

import (
	"strings"
	"time"
)

// topWindow bounds how far into the document generic date patterns are
// allowed to match. Dates past this point belong to the filing body, not
// the cover page.
const topWindow = 1500

// maxFilerNameLen is the longest filer name carried into a file name before
// it is shortened to its leading words.
const maxFilerNameLen = 30

// Extractor locates filing metadata in raw document text.
type Extractor struct {
	typeRules       []typeRule
	dateRules       []dateRule
	tickerRules     []tickerRule
	filerRules      []filerRule
	percentRules    map[string]percentRule
	percentPriority []string
}

// NewExtractor creates an extractor with the default rule tables and the
// default percentage-row priority order.
func NewExtractor() *Extractor {
	return NewExtractorWithPriority(DefaultPercentPriority)
}

// NewExtractorWithPriority creates an extractor that evaluates percentage
// rules in the given order. Unknown rule names are ignored; an empty order
// falls back to the default.
func NewExtractorWithPriority(percentPriority []string) *Extractor {
	known := percentRuleSet()

	order := make([]string, 0, len(percentPriority))
	for _, name := range percentPriority {
		if _, ok := known[name]; ok {
			order = append(order, name)
		}
	}
	if len(order) == 0 {
		order = DefaultPercentPriority
	}

	return &Extractor{
		typeRules:       defaultTypeRules(),
		dateRules:       defaultDateRules(),
		tickerRules:     defaultTickerRules(),
		filerRules:      defaultFilerRules(),
		percentRules:    known,
		percentPriority: order,
	}
}

// Extract runs every field lookup against the document text. It never
// fails; fields that cannot be located are left at their zero value.
func (e *Extractor) Extract(text string) FieldSet {
	fields := FieldSet{
		FilingType: e.extractFilingType(text),
		FilingDate: e.extractFilingDate(text),
		Ticker:     e.extractTicker(text),
		FilerName:  e.extractFilerName(text),
	}
	fields.OwnershipPercent, fields.PercentAmbiguous = e.extractOwnershipPercent(text)
	return fields
}

// extractFilingType matches the closed filing-type vocabulary. Label-anchored
// mentions ("FORM 10-K", "SCHEDULE 13G/A") are preferred; standalone token
// mentions are a fallback.
func (e *Extractor) extractFilingType(text string) string {
	for _, rule := range e.typeRules {
		if rule.anchored.MatchString(text) {
			return rule.canonical
		}
	}
	for _, rule := range e.typeRules {
		if rule.bare.MatchString(text) {
			return rule.canonical
		}
	}
	return ""
}

// extractFilingDate tries each date label in priority order and returns the
// first captured string that parses as an in-range calendar date.
func (e *Extractor) extractFilingDate(text string) time.Time {
	for _, rule := range e.dateRules {
		searchText := text
		if rule.topOnly && len(searchText) > topWindow {
			searchText = searchText[:topWindow]
		}

		m := rule.pattern.FindStringSubmatch(searchText)
		if m == nil {
			continue
		}

		if d, ok := parseDate(strings.TrimSpace(m[1])); ok {
			return d
		}
	}
	return time.Time{}
}

// dateLayouts are the textual date formats seen on filing cover pages.
var dateLayouts = []string{
	"January 2, 2006",
	"January 2 2006",
	"1/2/2006",
	"20060102",
	"2-Jan-2006",
}

// parseDate normalizes a captured date string to a calendar date. Strings
// that do not parse, or parse to an implausible year, are treated as absent.
func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		d, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		if d.Year() < 1900 || d.Year() > 2200 {
			return time.Time{}, false
		}
		return d, true
	}
	return time.Time{}, false
}

// extractTicker looks for a symbol-shaped token next to an issuer anchor
// phrase. Legal-entity suffixes that happen to sit next to an anchor are
// rejected.
func (e *Extractor) extractTicker(text string) string {
	for _, rule := range e.tickerRules {
		m := rule.pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		ticker := strings.ToUpper(m[1])
		if tickerStopwords[ticker] {
			continue
		}
		return ticker
	}
	return ""
}

// extractFilerName pulls the reporting-person name from its labeled block
// and normalizes it: whitespace collapsed, trailing legal suffix stripped,
// long names shortened to their first two words, uppercased.
func (e *Extractor) extractFilerName(text string) string {
	for _, rule := range e.filerRules {
		m := rule.pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if name := normalizeFilerName(m[1]); name != "" {
			return name
		}
	}
	return ""
}

func normalizeFilerName(raw string) string {
	name := strings.Join(strings.Fields(raw), " ")
	name = strings.TrimRight(name, " ,.")
	name = legalSuffix.ReplaceAllString(name, "")
	name = strings.TrimSpace(name)

	if len(name) > maxFilerNameLen {
		words := strings.Fields(name)
		if len(words) > 2 {
			name = strings.Join(words[:2], " ")
		}
	}

	return strings.ToUpper(name)
}

// extractOwnershipPercent scans the disclosure-table rows in the configured
// priority order. The matched value keeps its source precision: it is the
// captured substring, never a reparsed number. When the winning rule matches
// more than one distinct value the first occurrence is used and the result
// is flagged ambiguous.
func (e *Extractor) extractOwnershipPercent(text string) (string, bool) {
	for _, name := range e.percentPriority {
		rule := e.percentRules[name]
		matches := rule.pattern.FindAllStringSubmatch(text, -1)
		if len(matches) == 0 {
			continue
		}

		value := strings.TrimSpace(matches[0][1])
		ambiguous := false
		for _, m := range matches[1:] {
			if strings.TrimSpace(m[1]) != value {
				ambiguous = true
				break
			}
		}
		return value, ambiguous
	}
	return "", false
}
