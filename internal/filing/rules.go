package filing

import (
	"regexp"
	"strings"
)

// typeRule matches one canonical filing-type code. The anchored expression
// requires a FORM/TYPE/SCHEDULE label in front of the token; the bare
// expression matches the token on its own. Rules are evaluated in order,
// most specific first, so an amendment like "13G/A" is never misread as
// its base form "13G".
type typeRule struct {
	canonical string
	anchored  *regexp.Regexp
	bare      *regexp.Regexp
}

// dateRule locates a labeled date in the document text. The expression's
// first capture group is the date string handed to parseDate. topOnly
// restricts the search to the head of the text, for generic patterns that
// would otherwise match dates deep inside the filing body.
type dateRule struct {
	name    string
	pattern *regexp.Regexp
	topOnly bool
}

// tickerRule anchors a symbol-shaped token to issuer identification text so
// that free text which merely looks like a ticker is not picked up.
type tickerRule struct {
	name    string
	pattern *regexp.Regexp
}

// filerRule locates the reporting-person name block.
type filerRule struct {
	name    string
	pattern *regexp.Regexp
}

// percentRule matches one style of ownership-percentage disclosure row.
// Rules carry names so the priority order can be configured.
type percentRule struct {
	name    string
	pattern *regexp.Regexp
}

// typePattern turns a canonical code into a tolerant regexp fragment:
// slashes also match hyphens, spaces match any whitespace run, and the
// 13D/13G families accept an optional "SC" schedule prefix so "SC 13G/A"
// normalizes the same as "13G/A".
func typePattern(code string, optionalSC bool) string {
	var b strings.Builder
	if optionalSC {
		b.WriteString(`(?:SC[\s-]+)?`)
	}
	for _, r := range code {
		switch r {
		case '/':
			b.WriteString(`\s*[/-]\s*`)
		case ' ':
			b.WriteString(`\s+`)
		case '-':
			b.WriteString(`\s*-\s*`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func newTypeRule(code string, optionalSC bool) typeRule {
	frag := typePattern(code, optionalSC)
	return typeRule{
		canonical: code,
		anchored:  regexp.MustCompile(`(?i)(?:FORM|TYPE|SCHEDULE)[\s:]*` + frag + `\b`),
		bare:      regexp.MustCompile(`(?i)\b` + frag + `\b`),
	}
}

// defaultTypeRules returns the closed filing-type vocabulary in match order:
// amendments before base forms, SC-prefixed forms before their bare
// substrings.
func defaultTypeRules() []typeRule {
	return []typeRule{
		newTypeRule("13D/A", true),
		newTypeRule("13G/A", true),
		newTypeRule("SC 13D", false),
		newTypeRule("SC 13G", false),
		newTypeRule("10-K", false),
		newTypeRule("10-Q", false),
		newTypeRule("8-K", false),
		newTypeRule("20-F", false),
		newTypeRule("13D", false),
		newTypeRule("13G", false),
		newTypeRule("13F", false),
		newTypeRule("S-1", false),
		newTypeRule("S-3", false),
		newTypeRule("S-4", false),
		newTypeRule("S-8", false),
		newTypeRule("DEFA14A", false),
		newTypeRule("DEF 14A", false),
		newTypeRule("6-K", false),
		newTypeRule("424B5", false),
		newTypeRule("FWP", false),
	}
}

// defaultDateRules returns the date-label patterns in priority order. The
// first rule whose captured string parses as a valid date wins.
func defaultDateRules() []dateRule {
	return []dateRule{
		{
			name:    "date-of-event",
			pattern: regexp.MustCompile(`(?i)\(Date of Event[^)]*\)\s*\n?\s*(\d{1,2}/\d{1,2}/\d{4})`),
		},
		{
			name:    "event-date",
			pattern: regexp.MustCompile(`(?i)EVENT DATE[:\s]*([A-Za-z]+\s+\d{1,2},?\s+\d{4}|\d{1,2}/\d{1,2}/\d{4})`),
		},
		{
			name:    "filed-as-of",
			pattern: regexp.MustCompile(`(?i)FILED AS OF DATE[:\s]*(\d{1,2}/\d{1,2}/\d{4})`),
		},
		{
			name:    "period-of-report",
			pattern: regexp.MustCompile(`(?i)CONFORMED PERIOD OF REPORT[:\s]*(\d{8})`),
		},
		{
			name:    "fiscal-period-ended",
			pattern: regexp.MustCompile(`(?i)for the (?:fiscal|quarterly) (?:year|period) ended[:\s]*([A-Za-z]+\s+\d{1,2},?\s+\d{4})`),
		},
		{
			name:    "date-label",
			pattern: regexp.MustCompile(`(?i)\bDate[:\s]+([A-Za-z]+\s+\d{1,2},?\s+\d{4})`),
		},
		{
			name:    "standalone-numeric",
			pattern: regexp.MustCompile(`\b(\d{2}/\d{2}/\d{4})\b`),
			topOnly: true,
		},
	}
}

// defaultTickerRules returns the issuer-anchor patterns that locate a stock
// symbol. Bare symbol-shaped tokens without an anchor are never accepted.
func defaultTickerRules() []tickerRule {
	return []tickerRule{
		{
			name:    "trading-symbol",
			pattern: regexp.MustCompile(`(?i)TRADING SYMBOL[:\s]*([A-Za-z][A-Za-z0-9]{0,5})\b`),
		},
		{
			name:    "ticker-label",
			pattern: regexp.MustCompile(`(?i)\bTICKER[:\s]*([A-Za-z][A-Za-z0-9]{0,5})\b`),
		},
		{
			name:    "symbol-label",
			pattern: regexp.MustCompile(`(?i)\bSYMBOL[:\s]*([A-Za-z][A-Za-z0-9]{0,5})\b`),
		},
		{
			name:    "cusip-row",
			pattern: regexp.MustCompile(`(?i)CUSIP NO\.?\s*[0-9A-Z]+\s+([A-Za-z][A-Za-z0-9]{0,5})\b`),
		},
	}
}

// tickerStopwords are symbol-shaped tokens that are really legal-entity
// suffixes picked up next to the anchor phrase.
var tickerStopwords = map[string]bool{
	"INC": true,
	"CO":  true,
	"LLC": true,
	"LP":  true,
	"LTD": true,
}

// defaultFilerRules returns the reporting-person block patterns. The
// captured name may be preceded by a cover-page row number on its own line.
func defaultFilerRules() []filerRule {
	return []filerRule{
		{
			name:    "names-of-reporting-persons",
			pattern: regexp.MustCompile(`(?i)Names? of Reporting Persons?[^\n]*\n(?:\s*\d+\s*\n)?\s*([A-Za-z][A-Za-z0-9 &,.'-]+)`),
		},
		{
			name:    "name-of-person-filing",
			pattern: regexp.MustCompile(`(?i)Name of person filing[:\s]*\n?\s*([A-Za-z][A-Za-z0-9 &,.'-]+)`),
		},
		{
			name:    "item-2a",
			pattern: regexp.MustCompile(`(?i)Item 2\.\s*\(a\)\s*Name of person filing[:\s]*\n?\s*([^\n]+)`),
		},
	}
}

// legalSuffix strips a trailing legal-entity suffix from a filer name.
var legalSuffix = regexp.MustCompile(`(?i)[\s,]+(LLC|LP|LLP|LTD|LIMITED|INC|INCORPORATED|CORP|CORPORATION)\.?$`)

// DefaultPercentPriority is the default evaluation order for percentage
// rules. The order is configurable because real filings disagree about
// which row carries the authoritative percent-of-class value.
var DefaultPercentPriority = []string{
	"row-reference-multiline",
	"row-reference",
	"percent-of-class",
	"item-4b",
}

// percentRuleSet returns the known percentage-row patterns keyed by name.
// Row labels match case-insensitively in any of "Row", "ROW", "row".
func percentRuleSet() map[string]percentRule {
	rules := []percentRule{
		{
			name:    "row-reference-multiline",
			pattern: regexp.MustCompile(`(?i)Percent of class represented by amount in row\s*\([^)]*\)\s*\n\s*\d+\s*\n\s*(\d+(?:\.\d+)?)\s*(?:%|percent)`),
		},
		{
			name:    "row-reference",
			pattern: regexp.MustCompile(`(?i)Percent of class represented by amount in row\s*(?:\([^)]*\))?[^0-9%]*(\d+(?:\.\d+)?)\s*(?:%|percent)`),
		},
		{
			name:    "percent-of-class",
			pattern: regexp.MustCompile(`(?i)Percent of class[:\s]*(\d+(?:\.\d+)?)\s*(?:%|percent)`),
		},
		{
			name:    "item-4b",
			pattern: regexp.MustCompile(`(?i)Item 4\.[^(]*\(b\)[^:]*:\s*(\d+(?:\.\d+)?)\s*(?:%|percent)`),
		},
	}

	set := make(map[string]percentRule, len(rules))
	for _, r := range rules {
		set[r.name] = r
	}
	return set
}
