package filing

import (
	"testing"
	"time"
)

func TestExtractFilingTypeVariants(t *testing.T) {
	e := NewExtractor()

	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "anchored schedule with slash",
			text: "UNITED STATES SECURITIES AND EXCHANGE COMMISSION\nSCHEDULE 13G/A\n",
			want: "13G/A",
		},
		{
			name: "lowercase with hyphen",
			text: "this amendment is filed as a 13g-a under the act",
			want: "13G/A",
		},
		{
			name: "sc prefixed amendment normalizes to amendment",
			text: "TYPE: SC 13G/A\n",
			want: "13G/A",
		},
		{
			name: "amendment never misread as base form",
			text: "SCHEDULE 13D/A (Amendment No. 4)",
			want: "13D/A",
		},
		{
			name: "sc base form",
			text: "filed on SC 13G with the commission",
			want: "SC 13G",
		},
		{
			name: "anchored form 10-K",
			text: "FORM 10-K\nAnnual report pursuant to section 13",
			want: "10-K",
		},
		{
			name: "form with colon",
			text: "Form: 10-Q for the quarterly period",
			want: "10-Q",
		},
		{
			name: "bare base form",
			text: "a statement on 13G was previously filed",
			want: "13G",
		},
		{
			name: "def 14a with space",
			text: "SCHEDULE DEF 14A information",
			want: "DEF 14A",
		},
		{
			name: "defa14a",
			text: "FORM DEFA14A\n",
			want: "DEFA14A",
		},
		{
			name: "prospectus supplement",
			text: "Filed Pursuant to Rule 424(b)(5)\nForm 424B5",
			want: "424B5",
		},
		{
			name: "no filing type",
			text: "quarterly shareholder letter with no form reference",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := e.Extract(tt.text)
			if fields.FilingType != tt.want {
				t.Errorf("Extract() FilingType = %q, want %q", fields.FilingType, tt.want)
			}
		})
	}
}

func TestExtractFilingTypeRoundTrip(t *testing.T) {
	// Every supported case and punctuation variant of the same token must
	// normalize to the same canonical code.
	e := NewExtractor()

	variants := []string{
		"SCHEDULE 13G/A",
		"SCHEDULE 13g/a",
		"schedule 13G-A",
		"FORM 13G/A",
		"TYPE: SC 13G/A",
		"sc 13g/a",
		"13g-a",
	}

	for _, v := range variants {
		fields := e.Extract(v)
		if fields.FilingType != "13G/A" {
			t.Errorf("Extract(%q) FilingType = %q, want %q", v, fields.FilingType, "13G/A")
		}
	}
}

func TestExtractFilingDate(t *testing.T) {
	e := NewExtractor()

	tests := []struct {
		name string
		text string
		want time.Time
	}{
		{
			name: "date of event parenthetical",
			text: "(Date of Event Which Requires Filing of this Statement)\n06/30/2025",
			want: time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "event date spelled month",
			text: "EVENT DATE: June 30, 2025",
			want: time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "filed as of date",
			text: "FILED AS OF DATE: 02/14/2025",
			want: time.Date(2025, 2, 14, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "conformed period of report",
			text: "CONFORMED PERIOD OF REPORT: 20250630",
			want: time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "fiscal year ended",
			text: "For the fiscal year ended December 31, 2024",
			want: time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "standalone numeric near top",
			text: "SCHEDULE 13G\n06/30/2025\nReddit, Inc.",
			want: time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "label priority beats standalone",
			text: "01/01/2020\nFILED AS OF DATE: 06/30/2025",
			want: time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "no date",
			text: "no calendar information anywhere",
			want: time.Time{},
		},
		{
			name: "unparseable date treated as absent",
			text: "EVENT DATE: Juneteenth 99, 20259",
			want: time.Time{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := e.Extract(tt.text)
			if !fields.FilingDate.Equal(tt.want) {
				t.Errorf("Extract() FilingDate = %v, want %v", fields.FilingDate, tt.want)
			}
		})
	}
}

func TestExtractFilingDateIgnoresDeepGenericDates(t *testing.T) {
	e := NewExtractor()

	// A bare numeric date past the top window belongs to the filing body,
	// not the cover page.
	var filler string
	for len(filler) < topWindow {
		filler += "lorem ipsum filler text for the body of the filing. "
	}
	text := filler + "\n06/30/2025\n"

	fields := e.Extract(text)
	if !fields.FilingDate.IsZero() {
		t.Errorf("Extract() FilingDate = %v, want zero for date past top window", fields.FilingDate)
	}
}

func TestExtractTicker(t *testing.T) {
	e := NewExtractor()

	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "trading symbol label",
			text: "TRADING SYMBOL: RDDT",
			want: "RDDT",
		},
		{
			name: "ticker label lowercase value",
			text: "Ticker: rddt",
			want: "RDDT",
		},
		{
			name: "symbol label",
			text: "Common Stock Symbol: MSFT on Nasdaq",
			want: "MSFT",
		},
		{
			name: "cusip row",
			text: "CUSIP No. 757755103 RDDT page 2 of 9",
			want: "RDDT",
		},
		{
			name: "legal suffix next to anchor rejected",
			text: "TRADING SYMBOL: INC",
			want: "",
		},
		{
			name: "symbol shaped token without anchor rejected",
			text: "the RDDT position was increased during the quarter",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := e.Extract(tt.text)
			if fields.Ticker != tt.want {
				t.Errorf("Extract() Ticker = %q, want %q", fields.Ticker, tt.want)
			}
		})
	}
}

func TestExtractFilerName(t *testing.T) {
	e := NewExtractor()

	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "reporting persons block",
			text: "Names of Reporting Persons\nBaillie Gifford & Co\nCheck the appropriate box",
			want: "BAILLIE GIFFORD & CO",
		},
		{
			name: "row number before name",
			text: "Name of Reporting Person\n1\nVanguard Group\n2\nCheck the box",
			want: "VANGUARD GROUP",
		},
		{
			name: "legal suffix stripped",
			text: "Names of Reporting Persons\nBlackRock, Inc.\n",
			want: "BLACKROCK",
		},
		{
			name: "name of person filing",
			text: "Name of person filing:\nState Street Corporation\n",
			want: "STATE STREET",
		},
		{
			name: "long name shortened to leading words",
			text: "Names of Reporting Persons\nTeachers Insurance and Annuity Association of America\n",
			want: "TEACHERS INSURANCE",
		},
		{
			name: "no filer block",
			text: "no reporting person section here",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := e.Extract(tt.text)
			if fields.FilerName != tt.want {
				t.Errorf("Extract() FilerName = %q, want %q", fields.FilerName, tt.want)
			}
		})
	}
}

func TestExtractOwnershipPercent(t *testing.T) {
	e := NewExtractor()

	tests := []struct {
		name          string
		text          string
		want          string
		wantAmbiguous bool
	}{
		{
			name: "single line row reference",
			text: "Percent of class represented by amount in row (9): 5.5 %",
			want: "5.5",
		},
		{
			name: "multi line row reference",
			text: "Percent of class represented by amount in row (11)\n11\n5.01 %\n",
			want: "5.01",
		},
		{
			name: "percent of class label",
			text: "Percent of class: 30.7%",
			want: "30.7",
		},
		{
			name: "item 4b",
			text: "Item 4. Ownership\n(b) Percent of class: 6.2 %",
			want: "6.2",
		},
		{
			name: "word percent instead of sign",
			text: "Percent of class: 5.01 percent",
			want: "5.01",
		},
		{
			name: "no percentage",
			text: "no ownership disclosure here",
			want: "",
		},
		{
			name:          "distinct values on winning rule flagged ambiguous",
			text:          "Percent of class represented by amount in row (9): 5.5 %\nPercent of class represented by amount in row (9): 7.1 %",
			want:          "5.5",
			wantAmbiguous: true,
		},
		{
			name: "repeated identical values not ambiguous",
			text: "Percent of class: 5.01%\nPercent of class: 5.01%",
			want: "5.01",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := e.Extract(tt.text)
			if fields.OwnershipPercent != tt.want {
				t.Errorf("Extract() OwnershipPercent = %q, want %q", fields.OwnershipPercent, tt.want)
			}
			if fields.PercentAmbiguous != tt.wantAmbiguous {
				t.Errorf("Extract() PercentAmbiguous = %t, want %t", fields.PercentAmbiguous, tt.wantAmbiguous)
			}
		})
	}
}

func TestExtractOwnershipPercentRowLabelCase(t *testing.T) {
	e := NewExtractor()

	// Row labels match regardless of case.
	variants := []string{
		"Percent of class represented by amount in Row (9): 5.5 %",
		"Percent of class represented by amount in ROW (9): 5.5 %",
		"Percent of class represented by amount in row (9): 5.5 %",
	}

	for _, v := range variants {
		fields := e.Extract(v)
		if fields.OwnershipPercent != "5.5" {
			t.Errorf("Extract(%q) OwnershipPercent = %q, want %q", v, fields.OwnershipPercent, "5.5")
		}
	}
}

func TestExtractOwnershipPercentPrecisionPreserved(t *testing.T) {
	e := NewExtractor()

	// The captured value is the source substring, never a reparsed float:
	// "30.7" stays "30.7", "5.01" stays "5.01", "5.10" stays "5.10".
	tests := []struct {
		text string
		want string
	}{
		{"Percent of class: 30.7%", "30.7"},
		{"Percent of class: 5.01%", "5.01"},
		{"Percent of class: 5.10%", "5.10"},
		{"Percent of class: 7%", "7"},
	}

	for _, tt := range tests {
		fields := e.Extract(tt.text)
		if fields.OwnershipPercent != tt.want {
			t.Errorf("Extract(%q) OwnershipPercent = %q, want %q", tt.text, fields.OwnershipPercent, tt.want)
		}
	}
}

func TestExtractorWithPriority(t *testing.T) {
	text := "Percent of class: 30.7%\nPercent of class represented by amount in row (9): 5.5 %"

	defaultOrder := NewExtractor().Extract(text)
	if defaultOrder.OwnershipPercent != "5.5" {
		t.Errorf("default priority OwnershipPercent = %q, want %q", defaultOrder.OwnershipPercent, "5.5")
	}

	custom := NewExtractorWithPriority([]string{"percent-of-class", "row-reference"})
	fields := custom.Extract(text)
	if fields.OwnershipPercent != "30.7" {
		t.Errorf("custom priority OwnershipPercent = %q, want %q", fields.OwnershipPercent, "30.7")
	}
}

func TestExtractorWithPriorityUnknownNames(t *testing.T) {
	e := NewExtractorWithPriority([]string{"no-such-rule"})

	// Unknown names fall back to the default order instead of disabling
	// extraction.
	fields := e.Extract("Percent of class: 5.01%")
	if fields.OwnershipPercent != "5.01" {
		t.Errorf("Extract() OwnershipPercent = %q, want %q", fields.OwnershipPercent, "5.01")
	}
}

func TestExtractIsTotal(t *testing.T) {
	e := NewExtractor()

	// Extraction never fails; hostile or empty input yields absent fields.
	inputs := []string{
		"",
		"\x00\x01\x02 binary garbage \xff",
		"(((((unbalanced parens and % signs %%%",
	}

	for _, in := range inputs {
		fields := e.Extract(in)
		if fields.HasRequired() {
			t.Errorf("Extract(%q) unexpectedly found required fields", in)
		}
	}
}

func TestExtractFullCoverPage(t *testing.T) {
	e := NewExtractor()

	text := `UNITED STATES SECURITIES AND EXCHANGE COMMISSION
Washington, D.C. 20549
SCHEDULE 13G/A
(Amendment No. 3)
Reddit, Inc.
(Name of Issuer)
Trading Symbol: RDDT
06/30/2025
(Date of Event Which Requires Filing of this Statement)
Names of Reporting Persons
Baillie Gifford & Co
Percent of class represented by amount in row (11)
11
5.01 %
`

	fields := e.Extract(text)

	if fields.FilingType != "13G/A" {
		t.Errorf("FilingType = %q, want %q", fields.FilingType, "13G/A")
	}
	want := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	if !fields.FilingDate.Equal(want) {
		t.Errorf("FilingDate = %v, want %v", fields.FilingDate, want)
	}
	if fields.Ticker != "RDDT" {
		t.Errorf("Ticker = %q, want %q", fields.Ticker, "RDDT")
	}
	if fields.FilerName != "BAILLIE GIFFORD & CO" {
		t.Errorf("FilerName = %q, want %q", fields.FilerName, "BAILLIE GIFFORD & CO")
	}
	if fields.OwnershipPercent != "5.01" {
		t.Errorf("OwnershipPercent = %q, want %q", fields.OwnershipPercent, "5.01")
	}
	if !fields.HasRequired() {
		t.Error("HasRequired() = false, want true")
	}
}
