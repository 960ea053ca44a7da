// Package salary turns free-text compensation strings into a comparable
// monthly figure and applies the location-derived cutoff table.
package salary

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/Vbhatt03/Automated-Application/internal/config"
	"github.com/Vbhatt03/Automated-Application/internal/domain"
)

type Currency string

const (
	USD     Currency = "USD"
	EUR     Currency = "EUR"
	GBP     Currency = "GBP"
	INR     Currency = "INR"
	Unknown Currency = "UNKNOWN"
)

type Period string

const (
	Monthly Period = "monthly"
	Yearly  Period = "yearly"
)

// Parsed is the transient result of parsing one salary string.
type Parsed struct {
	Monthly  float64
	Currency Currency
	Period   Period
}

// currencyTable is ordered: the first symbol found in the text wins, so the
// symbol forms come before the bare codes.
var currencyTable = []struct {
	symbol string
	code   Currency
}{
	{"₹", INR},
	{"Rs", INR},
	{"$", USD},
	{"€", EUR},
	{"£", GBP},
	{"INR", INR},
	{"USD", USD},
	{"EUR", EUR},
	{"GBP", GBP},
}

var (
	reRange  = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*-\s*(\d+(?:\.\d+)?)`)
	reNumber = regexp.MustCompile(`\d+(?:\.\d+)?`)
	reYearly = regexp.MustCompile(`(?i)per\s*year|per\s*annum|pa|p\.a\.|annually|annual|yearly`)
	reMonth  = regexp.MustCompile(`(?i)per\s*month|/month|monthly|month`)
)

// Parse extracts the lower bound of the stated range as a monthly figure.
// ok is false when no number is present at all, which callers must treat as
// "salary unknown", never as zero.
//
// Large figures with no period keyword are reinterpreted as annual (INR above
// 200000, USD above 100000): postings routinely omit the unit on big round
// numbers. A genuinely monthly salary above those ceilings gets misread.
func Parse(text string) (Parsed, bool) {
	if strings.TrimSpace(text) == "" {
		return Parsed{}, false
	}

	s := strings.NewReplacer(",", "", "—", "-", "–", "-").Replace(text)

	currency := Unknown
	for _, entry := range currencyTable {
		if strings.Contains(s, entry.symbol) {
			currency = entry.code
			break
		}
	}

	var low float64
	if m := reRange.FindStringSubmatch(s); m != nil {
		low = parseFloat(m[1])
	} else if m := reNumber.FindString(s); m != "" {
		low = parseFloat(m)
	} else {
		return Parsed{}, false
	}

	period := Monthly
	if reYearly.MatchString(s) {
		period = Yearly
	}
	if reMonth.MatchString(s) {
		period = Monthly
	}

	monthly := low
	if period == Yearly {
		monthly = low / 12.0
	} else {
		if currency == INR && low > 200000 {
			monthly = low / 12.0
		}
		if currency == USD && low > 100000 {
			monthly = low / 12.0
		}
	}

	return Parsed{Monthly: monthly, Currency: currency, Period: period}, true
}

func parseFloat(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}

// CutoffFilter decides whether a listing's pay clears the configured floor
// for its geography.
type CutoffFilter struct {
	cutoffs []config.Cutoff
}

func NewCutoffFilter(cutoffs []config.Cutoff) *CutoffFilter {
	return &CutoffFilter{cutoffs: cutoffs}
}

// Meets is permissive: a listing with no salary text or an unparseable one
// always passes. Absence of data never eliminates a listing.
func (f *CutoffFilter) Meets(l domain.Listing) bool {
	text := strings.TrimSpace(l.Salary)
	if text == "" || strings.EqualFold(text, "N/A") || strings.EqualFold(text, "not provided") {
		return true
	}

	parsed, ok := Parse(text)
	if !ok {
		return true
	}

	return parsed.Monthly >= f.cutoffFor(l.Location, parsed.Currency)
}

// cutoffFor picks a cutoff by location substring first, then by detected
// currency, then zero.
func (f *CutoffFilter) cutoffFor(location string, currency Currency) float64 {
	loc := strings.ToLower(location)

	for _, c := range f.cutoffs {
		m := strings.ToLower(strings.TrimSpace(c.Match))
		if m != "" && strings.Contains(loc, m) {
			return c.Monthly
		}
	}

	for _, c := range f.cutoffs {
		if c.Currency != "" && strings.EqualFold(c.Currency, string(currency)) {
			return c.Monthly
		}
	}

	return 0
}
