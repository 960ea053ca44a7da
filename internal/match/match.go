// Package match shortlists listings against the profile keyword list.
package match

import (
	"strings"

	"github.com/Vbhatt03/Automated-Application/internal/domain"
)

// Matcher holds the lowercased keyword set from the profile config.
type Matcher struct {
	keywords []string
}

func New(keywords []string) *Matcher {
	m := &Matcher{}
	for _, k := range keywords {
		k = strings.ToLower(strings.TrimSpace(k))
		if k != "" {
			m.keywords = append(m.keywords, k)
		}
	}
	return m
}

// Matches reports whether any keyword occurs in the listing's role, company
// or description. An empty keyword list matches nothing: an unconfigured
// profile should not shortlist every scraped listing.
func (m *Matcher) Matches(l domain.Listing) bool {
	if len(m.keywords) == 0 {
		return false
	}
	haystack := strings.ToLower(l.Role + " " + l.Company + " " + l.Description)
	for _, k := range m.keywords {
		if strings.Contains(haystack, k) {
			return true
		}
	}
	return false
}

// Filter returns the listings that match, preserving input order.
func (m *Matcher) Filter(in []domain.Listing) []domain.Listing {
	out := make([]domain.Listing, 0, len(in))
	for _, l := range in {
		if m.Matches(l) {
			out = append(out, l)
		}
	}
	return out
}
