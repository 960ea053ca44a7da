// Package dedupe collapses listings that several sources reported
// independently.
package dedupe

import "github.com/Vbhatt03/Automated-Application/internal/domain"

// Listings filters out repeated identity keys in a single pass, keeping the
// first occurrence. Deterministic for deterministic input order.
func Listings(in []domain.Listing) []domain.Listing {
	seen := make(map[domain.Key]struct{}, len(in))
	out := make([]domain.Listing, 0, len(in))
	for _, l := range in {
		key := l.Key()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, l)
	}
	return out
}
