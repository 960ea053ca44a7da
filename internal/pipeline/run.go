// Package pipeline wires scraping, filtering, applying and enrichment into
// the two top-level runs the CLI exposes.
package pipeline

import (
	"context"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/Vbhatt03/Automated-Application/internal/config"
	"github.com/Vbhatt03/Automated-Application/internal/dedupe"
	"github.com/Vbhatt03/Automated-Application/internal/domain"
	"github.com/Vbhatt03/Automated-Application/internal/export"
	"github.com/Vbhatt03/Automated-Application/internal/match"
	"github.com/Vbhatt03/Automated-Application/internal/salary"
	"github.com/Vbhatt03/Automated-Application/internal/source"
)

// Summary is the run report printed at exit.
type Summary struct {
	Scraped     int
	Deduped     int
	Shortlisted int
	Applied     int
	Flagged     int
	Pending     int
}

// File names under the data dir. The raw snapshot is written before any
// filtering so a bad filter config never loses scraped data.
const (
	RawExport      = "jobs_raw.csv"
	StatusExport   = "jobs_status.csv"
	EnrichedExport = "jobs_enriched.csv"
)

// Machine is satisfied by apply.Machine; tests substitute stubs.
type Machine interface {
	Run(ctx context.Context, shortlist []domain.Listing) []domain.Listing
}

// Runner drives one scrape-filter-apply cycle.
type Runner struct {
	cfg      *config.Config
	registry *source.Registry
	machine  Machine
	logger   zerolog.Logger
}

func NewRunner(cfg *config.Config, registry *source.Registry, machine Machine, logger zerolog.Logger) *Runner {
	return &Runner{
		cfg:      cfg,
		registry: registry,
		machine:  machine,
		logger:   logger.With().Str("component", "pipeline").Logger(),
	}
}

// Run executes the full cycle and writes the raw and status snapshots into
// the data dir. Partial progress survives: statuses decided before an abort
// are already in the returned slice of the machine.
func (r *Runner) Run(ctx context.Context) (Summary, error) {
	var sum Summary

	raw := r.registry.FetchAll(ctx)
	sum.Scraped = len(raw)

	for i := range raw {
		raw[i] = domain.Normalize(raw[i])
	}
	unique := dedupe.Listings(raw)
	sum.Deduped = len(unique)
	r.logger.Info().Int("scraped", sum.Scraped).Int("unique", sum.Deduped).Msg("listings collected")

	if err := export.WriteListings(r.dataPath(RawExport), unique); err != nil {
		return sum, err
	}

	shortlist := r.shortlist(unique)
	sum.Shortlisted = len(shortlist)
	r.logger.Info().Int("shortlisted", sum.Shortlisted).Msg("filters applied")

	decided := r.machine.Run(ctx, shortlist)

	// merge decided statuses back into the full unique set by identity key
	byKey := make(map[domain.Key]domain.Status, len(decided))
	for _, l := range decided {
		byKey[l.Key()] = l.Status
	}
	for i := range unique {
		if st, ok := byKey[unique[i].Key()]; ok {
			unique[i].Status = st
		}
	}

	for _, l := range unique {
		switch l.Status {
		case domain.StatusApplied:
			sum.Applied++
		case domain.StatusFlagged:
			sum.Flagged++
		default:
			sum.Pending++
		}
	}

	if err := export.WriteListings(r.dataPath(StatusExport), unique); err != nil {
		return sum, err
	}
	return sum, nil
}

// shortlist applies the salary cutoff and the profile keyword filter.
func (r *Runner) shortlist(in []domain.Listing) []domain.Listing {
	cutoffs := salary.NewCutoffFilter(r.cfg.Salary.Cutoffs)
	keywords := match.New(r.cfg.Profile.Keywords)

	var out []domain.Listing
	for _, l := range in {
		if !cutoffs.Meets(l) {
			continue
		}
		if !keywords.Matches(l) {
			continue
		}
		out = append(out, l)
	}
	return out
}

func (r *Runner) dataPath(name string) string {
	return filepath.Join(r.cfg.App.DataDir, name)
}
