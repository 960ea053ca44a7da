package pipeline

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Vbhatt03/Automated-Application/internal/contact"
	"github.com/Vbhatt03/Automated-Application/internal/domain"
	"github.com/Vbhatt03/Automated-Application/internal/export"
	"github.com/Vbhatt03/Automated-Application/internal/outreach"
)

// Discoverer is satisfied by contact.Chain.
type Discoverer interface {
	Discover(ctx context.Context, company string) contact.Result
}

// Enricher runs the post-apply enrichment pass: it reads the status
// snapshot of a previous run and adds recruiter contacts and outreach
// drafts for every Applied record.
type Enricher struct {
	chain  Discoverer
	writer *outreach.Writer
	logger zerolog.Logger
}

func NewEnricher(chain Discoverer, writer *outreach.Writer, logger zerolog.Logger) *Enricher {
	return &Enricher{
		chain:  chain,
		writer: writer,
		logger: logger.With().Str("component", "enrich").Logger(),
	}
}

// Enrich reads statusPath, enriches it and writes outPath. Only records in
// Applied get contact lookups; everything else passes through with empty
// enrichment cells. The input file being absent is the one fatal error of
// this pass.
func (e *Enricher) Enrich(ctx context.Context, statusPath, outPath string) (int, error) {
	listings, err := export.ReadListings(statusPath)
	if err != nil {
		return 0, err
	}

	extra := make([]export.Enrichment, len(listings))
	enriched := 0
	for i, l := range listings {
		if l.Status != domain.StatusApplied {
			continue
		}

		res := e.chain.Discover(ctx, l.Company)
		extra[i] = export.Enrichment{
			Contacts:        contactCell(res),
			ColdEmail:       e.writer.ColdEmail(l),
			LinkedInMessage: e.writer.LinkedInMessage(l),
		}
		enriched++
		e.logger.Info().
			Str("company", l.Company).
			Int("emails", len(res.Emails)).
			Str("domain", res.ResolvedDomain).
			Msg("contacts discovered")
	}

	if err := export.WriteEnriched(outPath, listings, extra); err != nil {
		return enriched, err
	}
	return enriched, nil
}

// contactCell flattens a discovery result into one export cell. With no
// emails the resolved domain still gives outreach somewhere to aim.
func contactCell(res contact.Result) string {
	if len(res.Emails) > 0 {
		return strings.Join(res.Emails, ", ")
	}
	if res.ResolvedDomain != "" {
		return res.ResolvedDomain
	}
	return "N/A"
}
