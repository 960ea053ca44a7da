// Package apply drives the best-effort application flow for shortlisted
// listings. Every outcome folds into one of three statuses: Applied when a
// submission was confirmed, Flagged when a human needs to finish the job,
// Pending when nothing was attempted.
package apply

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/Vbhatt03/Automated-Application/internal/browser"
	"github.com/Vbhatt03/Automated-Application/internal/domain"
)

// Authenticator restores or establishes a logged-in session for a site on
// the given browser. Implemented by session.Cache.
type Authenticator interface {
	Ensure(ctx context.Context, site string, cap browser.Capability, login func(context.Context, browser.Capability) error) error
}

// Profile carries the applicant details typed into application forms.
type Profile struct {
	Phone      string
	ResumePath string
}

// Machine applies to listings one at a time through a browser capability.
type Machine struct {
	cap       browser.Capability
	sessions  Authenticator
	profile   Profile
	maxPerRun int
	logger    zerolog.Logger
}

func NewMachine(cap browser.Capability, sessions Authenticator, profile Profile, maxPerRun int, logger zerolog.Logger) *Machine {
	return &Machine{
		cap:       cap,
		sessions:  sessions,
		profile:   profile,
		maxPerRun: maxPerRun,
		logger:    logger.With().Str("component", "apply").Logger(),
	}
}

// Run processes the shortlist in order. At most maxPerRun listings are
// attempted; the overflow is forced to Pending so it surfaces in the next
// run. Listings already in a terminal status pass through untouched. The
// returned slice has the same length and order as the input, every entry
// with a decided status.
func (m *Machine) Run(ctx context.Context, shortlist []domain.Listing) []domain.Listing {
	out := make([]domain.Listing, len(shortlist))
	copy(out, shortlist)

	attempted := 0
	for i := range out {
		if out[i].Status.Terminal() {
			continue
		}
		if m.maxPerRun > 0 && attempted >= m.maxPerRun {
			out[i].Status = domain.StatusPending
			continue
		}
		attempted++
		out[i].Status = m.applyOne(ctx, out[i])
		m.logger.Info().
			Str("company", out[i].Company).
			Str("role", out[i].Role).
			Str("status", string(out[i].Status)).
			Msg("application attempt finished")
	}
	return out
}

// applyOne runs the full flow for one listing and always returns a status.
// Unexpected failures never escape: they flag the record for manual review.
func (m *Machine) applyOne(ctx context.Context, l domain.Listing) domain.Status {
	site := SiteForURL(l.Link)
	if site == "" {
		m.logger.Debug().Str("link", l.Link).Msg("no automation for host, leaving pending")
		return domain.StatusPending
	}
	sel := siteTable[site]

	// a failed login degrades to an unauthenticated attempt
	if m.sessions != nil {
		if err := m.sessions.Ensure(ctx, site, m.cap, LoginFlow(site)); err != nil {
			m.logger.Warn().Err(err).Str("site", site).Msg("session setup failed, continuing unauthenticated")
		}
	}

	if err := m.cap.Navigate(ctx, l.Link); err != nil {
		m.logger.Warn().Err(err).Str("link", l.Link).Msg("navigation failed")
		return domain.StatusFlagged
	}

	applied, err := m.clickFirst(ctx, sel.apply)
	if err != nil {
		m.logger.Warn().Err(err).Str("site", site).Msg("apply click failed")
		return domain.StatusFlagged
	}
	if !applied {
		// no apply affordance on the page, likely an external redirect
		return domain.StatusPending
	}

	_ = m.cap.Wait(ctx, 2*time.Second)
	m.fillForm(ctx, sel)

	submitted, err := m.clickFirst(ctx, sel.submit)
	if err != nil {
		m.logger.Warn().Err(err).Str("site", site).Msg("submit click failed")
		return domain.StatusFlagged
	}
	if !submitted {
		// form opened but could not be finished automatically
		return domain.StatusFlagged
	}
	return domain.StatusApplied
}

// clickFirst tries each selector in order. ok is false when none matched;
// err is set only for failures other than absence.
func (m *Machine) clickFirst(ctx context.Context, selectors []string) (ok bool, err error) {
	for _, s := range selectors {
		err := m.cap.FindAndClick(ctx, s)
		if err == nil {
			return true, nil
		}
		if !errors.Is(err, browser.ErrNotFound) {
			return false, err
		}
	}
	return false, nil
}

// fillForm uploads the resume and fills the phone field. Both are best
// effort: many forms carry these over from the profile already.
func (m *Machine) fillForm(ctx context.Context, sel siteSelectors) {
	if m.profile.ResumePath != "" && sel.resume != "" {
		if err := m.cap.UploadFile(ctx, sel.resume, m.profile.ResumePath); err != nil {
			m.logger.Debug().Err(err).Msg("resume upload skipped")
		}
	}
	if m.profile.Phone != "" && sel.phone != "" {
		if err := m.cap.FindAndType(ctx, sel.phone, m.profile.Phone); err != nil {
			m.logger.Debug().Err(err).Msg("phone fill skipped")
		}
	}
}
