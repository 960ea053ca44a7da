// Package contact discovers recruiter email addresses for companies that
// received an application. Providers are chained: the first usable result
// wins, and every provider failure degrades to "no result" rather than
// aborting the enrichment pass.
package contact

import (
	"context"
	"regexp"

	"github.com/rs/zerolog"
)

// Result is the outcome of discovery for one company. Emails may be empty
// while ResolvedDomain is set: outreach can still address the company even
// without a mailbox.
type Result struct {
	Emails         []string
	ResolvedDomain string
}

// EmailFinder looks up recruiter addresses for a company. domainHint is
// empty for providers that search by name.
type EmailFinder interface {
	Lookup(ctx context.Context, company, domainHint string) ([]string, error)
}

// DomainResolver maps a company name to its website domain.
type DomainResolver interface {
	Resolve(ctx context.Context, company string) (string, error)
}

var reEmail = regexp.MustCompile(`^[\w.\-]+@[\w.\-]+\.\w+$`)

// ValidEmail applies a permissive local@domain.tld shape test.
func ValidEmail(s string) bool {
	return reEmail.MatchString(s)
}

// Chain tries Primary by company name, then Resolver plus Secondary by
// resolved domain. Any provider may be nil, which skips its link.
type Chain struct {
	Primary   EmailFinder
	Resolver  DomainResolver
	Secondary EmailFinder

	logger zerolog.Logger
}

func NewChain(primary EmailFinder, resolver DomainResolver, secondary EmailFinder, logger zerolog.Logger) *Chain {
	return &Chain{
		Primary:   primary,
		Resolver:  resolver,
		Secondary: secondary,
		logger:    logger.With().Str("component", "contact").Logger(),
	}
}

// Discover walks the fallback chain for one company. It never returns an
// error: a fully failed chain is simply an empty Result.
func (c *Chain) Discover(ctx context.Context, company string) Result {
	if emails := c.lookup(ctx, c.Primary, company, ""); len(emails) > 0 {
		return Result{Emails: emails}
	}

	domain := c.resolve(ctx, company)
	if domain == "" {
		return Result{}
	}

	if emails := c.lookup(ctx, c.Secondary, company, domain); len(emails) > 0 {
		return Result{Emails: emails, ResolvedDomain: domain}
	}

	// no mailbox found anywhere, surface the domain as a lead
	return Result{ResolvedDomain: domain}
}

func (c *Chain) lookup(ctx context.Context, f EmailFinder, company, domainHint string) []string {
	if f == nil {
		return nil
	}
	emails, err := f.Lookup(ctx, company, domainHint)
	if err != nil {
		c.logger.Warn().Err(err).Str("company", company).Msg("email lookup failed, trying next provider")
		return nil
	}

	var valid []string
	for _, e := range emails {
		if ValidEmail(e) {
			valid = append(valid, e)
		}
	}
	return valid
}

func (c *Chain) resolve(ctx context.Context, company string) string {
	if c.Resolver == nil {
		return ""
	}
	domain, err := c.Resolver.Resolve(ctx, company)
	if err != nil {
		c.logger.Warn().Err(err).Str("company", company).Msg("domain resolution failed")
		return ""
	}
	return domain
}
