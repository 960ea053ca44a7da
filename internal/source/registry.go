package source

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/Vbhatt03/Automated-Application/internal/domain"
)

// Registry fans provider fetches out across a bounded worker group and
// concatenates the results in registration order. One broken provider never
// aborts the run: its error is logged and it contributes zero listings.
type Registry struct {
	providers []Provider
	timeout   time.Duration
	logger    zerolog.Logger
}

const defaultFetchTimeout = 2 * time.Minute

func NewRegistry(logger zerolog.Logger, providers ...Provider) *Registry {
	return &Registry{
		providers: providers,
		timeout:   defaultFetchTimeout,
		logger:    logger.With().Str("component", "registry").Logger(),
	}
}

// WithTimeout overrides the per-provider fetch timeout.
func (r *Registry) WithTimeout(d time.Duration) *Registry {
	if d > 0 {
		r.timeout = d
	}
	return r
}

func (r *Registry) Providers() []Provider { return r.providers }

// FetchAll runs every provider concurrently, each under its own timeout so no
// provider can block the others indefinitely, and merges the output in
// provider-registration order.
func (r *Registry) FetchAll(ctx context.Context) []domain.Listing {
	slots := make([]Result, len(r.providers))

	var g errgroup.Group
	g.SetLimit(4)

	for i, p := range r.providers {
		i, p := i, p
		g.Go(func() error {
			fctx, cancel := context.WithTimeout(ctx, r.timeout)
			defer cancel()

			r.logger.Debug().Str("source", p.Name()).Msg("fetching")
			listings, err := p.Fetch(fctx)
			slots[i] = Result{Source: p.Name(), Listings: listings, Err: err}
			// best-effort: never cancel siblings
			return nil
		})
	}
	_ = g.Wait()

	var out []domain.Listing
	for _, res := range slots {
		if res.Err != nil {
			r.logger.Warn().Str("source", res.Source).Err(res.Err).
				Msg("provider failed; continuing with zero results")
			continue
		}
		r.logger.Info().Str("source", res.Source).Int("listings", len(res.Listings)).Msg("fetched")
		out = append(out, res.Listings...)
	}
	return out
}
