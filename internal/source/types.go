package source

import (
	"context"

	"github.com/Vbhatt03/Automated-Application/internal/domain"
)

// Provider is one listing source. Fetch returns whatever raw listings it
// could collect; it must catch its own failures and is expected to return
// partial results rather than fail the whole run.
type Provider interface {
	Name() string
	Fetch(ctx context.Context) ([]domain.Listing, error)
}

// Result pairs a provider's name with what it produced.
type Result struct {
	Source   string
	Listings []domain.Listing
	Err      error
}
