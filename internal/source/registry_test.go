package source

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vbhatt03/Automated-Application/internal/domain"
)

type stubProvider struct {
	name     string
	listings []domain.Listing
	err      error
	delay    time.Duration
}

func (s stubProvider) Name() string { return s.name }

func (s stubProvider) Fetch(ctx context.Context) ([]domain.Listing, error) {
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return s.listings, s.err
}

func listing(company, role string) domain.Listing {
	return domain.Listing{Company: company, Role: role, Link: "https://x/" + role}
}

func TestFetchAllMergesInRegistrationOrder(t *testing.T) {
	reg := NewRegistry(zerolog.Nop(),
		stubProvider{name: "a", listings: []domain.Listing{listing("A", "1")}, delay: 30 * time.Millisecond},
		stubProvider{name: "b", listings: []domain.Listing{listing("B", "2"), listing("B", "3")}},
	)

	got := reg.FetchAll(context.Background())
	require.Len(t, got, 3)
	// slower provider registered first still comes first
	assert.Equal(t, "A", got[0].Company)
	assert.Equal(t, "B", got[1].Company)
}

func TestFetchAllIsolatesFailingProvider(t *testing.T) {
	reg := NewRegistry(zerolog.Nop(),
		stubProvider{name: "broken", err: errors.New("network down")},
		stubProvider{name: "ok", listings: []domain.Listing{listing("C", "4")}},
	)

	got := reg.FetchAll(context.Background())
	require.Len(t, got, 1)
	assert.Equal(t, "C", got[0].Company)
}

func TestFetchAllTimesOutSlowProvider(t *testing.T) {
	reg := NewRegistry(zerolog.Nop(),
		stubProvider{name: "slow", listings: []domain.Listing{listing("S", "5")}, delay: time.Second},
		stubProvider{name: "fast", listings: []domain.Listing{listing("F", "6")}},
	).WithTimeout(50 * time.Millisecond)

	got := reg.FetchAll(context.Background())
	require.Len(t, got, 1)
	assert.Equal(t, "F", got[0].Company)
}

func TestHostLimiterSeparatesHosts(t *testing.T) {
	hl := NewHostLimiter(1000, 1)
	ctx := context.Background()

	start := time.Now()
	require.NoError(t, hl.WaitURL(ctx, "https://a.example/x"))
	require.NoError(t, hl.WaitURL(ctx, "https://b.example/y"))
	assert.Less(t, time.Since(start), 100*time.Millisecond)
}
