package pipeline

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vbhatt03/Automated-Application/internal/apply"
	"github.com/Vbhatt03/Automated-Application/internal/browser"
	"github.com/Vbhatt03/Automated-Application/internal/config"
	"github.com/Vbhatt03/Automated-Application/internal/contact"
	"github.com/Vbhatt03/Automated-Application/internal/domain"
	"github.com/Vbhatt03/Automated-Application/internal/export"
	"github.com/Vbhatt03/Automated-Application/internal/outreach"
	"github.com/Vbhatt03/Automated-Application/internal/source"
)

type stubProvider struct {
	name     string
	listings []domain.Listing
}

func (s *stubProvider) Name() string { return s.name }

func (s *stubProvider) Fetch(context.Context) ([]domain.Listing, error) {
	return s.listings, nil
}

// easyPage is a Capability where every apply flow succeeds.
type easyPage struct {
	navigated []string
}

func (p *easyPage) Navigate(_ context.Context, url string) error {
	p.navigated = append(p.navigated, url)
	return nil
}

func (p *easyPage) FindAndClick(context.Context, string) error        { return nil }
func (p *easyPage) FindAndType(context.Context, string, string) error { return nil }
func (p *easyPage) UploadFile(context.Context, string, string) error  { return nil }
func (p *easyPage) Wait(context.Context, time.Duration) error         { return nil }
func (p *easyPage) Cookies(context.Context) ([]byte, error)           { return nil, nil }
func (p *easyPage) RestoreCookies(context.Context, []byte) error      { return nil }
func (p *easyPage) Close() error                                      { return nil }

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := &config.Config{}
	cfg.App.DataDir = t.TempDir()
	cfg.Profile.Keywords = []string{"machine learning"}
	cfg.Apply.MaxPerRun = 2
	return cfg
}

func rawListings() []domain.Listing {
	mk := func(company, role, link string) domain.Listing {
		return domain.Listing{
			Company:  company,
			Role:     role,
			Location: "Remote",
			Link:     link,
			Source:   "stub",
			Salary:   "N/A",
		}
	}
	return []domain.Listing{
		mk("Acme", "Machine Learning Engineer", "https://www.linkedin.com/jobs/view/1"),
		mk("Acme", "Machine Learning Engineer", "https://www.linkedin.com/jobs/view/1"), // duplicate
		mk("Initech", "Machine Learning Researcher", "https://www.linkedin.com/jobs/view/2"),
		mk("Globex", "Machine Learning Platform Engineer", "https://www.linkedin.com/jobs/view/3"),
		mk("Umbrella", "Accountant", "https://www.linkedin.com/jobs/view/4"),
	}
}

func TestRunEndToEnd(t *testing.T) {
	cfg := testConfig(t)
	registry := source.NewRegistry(zerolog.Nop(), &stubProvider{name: "stub", listings: rawListings()})

	page := &easyPage{}
	machine := apply.NewMachine(page, nil, apply.Profile{}, cfg.Apply.MaxPerRun, zerolog.Nop())

	sum, err := NewRunner(cfg, registry, machine, zerolog.Nop()).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 5, sum.Scraped)
	assert.Equal(t, 4, sum.Deduped)
	assert.Equal(t, 3, sum.Shortlisted)
	// cap 2: two applied, the third shortlisted record forced to stay pending
	assert.Equal(t, 2, sum.Applied)
	assert.Equal(t, 0, sum.Flagged)
	assert.Equal(t, 2, sum.Pending)
	assert.Len(t, page.navigated, 2)

	// both snapshots exist and carry the decided statuses
	raw, err := export.ReadListings(filepath.Join(cfg.App.DataDir, RawExport))
	require.NoError(t, err)
	assert.Len(t, raw, 4)

	status, err := export.ReadListings(filepath.Join(cfg.App.DataDir, StatusExport))
	require.NoError(t, err)
	applied := 0
	for _, l := range status {
		if l.Status == domain.StatusApplied {
			applied++
		}
	}
	assert.Equal(t, 2, applied)
}

func TestRunWithNoMatchesWritesEmptyShortlist(t *testing.T) {
	cfg := testConfig(t)
	cfg.Profile.Keywords = []string{"quantum basket weaving"}
	registry := source.NewRegistry(zerolog.Nop(), &stubProvider{name: "stub", listings: rawListings()})
	machine := apply.NewMachine(&easyPage{}, nil, apply.Profile{}, 2, zerolog.Nop())

	sum, err := NewRunner(cfg, registry, machine, zerolog.Nop()).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, sum.Shortlisted)
	assert.Equal(t, 0, sum.Applied)
	assert.Equal(t, 4, sum.Pending)
}

type stubChain struct {
	results map[string]contact.Result
}

func (s *stubChain) Discover(_ context.Context, company string) contact.Result {
	return s.results[company]
}

func TestEnrichOnlyTouchesAppliedRecords(t *testing.T) {
	dir := t.TempDir()
	statusPath := filepath.Join(dir, StatusExport)
	outPath := filepath.Join(dir, EnrichedExport)

	listings := []domain.Listing{
		{Company: "Acme", Role: "ML Engineer", Link: "l1", Source: "wellfound", Status: domain.StatusApplied, Salary: "N/A"},
		{Company: "Initech", Role: "ML Engineer", Link: "l2", Source: "indeed", Status: domain.StatusPending, Salary: "N/A"},
	}
	require.NoError(t, export.WriteListings(statusPath, listings))

	chain := &stubChain{results: map[string]contact.Result{
		"Acme": {Emails: []string{"hr@acme.com"}},
	}}
	writer := outreach.NewWriter(config.Identity{Name: "Jane Doe", Email: "jane@example.com"})

	n, err := NewEnricher(chain, writer, zerolog.Nop()).Enrich(context.Background(), statusPath, outPath)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	rows, err := export.ReadListings(outPath)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestEnrichMissingInputIsFatal(t *testing.T) {
	chain := &stubChain{}
	writer := outreach.NewWriter(config.Identity{})

	_, err := NewEnricher(chain, writer, zerolog.Nop()).Enrich(
		context.Background(),
		filepath.Join(t.TempDir(), "missing.csv"),
		filepath.Join(t.TempDir(), "out.csv"),
	)
	assert.Error(t, err)
}

func TestEnrichFallsBackToDomainCell(t *testing.T) {
	dir := t.TempDir()
	statusPath := filepath.Join(dir, StatusExport)
	outPath := filepath.Join(dir, EnrichedExport)

	require.NoError(t, export.WriteListings(statusPath, []domain.Listing{
		{Company: "Acme", Role: "ML Engineer", Link: "l1", Status: domain.StatusApplied, Salary: "N/A"},
	}))

	chain := &stubChain{results: map[string]contact.Result{
		"Acme": {ResolvedDomain: "acme.com"},
	}}
	n, err := NewEnricher(chain, outreach.NewWriter(config.Identity{}), zerolog.Nop()).Enrich(context.Background(), statusPath, outPath)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

var _ browser.Capability = (*easyPage)(nil)
