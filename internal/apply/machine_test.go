package apply

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/Vbhatt03/Automated-Application/internal/browser"
	"github.com/Vbhatt03/Automated-Application/internal/domain"
)

// fakeCapability scripts which selectors exist on the "page". Selectors not
// in the set report browser.ErrNotFound, like a real page without them.
type fakeCapability struct {
	present   map[string]bool
	navErr    error
	clickErr  map[string]error
	clicked   []string
	typed     map[string]string
	navigated []string
}

func newFakeCapability(selectors ...string) *fakeCapability {
	f := &fakeCapability{
		present:  make(map[string]bool),
		clickErr: make(map[string]error),
		typed:    make(map[string]string),
	}
	for _, s := range selectors {
		f.present[s] = true
	}
	return f
}

func (f *fakeCapability) Navigate(_ context.Context, url string) error {
	f.navigated = append(f.navigated, url)
	return f.navErr
}

func (f *fakeCapability) FindAndClick(_ context.Context, sel string) error {
	if err, ok := f.clickErr[sel]; ok {
		return err
	}
	if !f.present[sel] {
		return browser.ErrNotFound
	}
	f.clicked = append(f.clicked, sel)
	return nil
}

func (f *fakeCapability) FindAndType(_ context.Context, sel, text string) error {
	if !f.present[sel] {
		return browser.ErrNotFound
	}
	f.typed[sel] = text
	return nil
}

func (f *fakeCapability) UploadFile(_ context.Context, sel, path string) error {
	if !f.present[sel] {
		return browser.ErrNotFound
	}
	f.typed[sel] = path
	return nil
}

func (f *fakeCapability) Wait(context.Context, time.Duration) error { return nil }

func (f *fakeCapability) Cookies(context.Context) ([]byte, error) { return []byte("{}"), nil }

func (f *fakeCapability) RestoreCookies(context.Context, []byte) error { return nil }

func (f *fakeCapability) Close() error { return nil }

func testMachine(cap browser.Capability, max int) *Machine {
	return NewMachine(cap, nil, Profile{Phone: "555-0100", ResumePath: "/tmp/resume.pdf"}, max, zerolog.Nop())
}

func listing(link string) domain.Listing {
	return domain.Listing{Company: "Acme", Role: "Engineer", Link: link, Status: domain.StatusPending}
}

func TestAppliedWhenSubmitFound(t *testing.T) {
	cap := newFakeCapability(
		"button.jobs-apply-button",
		"button[aria-label='Submit application']",
		"input[type='file']",
		"input[id*='phoneNumber']",
	)
	out := testMachine(cap, 10).Run(context.Background(), []domain.Listing{listing("https://www.linkedin.com/jobs/view/1")})

	assert.Equal(t, domain.StatusApplied, out[0].Status)
	assert.Equal(t, "/tmp/resume.pdf", cap.typed["input[type='file']"])
	assert.Equal(t, "555-0100", cap.typed["input[id*='phoneNumber']"])
}

func TestFlaggedWhenSubmitMissing(t *testing.T) {
	cap := newFakeCapability("button.jobs-apply-button")
	out := testMachine(cap, 10).Run(context.Background(), []domain.Listing{listing("https://www.linkedin.com/jobs/view/1")})

	assert.Equal(t, domain.StatusFlagged, out[0].Status)
}

func TestPendingWhenNoApplyButton(t *testing.T) {
	cap := newFakeCapability()
	out := testMachine(cap, 10).Run(context.Background(), []domain.Listing{listing("https://www.linkedin.com/jobs/view/1")})

	assert.Equal(t, domain.StatusPending, out[0].Status)
}

func TestPendingForUnknownHost(t *testing.T) {
	cap := newFakeCapability("button.jobs-apply-button")
	out := testMachine(cap, 10).Run(context.Background(), []domain.Listing{listing("https://jobs.example.com/123")})

	assert.Equal(t, domain.StatusPending, out[0].Status)
	assert.Empty(t, cap.navigated)
}

func TestFlaggedOnNavigationError(t *testing.T) {
	cap := newFakeCapability("button.jobs-apply-button")
	cap.navErr = errors.New("net: connection refused")
	out := testMachine(cap, 10).Run(context.Background(), []domain.Listing{listing("https://www.linkedin.com/jobs/view/1")})

	assert.Equal(t, domain.StatusFlagged, out[0].Status)
}

func TestFlaggedOnClickError(t *testing.T) {
	cap := newFakeCapability("button.jobs-apply-button")
	cap.clickErr["button.jobs-apply-button"] = errors.New("element detached")
	out := testMachine(cap, 10).Run(context.Background(), []domain.Listing{listing("https://www.linkedin.com/jobs/view/1")})

	assert.Equal(t, domain.StatusFlagged, out[0].Status)
}

func TestRunCapForcesOverflowPending(t *testing.T) {
	cap := newFakeCapability("button.jobs-apply-button", "button[aria-label='Submit application']")
	in := []domain.Listing{
		listing("https://www.linkedin.com/jobs/view/1"),
		listing("https://www.linkedin.com/jobs/view/2"),
		listing("https://www.linkedin.com/jobs/view/3"),
	}
	out := testMachine(cap, 2).Run(context.Background(), in)

	assert.Equal(t, domain.StatusApplied, out[0].Status)
	assert.Equal(t, domain.StatusApplied, out[1].Status)
	assert.Equal(t, domain.StatusPending, out[2].Status)
	assert.Len(t, cap.navigated, 2)
}

func TestRunSkipsTerminalRecords(t *testing.T) {
	cap := newFakeCapability("button.jobs-apply-button", "button[aria-label='Submit application']")
	done := listing("https://www.linkedin.com/jobs/view/1")
	done.Status = domain.StatusApplied
	flagged := listing("https://www.linkedin.com/jobs/view/2")
	flagged.Status = domain.StatusFlagged

	out := testMachine(cap, 10).Run(context.Background(), []domain.Listing{done, flagged})

	assert.Equal(t, domain.StatusApplied, out[0].Status)
	assert.Equal(t, domain.StatusFlagged, out[1].Status)
	assert.Empty(t, cap.navigated)
}

func TestEveryOutcomeIsDecided(t *testing.T) {
	// a machine with a flaky page never leaves a processed record without
	// a definite status
	cap := newFakeCapability("button#apply-button")
	cap.clickErr["button[type='submit']"] = errors.New("timeout")
	in := []domain.Listing{
		listing("https://www.naukri.com/job-listings-1"),
		listing("https://wellfound.com/jobs/2"),
		listing("https://www.indeed.com/viewjob?jk=3"),
	}
	out := testMachine(cap, 10).Run(context.Background(), in)
	for _, l := range out {
		assert.Contains(t, []domain.Status{domain.StatusPending, domain.StatusApplied, domain.StatusFlagged}, l.Status)
	}
}

func TestSiteForURL(t *testing.T) {
	assert.Equal(t, "linkedin", SiteForURL("https://www.linkedin.com/jobs/view/42"))
	assert.Equal(t, "naukri", SiteForURL("https://www.naukri.com/job-listings-x"))
	assert.Equal(t, "wellfound", SiteForURL("https://angel.co/jobs/1"))
	assert.Equal(t, "wellfound", SiteForURL("https://wellfound.com/jobs/1"))
	assert.Equal(t, "indeed", SiteForURL("https://in.indeed.com/viewjob?jk=1"))
	assert.Equal(t, "", SiteForURL("https://remoteok.com/remote-jobs/1"))
	assert.Equal(t, "", SiteForURL("::bad url::"))
}
