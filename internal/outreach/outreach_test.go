package outreach

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Vbhatt03/Automated-Application/internal/config"
	"github.com/Vbhatt03/Automated-Application/internal/domain"
)

func TestClassify(t *testing.T) {
	assert.Equal(t, KindBigTech, Classify(domain.Listing{Company: "Google DeepMind", Source: "remoteok"}))
	assert.Equal(t, KindStartup, Classify(domain.Listing{Company: "Acme AI", Source: "ycombinator"}))
	assert.Equal(t, KindStartup, Classify(domain.Listing{Company: "Acme AI", Source: "wellfound"}))
	assert.Equal(t, KindMidLevel, Classify(domain.Listing{Company: "Initech", Source: "indeed"}))
}

func testWriter() *Writer {
	return NewWriter(config.Identity{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		LinkedIn: "linkedin.com/in/janedoe",
	})
}

func TestColdEmailTonePerKind(t *testing.T) {
	w := testWriter()

	startup := w.ColdEmail(domain.Listing{Company: "Acme AI", Role: "ML Engineer", Source: "wellfound"})
	assert.True(t, strings.HasPrefix(startup, "Subject: Excited about ML Engineer at Acme AI"))
	assert.Contains(t, startup, "Hi Acme AI Team")

	bigtech := w.ColdEmail(domain.Listing{Company: "Nvidia", Role: "Research Engineer", Source: "indeed"})
	assert.Contains(t, bigtech, "Dear Nvidia Recruitment Team")
	assert.Contains(t, bigtech, "Application Follow-Up")

	mid := w.ColdEmail(domain.Listing{Company: "Initech", Role: "Backend Engineer", Source: "indeed"})
	assert.Contains(t, mid, "Hi Initech Hiring Team")
}

func TestColdEmailCarriesIdentity(t *testing.T) {
	w := testWriter()
	draft := w.ColdEmail(domain.Listing{Company: "Initech", Role: "Engineer"})

	assert.Contains(t, draft, "Jane Doe")
	assert.Contains(t, draft, "Email: jane@example.com")
	assert.Contains(t, draft, "LinkedIn: linkedin.com/in/janedoe")
}

func TestColdEmailPlaceholderWithoutEmail(t *testing.T) {
	w := NewWriter(config.Identity{Name: "Jane Doe"})
	draft := w.ColdEmail(domain.Listing{Company: "Initech", Role: "Engineer"})
	assert.Contains(t, draft, "your_email_here")
}

func TestLinkedInMessageMentionsRoleAndCompany(t *testing.T) {
	w := testWriter()
	for _, l := range []domain.Listing{
		{Company: "Acme AI", Role: "ML Engineer", Source: "yc"},
		{Company: "Apple", Role: "ML Engineer", Source: "indeed"},
		{Company: "Initech", Role: "ML Engineer", Source: "indeed"},
	} {
		msg := w.LinkedInMessage(l)
		assert.Contains(t, msg, l.Role)
		assert.Contains(t, msg, l.Company)
	}
}
