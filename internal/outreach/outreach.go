// Package outreach renders cold-email and LinkedIn drafts for applications
// that went through. Tone is picked by a rough company classification.
package outreach

import (
	"fmt"
	"strings"

	"github.com/Vbhatt03/Automated-Application/internal/config"
	"github.com/Vbhatt03/Automated-Application/internal/domain"
)

// Kind buckets a company for template selection.
type Kind string

const (
	KindStartup  Kind = "startup"
	KindBigTech  Kind = "bigtech"
	KindMidLevel Kind = "midlevel"
)

var bigTechNames = []string{
	"google", "microsoft", "amazon", "meta", "apple",
	"netflix", "nvidia", "intel", "oracle", "adobe",
}

var startupSources = []string{
	"yc", "wellfound", "startup", "remoteok", "weworkremotely", "remotive",
}

// Classify buckets by company name first, then by where the listing was
// found: startup-heavy boards imply a startup, everything else is midlevel.
func Classify(l domain.Listing) Kind {
	name := strings.ToLower(l.Company)
	for _, b := range bigTechNames {
		if strings.Contains(name, b) {
			return KindBigTech
		}
	}
	source := strings.ToLower(l.Source)
	for _, s := range startupSources {
		if strings.Contains(source, s) {
			return KindStartup
		}
	}
	return KindMidLevel
}

// Writer renders drafts with the applicant's identity filled in.
type Writer struct {
	identity config.Identity
}

func NewWriter(identity config.Identity) *Writer {
	return &Writer{identity: identity}
}

func (w *Writer) signature() string {
	email := w.identity.Email
	if email == "" {
		email = "your_email_here"
	}
	return fmt.Sprintf("%s\nEmail: %s\nLinkedIn: %s", w.identity.Name, email, w.identity.LinkedIn)
}

// ColdEmail renders a full email draft, subject line included, addressed to
// the recruiter email when one was discovered.
func (w *Writer) ColdEmail(l domain.Listing) string {
	switch Classify(l) {
	case KindStartup:
		return fmt.Sprintf(`Subject: Excited about %s at %s

Hi %s Team,

I came across the %s role at %s and it immediately resonated with me.
I thrive in fast-paced environments where ideas quickly turn into real products.

I'd love to contribute my skills to help %s build and scale faster.
Let me know if we could connect for a quick chat.

Best,
%s
`, l.Role, l.Company, l.Company, l.Role, l.Company, l.Company, w.signature())

	case KindBigTech:
		return fmt.Sprintf(`Subject: Application Follow-Up, %s at %s

Dear %s Recruitment Team,

I recently applied for the %s role and wanted to follow up directly.
I'm eager to contribute to impactful large-scale systems that align with %s's mission.

Please let me know if additional details would be helpful. I'd be delighted to discuss how my experience can add value.

Sincerely,
%s
`, l.Role, l.Company, l.Company, l.Role, l.Company, w.signature())

	default:
		return fmt.Sprintf(`Subject: Interest in %s at %s

Hi %s Hiring Team,

I recently submitted an application for the %s role at %s.
I'd be happy to share more details about my background and projects if helpful. Looking forward to your response.

Best regards,
%s
`, l.Role, l.Company, l.Company, l.Role, l.Company, w.signature())
	}
}

// LinkedInMessage renders the short connection-request note.
func (w *Writer) LinkedInMessage(l domain.Listing) string {
	switch Classify(l) {
	case KindStartup:
		return fmt.Sprintf("Hi! Just applied for the %s role at %s. Excited about what you're building, would love to connect and explore how I can contribute.", l.Role, l.Company)
	case KindBigTech:
		return fmt.Sprintf("Hello, I recently applied for the %s role at %s. I'd appreciate connecting to stay updated and learn more about the team.", l.Role, l.Company)
	default:
		return fmt.Sprintf("Hi, I applied for the %s role at %s. Would be great to connect and understand more about the opportunity.", l.Role, l.Company)
	}
}
