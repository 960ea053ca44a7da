package emailalert

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/Vbhatt03/Automated-Application/internal/domain"
)

var (
	reSalary = regexp.MustCompile(`[$₹€£]\s?\d[\d,]*(?:K|M)?\s*(?:-\s*[$₹€£]\s?\d[\d,]*(?:K|M)?)?\s*/\s*(?:year|month)`)
	reJobID  = regexp.MustCompile(`/jobs/view/(\d+)`)
)

// parseAlertHTML pulls listings out of a LinkedIn job-alert email body.
// A job card sprays several anchors at the same /jobs/view/<id> URL (logo,
// title, footer), so anchors are merged by job id before emitting.
func parseAlertHTML(body string) ([]domain.Listing, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return nil, err
	}

	type card struct {
		listing domain.Listing
	}
	byID := map[string]*card{}
	var order []string

	doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href := strings.TrimSpace(a.AttrOr("href", ""))
		if href == "" {
			return
		}
		lh := strings.ToLower(href)
		if !strings.Contains(lh, "/jobs/view/") || !strings.Contains(lh, "linkedin.com") {
			return
		}

		jobURL := unwrapRedirect(href)
		if jobURL == "" {
			return
		}

		key := jobURL
		if m := reJobID.FindStringSubmatch(jobURL); len(m) == 2 {
			key = "linkedin:" + m[1]
		}

		c, ok := byID[key]
		if !ok {
			c = &card{listing: domain.Listing{Link: jobURL, Source: "email-alert"}}
			byID[key] = c
			order = append(order, key)
		}

		if t := cleanText(a.Text()); betterTitle(t, c.listing.Role) {
			c.listing.Role = t
		}

		// company · location usually sits in a <p> inside the card table
		container := a.Closest("table")
		if container.Length() == 0 {
			container = a.Parent()
		}
		container.Find("p").Each(func(_ int, p *goquery.Selection) {
			t := cleanText(p.Text())
			if t == "" {
				return
			}
			if c.listing.Company == "" && strings.Contains(t, " · ") {
				parts := strings.SplitN(t, " · ", 2)
				c.listing.Company = strings.TrimSpace(parts[0])
				c.listing.Location = strings.TrimSpace(parts[1])
			}
		})

		if c.listing.Salary == "" {
			if m := reSalary.FindString(cleanText(container.Text())); m != "" {
				c.listing.Salary = strings.TrimSpace(m)
			}
		}
	})

	out := make([]domain.Listing, 0, len(order))
	for _, key := range order {
		l := byID[key].listing
		if l.Role == "" {
			continue
		}
		l.Description = l.Role
		out = append(out, l)
	}
	return out, nil
}

// unwrapRedirect resolves tracking wrappers of the form ...?url=<urlencoded>.
func unwrapRedirect(href string) string {
	u, err := url.Parse(href)
	if err != nil {
		return ""
	}
	if raw := u.Query().Get("url"); raw != "" {
		if uu, err := url.Parse(raw); err == nil && uu.Host != "" {
			return uu.String()
		}
	}
	return href
}

func betterTitle(candidate, current string) bool {
	candidate = strings.TrimSpace(candidate)
	if candidate == "" {
		return false
	}
	lc := strings.ToLower(candidate)
	if strings.Contains(lc, "see all jobs") || strings.Contains(lc, "view job") || lc == "apply" {
		return false
	}
	return len(candidate) > len(current)
}

func cleanText(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	s = strings.Join(strings.Fields(s), " ")
	return strings.TrimSpace(s)
}
