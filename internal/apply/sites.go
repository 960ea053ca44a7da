package apply

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/Vbhatt03/Automated-Application/internal/browser"
	"github.com/Vbhatt03/Automated-Application/internal/secrets"
)

// siteSelectors describes how one job site's apply flow looks in the DOM.
// apply and submit are tried in order; the first match wins.
type siteSelectors struct {
	apply  []string
	submit []string
	phone  string
	resume string
}

var siteTable = map[string]siteSelectors{
	"linkedin": {
		apply:  []string{"button.jobs-apply-button", "button[aria-label*='Easy Apply']"},
		submit: []string{"button[aria-label='Submit application']", "button[aria-label*='Submit']"},
		phone:  "input[id*='phoneNumber']",
		resume: "input[type='file']",
	},
	"naukri": {
		apply:  []string{"button#apply-button", "button.apply-button"},
		submit: []string{"button[type='submit']", "button.submit-btn"},
		phone:  "input[name='mobile']",
		resume: "input[type='file']",
	},
	"wellfound": {
		apply:  []string{"button[data-test='Button-Apply']", "button.apply"},
		submit: []string{"button[data-test='Button-Submit']", "button[type='submit']"},
		phone:  "input[name='phone']",
		resume: "input[type='file']",
	},
	"indeed": {
		apply:  []string{"button#indeedApplyButton", "button.ia-IndeedApplyButton"},
		submit: []string{"button.ia-continueButton", "button[type='submit']"},
		phone:  "input[name='applicant.phoneNumber']",
		resume: "input[type='file']",
	},
}

var loginPages = map[string]string{
	"linkedin":  "https://www.linkedin.com/login",
	"naukri":    "https://www.naukri.com/nlogin/login",
	"wellfound": "https://wellfound.com/login",
}

var loginSelectors = map[string][3]string{
	// username, password, submit
	"linkedin":  {"input#username", "input#password", "button[type='submit']"},
	"naukri":    {"input#usernameField", "input#passwordField", "button[type='submit']"},
	"wellfound": {"input#user_email", "input#user_password", "input[type='submit']"},
}

// SiteForURL maps a listing link to the site key used for selector lookup
// and session caching. Unknown hosts return "".
func SiteForURL(link string) string {
	u, err := url.Parse(link)
	if err != nil {
		return ""
	}
	host := strings.ToLower(u.Hostname())
	switch {
	case strings.HasSuffix(host, "linkedin.com"):
		return "linkedin"
	case strings.HasSuffix(host, "naukri.com"):
		return "naukri"
	case strings.HasSuffix(host, "wellfound.com"), strings.HasSuffix(host, "angel.co"):
		return "wellfound"
	case strings.HasSuffix(host, "indeed.com"):
		return "indeed"
	}
	return ""
}

// LoginFlow returns the interactive login sequence for a site, or nil when
// the site has no credentialed flow (indeed applications work anonymously).
// The flow fails fast when no credentials are stored for the site.
func LoginFlow(site string) func(context.Context, browser.Capability) error {
	page, ok := loginPages[site]
	if !ok {
		return nil
	}
	sel := loginSelectors[site]

	return func(ctx context.Context, cap browser.Capability) error {
		user, pass, err := secrets.SiteCredentials(site)
		if err != nil {
			return fmt.Errorf("credentials for %s: %w", site, err)
		}

		if err := cap.Navigate(ctx, page); err != nil {
			return err
		}
		if err := cap.FindAndType(ctx, sel[0], user); err != nil {
			return err
		}
		if err := cap.FindAndType(ctx, sel[1], pass); err != nil {
			return err
		}
		if err := cap.FindAndClick(ctx, sel[2]); err != nil {
			return err
		}
		// give the site a moment to set session cookies
		return cap.Wait(ctx, 3*time.Second)
	}
}
