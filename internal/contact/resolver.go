package contact

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog"

	"github.com/Vbhatt03/Automated-Application/internal/store"
)

// domainBlocklist filters out job boards, ATS hosts and reference sites
// that rank above a company's own website in search results.
var domainBlocklist = []string{
	"linkedin.com",
	"indeed.com",
	"naukri.com",
	"glassdoor.com",
	"ziprecruiter.com",
	"monster.com",
	"wellfound.com",
	"angel.co",
	"crunchbase.com",
	"wikipedia.org",

	// ATS hosts
	"greenhouse.io",
	"boards.greenhouse.io",
	"lever.co",
	"myworkdayjobs.com",
	"workday.com",
	"smartrecruiters.com",
	"icims.com",
	"jobvite.com",
	"applytojob.com",
}

// DDGResolver finds a company's website domain through the DuckDuckGo HTML
// endpoint and caches successful lookups in sqlite, since company domains
// rarely change between runs.
type DDGResolver struct {
	db      *store.DB
	hc      *http.Client
	BaseURL string
	logger  zerolog.Logger
}

func NewDDGResolver(db *store.DB, logger zerolog.Logger) *DDGResolver {
	return &DDGResolver{
		db:      db,
		hc:      &http.Client{Timeout: 12 * time.Second},
		BaseURL: "https://duckduckgo.com",
		logger:  logger.With().Str("component", "resolver").Logger(),
	}
}

func (r *DDGResolver) Resolve(ctx context.Context, company string) (string, error) {
	company = strings.TrimSpace(company)
	if company == "" {
		return "", nil
	}

	if r.db != nil {
		cached, err := r.db.GetCompanyDomain(ctx, company)
		if err != nil {
			return "", err
		}
		if cached != "" {
			return cached, nil
		}
	}

	found, err := r.search(ctx, company)
	if err != nil || found == "" {
		return "", err
	}

	if r.db != nil {
		if err := r.db.UpsertCompanyDomain(ctx, company, found); err != nil {
			r.logger.Warn().Err(err).Str("company", company).Msg("caching resolved domain failed")
		}
	}
	return found, nil
}

func (r *DDGResolver) search(ctx context.Context, company string) (string, error) {
	query := sanitizeCompanyForSearch(company) + " official website"
	u := r.BaseURL + "/html/?q=" + url.QueryEscape(query)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := r.hc.Do(req)
	if err != nil {
		return "", fmt.Errorf("domain search: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("domain search: unexpected status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("domain search: %w", err)
	}

	var best string
	doc.Find("a.result__a").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		href, ok := a.Attr("href")
		if !ok || strings.TrimSpace(href) == "" {
			return true
		}

		host := hostFromURL(decodeDDGRedirect(href))
		if host == "" {
			return true
		}

		host = strings.ToLower(strings.TrimPrefix(host, "www."))
		if isBlockedDomain(host) {
			return true
		}

		best = host
		return false // first acceptable result wins
	})

	return best, nil
}

// decodeDDGRedirect unwraps the /l/?uddg=<urlencoded> indirection DDG
// sometimes puts in front of result links.
func decodeDDGRedirect(href string) string {
	u, err := url.Parse(href)
	if err != nil {
		return href
	}
	if uddg := u.Query().Get("uddg"); uddg != "" {
		if dec, err := url.QueryUnescape(uddg); err == nil && dec != "" {
			return dec
		}
	}
	return href
}

func hostFromURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return u.Host
}

func isBlockedDomain(host string) bool {
	for _, b := range domainBlocklist {
		if host == b || strings.HasSuffix(host, "."+b) {
			return true
		}
	}
	return false
}

// sanitizeCompanyForSearch strips legal suffixes that dilute the query.
func sanitizeCompanyForSearch(s string) string {
	r := strings.NewReplacer(
		", Inc.", "", " Inc.", "", " Inc", "",
		", LLC", "", " LLC", "",
		", Ltd.", "", " Ltd.", "", " Ltd", "",
		" Pvt.", "", " Pvt", "",
		" Recruiting", "",
		" Staffing", "",
	)
	return strings.Join(strings.Fields(r.Replace(s)), " ")
}
