package board

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/Vbhatt03/Automated-Application/internal/domain"
)

// Greenhouse scrapes hosted boards under boards.greenhouse.io. Each
// configured slug is one company board; a broken board contributes nothing
// while the rest still produce listings.
type Greenhouse struct {
	Client  *Client
	BaseURL string
	slugs   []string
}

func NewGreenhouse(client *Client, slugs []string) *Greenhouse {
	return &Greenhouse{
		Client:  client,
		BaseURL: "https://boards.greenhouse.io",
		slugs:   slugs,
	}
}

func (g *Greenhouse) Name() string { return "Greenhouse" }

func (g *Greenhouse) Fetch(ctx context.Context) ([]domain.Listing, error) {
	var out []domain.Listing
	for _, slug := range g.slugs {
		doc, err := g.Client.getDocument(ctx, g.BaseURL+"/"+slug)
		if err != nil {
			// one dead board must not starve the others
			continue
		}
		out = append(out, g.parseBoard(doc, slug)...)
	}
	return out, nil
}

func (g *Greenhouse) parseBoard(doc *goquery.Document, slug string) []domain.Listing {
	company := companyFromSlug(slug)
	seen := map[string]bool{}

	var listings []domain.Listing
	doc.Find("div.opening").Each(func(_ int, s *goquery.Selection) {
		a := s.Find("a").First()
		href, ok := a.Attr("href")
		if !ok || !strings.Contains(href, "/jobs/") {
			return
		}

		link := absoluteURL(g.BaseURL, href)
		if seen[link] {
			return
		}
		seen[link] = true

		role := cleanText(a.Text())
		if role == "" {
			return
		}

		listings = append(listings, domain.Listing{
			Company:     company,
			Role:        role,
			Location:    cleanText(s.Find("span.location").Text()),
			Link:        link,
			Source:      "greenhouse",
			Description: role,
		})
	})
	return listings
}

// companyFromSlug turns "acme-labs" into "Acme Labs" for display; the slug
// rarely matches the legal name but is close enough for dedup and exports.
func companyFromSlug(slug string) string {
	words := strings.FieldsFunc(slug, func(r rune) bool { return r == '-' || r == '_' })
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
