package board

import (
	"context"
	"fmt"
	"net/url"

	"github.com/PuerkitoBio/goquery"

	"github.com/Vbhatt03/Automated-Application/internal/domain"
)

type Wellfound struct {
	Client   *Client
	BaseURL  string
	Query    string
	Location string
}

func NewWellfound(client *Client, query, location string) *Wellfound {
	return &Wellfound{
		Client:   client,
		BaseURL:  "https://wellfound.com",
		Query:    query,
		Location: location,
	}
}

func (w *Wellfound) Name() string { return "Wellfound" }

func (w *Wellfound) Fetch(ctx context.Context) ([]domain.Listing, error) {
	searchURL := fmt.Sprintf("%s/jobs?search%%5Bquery%%5D=%s&search%%5Blocations%%5D=%s",
		w.BaseURL, url.QueryEscape(w.Query), url.QueryEscape(w.Location))

	doc, err := w.Client.getDocument(ctx, searchURL)
	if err != nil {
		return nil, err
	}

	var out []domain.Listing
	doc.Find("a[data-test='job-serp__job-card']").Each(func(_ int, card *goquery.Selection) {
		href, ok := card.Attr("href")
		if !ok {
			return
		}

		role := cleanText(card.Find("[data-test='job-serp__job-title']").First().Text())
		if role == "" {
			role = cleanText(card.Text())
		}
		company := cleanText(card.Find("[data-test='job-serp__company-name']").First().Text())
		if company == "" {
			company = "Wellfound"
		}
		location := cleanText(card.Find("[data-test='job-serp__location']").First().Text())
		if location == "" {
			location = "N/A"
		}

		out = append(out, domain.Listing{
			Company:     company,
			Role:        role,
			Location:    location,
			Link:        absoluteURL(w.BaseURL, href),
			Source:      w.Name(),
			Description: role,
		})
	})
	return out, nil
}
