package board

import (
	"context"
	"fmt"
	"net/url"

	"github.com/PuerkitoBio/goquery"

	"github.com/Vbhatt03/Automated-Application/internal/domain"
)

// Indeed pages through search results ten rows at a time. A page that fails
// to fetch is skipped; earlier pages are still returned.
type Indeed struct {
	Client   *Client
	BaseURL  string
	Query    string
	Location string
	Pages    int
}

func NewIndeed(client *Client, query, location string, pages int) *Indeed {
	if pages <= 0 {
		pages = 1
	}
	return &Indeed{
		Client:   client,
		BaseURL:  "https://www.indeed.com",
		Query:    query,
		Location: location,
		Pages:    pages,
	}
}

func (i *Indeed) Name() string { return "Indeed" }

func (i *Indeed) Fetch(ctx context.Context) ([]domain.Listing, error) {
	var out []domain.Listing
	var lastErr error

	for p := 0; p < i.Pages; p++ {
		pageURL := fmt.Sprintf("%s/jobs?q=%s&l=%s&start=%d",
			i.BaseURL, url.QueryEscape(i.Query), url.QueryEscape(i.Location), p*10)

		doc, err := i.Client.getDocument(ctx, pageURL)
		if err != nil {
			lastErr = err
			continue
		}
		out = append(out, i.parsePage(doc)...)
	}

	if len(out) == 0 && lastErr != nil {
		return nil, lastErr
	}
	return out, nil
}

func (i *Indeed) parsePage(doc *goquery.Document) []domain.Listing {
	var out []domain.Listing
	doc.Find("a.tapItem, div.jobsearch-SerpJobCard").Each(func(_ int, card *goquery.Selection) {
		role := cleanText(card.Find("h2.jobTitle, h2.title").First().Text())
		if role == "" {
			role = cleanText(card.Text())
		}
		company := cleanText(card.Find("span.companyName, span.company").First().Text())
		if company == "" {
			company = "Indeed"
		}
		location := cleanText(card.Find("div.companyLocation, .location").First().Text())
		if location == "" {
			location = i.Location
		}

		link := card.AttrOr("href", "")
		if link == "" {
			if a := card.Find("a[href]").First(); a.Length() > 0 {
				link = a.AttrOr("href", "")
			}
		}

		out = append(out, domain.Listing{
			Company:     company,
			Role:        role,
			Location:    location,
			Link:        absoluteURL(i.BaseURL, link),
			Source:      i.Name(),
			Description: role,
		})
	})
	return out
}
