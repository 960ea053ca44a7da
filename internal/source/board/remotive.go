package board

import (
	"context"

	"github.com/PuerkitoBio/goquery"

	"github.com/Vbhatt03/Automated-Application/internal/domain"
)

type Remotive struct {
	Client  *Client
	BaseURL string
}

func NewRemotive(client *Client) *Remotive {
	return &Remotive{Client: client, BaseURL: "https://remotive.com"}
}

func (r *Remotive) Name() string { return "Remotive" }

func (r *Remotive) Fetch(ctx context.Context) ([]domain.Listing, error) {
	listURL := r.BaseURL + "/remote-jobs/software-dev"
	doc, err := r.Client.getDocument(ctx, listURL)
	if err != nil {
		return nil, err
	}

	var out []domain.Listing
	doc.Find("div.job-tile, div.job").Each(func(_ int, div *goquery.Selection) {
		role := cleanText(div.Find(".job-title").First().Text())
		if role == "" {
			role = cleanText(div.Text())
		}
		company := cleanText(div.Find(".company-name").First().Text())
		if company == "" {
			company = "Remotive"
		}

		link := listURL
		if a := div.Find("a[href]").First(); a.Length() > 0 {
			link = absoluteURL(r.BaseURL, a.AttrOr("href", ""))
		}

		out = append(out, domain.Listing{
			Company:     company,
			Role:        role,
			Location:    "Remote",
			Link:        link,
			Source:      r.Name(),
			Description: role,
		})
	})
	return out, nil
}
