package board

import (
	"context"

	"github.com/PuerkitoBio/goquery"

	"github.com/Vbhatt03/Automated-Application/internal/domain"
)

type WeWorkRemotely struct {
	Client  *Client
	BaseURL string
}

func NewWeWorkRemotely(client *Client) *WeWorkRemotely {
	return &WeWorkRemotely{Client: client, BaseURL: "https://weworkremotely.com"}
}

func (w *WeWorkRemotely) Name() string { return "WeWorkRemotely" }

func (w *WeWorkRemotely) Fetch(ctx context.Context) ([]domain.Listing, error) {
	doc, err := w.Client.getDocument(ctx, w.BaseURL+"/categories/remote-programming-jobs")
	if err != nil {
		return nil, err
	}

	var out []domain.Listing
	doc.Find("li.feature, li > .job").Each(func(_ int, li *goquery.Selection) {
		a := li.Find("a[href]").First()
		href, ok := a.Attr("href")
		if !ok {
			return
		}

		role := cleanText(a.Find("span.title").First().Text())
		if role == "" {
			role = cleanText(a.Text())
		}
		company := cleanText(a.Find("span.company").First().Text())
		if company == "" {
			company = "WeWorkRemotely"
		}

		out = append(out, domain.Listing{
			Company:     company,
			Role:        role,
			Location:    "Remote",
			Link:        absoluteURL(w.BaseURL, href),
			Source:      w.Name(),
			Description: role,
		})
	})
	return out, nil
}
