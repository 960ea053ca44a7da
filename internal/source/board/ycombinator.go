package board

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/Vbhatt03/Automated-Application/internal/domain"
)

// YCombinator scrapes the public YC jobs index. Cards render as anchors whose
// text is "Role • Company" separated by a bullet.
type YCombinator struct {
	Client  *Client
	BaseURL string
}

func NewYCombinator(client *Client) *YCombinator {
	return &YCombinator{Client: client, BaseURL: "https://www.ycombinator.com"}
}

func (y *YCombinator) Name() string { return "YCombinator" }

func (y *YCombinator) Fetch(ctx context.Context) ([]domain.Listing, error) {
	doc, err := y.Client.getDocument(ctx, y.BaseURL+"/jobs")
	if err != nil {
		return nil, err
	}

	var out []domain.Listing
	doc.Find("a[href*='/jobs/']").Each(func(_ int, a *goquery.Selection) {
		href, ok := a.Attr("href")
		if !ok {
			return
		}

		txt := cleanText(a.Text())
		if txt == "" {
			return
		}
		role, company := txt, "YC startup"
		if parts := strings.Split(txt, " • "); len(parts) > 1 {
			role = cleanText(parts[0])
			company = cleanText(parts[1])
		}

		out = append(out, domain.Listing{
			Company:     company,
			Role:        role,
			Location:    "N/A",
			Link:        absoluteURL(y.BaseURL, href),
			Source:      y.Name(),
			Description: txt,
		})
	})
	return out, nil
}
