package board

import (
	"context"

	"github.com/PuerkitoBio/goquery"

	"github.com/Vbhatt03/Automated-Application/internal/domain"
)

// RemoteOK lists remote dev jobs in <tr class="job"> rows carrying data-*
// attributes, which survive template changes better than visible markup.
type RemoteOK struct {
	Client  *Client
	BaseURL string
}

func NewRemoteOK(client *Client) *RemoteOK {
	return &RemoteOK{Client: client, BaseURL: "https://remoteok.com"}
}

func (r *RemoteOK) Name() string { return "RemoteOK" }

func (r *RemoteOK) Fetch(ctx context.Context) ([]domain.Listing, error) {
	doc, err := r.Client.getDocument(ctx, r.BaseURL+"/remote-dev-jobs")
	if err != nil {
		return nil, err
	}

	var out []domain.Listing
	doc.Find("tr.job").Each(func(_ int, row *goquery.Selection) {
		role := row.AttrOr("data-search", "")
		if role == "" {
			role = row.AttrOr("data-position", "")
		}
		if role == "" {
			role = cleanText(row.Text())
		}

		link := row.AttrOr("data-url", "")
		if link == "" {
			return
		}
		link = absoluteURL(r.BaseURL, link)

		company := row.AttrOr("data-company", "")
		if company == "" {
			company = "RemoteOK"
		}

		out = append(out, domain.Listing{
			Company:     company,
			Role:        cleanText(role),
			Location:    "Remote",
			Link:        link,
			Source:      r.Name(),
			Description: cleanText(role),
		})
	})
	return out, nil
}
