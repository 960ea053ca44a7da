package contact

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const hunterBaseURL = "https://api.hunter.io"

// Hunter queries the hunter.io domain-search endpoint. It can search by
// company name directly, so it serves as the primary finder in the chain.
type Hunter struct {
	APIKey  string
	BaseURL string
	hc      *http.Client
}

func NewHunter(apiKey string) *Hunter {
	return &Hunter{
		APIKey:  apiKey,
		BaseURL: hunterBaseURL,
		hc:      &http.Client{Timeout: 15 * time.Second},
	}
}

func (h *Hunter) Lookup(ctx context.Context, company, domainHint string) ([]string, error) {
	q := url.Values{}
	q.Set("api_key", h.APIKey)
	q.Set("limit", "10")
	if domainHint != "" {
		q.Set("domain", domainHint)
	} else {
		q.Set("company", company)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.BaseURL+"/v2/domain-search?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := h.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("hunter request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("hunter: unexpected status %d", resp.StatusCode)
	}

	var body struct {
		Data struct {
			Domain string `json:"domain"`
			Emails []struct {
				Value string `json:"value"`
			} `json:"emails"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("hunter response: %w", err)
	}

	emails := make([]string, 0, len(body.Data.Emails))
	for _, e := range body.Data.Emails {
		if e.Value != "" {
			emails = append(emails, e.Value)
		}
	}
	return emails, nil
}
