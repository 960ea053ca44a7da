package contact

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const snovBaseURL = "https://api.snov.io"

// Snov is the secondary finder. It needs a resolved domain and exchanges
// client credentials for a short-lived access token on first use.
type Snov struct {
	ClientID     string
	ClientSecret string
	BaseURL      string

	hc    *http.Client
	token string
}

func NewSnov(clientID, clientSecret string) *Snov {
	return &Snov{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		BaseURL:      snovBaseURL,
		hc:           &http.Client{Timeout: 15 * time.Second},
	}
}

func (s *Snov) accessToken(ctx context.Context) (string, error) {
	if s.token != "" {
		return s.token, nil
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", s.ClientID)
	form.Set("client_secret", s.ClientSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		s.BaseURL+"/v1/oauth/access_token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.hc.Do(req)
	if err != nil {
		return "", fmt.Errorf("snov token request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("snov token: unexpected status %d", resp.StatusCode)
	}

	var body struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("snov token response: %w", err)
	}
	if body.AccessToken == "" {
		return "", fmt.Errorf("snov token: empty access_token")
	}

	s.token = body.AccessToken
	return s.token, nil
}

func (s *Snov) Lookup(ctx context.Context, _ string, domainHint string) ([]string, error) {
	if domainHint == "" {
		return nil, nil
	}

	token, err := s.accessToken(ctx)
	if err != nil {
		return nil, err
	}

	q := url.Values{}
	q.Set("domain", domainHint)
	q.Set("type", "all")
	q.Set("limit", "10")
	q.Set("access_token", token)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		s.BaseURL+"/v1/get-domain-emails-with-info?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("snov request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("snov: unexpected status %d", resp.StatusCode)
	}

	var body struct {
		Emails []struct {
			Email string `json:"email"`
		} `json:"emails"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("snov response: %w", err)
	}

	emails := make([]string, 0, len(body.Emails))
	for _, e := range body.Emails {
		if e.Email != "" {
			emails = append(emails, e.Email)
		}
	}
	return emails, nil
}
