// Package emailalert turns job-alert emails into listings: unseen messages
// in a configured mailbox are scanned for alert cards and the alert itself is
// marked seen so the next run starts where this one stopped.
package emailalert

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/emersion/go-imap/v2"
	"github.com/emersion/go-imap/v2/imapclient"
	"github.com/rs/zerolog"

	"github.com/Vbhatt03/Automated-Application/internal/domain"
)

type Config struct {
	Addr       string // host:port, port 993 assumed when absent
	Username   string
	Password   string
	Mailbox    string
	SubjectAny []string // accept a message when any of these appears in its subject
	Max        int
}

type Fetcher struct {
	cfg    Config
	logger zerolog.Logger
}

func New(cfg Config, logger zerolog.Logger) *Fetcher {
	if cfg.Mailbox == "" {
		cfg.Mailbox = "INBOX"
	}
	if cfg.Max <= 0 {
		cfg.Max = 50
	}
	if !strings.Contains(cfg.Addr, ":") {
		cfg.Addr += ":993"
	}
	return &Fetcher{cfg: cfg, logger: logger.With().Str("component", "email-alert").Logger()}
}

func (f *Fetcher) Name() string { return "email-alert" }

func (f *Fetcher) Fetch(ctx context.Context) ([]domain.Listing, error) {
	if f.cfg.Addr == "" || f.cfg.Username == "" || f.cfg.Password == "" {
		return nil, errors.New("imap addr/username/password required")
	}

	host := f.cfg.Addr[:strings.LastIndex(f.cfg.Addr, ":")]
	c, err := imapclient.DialTLS(f.cfg.Addr, &imapclient.Options{
		TLSConfig: &tls.Config{MinVersion: tls.VersionTLS12, ServerName: host},
	})
	if err != nil {
		return nil, fmt.Errorf("imap dial tls: %w", err)
	}
	defer func() {
		if err := c.Logout().Wait(); err != nil {
			f.logger.Debug().Err(err).Msg("imap logout")
		}
		_ = c.Close()
	}()

	go func() {
		<-ctx.Done()
		_ = c.Close()
	}()

	if err := c.Login(f.cfg.Username, f.cfg.Password).Wait(); err != nil {
		return nil, fmt.Errorf("imap login: %w", err)
	}
	if _, err := c.Select(f.cfg.Mailbox, &imap.SelectOptions{ReadOnly: false}).Wait(); err != nil {
		return nil, fmt.Errorf("imap select %q: %w", f.cfg.Mailbox, err)
	}

	// alerts older than 3 months are stale enough to ignore
	criteria := &imap.SearchCriteria{
		NotFlag: []imap.Flag{imap.FlagSeen},
		Since:   time.Now().AddDate(0, -3, 0),
	}
	searchData, err := c.UIDSearch(criteria, nil).Wait()
	if err != nil {
		return nil, fmt.Errorf("imap uid search unseen: %w", err)
	}

	uids := searchData.AllUIDs()
	if len(uids) == 0 {
		return nil, nil
	}

	// newest first
	for i, j := 0, len(uids)-1; i < j; i, j = i+1, j-1 {
		uids[i], uids[j] = uids[j], uids[i]
	}
	if len(uids) > f.cfg.Max {
		uids = uids[:f.cfg.Max]
	}

	bodyAll := &imap.FetchItemBodySection{Specifier: imap.PartSpecifierNone, Peek: true}
	fetchCmd := c.Fetch(imap.UIDSetNum(uids...), &imap.FetchOptions{
		UID:         true,
		Envelope:    true,
		BodySection: []*imap.FetchItemBodySection{bodyAll},
	})
	defer func() { _ = fetchCmd.Close() }()

	var out []domain.Listing
	var processed []imap.UID

	for {
		select {
		case <-ctx.Done():
			return out, ctx.Err()
		default:
		}

		msgData := fetchCmd.Next()
		if msgData == nil {
			break
		}
		buf, err := msgData.Collect()
		if err != nil {
			return out, fmt.Errorf("imap fetch collect: %w", err)
		}

		subject := ""
		if buf.Envelope != nil {
			subject = buf.Envelope.Subject
		}
		processed = append(processed, buf.UID)

		if len(f.cfg.SubjectAny) > 0 && !containsAnyCI(subject, f.cfg.SubjectAny) {
			continue
		}

		raw := buf.FindBodySection(bodyAll)
		if len(raw) == 0 {
			continue
		}
		listings, perr := parseAlertHTML(htmlBody(raw))
		if perr != nil {
			f.logger.Warn().Err(perr).Str("subject", subject).Msg("alert parse failed")
			continue
		}
		f.logger.Debug().Str("subject", subject).Int("listings", len(listings)).Msg("parsed alert")
		out = append(out, listings...)
	}
	if err := fetchCmd.Close(); err != nil {
		return out, fmt.Errorf("imap fetch close: %w", err)
	}

	if err := f.markSeen(c, processed); err != nil {
		f.logger.Warn().Err(err).Msg("could not mark alerts seen")
	}

	return out, nil
}

func (f *Fetcher) markSeen(c *imapclient.Client, uids []imap.UID) error {
	if len(uids) == 0 {
		return nil
	}
	cmd := c.Store(imap.UIDSetNum(uids...), &imap.StoreFlags{
		Op:     imap.StoreFlagsAdd,
		Silent: true,
		Flags:  []imap.Flag{imap.FlagSeen},
	}, nil)
	return cmd.Close()
}

func containsAnyCI(s string, needles []string) bool {
	ls := strings.ToLower(s)
	for _, n := range needles {
		n = strings.ToLower(strings.TrimSpace(n))
		if n != "" && strings.Contains(ls, n) {
			return true
		}
	}
	return false
}
