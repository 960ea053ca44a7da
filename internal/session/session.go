// Package session reuses persisted login cookies across runs so applying
// does not re-authenticate against each site every time.
package session

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/Vbhatt03/Automated-Application/internal/browser"
	"github.com/Vbhatt03/Automated-Application/internal/store"
)

// Cache restores saved cookie blobs into a browser and captures fresh ones
// after an interactive login. Sites that were never logged in simply run a
// login flow once; everything after that is a cookie restore.
type Cache struct {
	db       *store.DB
	restored map[string]bool
	logger   zerolog.Logger
}

func NewCache(db *store.DB, logger zerolog.Logger) *Cache {
	return &Cache{
		db:       db,
		restored: make(map[string]bool),
		logger:   logger.With().Str("component", "session").Logger(),
	}
}

// Ensure makes the browser hold a session for site. A persisted blob is
// restored when present; otherwise login runs and the resulting cookies are
// saved. A nil login means the site works unauthenticated and Ensure is a
// no-op beyond the restore attempt. Within one Cache a site is only set up
// once.
func (c *Cache) Ensure(ctx context.Context, site string, cap browser.Capability, login func(context.Context, browser.Capability) error) error {
	if c.restored[site] {
		return nil
	}

	blob, err := c.db.GetSession(ctx, site)
	if err != nil {
		return fmt.Errorf("load session for %s: %w", site, err)
	}
	if blob != nil {
		if err := cap.RestoreCookies(ctx, blob); err != nil {
			// stale or corrupt blob, fall through to a fresh login
			c.logger.Warn().Err(err).Str("site", site).Msg("restoring saved session failed")
			_ = c.db.DeleteSession(ctx, site)
		} else {
			c.logger.Debug().Str("site", site).Msg("session restored from store")
			c.restored[site] = true
			return nil
		}
	}

	if login == nil {
		c.restored[site] = true
		return nil
	}
	if err := login(ctx, cap); err != nil {
		return fmt.Errorf("login to %s: %w", site, err)
	}

	fresh, err := cap.Cookies(ctx)
	if err != nil {
		return fmt.Errorf("capture cookies for %s: %w", site, err)
	}
	if err := c.db.PutSession(ctx, site, fresh); err != nil {
		return fmt.Errorf("persist session for %s: %w", site, err)
	}

	c.logger.Info().Str("site", site).Msg("new session established and saved")
	c.restored[site] = true
	return nil
}
