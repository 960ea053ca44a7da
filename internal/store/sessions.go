package store

import (
	"context"
	"database/sql"
	"strings"
	"time"
)

// GetSession returns the opaque session blob saved for a site, or nil when no
// session has been persisted yet. The blob's contents are never interpreted
// here.
func (d *DB) GetSession(ctx context.Context, site string) ([]byte, error) {
	site = strings.ToLower(strings.TrimSpace(site))
	if site == "" {
		return nil, nil
	}

	var blob []byte
	err := d.Pool.QueryRowContext(ctx,
		`SELECT blob FROM sessions WHERE site = ? LIMIT 1;`,
		site,
	).Scan(&blob)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return blob, nil
}

// PutSession stores the session blob for a site, replacing any previous one.
func (d *DB) PutSession(ctx context.Context, site string, blob []byte) error {
	site = strings.ToLower(strings.TrimSpace(site))
	if site == "" || len(blob) == 0 {
		return nil
	}

	_, err := d.Pool.ExecContext(ctx, `
INSERT INTO sessions(site, blob, saved_at)
VALUES(?,?,?)
ON CONFLICT(site) DO UPDATE SET
  blob = excluded.blob,
  saved_at = excluded.saved_at;
`, site, blob, time.Now().UTC().Format(time.RFC3339))

	return err
}

// DeleteSession drops a persisted session, forcing the next run to log in
// interactively again.
func (d *DB) DeleteSession(ctx context.Context, site string) error {
	site = strings.ToLower(strings.TrimSpace(site))
	if site == "" {
		return nil
	}
	_, err := d.Pool.ExecContext(ctx, `DELETE FROM sessions WHERE site = ?;`, site)
	return err
}
