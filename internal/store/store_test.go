package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestSessionsRoundTrip(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	blob, err := db.GetSession(ctx, "linkedin")
	require.NoError(t, err)
	assert.Nil(t, blob)

	require.NoError(t, db.PutSession(ctx, "LinkedIn", []byte(`[{"name":"li_at"}]`)))

	// site key is case-insensitive
	blob, err = db.GetSession(ctx, "linkedin")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[{"name":"li_at"}]`), blob)

	// overwrite wins
	require.NoError(t, db.PutSession(ctx, "linkedin", []byte("v2")))
	blob, err = db.GetSession(ctx, "linkedin")
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), blob)

	require.NoError(t, db.DeleteSession(ctx, "linkedin"))
	blob, err = db.GetSession(ctx, "linkedin")
	require.NoError(t, err)
	assert.Nil(t, blob)
}

func TestCompanyDomainsRoundTrip(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	got, err := db.GetCompanyDomain(ctx, "Acme")
	require.NoError(t, err)
	assert.Equal(t, "", got)

	require.NoError(t, db.UpsertCompanyDomain(ctx, "  Acme  Robotics ", "ACME.com"))

	got, err = db.GetCompanyDomain(ctx, "acme robotics")
	require.NoError(t, err)
	assert.Equal(t, "acme.com", got)
}

func TestMigrateIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	db, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, db.PutSession(context.Background(), "naukri", []byte("x")))
	require.NoError(t, db.Close())

	// reopening migrates again without clobbering data
	db, err = Open(path)
	require.NoError(t, err)
	defer db.Close()

	blob, err := db.GetSession(context.Background(), "naukri")
	require.NoError(t, err)
	assert.Equal(t, []byte("x"), blob)
}
