package history

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := New(filepath.Join(t.TempDir(), "gfxprof.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestRecordAndRecent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, db.Record("gpuswitch", "intel", "nvidia", false))
	require.NoError(t, db.Record("gpuswitch", "nvidia", "intel", true))

	switches, err := db.Recent(10)
	require.NoError(t, err)
	require.Len(t, switches, 2)

	// Newest first
	assert.Equal(t, "intel", switches[0].Current)
	assert.True(t, switches[0].PowerDown)
	assert.Equal(t, "nvidia", switches[1].Current)
	assert.False(t, switches[1].PowerDown)
	assert.False(t, switches[0].SwitchedAt.IsZero())
}

func TestRecent_Limit(t *testing.T) {
	db := openTestDB(t)

	for i := 0; i < 5; i++ {
		require.NoError(t, db.Record("gpuswitch", "intel", "nvidia", false))
	}

	switches, err := db.Recent(3)
	require.NoError(t, err)
	assert.Len(t, switches, 3)
}

func TestRecent_Empty(t *testing.T) {
	db := openTestDB(t)

	switches, err := db.Recent(10)
	require.NoError(t, err)
	assert.Empty(t, switches)
}

func TestMigrationsAreIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gfxprof.db")

	db, err := New(path)
	require.NoError(t, err)
	require.NoError(t, db.Record("gpuswitch", "intel", "nvidia", false))
	require.NoError(t, db.Close())

	// Reopening runs migrate() again against the existing schema.
	db, err = New(path)
	require.NoError(t, err)
	defer db.Close()

	switches, err := db.Recent(10)
	require.NoError(t, err)
	assert.Len(t, switches, 1)
}
