package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordGeneration_Upserts(t *testing.T) {
	db, err := Open("", filepath.Join(t.TempDir(), "usage.db"))
	require.NoError(t, err)

	require.NoError(t, RecordGeneration(db, "2024-01-01", 2, 14))
	require.NoError(t, RecordGeneration(db, "2024-01-01", 1, 7))
	require.NoError(t, RecordGeneration(db, "2024-01-02", 53, 371))

	usage, err := RecentUsage(db, 30)
	require.NoError(t, err)
	require.Len(t, usage, 2)

	assert.Equal(t, "2024-01-02", usage[0].Date)
	assert.Equal(t, 1, usage[0].RequestCount)

	assert.Equal(t, "2024-01-01", usage[1].Date)
	assert.Equal(t, 2, usage[1].RequestCount)
	assert.Equal(t, 3, usage[1].TotalWeeks)
	assert.Equal(t, 21, usage[1].TotalDays)
}

func TestOpen_RequiresLocation(t *testing.T) {
	_, err := Open("", "")
	assert.Error(t, err)
}

func TestRecentUsage_Limit(t *testing.T) {
	db, err := Open("", filepath.Join(t.TempDir(), "usage.db"))
	require.NoError(t, err)

	for _, d := range []string{"2024-01-01", "2024-01-02", "2024-01-03"} {
		require.NoError(t, RecordGeneration(db, d, 1, 7))
	}

	usage, err := RecentUsage(db, 2)
	require.NoError(t, err)
	require.Len(t, usage, 2)
	assert.Equal(t, "2024-01-03", usage[0].Date)
}
