package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmr-tortoise/gitignore-sync/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestRecordAndRecent(t *testing.T) {
	s := openTestStore(t)

	result := &model.Result{
		Created:   []string{"/w/a"},
		Updated:   []string{"/w/b", "/w/c"},
		Unchanged: []string{"/w/d"},
	}

	rec, err := s.Record(result, false)
	require.NoError(t, err)
	assert.NotZero(t, rec.ID)
	assert.Equal(t, 1, rec.Created)
	assert.Equal(t, 2, rec.Updated)
	assert.Equal(t, 1, rec.Unchanged)
	assert.False(t, rec.DryRun)

	records, err := s.Recent(0)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, rec.ID, records[0].ID)
	assert.Equal(t, 2, records[0].Updated)
}

func TestRecentNewestFirstAndLimited(t *testing.T) {
	s := openTestStore(t)

	for i := 0; i < 5; i++ {
		_, err := s.Record(&model.Result{Unchanged: []string{"/w/x"}}, i%2 == 0)
		require.NoError(t, err)
	}

	records, err := s.Recent(3)
	require.NoError(t, err)
	require.Len(t, records, 3)

	// Newest first: IDs strictly descending.
	assert.Greater(t, records[0].ID, records[1].ID)
	assert.Greater(t, records[1].ID, records[2].ID)
}

func TestOpenIsIdempotent(t *testing.T) {
	root := t.TempDir()

	s1, err := Open(root)
	require.NoError(t, err)
	_, err = s1.Record(&model.Result{}, true)
	require.NoError(t, err)
	require.NoError(t, s1.Close())

	// Reopening must see the previously recorded run.
	s2, err := Open(root)
	require.NoError(t, err)
	defer s2.Close()

	records, err := s2.Recent(0)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.True(t, records[0].DryRun)
	assert.Equal(t, root, records[0].Root)
}
