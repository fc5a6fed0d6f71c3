package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "profiles", "cfgsmith.sqlite")
	s, err := Open(context.Background(), dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func testSettings() []SavedSetting {
	return []SavedSetting{
		{Command: "sensitivity", Value: "2.5", Included: true},
		{Command: "cl_crosshairstyle", Value: "4", Included: true},
		{Command: "sv_cheats", Value: "false", Included: false},
	}
}

func TestOpenRejectsEmptyPath(t *testing.T) {
	_, err := Open(context.Background(), "")
	require.Error(t, err)
}

func TestSaveAndLoadProfile(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveProfile(ctx, "main", testSettings()))

	loaded, err := s.LoadProfile(ctx, "main")
	require.NoError(t, err)
	require.Len(t, loaded, 3)

	// Rows come back ordered by command.
	assert.Equal(t, "cl_crosshairstyle", loaded[0].Command)
	assert.Equal(t, "sensitivity", loaded[1].Command)
	assert.Equal(t, "sv_cheats", loaded[2].Command)
	assert.Equal(t, "2.5", loaded[1].Value)
	assert.True(t, loaded[1].Included)
	assert.False(t, loaded[2].Included)
}

func TestSaveProfileReplaces(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveProfile(ctx, "main", testSettings()))
	require.NoError(t, s.SaveProfile(ctx, "main", []SavedSetting{
		{Command: "volume", Value: "0.4", Included: true},
	}))

	loaded, err := s.LoadProfile(ctx, "main")
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "volume", loaded[0].Command)

	profiles, err := s.ListProfiles(ctx)
	require.NoError(t, err)
	assert.Len(t, profiles, 1)
}

func TestSaveProfileRejectsEmptyName(t *testing.T) {
	s := openTestStore(t)
	require.Error(t, s.SaveProfile(context.Background(), "", nil))
}

func TestLoadProfileNotFound(t *testing.T) {
	s := openTestStore(t)

	_, err := s.LoadProfile(context.Background(), "missing")
	require.ErrorIs(t, err, ErrProfileNotFound)
}

func TestListProfiles(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	profiles, err := s.ListProfiles(ctx)
	require.NoError(t, err)
	assert.Empty(t, profiles)

	require.NoError(t, s.SaveProfile(ctx, "alpha", testSettings()))
	require.NoError(t, s.SaveProfile(ctx, "beta", testSettings()))

	profiles, err = s.ListProfiles(ctx)
	require.NoError(t, err)
	require.Len(t, profiles, 2)
	for _, p := range profiles {
		assert.NotZero(t, p.ID)
		assert.False(t, p.CreatedAt.IsZero())
	}
}

func TestDeleteProfile(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveProfile(ctx, "main", testSettings()))
	require.NoError(t, s.DeleteProfile(ctx, "main"))

	_, err := s.LoadProfile(ctx, "main")
	require.ErrorIs(t, err, ErrProfileNotFound)

	err = s.DeleteProfile(ctx, "main")
	require.ErrorIs(t, err, ErrProfileNotFound)
}
