package prefs

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	wf "github.com/gogpu/watchface"
	"github.com/gogpu/watchface/host"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "prefs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestLoadDefaults(t *testing.T) {
	s := openTemp(t)
	p, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, host.DefaultPreferences(), p)
}

func TestSaveAndLoad(t *testing.T) {
	ctx := context.Background()
	s := openTemp(t)

	want := host.Preferences{PrimaryColor: wf.Red, UnreadIndicator: false}
	require.NoError(t, s.Save(ctx, want))

	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)

	v, err := s.Get(ctx, KeyPrimaryColor)
	require.NoError(t, err)
	assert.Equal(t, "#FF0000FF", v)
}

func TestPersistsAcrossOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.db")
	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Set(context.Background(), KeyUnreadIndicator, "false"))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()
	p, err := s.Load()
	require.NoError(t, err)
	assert.False(t, p.UnreadIndicator)
	assert.Equal(t, wf.Blue, p.PrimaryColor)
}

func TestGetNotFound(t *testing.T) {
	s := openTemp(t)
	_, err := s.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoadMalformed(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		key, value string
	}{
		{KeyPrimaryColor, "not-a-color"},
		{KeyUnreadIndicator, "maybe"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			s := openTemp(t)
			require.NoError(t, s.Set(ctx, tt.key, tt.value))
			_, err := s.Load()
			assert.Error(t, err)
		})
	}
}
