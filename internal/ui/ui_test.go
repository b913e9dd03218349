package ui

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/musclemap/musclemap-client/internal/domain"
	"github.com/musclemap/musclemap-client/internal/persist"
)

func setupTestStore(t *testing.T) (*Store, *persist.Store) {
	t.Helper()

	p, err := persist.New(t.TempDir(), nil)
	require.NoError(t, err)
	t.Cleanup(func() { p.Close() })

	store, err := New(context.Background(), p, nil)
	require.NoError(t, err)
	return store, p
}

func TestDefaults(t *testing.T) {
	store, _ := setupTestStore(t)

	prefs := store.Preferences()
	assert.Equal(t, domain.ThemeLight, prefs.Theme)
	assert.Equal(t, "en", prefs.Language)
}

func TestSetAndRecover(t *testing.T) {
	store, p := setupTestStore(t)
	ctx := context.Background()

	store.SetTheme(ctx, domain.ThemeDark)
	store.SetLanguage(ctx, "de")

	reborn, err := New(ctx, p, nil)
	require.NoError(t, err)

	prefs := reborn.Preferences()
	assert.Equal(t, domain.ThemeDark, prefs.Theme)
	assert.Equal(t, "de", prefs.Language)
}

func TestInvalidValuesAreNoOps(t *testing.T) {
	store, _ := setupTestStore(t)
	ctx := context.Background()

	store.SetTheme(ctx, domain.Theme("hotdog-stand"))
	store.SetLanguage(ctx, "")

	prefs := store.Preferences()
	assert.Equal(t, domain.ThemeLight, prefs.Theme)
	assert.Equal(t, "en", prefs.Language)
}

func TestCorruptPartitionFallsBackToDefaults(t *testing.T) {
	store, p := setupTestStore(t)
	ctx := context.Background()

	store.SetTheme(ctx, domain.ThemeDark)

	// Clobber the partition with garbage and recover.
	require.NoError(t, p.SaveRaw(ctx, "ui-storage", []byte("{not json")))

	reborn, err := New(ctx, p, nil)
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeLight, reborn.Preferences().Theme)
}

func TestPartialPartitionIsNormalized(t *testing.T) {
	_, p := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, p.SaveRaw(ctx, "ui-storage", []byte(`{"schema_version":1,"preferences":{"theme":"dark"}}`)))

	reborn, err := New(ctx, p, nil)
	require.NoError(t, err)

	prefs := reborn.Preferences()
	assert.Equal(t, domain.ThemeDark, prefs.Theme)
	assert.Equal(t, "en", prefs.Language)
}
