package persist

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestStore(t *testing.T) (*Store, func()) {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "persist-test-*")
	require.NoError(t, err)

	s, err := New(filepath.Join(tmpDir, "test.db"), nil)
	require.NoError(t, err)

	cleanup := func() {
		_ = s.Close()
		_ = os.RemoveAll(tmpDir)
	}

	return s, cleanup
}

type testPayload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()

	in := testPayload{Name: "deltoid", Count: 3}
	require.NoError(t, s.Save(ctx, "test-storage", in))

	var out testPayload
	found, err := s.Load(ctx, "test-storage", &out)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, in, out)
}

func TestLoad_Absent(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	var out testPayload
	found, err := s.Load(context.Background(), "never-written", &out)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Zero(t, out)
}

func TestLoad_CorruptTreatedAsAbsent(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()

	// Write garbage directly under the partition key.
	require.NoError(t, s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(partitionPrefix+"broken-storage"), []byte("{not json"))
	}))

	var out testPayload
	found, err := s.Load(ctx, "broken-storage", &out)
	require.NoError(t, err)
	assert.False(t, found)

	// Corruption in one partition must not affect another.
	require.NoError(t, s.Save(ctx, "healthy-storage", testPayload{Name: "biceps"}))
	var healthy testPayload
	found, err = s.Load(ctx, "healthy-storage", &healthy)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "biceps", healthy.Name)
}

func TestSave_ReadYourWrites(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "rw-storage", testPayload{Count: 1}))
	require.NoError(t, s.Save(ctx, "rw-storage", testPayload{Count: 2}))

	var out testPayload
	found, err := s.Load(ctx, "rw-storage", &out)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 2, out.Count)
}

func TestDelete_Idempotent(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "gone-storage", testPayload{}))
	require.NoError(t, s.Delete(ctx, "gone-storage"))
	require.NoError(t, s.Delete(ctx, "gone-storage"))

	found, err := s.Load(ctx, "gone-storage", &testPayload{})
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRaw_PresenceWithoutDecoding(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()

	exists, err := s.Exists(ctx, "session-marker")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, s.SaveRaw(ctx, "session-marker", []byte("v4.local.opaque")))

	exists, err = s.Exists(ctx, "session-marker")
	require.NoError(t, err)
	assert.True(t, exists)

	raw, found, err := s.LoadRaw(ctx, "session-marker")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []byte("v4.local.opaque"), raw)
}
