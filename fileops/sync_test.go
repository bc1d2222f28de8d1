package fileops

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyncTree_CopiesTree(t *testing.T) {
	fs := memfs.New()
	require.NoError(t, util.WriteFile(fs, "/src/a.txt", []byte("a"), 0o644))
	require.NoError(t, util.WriteFile(fs, "/src/nested/b.txt", []byte("b"), 0o644))
	require.NoError(t, util.WriteFile(fs, "/src/nested/deep/c.txt", []byte("c"), 0o644))

	copied, err := SyncTree(context.Background(), fs, "/src", "/dst")
	require.NoError(t, err)
	require.Equal(t, 3, copied)

	for rel, want := range map[string]string{
		"/dst/a.txt":             "a",
		"/dst/nested/b.txt":      "b",
		"/dst/nested/deep/c.txt": "c",
	} {
		data, err := util.ReadFile(fs, rel)
		require.NoError(t, err)
		assert.Equal(t, want, string(data))
	}
}

func TestSyncTree_CollisionsSkipped(t *testing.T) {
	fs := memfs.New()
	require.NoError(t, util.WriteFile(fs, "/src/a.txt", []byte("a"), 0o644))
	require.NoError(t, util.WriteFile(fs, "/src/nested/b.txt", []byte("b"), 0o644))
	require.NoError(t, util.WriteFile(fs, "/dst/a.txt", []byte("already here"), 0o644))

	copied, err := SyncTree(context.Background(), fs, "/src", "/dst")
	require.NoError(t, err)
	require.Equal(t, 1, copied)

	// The occupied destination is untouched.
	data, err := util.ReadFile(fs, "/dst/a.txt")
	require.NoError(t, err)
	assert.Equal(t, "already here", string(data))

	data, err = util.ReadFile(fs, "/dst/nested/b.txt")
	require.NoError(t, err)
	assert.Equal(t, "b", string(data))
}

func TestSyncTree_EmptySource(t *testing.T) {
	fs := memfs.New()

	copied, err := SyncTree(context.Background(), fs, "/src", "/dst")
	require.NoError(t, err)
	require.Equal(t, 0, copied)
}

func TestSyncTree_Cancelled(t *testing.T) {
	fs := memfs.New()
	for i := 0; i < 16; i++ {
		path := fmt.Sprintf("/src/file%02d.txt", i)
		require.NoError(t, util.WriteFile(fs, path, []byte("x"), 0o644))
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Cancellation travels the conventional error return; nothing is
	// raised on the protocol channel.
	copied, err := SyncTree(ctx, fs, "/src", "/dst", WithConcurrency(2))
	require.Error(t, err)
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, 0, copied)
}

func TestSyncTree_ConcurrencyBound(t *testing.T) {
	fs := memfs.New()
	for i := 0; i < 8; i++ {
		path := fmt.Sprintf("/src/file%02d.txt", i)
		require.NoError(t, util.WriteFile(fs, path, []byte("x"), 0o644))
	}

	copied, err := SyncTree(context.Background(), fs, "/src", "/dst", WithConcurrency(1))
	require.NoError(t, err)
	require.Equal(t, 8, copied)
}

func TestSyncTree_LogsCollisions(t *testing.T) {
	fs := memfs.New()
	require.NoError(t, util.WriteFile(fs, "/src/a.txt", []byte("a"), 0o644))
	require.NoError(t, util.WriteFile(fs, "/dst/a.txt", []byte("occupied"), 0o644))

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	_, err := SyncTree(context.Background(), fs, "/src", "/dst", WithLogger(logger))
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "destination occupied")
	assert.Contains(t, buf.String(), "/dst/a.txt")
}

func TestListRegularFiles(t *testing.T) {
	fs := memfs.New()
	require.NoError(t, util.WriteFile(fs, "/src/a.txt", []byte("a"), 0o644))
	require.NoError(t, util.WriteFile(fs, "/src/nested/b.txt", []byte("b"), 0o644))

	files, err := listRegularFiles(fs, "/src")
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"a.txt", "nested/b.txt"}, files)
}

func TestWithConcurrency_IgnoresInvalid(t *testing.T) {
	cfg := syncConfig{concurrency: defaultSyncConcurrency}
	WithConcurrency(0)(&cfg)
	require.Equal(t, defaultSyncConcurrency, cfg.concurrency)

	WithConcurrency(-3)(&cfg)
	require.Equal(t, defaultSyncConcurrency, cfg.concurrency)

	WithConcurrency(9)(&cfg)
	require.Equal(t, 9, cfg.concurrency)
}
