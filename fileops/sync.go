package fileops

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"golang.org/x/sync/errgroup"

	"github.com/jmgilman/fallible"
)

// defaultSyncConcurrency bounds in-flight copies when WithConcurrency is
// not given.
const defaultSyncConcurrency = 4

type syncConfig struct {
	concurrency int
	logger      *slog.Logger
}

// SyncOption configures SyncTree.
type SyncOption func(*syncConfig)

// WithConcurrency bounds the number of in-flight copies.
// Values below 1 are ignored.
func WithConcurrency(n int) SyncOption {
	return func(c *syncConfig) {
		if n >= 1 {
			c.concurrency = n
		}
	}
}

// WithLogger sets the logger for per-file sync progress.
// By default progress is discarded.
func WithLogger(logger *slog.Logger) SyncOption {
	return func(c *syncConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// SyncTree copies every regular file under srcDir to the same relative path
// under dstDir, creating destination directories as needed.
//
// Each copy is its own fallible call with its own slot: an occupied
// destination (KindDirectoryAlreadyExists) is a collision, logged and
// skipped, not a failure of the sync. Any other captured kind fails the
// sync through the conventional error return, as do walk failures and
// cancellation. On cancellation the per-file slots keep their last
// well-defined state and nothing travels the raise channel.
//
// Returns the number of files copied.
func SyncTree(ctx context.Context, fsys billy.Filesystem, srcDir, dstDir string, opts ...SyncOption) (int, error) {
	cfg := syncConfig{
		concurrency: defaultSyncConcurrency,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	srcDir = normalize(srcDir)
	dstDir = normalize(dstDir)

	files, err := listRegularFiles(fsys, srcDir)
	if err != nil {
		return 0, fmt.Errorf("failed to walk %s: %w", srcDir, err)
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(cfg.concurrency)

	var copiedMu sync.Mutex
	copied := 0

	for _, rel := range files {
		if egCtx.Err() != nil {
			break
		}

		srcPath := normalize(filepath.Join(srcDir, rel))
		dstPath := normalize(filepath.Join(dstDir, rel))

		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}

			data, err := util.ReadFile(fsys, srcPath)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", srcPath, err)
			}

			slot := fallible.NewSlot()
			CreateUniqueFile(fsys, dstPath, data, slot)
			if !slot.IsEmpty() {
				v := slot.Read()
				if v.Kind() == KindDirectoryAlreadyExists {
					cfg.logger.Warn("destination occupied, skipping",
						"path", dstPath)
					return nil
				}
				return fmt.Errorf("failed to copy %s: %w", dstPath, v)
			}

			cfg.logger.Debug("copied file", "src", srcPath, "dst", dstPath)

			copiedMu.Lock()
			copied++
			copiedMu.Unlock()
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return copied, fmt.Errorf("sync %s to %s: %w", srcDir, dstDir, err)
	}
	// Cancellation between scheduling rounds leaves no goroutine to carry
	// the error into Wait.
	if err := ctx.Err(); err != nil {
		return copied, err
	}
	return copied, nil
}

// listRegularFiles walks root recursively and returns the paths of all
// regular files relative to root. Billy filesystems do not implement io/fs,
// so the walk drives ReadDir directly.
func listRegularFiles(fsys billy.Filesystem, root string) ([]string, error) {
	var files []string

	var walk func(dir string) error
	walk = func(dir string) error {
		entries, err := fsys.ReadDir(dir)
		if err != nil {
			return err
		}
		for _, entry := range entries {
			full := normalize(filepath.Join(dir, entry.Name()))
			if entry.IsDir() {
				if err := walk(full); err != nil {
					return err
				}
				continue
			}
			rel, err := filepath.Rel(root, full)
			if err != nil {
				return err
			}
			files = append(files, filepath.ToSlash(rel))
		}
		return nil
	}

	if err := walk(root); err != nil {
		return nil, err
	}
	return files, nil
}
