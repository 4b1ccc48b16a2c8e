// Package logarchive implements the log-archive cache: pooling open
// zip-archive handles for one collect_data call, resolving a
// run's log either as a standalone file or as an entry inside
// "<result-stem>.logfiles.zip", and caching decoded log text so a run's log
// is read from disk at most once regardless of how many columns extract
// from it.
//
// Grounded on pkg/gitlib/worker.go's single-writer/closed-on-teardown
// lifecycle (a pool of handles opened lazily and closed together on
// teardown, here without the worker-pool concurrency since this cache is
// deliberately single-writer/single-reader) and
// pkg/cache/lru.go's handle-map-plus-mutex shape, simplified: nothing here
// asks for size-bounded eviction, so a plain map suffices in place of
// a doubly-linked LRU list. Archive-open and slow-read
// diagnostics report sizes with github.com/dustin/go-humanize.
package logarchive

import (
	"archive/zip"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/benchtable/tablegen/pkg/safeconv"
)

// Cache maps zip-archive paths to open *zip.ReadCloser handles, reusing a
// handle across repeated lookups within one collect_data call. Not safe for
// concurrent use across goroutines: callers scope one Cache to one worker.
type Cache struct {
	mu      sync.Mutex
	handles map[string]*zip.ReadCloser
	closed  bool
	logger  *slog.Logger
}

// New returns an empty Cache that logs through slog.Default.
func New() *Cache {
	return NewWithLogger(slog.Default())
}

// NewWithLogger returns an empty Cache whose diagnostic messages (archive
// open, slow log reads) go through logger instead of the default logger.
func NewWithLogger(logger *slog.Logger) *Cache {
	return &Cache{handles: make(map[string]*zip.ReadCloser), logger: logger}
}

// archive lazily opens (or returns the pooled handle for) the zip archive at
// path.
func (c *Cache) archive(path string) (*zip.ReadCloser, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil, fmt.Errorf("logarchive: cache closed")
	}

	if rc, ok := c.handles[path]; ok {
		return rc, nil
	}

	rc, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("logarchive: open %s: %w", path, err)
	}

	c.handles[path] = rc

	if info, statErr := os.Stat(path); statErr == nil {
		c.logger.Debug("opened log archive", "path", path, "size", humanize.Bytes(safeconv.MustInt64ToUint64(info.Size())), "entries", len(rc.File))
	}

	return rc, nil
}

// ReadLog resolves and reads one run's log text. resultDir is the directory
// containing the result file; stem is its ResultStem (resultxml.ResultStem);
// relPath is the log's path as computed by resultxml.Locate, relative to
// resultDir for the standalone case or relative to the logfiles zip's root
// for the archived case.
//
// Resolution order: first try relPath as a standalone file
// next to the result archive; on failure, fall back to an entry of the same
// relative path inside "<stem>.logfiles.zip".
func (c *Cache) ReadLog(resultDir, stem, relPath string) ([]byte, error) {
	start := time.Now()

	standalone := joinPath(resultDir, relPath)

	data, err := os.ReadFile(standalone)
	if err == nil {
		return data, nil
	}

	archivePath := joinPath(resultDir, stem+".logfiles.zip")

	rc, err := c.archive(archivePath)
	if err != nil {
		return nil, fmt.Errorf("logarchive: %s not found standalone and archive unavailable: %w", relPath, err)
	}

	inArchivePath := strings.TrimPrefix(relPath, stem+".logfiles/")

	f, err := rc.Open(inArchivePath)
	if err != nil {
		return nil, fmt.Errorf("logarchive: %s not found in %s: %w", inArchivePath, archivePath, err)
	}
	defer f.Close()

	data, err = io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("logarchive: read %s from %s: %w", inArchivePath, archivePath, err)
	}

	if elapsed := time.Since(start); elapsed > slowLogReadThreshold {
		c.logger.Warn("slow log read from archive",
			"path", inArchivePath, "archive", archivePath,
			"size", humanize.Bytes(safeconv.MustInt64ToUint64(int64(len(data)))),
			"elapsed", elapsed.Round(time.Millisecond))
	}

	return data, nil
}

// slowLogReadThreshold gates the "slow log read" diagnostic: archived log
// reads under this duration are routine and not worth logging.
const slowLogReadThreshold = 250 * time.Millisecond

// Close closes every archive handle opened by this Cache, even if some
// close calls fail.2's "closed on teardown, including
// on error" lifecycle. It returns the first error encountered, if any.
func (c *Cache) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}

	c.closed = true

	var firstErr error

	for path, rc := range c.handles {
		if err := rc.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("logarchive: close %s: %w", path, err)
		}
	}

	return firstErr
}

func joinPath(dir, name string) string {
	if dir == "" {
		return name
	}

	return strings.TrimSuffix(dir, "/") + "/" + name
}
