package logarchive

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/pierrec/lz4/v4"

	"github.com/benchtable/tablegen/pkg/textutil"
)

// TextCache holds decoded log text keyed by run identity, compressed with
// lz4 in memory. A benchmark set's log archive can run into the gigabytes
// across all runs; keeping every run's log resident as compressed bytes
// between the first extractor's read and the last lets C5 share one
// decompression per run across every column that extracts from its log,
// instead of paying decompression-plus-storage once per column.
type TextCache struct {
	mu      sync.Mutex
	entries map[string][]byte
}

// NewTextCache returns an empty TextCache.
func NewTextCache() *TextCache {
	return &TextCache{entries: make(map[string][]byte)}
}

// Put compresses and stores raw log text under key, overwriting any
// previous entry.
func (t *TextCache) Put(key string, raw []byte) error {
	var buf bytes.Buffer

	w := lz4.NewWriter(&buf)

	if _, err := w.Write(raw); err != nil {
		return fmt.Errorf("logarchive: lz4 compress %s: %w", key, err)
	}

	if err := w.Close(); err != nil {
		return fmt.Errorf("logarchive: lz4 close %s: %w", key, err)
	}

	t.mu.Lock()
	t.entries[key] = buf.Bytes()
	t.mu.Unlock()

	return nil
}

// Lines decompresses and returns key's cached log text, split into lines.
// Returns (_, false) if key has no cached entry.
func (t *TextCache) Lines(key string) ([]string, bool) {
	t.mu.Lock()
	compressed, ok := t.entries[key]
	t.mu.Unlock()

	if !ok {
		return nil, false
	}

	raw, err := io.ReadAll(lz4.NewReader(bytes.NewReader(compressed)))
	if err != nil {
		return nil, false
	}

	return splitLines(raw), true
}

// GetOrLoad returns key's cached lines, loading them via load and caching
// the result on a miss. load is called at most once per key.
func (t *TextCache) GetOrLoad(key string, load func() ([]byte, error)) ([]string, error) {
	if lines, ok := t.Lines(key); ok {
		return lines, nil
	}

	raw, err := load()
	if err != nil {
		return nil, err
	}

	if err := t.Put(key, raw); err != nil {
		return nil, err
	}

	lines, _ := t.Lines(key)

	return lines, nil
}

func splitLines(raw []byte) []string {
	if textutil.CountLines(raw) == 0 {
		return nil
	}

	text := strings.TrimSuffix(string(raw), "\n")

	return strings.Split(text, "\n")
}
