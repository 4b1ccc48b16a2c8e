package extractor

import (
	"log/slog"
	"sync"
)

// Registry is a process-local memoization map from a result file's
// "toolmodule" name to its LogValueExtractor, look up
// dynamic ones by name with graceful-absent, and memoize "unavailable" after
// the first miss so subsequent lookups don't re-warn.
//
// Grounded on pkg/mcp/tools.go's registry-by-name-with-graceful-absence
// pattern, adapted from MCP tool dispatch to log-extractor dispatch.
type Registry struct {
	mu         sync.RWMutex
	extractors map[string]LogValueExtractor
	missing    map[string]bool
	logger     *slog.Logger
}

// NewRegistry creates a registry with the built-in extractors pre-registered.
func NewRegistry(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}

	r := &Registry{
		extractors: make(map[string]LogValueExtractor),
		missing:    make(map[string]bool),
		logger:     logger,
	}

	r.Register("generic", GenericExtractor{})

	return r
}

// Register adds or replaces the extractor for a given toolmodule name.
func (r *Registry) Register(name string, e LogValueExtractor) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.extractors[name] = e
	delete(r.missing, name)
}

// Lookup returns the extractor registered for name. A name that was
// previously looked up and found missing is not re-warned about; the
// warning fires exactly once per name per registry lifetime.
func (r *Registry) Lookup(name string) (LogValueExtractor, bool) {
	r.mu.RLock()
	e, ok := r.extractors[name]
	alreadyWarned := r.missing[name]
	r.mu.RUnlock()

	if ok {
		return e, true
	}

	if !alreadyWarned {
		r.mu.Lock()
		r.missing[name] = true
		r.mu.Unlock()

		r.logger.Warn("tool extractor unavailable", "toolmodule", name)
	}

	return nil, false
}
