package deps

import (
	"slices"
	"strings"
	"time"

	"github.com/matzehuels/depviz/pkg/cache"
	"github.com/matzehuels/depviz/pkg/depgraph"
	errs "github.com/matzehuels/depviz/pkg/errors"
)

// DefaultCacheTTL is how long fetched manifests stay cached.
const DefaultCacheTTL = cache.DefaultTTL

// Options configures provider construction.
type Options struct {
	Repository string        // Repository URL (maven) or file path (local)
	Cache      cache.Cache   // Response cache (nil: no caching)
	CacheTTL   time.Duration // Cache entry lifetime (default: 24h)
	Refresh    bool          // Skip cache reads
}

// WithDefaults returns a copy of Options with zero values replaced by defaults.
func (o Options) WithDefaults() Options {
	opts := o
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = DefaultCacheTTL
	}
	if opts.Cache == nil {
		opts.Cache = cache.NewNullCache()
	}
	return opts
}

// Source describes one dependency backend.
type Source struct {
	Name        string
	Aliases     []string
	NewProvider func(opts Options) (depgraph.Provider, error)
}

// Provider constructs the backend's provider with defaults applied.
func (s *Source) Provider(opts Options) (depgraph.Provider, error) {
	return s.NewProvider(opts.WithDefaults())
}

// Matches reports whether name refers to s, case-insensitively.
func (s *Source) Matches(name string) bool {
	name = strings.ToLower(strings.TrimSpace(name))
	return name == s.Name || slices.Contains(s.Aliases, name)
}

// Find returns the source that matches name.
func Find(name string, sources ...*Source) (*Source, error) {
	names := make([]string, 0, len(sources))
	for _, s := range sources {
		if s.Matches(name) {
			return s, nil
		}
		names = append(names, s.Name)
	}
	return nil, errs.New(errs.ErrCodeInvalidConfig, "unknown source %q (available: %s)", name, strings.Join(names, ", "))
}
