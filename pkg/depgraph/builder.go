package depgraph

import (
	"context"
	"strings"
	"time"

	"github.com/matzehuels/depviz/pkg/observability"
)

// Options configures a single [Builder.Build] call.
type Options struct {
	MaxDepth int                  // Deepest level to expand, root is level 1 (0: unlimited)
	Filter   string               // Drop dependencies whose NodeID contains this substring
	Logger   func(string, ...any) // Diagnostic callback for non-fatal failures (optional)
}

// WithDefaults returns a copy of Options with a no-op Logger if none is set.
func (o Options) WithDefaults() Options {
	opts := o
	if opts.MaxDepth < 0 {
		opts.MaxDepth = 0
	}
	if opts.Logger == nil {
		opts.Logger = func(string, ...any) {}
	}
	return opts
}

// excluded reports whether the filter drops id.
func (o Options) excluded(id NodeID) bool {
	return o.Filter != "" && strings.Contains(string(id), o.Filter)
}

// Builder discovers a dependency graph by querying a [Provider].
//
// A Builder keeps no traversal state between calls: every Build starts from
// an empty graph and visited set, so one Builder may be reused sequentially.
// Concurrent Build calls are safe only if the Provider is.
type Builder struct {
	provider Provider
}

// NewBuilder creates a Builder backed by p.
func NewBuilder(p Provider) *Builder {
	return &Builder{provider: p}
}

// Build discovers the dependency graph of pkg at version.
//
// The traversal is level-synchronous: every node of level k is expanded
// before any node of level k+1, and a level's next batch is deduplicated
// before depth limits are applied to it. Provider failures are recorded as
// an empty child list and reported through opts.Logger; they never abort the
// build. Build only returns an error when ctx is cancelled.
func (b *Builder) Build(ctx context.Context, pkg, version string, opts Options) (*Graph, error) {
	opts = opts.WithDefaults()
	hooks := observability.Build()

	start := time.Now()
	hooks.OnBuildStart(ctx, pkg)
	g, err := b.build(ctx, pkg, version, opts)

	nodes := 0
	if g != nil {
		nodes = g.NodeCount()
	}
	hooks.OnBuildComplete(ctx, pkg, nodes, time.Since(start), err)
	return g, err
}

func (b *Builder) build(ctx context.Context, pkg, version string, opts Options) (*Graph, error) {
	g := newGraph()
	group, artifact := SplitPackageName(pkg)
	root := g.register(Coordinate{Group: group, Artifact: artifact, Version: version})

	visited := make(map[NodeID]bool)
	level := []NodeID{root}

	for depth := 1; len(level) > 0 && (opts.MaxDepth == 0 || depth <= opts.MaxDepth); depth++ {
		var next []NodeID
		queued := make(map[NodeID]bool)

		for _, id := range level {
			if visited[id] {
				continue
			}
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			visited[id] = true
			g.expand(id)
			g.stats.Expanded++
			g.stats.Depth = depth

			deps, err := b.fetch(ctx, g.meta[id])
			if err != nil {
				if ctxErr := ctx.Err(); ctxErr != nil {
					return nil, ctxErr
				}
				g.stats.Failed++
				opts.Logger("fetch failed: %s: %v", id, err)
				continue
			}

			for _, dep := range deps {
				child := dep.ID()
				if opts.excluded(child) {
					g.stats.Filtered++
					continue
				}
				g.register(dep)
				g.addChild(id, child)
				if !visited[child] && !queued[child] {
					queued[child] = true
					next = append(next, child)
				}
			}
		}
		level = next
	}
	// The last fetch may have been cut short without reporting an error.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return g, nil
}

func (b *Builder) fetch(ctx context.Context, c Coordinate) ([]Coordinate, error) {
	start := time.Now()
	deps, err := b.provider.Dependencies(ctx, c.Package(), c.Version)
	observability.Build().OnFetch(ctx, c.Package(), time.Since(start), err)
	return deps, err
}
