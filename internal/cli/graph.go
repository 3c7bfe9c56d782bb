package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/depviz/pkg/cache"
	"github.com/matzehuels/depviz/pkg/depgraph"
	"github.com/matzehuels/depviz/pkg/deps"
	"github.com/matzehuels/depviz/pkg/deps/java"
	"github.com/matzehuels/depviz/pkg/deps/local"
	pkgio "github.com/matzehuels/depviz/pkg/io"
	"github.com/matzehuels/depviz/pkg/observability"
	"github.com/matzehuels/depviz/pkg/render/nodelink"
)

// graphCommand creates the graph command that resolves and prints a dependency graph.
func (c *CLI) graphCommand() *cobra.Command {
	var (
		flags      Config
		maxDepth   int
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Resolve the dependency graph of a package",
		Long: `Resolve the transitive dependency graph of a package.

Dependencies are discovered level by level, breadth first. Every package is
fetched once; repeated references point at the same node. A package whose
dependencies cannot be fetched stays in the graph without children.

The adjacency list is always printed. Use --ascii for a tree view,
--load-order for a level-order listing, and --graph, --dot or --json to
write the graph to files.

Examples:
  depviz graph -p org.slf4j:slf4j-api -V 2.0.9 -r https://repo1.maven.org/maven2
  depviz graph -t -r examples/repo.txt -p A -a --load-order
  depviz graph --config examples/depviz.toml -d 2`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("max-depth") {
				flags.MaxDepth = &maxDepth
			}
			base := Config{}
			if configPath != "" {
				var err error
				if base, err = loadConfigFile(configPath); err != nil {
					return err
				}
			}
			cfg := merge(base, flags, cmd.Flags())
			if err := cfg.Validate(); err != nil {
				return err
			}
			return c.runGraph(cmd.Context(), cmd.OutOrStdout(), &cfg)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&flags.Package, "package", "p", "", "package to analyze (group:artifact, or a name in test mode)")
	f.StringVarP(&flags.Repo, "repo", "r", "", "repository URL, or test repository file with -t")
	f.BoolVarP(&flags.TestMode, "test-mode", "t", false, "read dependencies from a local test repository file")
	f.StringVarP(&flags.Version, "version", "V", "", "package version (default 1.0.0 in test mode)")
	f.StringVarP(&flags.Output, "output", "o", defaultOutput, "image filename for --graph (.png or .svg)")
	f.IntVarP(&maxDepth, "max-depth", "d", 0, "maximum depth to expand, root is level 1 (default unlimited)")
	f.BoolVarP(&flags.ASCII, "ascii", "a", false, "print the dependency tree")
	f.StringVarP(&flags.Filter, "filter", "f", "", "skip dependencies whose id contains this substring")
	f.BoolVarP(&flags.Graph, "graph", "g", false, "render the graph to the output image with Graphviz")
	f.BoolVar(&flags.DOT, "dot", false, "write the Graphviz DOT source next to the output image")
	f.BoolVar(&flags.JSON, "json", false, "write the graph as JSON next to the output image")
	f.BoolVar(&flags.LoadOrder, "load-order", false, "print the load order")
	f.StringVar(&configPath, "config", "", "config file (.toml, .yaml) with default settings")
	f.BoolVar(&flags.NoCache, "no-cache", false, "disable the response cache")
	f.BoolVar(&flags.Refresh, "refresh", false, "bypass cache reads")
	f.StringVar(&flags.Redis, "redis", "", "cache responses in Redis at this address")
	f.BoolVar(&flags.Metrics, "metrics", false, "print Prometheus metrics to stderr when done")

	return cmd
}

// runGraph builds the graph described by cfg and writes the requested views to out.
func (c *CLI) runGraph(ctx context.Context, out io.Writer, cfg *Config) error {
	ctx, logger := withRun(ctx)

	printConfig(cfg)

	if cfg.Metrics {
		m := observability.NewMetrics()
		observability.SetBuildHooks(m)
		observability.SetCacheHooks(m)
		observability.SetHTTPHooks(m)
		defer func() {
			if err := m.WriteText(os.Stderr); err != nil {
				logger.Warnf("write metrics: %v", err)
			}
			observability.Reset()
		}()
	}

	provider, closeFn, err := newProvider(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeFn()

	logger.Debug("Resolving", "package", cfg.Package, "version", cfg.Version, "repo", cfg.Repo)
	done := stopwatch(logger)
	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Resolving %s...", cfg.Package))
	spinner.Start()
	g, err := depgraph.NewBuilder(provider).Build(ctx, cfg.Package, cfg.Version, depgraph.Options{
		MaxDepth: cfg.Depth(),
		Filter:   cfg.Filter,
		Logger:   func(msg string, args ...any) { logger.Warnf(msg, args...) },
	})
	spinner.Stop()
	if err != nil {
		return err
	}
	done(fmt.Sprintf("Resolved %d nodes", g.NodeCount()))

	stats := g.Stats()
	printSuccess("Dependency graph")
	printStats(g.NodeCount(), g.EdgeCount(), stats.Failed, stats.Filtered)
	if stats.Failed > 0 {
		printWarning("%d of %d packages could not be fetched and have no children", stats.Failed, stats.Expanded)
	}
	if err := g.WriteAdjacency(out); err != nil {
		return err
	}

	if cfg.ASCII {
		printSuccess("Dependency tree")
		if err := g.RenderTree(out, cfg.Package, cfg.Version); err != nil {
			return err
		}
	}

	if cfg.LoadOrder {
		order, err := g.LoadOrder(cfg.Package, cfg.Version)
		if err != nil {
			return err
		}
		printSuccess("Load order")
		if err := depgraph.WriteLoadOrder(out, order); err != nil {
			return err
		}
	}

	return writeFiles(ctx, g, rootID(cfg), cfg)
}

// sources lists the dependency backends the graph command can select.
var sources = []*deps.Source{java.Source, local.Source}

// sourceName names the backend for cfg: the local file reader in test mode,
// the Maven repository otherwise.
func sourceName(cfg *Config) string {
	if cfg.TestMode {
		return "local"
	}
	return "maven"
}

// newProvider picks the provider once for the whole run. The returned close
// function releases the response cache. Local repositories are never cached.
func newProvider(ctx context.Context, cfg *Config) (depgraph.Provider, func(), error) {
	src, err := deps.Find(sourceName(cfg), sources...)
	if err != nil {
		return nil, nil, err
	}

	store := cache.Cache(cache.NewNullCache())
	if src != local.Source {
		if store, err = newCache(ctx, cfg.NoCache, cfg.Redis); err != nil {
			return nil, nil, err
		}
	}

	p, err := src.Provider(deps.Options{
		Repository: cfg.Repo,
		Cache:      store,
		Refresh:    cfg.Refresh,
	})
	if err != nil {
		store.Close()
		return nil, nil, err
	}
	return p, func() { store.Close() }, nil
}

// rootID returns the node the exported files highlight as the root.
func rootID(cfg *Config) depgraph.NodeID {
	group, artifact := depgraph.SplitPackageName(cfg.Package)
	return depgraph.MakeNodeID(group, artifact, cfg.Version)
}

// writeFiles writes the --graph, --dot and --json outputs.
func writeFiles(ctx context.Context, g *depgraph.Graph, root depgraph.NodeID, cfg *Config) error {
	if !cfg.Graph && !cfg.DOT && !cfg.JSON {
		return nil
	}

	printSuccess("Wrote files")
	if cfg.JSON {
		path := sibling(cfg.Output, ".json")
		if err := pkgio.ExportJSON(g, root, path); err != nil {
			return err
		}
		printFile(path)
	}

	dot := nodelink.ToDOT(g.EdgeList(), nodelink.Options{Root: root})
	if cfg.DOT {
		path := sibling(cfg.Output, ".dot")
		if err := os.WriteFile(path, []byte(dot), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		printFile(path)
	}
	if cfg.Graph {
		if err := writeImage(ctx, dot, cfg.Output); err != nil {
			return err
		}
		printFile(cfg.Output)
	}
	return nil
}

// writeImage renders dot to path in the format named by its extension:
// .svg, .dot/.gv (source as is), anything else PNG.
func writeImage(ctx context.Context, dot, path string) error {
	var (
		data []byte
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".svg":
		data, err = nodelink.RenderSVG(ctx, dot)
	case ".dot", ".gv":
		data = []byte(dot)
	default:
		data, err = nodelink.RenderPNG(ctx, dot)
	}
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// sibling replaces the extension of path with ext.
func sibling(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}
