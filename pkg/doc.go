// Package pkg provides the libraries behind depviz, a Maven dependency graph explorer.
//
// # Overview
//
// The pkg directory is organized into these areas:
//
//  1. [depgraph] - Graph construction, load order, ASCII tree and edge list
//  2. [deps] - Dependency sources (Maven repositories, local test files)
//  3. [integrations] - HTTP clients with caching and retries (Maven POM downloads)
//  4. [cache] - Response caches (file, Redis, null)
//  5. [render] - Graphviz DOT export and in-process PNG/SVG rendering
//  6. [io] - JSON export and import of built graphs
//  7. [observability] - Hooks and Prometheus metrics
//
// # Architecture
//
// The typical data flow through depviz:
//
//	Maven repository / test file
//	         ↓
//	    [deps] package (pick one provider)
//	         ↓
//	    [depgraph] package (level-by-level BFS, filter, depth limit)
//	         ↓
//	    adjacency list / ASCII tree / load order / DOT / PNG / JSON
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/depviz/pkg/depgraph"
//	    "github.com/matzehuels/depviz/pkg/deps"
//	    "github.com/matzehuels/depviz/pkg/deps/java"
//	)
//
//	p, err := java.Source.Provider(deps.Options{})
//	if err != nil {
//	    return err
//	}
//	g, err := depgraph.NewBuilder(p).Build(ctx, "org.slf4j:slf4j-simple", "2.0.9",
//	    depgraph.Options{MaxDepth: 3, Filter: "junit"})
//	if err != nil {
//	    return err
//	}
//	g.RenderTree(os.Stdout, "org.slf4j:slf4j-simple", "2.0.9")
//
// [depgraph]: github.com/matzehuels/depviz/pkg/depgraph
// [deps]: github.com/matzehuels/depviz/pkg/deps
// [integrations]: github.com/matzehuels/depviz/pkg/integrations
// [cache]: github.com/matzehuels/depviz/pkg/cache
// [render]: github.com/matzehuels/depviz/pkg/render/nodelink
// [io]: github.com/matzehuels/depviz/pkg/io
// [observability]: github.com/matzehuels/depviz/pkg/observability
package pkg
