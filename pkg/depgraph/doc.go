// Package depgraph builds and reads package dependency graphs.
//
// # Overview
//
// A [Builder] discovers the transitive dependencies of a root package by
// querying a [Provider] level by level. The result is a [Graph]: an ordered
// mapping from each expanded node to its direct dependencies, plus the
// (group, artifact, version) coordinate of every node seen.
//
//	b := depgraph.NewBuilder(provider)
//	g, err := b.Build(ctx, "org.slf4j:slf4j-api", "2.0.9", depgraph.Options{
//	    MaxDepth: 3,
//	    Filter:   "test",
//	})
//
// # Node Identity
//
// Nodes are identified by [NodeID] strings of the form "group:artifact:version".
// Simple names without a group ("pkgA") use the name for both parts, so
// "pkgA" at 1.0.0 becomes "pkgA:pkgA:1.0.0". A missing version is recorded
// as [UnknownVersion]. NodeIDs are compared as strings; no version semantics
// are applied.
//
// # Traversal
//
// Build expands every node of one level before any node of the next. A node
// is expanded (its provider call issued) at most once per build. Provider
// errors are not fatal: the node is kept with no children and the error is
// passed to [Options.Logger]. With [Options.MaxDepth] set, nodes first
// discovered below the limit get metadata but are never expanded, so they
// are absent from [Graph.Keys].
//
// [Options.Filter] is an exclusion filter: a dependency whose NodeID
// contains the substring is dropped together with everything only reachable
// through it.
//
// # Views
//
// A built Graph is read-only. It offers:
//   - [Graph.LoadOrder]: breadth-first listing of reachable nodes
//   - [Graph.RenderTree]: ASCII tree with repeat markers for revisited nodes
//   - [Graph.EdgeList]: flat parent to child records for external renderers
//   - [Graph.WriteAdjacency]: the "NODE:\n  - child" dump
package depgraph
