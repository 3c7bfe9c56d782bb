// Package nodelink draws dependency graphs as node-link diagrams.
//
// # Usage
//
// Convert a graph's edge list to DOT, then render it:
//
//	dot := nodelink.ToDOT(g.EdgeList(), nodelink.Options{Root: root})
//	png, err := nodelink.RenderPNG(ctx, dot)
//
// The DOT source can also be written to disk and processed with external
// Graphviz tools.
//
// # Layout
//
// The generated graph is laid out top to bottom (rankdir=TB) with rounded
// boxes; the root node is filled light blue. Repeated edges are kept, so a
// dependency declared twice is drawn twice.
//
// # Dependencies
//
// Rendering uses [github.com/goccy/go-graphviz], which runs Graphviz in-process
// and needs no system installation.
package nodelink
