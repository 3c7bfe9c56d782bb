package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/depviz/pkg/depgraph"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Root is drawn highlighted and always appears, even in a graph without edges.
	Root depgraph.NodeID

	// Detailed splits labels into group, artifact and version lines.
	// When false, the full node ID is shown on one line.
	Detailed bool
}

// ToDOT converts an edge list to Graphviz DOT source. Nodes are declared in
// order of first appearance; edges keep their order, duplicates included.
func ToDOT(edges []depgraph.Edge, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph dependencies {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontname=\"Helvetica\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	for _, id := range nodes(edges, opts.Root) {
		attrs := []string{fmt.Sprintf("label=%q", label(id, opts.Detailed))}
		if id == opts.Root {
			attrs = append(attrs, "fillcolor=lightblue", "penwidth=2")
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", id, strings.Join(attrs, ", "))
	}

	if len(edges) > 0 {
		buf.WriteString("\n")
	}
	for _, e := range edges {
		fmt.Fprintf(&buf, "  %q -> %q;\n", e.From, e.To)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodes(edges []depgraph.Edge, root depgraph.NodeID) []depgraph.NodeID {
	seen := make(map[depgraph.NodeID]bool)
	var out []depgraph.NodeID
	add := func(id depgraph.NodeID) {
		if id != "" && !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	add(root)
	for _, e := range edges {
		add(e.From)
		add(e.To)
	}
	return out
}

func label(id depgraph.NodeID, detailed bool) string {
	if !detailed {
		return string(id)
	}
	c := depgraph.ParseNodeID(id)
	return c.Group + "\n" + c.Artifact + "\n" + c.Version
}

// RenderSVG renders DOT source to SVG using the embedded Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	return render(ctx, dot, graphviz.SVG)
}

// RenderPNG renders DOT source to PNG using the embedded Graphviz.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	return render(ctx, dot, graphviz.PNG)
}

func render(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render %s: %w", format, err)
	}
	return buf.Bytes(), nil
}
