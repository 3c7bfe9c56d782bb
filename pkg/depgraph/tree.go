package depgraph

import (
	"fmt"
	"io"
	"strings"
)

const (
	branchMid  = "├── "
	branchLast = "└── "
	indentMid  = "│   "
	indentLast = "    "

	// RepeatMarker is appended to nodes that were already printed.
	RepeatMarker = " (*)"
)

// RenderTree writes the graph as an indented ASCII tree rooted at pkg.
//
// The root is the exact "group:artifact:version" key if present, otherwise
// the first key in insertion order with the same group and artifact.
// A node reached a second time is printed with [RepeatMarker] and its
// children are not repeated, so cyclic graphs render finitely.
func (g *Graph) RenderTree(w io.Writer, pkg, version string) error {
	root, ok := g.resolveRoot(pkg, version)
	if !ok {
		return rootNotFound(pkg, version)
	}

	t := &treeWriter{g: g, w: w, seen: map[NodeID]bool{root: true}}
	t.printf("%s\n", root)
	t.walk(root, "")
	return t.err
}

// ASCIITree is like [Graph.RenderTree] but returns the tree as a string.
func (g *Graph) ASCIITree(pkg, version string) (string, error) {
	var sb strings.Builder
	if err := g.RenderTree(&sb, pkg, version); err != nil {
		return "", err
	}
	return sb.String(), nil
}

type treeWriter struct {
	g    *Graph
	w    io.Writer
	seen map[NodeID]bool
	err  error
}

func (t *treeWriter) walk(id NodeID, prefix string) {
	children := t.g.children[id]
	for i, child := range children {
		branch, indent := branchMid, indentMid
		if i == len(children)-1 {
			branch, indent = branchLast, indentLast
		}

		if t.seen[child] {
			t.printf("%s%s%s%s\n", prefix, branch, child, RepeatMarker)
			continue
		}
		t.seen[child] = true
		t.printf("%s%s%s\n", prefix, branch, child)
		t.walk(child, prefix+indent)
	}
}

func (t *treeWriter) printf(format string, args ...any) {
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintf(t.w, format, args...)
}
