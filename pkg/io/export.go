package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/depviz/pkg/depgraph"
)

// Document is the JSON form of a built graph.
type Document struct {
	Root  depgraph.NodeID     `json:"root,omitempty"`
	Nodes []Node              `json:"nodes"`
	Edges []depgraph.Edge     `json:"edges"`
	Stats depgraph.BuildStats `json:"stats"`
}

// Node is one discovered package. Expanded is false for nodes that were
// reached but never queried because of the depth limit.
type Node struct {
	ID       depgraph.NodeID `json:"id"`
	Group    string          `json:"group"`
	Artifact string          `json:"artifact"`
	Version  string          `json:"version"`
	Expanded bool            `json:"expanded"`
}

// NewDocument captures g. Nodes are listed with expanded nodes first in
// insertion order, followed by unexpanded nodes in order of first reference.
func NewDocument(g *depgraph.Graph, root depgraph.NodeID) *Document {
	doc := &Document{
		Root:  root,
		Edges: g.EdgeList(),
		Stats: g.Stats(),
	}

	seen := make(map[depgraph.NodeID]bool)
	add := func(id depgraph.NodeID) {
		if seen[id] {
			return
		}
		seen[id] = true
		c, ok := g.Metadata(id)
		if !ok {
			c = depgraph.ParseNodeID(id)
		}
		doc.Nodes = append(doc.Nodes, Node{
			ID:       id,
			Group:    c.Group,
			Artifact: c.Artifact,
			Version:  c.Version,
			Expanded: g.Has(id),
		})
	}
	for _, k := range g.Keys() {
		add(k)
	}
	for _, e := range doc.Edges {
		add(e.To)
	}
	return doc
}

// WriteJSON encodes g as an indented [Document] and writes it to w.
// The output can be read back with [ReadJSON].
func WriteJSON(g *depgraph.Graph, root depgraph.NodeID, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(NewDocument(g, root)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes g to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(g *depgraph.Graph, root depgraph.NodeID, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteJSON(g, root, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
