package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/depviz/pkg/depgraph"
)

// ReadJSON decodes a [Document] from r.
//
// ReadJSON returns an error if:
//   - The JSON is malformed
//   - A node has an empty or duplicate ID
//   - An edge references a node that is not listed
//   - The root is set but not listed
func ReadJSON(r io.Reader) (*Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	known := make(map[depgraph.NodeID]bool, len(doc.Nodes))
	for i, n := range doc.Nodes {
		if n.ID == "" {
			return nil, fmt.Errorf("node %d: missing id", i)
		}
		if known[n.ID] {
			return nil, fmt.Errorf("node %s: duplicate id", n.ID)
		}
		known[n.ID] = true
	}
	for i, e := range doc.Edges {
		if !known[e.From] || !known[e.To] {
			return nil, fmt.Errorf("edge %d (%s -> %s): unknown node", i, e.From, e.To)
		}
	}
	if doc.Root != "" && !known[doc.Root] {
		return nil, fmt.Errorf("root %s: unknown node", doc.Root)
	}
	return &doc, nil
}

// ImportJSON reads a [Document] from the file at path.
func ImportJSON(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}
