package depgraph

import (
	"bufio"
	"io"
	"strconv"
)

// Edge is a parent to child dependency record.
type Edge struct {
	From NodeID `json:"from"`
	To   NodeID `json:"to"`
}

// EdgeList flattens the graph into edges, parents in key insertion order and
// each parent's children in stored order. Duplicates are kept.
func (g *Graph) EdgeList() []Edge {
	edges := make([]Edge, 0, g.EdgeCount())
	for _, from := range g.order {
		for _, to := range g.children[from] {
			edges = append(edges, Edge{From: from, To: to})
		}
	}
	return edges
}

// WriteAdjacency writes one block per key in insertion order:
//
//	group:artifact:version:
//	  - child
func (g *Graph) WriteAdjacency(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, id := range g.order {
		bw.WriteString(string(id))
		bw.WriteString(":\n")
		for _, child := range g.children[id] {
			bw.WriteString("  - ")
			bw.WriteString(string(child))
			bw.WriteByte('\n')
		}
	}
	return bw.Flush()
}

// WriteLoadOrder writes order as a numbered list starting at 1.
func WriteLoadOrder(w io.Writer, order []NodeID) error {
	bw := bufio.NewWriter(w)
	for i, id := range order {
		bw.WriteString(strconv.Itoa(i + 1))
		bw.WriteString(". ")
		bw.WriteString(string(id))
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
