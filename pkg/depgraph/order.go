package depgraph

import (
	errs "github.com/matzehuels/depviz/pkg/errors"
)

// LoadOrder lists the nodes reachable from pkg in breadth-first order,
// each exactly once, starting with the root.
//
// This is a level-order approximation of an install order, not a
// topological sort. The root is looked up as for [Graph.RenderTree]; a
// NOT_FOUND error is returned when no candidate exists. The graph is only
// read; no provider calls are made.
func (g *Graph) LoadOrder(pkg, version string) ([]NodeID, error) {
	root, ok := g.resolveRoot(pkg, version)
	if !ok {
		return nil, rootNotFound(pkg, version)
	}

	seen := map[NodeID]bool{root: true}
	queue := []NodeID{root}
	var order []NodeID

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		order = append(order, id)

		for _, child := range g.children[id] {
			if !seen[child] {
				seen[child] = true
				queue = append(queue, child)
			}
		}
	}
	return order, nil
}

func rootNotFound(pkg, version string) error {
	group, artifact := SplitPackageName(pkg)
	return errs.New(errs.ErrCodeNotFound, "package %s not found in graph", MakeNodeID(group, artifact, version))
}
