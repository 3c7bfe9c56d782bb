package depgraph

import (
	"context"
	"fmt"
	"strings"
)

// repo is a Provider over "group:artifact" -> "g:a:v" lists. Packages that
// are not listed fail with an error; calls are recorded in order.
type repo struct {
	deps  map[string][]string
	calls []string
}

func (r *repo) Dependencies(_ context.Context, pkg, version string) ([]Coordinate, error) {
	r.calls = append(r.calls, pkg+":"+version)
	list, ok := r.deps[pkg]
	if !ok {
		return nil, fmt.Errorf("package %s not found", pkg)
	}
	out := make([]Coordinate, 0, len(list))
	for _, s := range list {
		out = append(out, ParseNodeID(NodeID(s)))
	}
	return out, nil
}

// sampleRepo is the pkgA/pkgB/pkgC repository used throughout the tests.
func sampleRepo() *repo {
	return &repo{deps: map[string][]string{
		"pkgA:pkgA": {"pkgB:pkgB:1.0.0", "pkgC:pkgC:1.0.0"},
		"pkgB:pkgB": {"pkgC:pkgC:1.0.0"},
		"pkgC:pkgC": {},
	}}
}

func mustBuild(p Provider, pkg, version string, opts Options) *Graph {
	g, err := NewBuilder(p).Build(context.Background(), pkg, version, opts)
	if err != nil {
		panic(err)
	}
	return g
}

// dump renders the graph as "key: child, child" lines for comparisons.
func dump(g *Graph) string {
	var sb strings.Builder
	for _, k := range g.Keys() {
		children, _ := g.Children(k)
		ids := make([]string, len(children))
		for i, c := range children {
			ids[i] = string(c)
		}
		fmt.Fprintf(&sb, "%s: %s\n", k, strings.Join(ids, ", "))
	}
	return sb.String()
}
