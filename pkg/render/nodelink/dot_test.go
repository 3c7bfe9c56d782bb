package nodelink

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/matzehuels/depviz/pkg/depgraph"
)

var sampleEdges = []depgraph.Edge{
	{From: "pkgA:pkgA:1.0.0", To: "pkgB:pkgB:1.0.0"},
	{From: "pkgA:pkgA:1.0.0", To: "pkgC:pkgC:1.0.0"},
	{From: "pkgB:pkgB:1.0.0", To: "pkgC:pkgC:1.0.0"},
}

func TestToDOT(t *testing.T) {
	dot := ToDOT(sampleEdges, Options{Root: "pkgA:pkgA:1.0.0"})

	if !strings.HasPrefix(dot, "digraph dependencies {\n") || !strings.HasSuffix(dot, "}\n") {
		t.Errorf("not a digraph:\n%s", dot)
	}
	for _, want := range []string{
		`"pkgA:pkgA:1.0.0" [label="pkgA:pkgA:1.0.0", fillcolor=lightblue, penwidth=2];`,
		`"pkgC:pkgC:1.0.0" [label="pkgC:pkgC:1.0.0"];`,
		`"pkgA:pkgA:1.0.0" -> "pkgB:pkgB:1.0.0";`,
		`"pkgB:pkgB:1.0.0" -> "pkgC:pkgC:1.0.0";`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %s\n%s", want, dot)
		}
	}
	if n := strings.Count(dot, "[label="); n != 3 {
		t.Errorf("declared %d nodes, want 3", n)
	}
}

func TestToDOTEdgeOrder(t *testing.T) {
	dot := ToDOT(sampleEdges, Options{})
	first := strings.Index(dot, `"pkgA:pkgA:1.0.0" -> "pkgB:pkgB:1.0.0"`)
	second := strings.Index(dot, `"pkgA:pkgA:1.0.0" -> "pkgC:pkgC:1.0.0"`)
	third := strings.Index(dot, `"pkgB:pkgB:1.0.0" -> "pkgC:pkgC:1.0.0"`)
	if !(first < second && second < third) {
		t.Errorf("edges out of order:\n%s", dot)
	}
}

func TestToDOTRootOnly(t *testing.T) {
	dot := ToDOT(nil, Options{Root: "solo:solo:1"})
	if !strings.Contains(dot, `"solo:solo:1" [label="solo:solo:1"`) {
		t.Errorf("root missing from edgeless graph:\n%s", dot)
	}
	if strings.Contains(dot, "->") {
		t.Errorf("unexpected edge:\n%s", dot)
	}
}

func TestToDOTDetailed(t *testing.T) {
	dot := ToDOT(sampleEdges[:1], Options{Detailed: true})
	if !strings.Contains(dot, `label="pkgA\npkgA\n1.0.0"`) {
		t.Errorf("detailed label missing:\n%s", dot)
	}
}

func TestRenderSVG(t *testing.T) {
	svg, err := RenderSVG(context.Background(), ToDOT(sampleEdges, Options{}))
	if err != nil {
		t.Fatalf("RenderSVG: %v", err)
	}
	if !bytes.Contains(svg, []byte("<svg")) {
		t.Error("output is not SVG")
	}
}

func TestRenderPNG(t *testing.T) {
	png, err := RenderPNG(context.Background(), ToDOT(sampleEdges, Options{}))
	if err != nil {
		t.Fatalf("RenderPNG: %v", err)
	}
	if !bytes.HasPrefix(png, []byte("\x89PNG")) {
		t.Error("output is not PNG")
	}
}

func TestRenderInvalidDOT(t *testing.T) {
	if _, err := RenderSVG(context.Background(), "digraph {"); err == nil {
		t.Error("expected parse error")
	}
}
