package depgraph

import (
	"strings"
	"testing"

	errs "github.com/matzehuels/depviz/pkg/errors"
)

func TestASCIITreeSample(t *testing.T) {
	g := mustBuild(sampleRepo(), "pkgA", "1.0.0", Options{})

	got, err := g.ASCIITree("pkgA", "1.0.0")
	if err != nil {
		t.Fatal(err)
	}
	want := `pkgA:pkgA:1.0.0
├── pkgB:pkgB:1.0.0
│   └── pkgC:pkgC:1.0.0
└── pkgC:pkgC:1.0.0 (*)
`
	if got != want {
		t.Errorf("tree:\n%s\nwant:\n%s", got, want)
	}
}

func TestASCIITreeCycle(t *testing.T) {
	r := &repo{deps: map[string][]string{
		"A:A": {"B:B:1"},
		"B:B": {"A:A:1"},
	}}
	g := mustBuild(r, "A:A", "1", Options{})

	got, err := g.ASCIITree("A:A", "1")
	if err != nil {
		t.Fatal(err)
	}
	want := "A:A:1\n└── B:B:1\n    └── A:A:1 (*)\n"
	if got != want {
		t.Errorf("tree:\n%s\nwant:\n%s", got, want)
	}
}

func TestASCIITreeIndentation(t *testing.T) {
	r := &repo{deps: map[string][]string{
		"r:r": {"a:a:1", "b:b:1"},
		"a:a": {"a1:a1:1", "a2:a2:1"},
		"b:b": {"b1:b1:1"},
	}}
	g := mustBuild(r, "r:r", "1", Options{})

	got, err := g.ASCIITree("r:r", "1")
	if err != nil {
		t.Fatal(err)
	}
	want := `r:r:1
├── a:a:1
│   ├── a1:a1:1
│   └── a2:a2:1
└── b:b:1
    └── b1:b1:1
`
	if got != want {
		t.Errorf("tree:\n%s\nwant:\n%s", got, want)
	}
}

func TestASCIITreeDepthCutoffLeaves(t *testing.T) {
	g := mustBuild(sampleRepo(), "pkgA", "1.0.0", Options{MaxDepth: 1})

	got, err := g.ASCIITree("pkgA", "1.0.0")
	if err != nil {
		t.Fatal(err)
	}
	want := "pkgA:pkgA:1.0.0\n├── pkgB:pkgB:1.0.0\n└── pkgC:pkgC:1.0.0\n"
	if got != want {
		t.Errorf("tree:\n%s\nwant:\n%s", got, want)
	}
}

func TestASCIITreeRootFallback(t *testing.T) {
	g := mustBuild(sampleRepo(), "pkgA", "1.0.0", Options{})

	got, err := g.ASCIITree("pkgA", "9.9.9")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(got, "pkgA:pkgA:1.0.0\n") {
		t.Errorf("fallback root not used:\n%s", got)
	}
}

func TestASCIITreeNotFound(t *testing.T) {
	g := mustBuild(sampleRepo(), "pkgA", "1.0.0", Options{})

	_, err := g.ASCIITree("zzz", "1.0.0")
	if !errs.Is(err, errs.ErrCodeNotFound) {
		t.Errorf("err = %v, want NOT_FOUND", err)
	}
}

type failingWriter struct{ n int }

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.n == 0 {
		return 0, errs.New(errs.ErrCodeInternal, "disk full")
	}
	w.n--
	return len(p), nil
}

func TestRenderTreeWriteError(t *testing.T) {
	g := mustBuild(sampleRepo(), "pkgA", "1.0.0", Options{})
	if err := g.RenderTree(&failingWriter{n: 1}, "pkgA", "1.0.0"); err == nil {
		t.Error("write error should be returned")
	}
}
