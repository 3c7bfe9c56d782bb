package observability

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetricsCountsBuildEvents(t *testing.T) {
	ctx := context.Background()
	m := NewMetrics()

	m.OnBuildStart(ctx, "pkgA")
	m.OnFetch(ctx, "pkgA:pkgA", time.Millisecond, nil)
	m.OnFetch(ctx, "pkgB:pkgB", time.Millisecond, errors.New("not found"))
	m.OnFetch(ctx, "pkgC:pkgC", time.Millisecond, nil)
	m.OnBuildComplete(ctx, "pkgA", 3, 5*time.Millisecond, nil)

	if got := testutil.ToFloat64(m.fetches.WithLabelValues("ok")); got != 2 {
		t.Errorf("ok fetches = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.fetches.WithLabelValues("error")); got != 1 {
		t.Errorf("failed fetches = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.builds.WithLabelValues("ok")); got != 1 {
		t.Errorf("builds = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.buildNodes); got != 3 {
		t.Errorf("build nodes = %v, want 3", got)
	}
}

func TestMetricsCountsCacheAndHTTP(t *testing.T) {
	ctx := context.Background()
	m := NewMetrics()

	m.OnCacheMiss(ctx, "maven")
	m.OnCacheSet(ctx, "maven", 512)
	m.OnCacheHit(ctx, "maven")
	m.OnCacheHit(ctx, "maven")
	m.OnResponse(ctx, "GET", "repo1.maven.org", "/maven2/a.pom", 200, time.Millisecond)
	m.OnError(ctx, "GET", "repo1.maven.org", "/maven2/b.pom", errors.New("timeout"))

	if got := testutil.ToFloat64(m.cacheEvents.WithLabelValues("maven", "hit")); got != 2 {
		t.Errorf("cache hits = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.cacheBytes); got != 512 {
		t.Errorf("cache bytes = %v, want 512", got)
	}
	if got := testutil.ToFloat64(m.httpRequests.WithLabelValues("repo1.maven.org", "200")); got != 1 {
		t.Errorf("http 200 = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.httpRequests.WithLabelValues("repo1.maven.org", "error")); got != 1 {
		t.Errorf("http errors = %v, want 1", got)
	}
}

func TestMetricsWriteText(t *testing.T) {
	m := NewMetrics()
	m.OnFetch(context.Background(), "pkgA:pkgA", time.Millisecond, nil)

	var buf bytes.Buffer
	if err := m.WriteText(&buf); err != nil {
		t.Fatalf("WriteText: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, `depviz_provider_fetches_total{outcome="ok"} 1`) {
		t.Errorf("missing fetch counter in output:\n%s", out)
	}
	if !strings.Contains(out, "# TYPE depviz_build_duration_seconds histogram") {
		t.Errorf("missing histogram type line in output:\n%s", out)
	}
}
