package deps

import (
	"context"
	"testing"
	"time"

	"github.com/matzehuels/depviz/pkg/depgraph"
	errs "github.com/matzehuels/depviz/pkg/errors"
)

func TestOptionsWithDefaults(t *testing.T) {
	opts := Options{}.WithDefaults()
	if opts.CacheTTL != DefaultCacheTTL {
		t.Errorf("CacheTTL = %v, want %v", opts.CacheTTL, DefaultCacheTTL)
	}
	if opts.Cache == nil {
		t.Error("Cache should default to a null cache")
	}

	opts = Options{CacheTTL: time.Minute}.WithDefaults()
	if opts.CacheTTL != time.Minute {
		t.Errorf("explicit CacheTTL overwritten: %v", opts.CacheTTL)
	}
}

func TestFind(t *testing.T) {
	empty := depgraph.ProviderFunc(func(context.Context, string, string) ([]depgraph.Coordinate, error) {
		return nil, nil
	})
	a := &Source{Name: "maven", Aliases: []string{"mvn"}, NewProvider: func(Options) (depgraph.Provider, error) { return empty, nil }}
	b := &Source{Name: "local", NewProvider: func(Options) (depgraph.Provider, error) { return empty, nil }}

	tests := []struct {
		name    string
		want    *Source
		wantErr bool
	}{
		{"maven", a, false},
		{"MVN", a, false},
		{" local ", b, false},
		{"npm", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Find(tt.name, a, b)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Find(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			}
			if err != nil && !errs.Is(err, errs.ErrCodeInvalidConfig) {
				t.Errorf("Find(%q) error code = %s, want INVALID_CONFIG", tt.name, errs.GetCode(err))
			}
			if got != tt.want {
				t.Errorf("Find(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestSourceProviderAppliesDefaults(t *testing.T) {
	var seen Options
	s := &Source{Name: "x", NewProvider: func(opts Options) (depgraph.Provider, error) {
		seen = opts
		return nil, nil
	}}
	if _, err := s.Provider(Options{Repository: "repo"}); err != nil {
		t.Fatal(err)
	}
	if seen.Repository != "repo" || seen.CacheTTL != DefaultCacheTTL {
		t.Errorf("provider got %+v", seen)
	}
}
