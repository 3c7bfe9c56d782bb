package java

import (
	"context"
	"errors"

	"github.com/matzehuels/depviz/pkg/deps"
	"github.com/matzehuels/depviz/pkg/depgraph"
	errs "github.com/matzehuels/depviz/pkg/errors"
	"github.com/matzehuels/depviz/pkg/integrations"
	"github.com/matzehuels/depviz/pkg/integrations/maven"
)

// Source resolves dependencies from a Maven repository.
var Source = &deps.Source{
	Name:    "maven",
	Aliases: []string{"java", "mvn", "maven-central"},
	NewProvider: func(opts deps.Options) (depgraph.Provider, error) {
		repo := opts.Repository
		if repo == "" {
			repo = maven.DefaultRepository
		}
		if err := errs.ValidateURL(repo); err != nil {
			return nil, err
		}
		return NewProvider(maven.NewClient(repo, opts.Cache, opts.CacheTTL), opts.Refresh), nil
	},
}

// Provider answers dependency queries by downloading POM files.
type Provider struct {
	client  *maven.Client
	refresh bool
}

// NewProvider wraps client. With refresh set, cached POMs are refetched.
func NewProvider(client *maven.Client, refresh bool) *Provider {
	return &Provider{client: client, refresh: refresh}
}

// Dependencies returns the dependencies declared in the POM of pkg ("groupId:artifactId")
// at version. Errors carry a code from [errs] describing the failure.
func (p *Provider) Dependencies(ctx context.Context, pkg, version string) ([]depgraph.Coordinate, error) {
	found, err := p.client.FetchDependencies(ctx, pkg, version, p.refresh)
	if err != nil {
		return nil, classify(err, pkg, version)
	}

	out := make([]depgraph.Coordinate, len(found))
	for i, d := range found {
		out[i] = depgraph.Coordinate{Group: d.GroupID, Artifact: d.ArtifactID, Version: d.Version}
	}
	return out, nil
}

func classify(err error, pkg, version string) error {
	switch {
	case errors.Is(err, maven.ErrInvalidCoordinate):
		return errs.Wrap(errs.ErrCodeInvalidPackage, err, "invalid package name %q, expected groupId:artifactId", pkg)
	case errors.Is(err, integrations.ErrNotFound):
		return errs.Wrap(errs.ErrCodePackageNotFound, err, "POM for %s:%s not found", pkg, version)
	case errors.Is(err, maven.ErrMalformedPOM):
		return errs.Wrap(errs.ErrCodeMalformedInput, err, "unreadable POM for %s:%s", pkg, version)
	case errors.Is(err, integrations.ErrNetwork):
		return errs.Wrap(errs.ErrCodeNetwork, err, "fetching %s:%s", pkg, version)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	default:
		return errs.Wrap(errs.ErrCodeProvider, err, "resolving %s:%s", pkg, version)
	}
}
