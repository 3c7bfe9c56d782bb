package depgraph

import "context"

// Provider supplies the direct dependencies of one package version.
//
// pkg is a "group:artifact" name (or a bare name for simple repositories).
// Implementations may fail for any reason (package not found, network or
// parse failure); the [Builder] treats every such failure as non-fatal.
type Provider interface {
	Dependencies(ctx context.Context, pkg, version string) ([]Coordinate, error)
}

// ProviderFunc adapts an ordinary function to the [Provider] interface.
type ProviderFunc func(ctx context.Context, pkg, version string) ([]Coordinate, error)

// Dependencies calls f(ctx, pkg, version).
func (f ProviderFunc) Dependencies(ctx context.Context, pkg, version string) ([]Coordinate, error) {
	return f(ctx, pkg, version)
}
