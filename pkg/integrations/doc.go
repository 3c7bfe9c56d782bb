// Package integrations provides the HTTP plumbing shared by registry clients.
//
// # Overview
//
// Registry-specific clients live in subpackages:
//
//   - [maven]: Maven repositories (POM files)
//
// # Client Pattern
//
// A registry client embeds [Client] and adds typed fetch methods:
//
//	c := maven.NewClient("https://repo1.maven.org/maven2", store, cache.DefaultTTL)
//	deps, err := c.FetchDependencies(ctx, "junit:junit", "4.13.2", false)
//
// [Client] handles:
//   - HTTP requests with a 10 second timeout
//   - Retries with exponential backoff for 5xx and transport failures
//   - Response caching through any [cache.Cache] backend
//   - Observability events through [observability.HTTP] and [observability.Cache]
//
// # Errors
//
// A 404 response yields [ErrNotFound]; transport failures and 5xx responses
// yield a retryable [ErrNetwork]. Other statuses yield a non-retryable [ErrNetwork].
//
// [maven]: github.com/matzehuels/depviz/pkg/integrations/maven
// [cache.Cache]: github.com/matzehuels/depviz/pkg/cache.Cache
// [observability.HTTP]: github.com/matzehuels/depviz/pkg/observability.HTTP
// [observability.Cache]: github.com/matzehuels/depviz/pkg/observability.Cache
package integrations
