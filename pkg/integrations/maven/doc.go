// Package maven fetches and parses POM files from Maven-layout repositories.
//
// # Usage
//
//	client := maven.NewClient(maven.DefaultRepository, store, cache.DefaultTTL)
//	deps, err := client.FetchDependencies(ctx, "org.slf4j:slf4j-simple", "2.0.9", false)
//	for _, d := range deps {
//	    fmt.Println(d) // org.slf4j:slf4j-api:2.0.9
//	}
//
// # Coordinates
//
// Artifacts are identified by "groupId:artifactId". The POM of a version lives at
//
//	<repo>/<groupId with dots as slashes>/<artifactId>/<version>/<artifactId>-<version>.pom
//
// # Parsing
//
// [ParsePOM] reads the project-level <dependencies> list and ignores scope,
// optional flags and property references: every declared dependency is
// reported. Documents that are not well-formed XML fall back to a scan of
// <dependency> blocks in the raw text.
//
// # Caching
//
// POM bodies are cached under "maven:<url>". Pass refresh=true to skip the
// cache read; the fresh body is still written back.
package maven
