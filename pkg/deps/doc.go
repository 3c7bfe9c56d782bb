// Package deps connects dependency backends to the graph builder.
//
// Each backend lives in a subpackage and exports a [Source]:
//
//   - [java]: Maven repositories, fetching POM files over HTTP
//   - [local]: a text file of "pkg -> dep1, dep2" lines, for offline runs and tests
//
// A Source turns [Options] into a [depgraph.Provider]. The provider is chosen
// once when a run starts and the builder never branches on which one it has:
//
//	src := java.Source
//	if testMode {
//	    src = local.Source
//	}
//	p, err := src.Provider(deps.Options{Repository: repo, Cache: store})
//	g, err := depgraph.NewBuilder(p).Build(ctx, pkg, version, depgraph.Options{})
//
// [java]: github.com/matzehuels/depviz/pkg/deps/java
// [local]: github.com/matzehuels/depviz/pkg/deps/local
// [depgraph.Provider]: github.com/matzehuels/depviz/pkg/depgraph.Provider
package deps
