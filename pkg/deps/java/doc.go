// Package java provides the Maven dependency backend.
//
// [Source] builds a [Provider] on top of the [maven] client. Package names are
// Maven coordinates ("groupId:artifactId"); each query downloads one POM and
// reports every declared dependency, with "latest" standing in for a missing
// version. Scopes, optional flags and version ranges are not interpreted.
//
// Failures are returned as coded errors:
//
//   - INVALID_PACKAGE: the name has no ':'
//   - PACKAGE_NOT_FOUND: the repository answered 404
//   - MALFORMED_INPUT: the body was not a POM
//   - NETWORK_ERROR: timeouts, 5xx and other unexpected statuses
//
// The graph builder treats all of them as "no known dependencies" for the node.
//
// [maven]: github.com/matzehuels/depviz/pkg/integrations/maven
package java
