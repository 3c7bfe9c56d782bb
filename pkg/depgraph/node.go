package depgraph

import "strings"

// UnknownVersion is substituted when a dependency declares no version.
// A literal version named "unknown" is indistinguishable from it.
const UnknownVersion = "unknown"

// separator joins group, artifact and version in a NodeID.
const separator = ":"

// NodeID is the canonical "group:artifact:version" identifier of a graph vertex.
// Two packages are the same node if and only if their NodeIDs are equal.
type NodeID string

// String returns the identifier as a plain string.
func (id NodeID) String() string { return string(id) }

// Coordinate is the (group, artifact, version) triple behind a NodeID.
type Coordinate struct {
	Group    string `json:"group" yaml:"group"`
	Artifact string `json:"artifact" yaml:"artifact"`
	Version  string `json:"version" yaml:"version"`
}

// ID returns the NodeID for c.
func (c Coordinate) ID() NodeID {
	return MakeNodeID(c.Group, c.Artifact, c.Version)
}

// Package returns the "group:artifact" form used to query a Provider.
func (c Coordinate) Package() string {
	return c.Group + separator + c.Artifact
}

// String returns the fully qualified "group:artifact:version" form.
func (c Coordinate) String() string { return string(c.ID()) }

// MakeNodeID forms the NodeID for a package and version. An empty version
// maps to [UnknownVersion].
func MakeNodeID(group, artifact, version string) NodeID {
	if version == "" {
		version = UnknownVersion
	}
	return NodeID(group + separator + artifact + separator + version)
}

// SplitPackageName splits "group:artifact" on the first separator.
// A name without a separator is its own group and artifact, so "pkgA"
// yields ("pkgA", "pkgA"). Every string is a valid input.
func SplitPackageName(pkg string) (group, artifact string) {
	group, artifact, ok := strings.Cut(pkg, separator)
	if !ok {
		return pkg, pkg
	}
	return group, artifact
}

// ParseNodeID recovers the triple from a NodeID. Anything after the second
// separator belongs to the version; a missing version becomes [UnknownVersion].
func ParseNodeID(id NodeID) Coordinate {
	parts := strings.SplitN(string(id), separator, 3)
	c := Coordinate{Group: parts[0], Artifact: parts[0], Version: UnknownVersion}
	if len(parts) > 1 {
		c.Artifact = parts[1]
	}
	if len(parts) > 2 && parts[2] != "" {
		c.Version = parts[2]
	}
	return c
}

// packagePrefix returns the "group:artifact:" prefix used for root fallback lookups.
func packagePrefix(pkg string) string {
	group, artifact := SplitPackageName(pkg)
	return group + separator + artifact + separator
}
