package maven

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/matzehuels/depviz/pkg/buildinfo"
	"github.com/matzehuels/depviz/pkg/cache"
	"github.com/matzehuels/depviz/pkg/integrations"
)

// userAgent identifies depviz to repository servers.
var userAgent = "depviz/" + buildinfo.Version

// DefaultRepository is Maven Central's repository root.
const DefaultRepository = "https://repo1.maven.org/maven2"

// LatestVersion stands in for a dependency that declares no version.
const LatestVersion = "latest"

// ErrInvalidCoordinate is returned for names that are not "groupId:artifactId".
var ErrInvalidCoordinate = errors.New("invalid maven coordinate")

// ErrMalformedPOM is returned when a POM body contains no markup at all.
var ErrMalformedPOM = errors.New("malformed pom")

// Dependency is one <dependency> declaration from a POM.
type Dependency struct {
	GroupID    string `json:"group_id"`
	ArtifactID string `json:"artifact_id"`
	Version    string `json:"version"`
}

// String returns "groupId:artifactId:version".
func (d Dependency) String() string {
	return d.GroupID + ":" + d.ArtifactID + ":" + d.Version
}

// Client fetches POM files from a Maven-layout repository.
//
// All methods are safe for concurrent use by multiple goroutines.
type Client struct {
	*integrations.Client
	repoURL string
}

// NewClient creates a client for the repository rooted at repoURL.
// Responses are stored in store (nil disables caching) for ttl.
func NewClient(repoURL string, store cache.Cache, ttl time.Duration) *Client {
	return &Client{
		Client:  integrations.NewClient(store, "maven:", ttl, map[string]string{"User-Agent": userAgent}),
		repoURL: strings.TrimRight(repoURL, "/"),
	}
}

// POMURL returns the location of the POM for a coordinate and version:
// <repo>/<group path>/<artifact>/<version>/<artifact>-<version>.pom.
func (c *Client) POMURL(groupID, artifactID, version string) string {
	groupPath := strings.ReplaceAll(groupID, ".", "/")
	return fmt.Sprintf("%s/%s/%s/%s/%s-%s.pom",
		c.repoURL, groupPath, artifactID, version, artifactID, version)
}

// FetchDependencies downloads the POM of coordinate at version and returns
// its declared dependencies in document order. No scope filtering is done.
//
// Returns:
//   - [ErrInvalidCoordinate] if coordinate has no ':'
//   - [integrations.ErrNotFound] if the POM does not exist
//   - [integrations.ErrNetwork] for timeouts and unexpected statuses
//   - [ErrMalformedPOM] if the body is not markup
func (c *Client) FetchDependencies(ctx context.Context, coordinate, version string, refresh bool) ([]Dependency, error) {
	groupID, artifactID, err := ParseCoordinate(coordinate)
	if err != nil {
		return nil, err
	}

	pom, err := c.CachedText(ctx, c.POMURL(groupID, artifactID, version), refresh)
	if err != nil {
		return nil, fmt.Errorf("%w: pom for %s:%s:%s", err, groupID, artifactID, version)
	}
	if !strings.Contains(pom, "<") {
		return nil, fmt.Errorf("%w: %s:%s:%s", ErrMalformedPOM, groupID, artifactID, version)
	}
	return ParsePOM(pom), nil
}

// ParseCoordinate splits "groupId:artifactId" on the first ':'.
func ParseCoordinate(coord string) (groupID, artifactID string, err error) {
	groupID, artifactID, ok := strings.Cut(coord, ":")
	if !ok {
		return "", "", fmt.Errorf("%w %q (expected groupId:artifactId)", ErrInvalidCoordinate, coord)
	}
	return groupID, artifactID, nil
}

// ParsePOM extracts the project's <dependencies> section.
//
// Elements are matched by local name, so POMs with or without the
// http://maven.apache.org/POM/4.0.0 namespace parse the same way. If the
// document is not well-formed XML, the raw text is scanned instead, skipping
// the dependencyManagement, build, profiles and reporting sections so that
// only project-level dependencies are read. In both modes a dependency without a
// groupId or artifactId is skipped and a missing version becomes [LatestVersion].
func ParsePOM(content string) []Dependency {
	var pom pomProject
	if err := xml.Unmarshal([]byte(content), &pom); err != nil {
		return scanDependencies(content)
	}

	deps := make([]Dependency, 0, len(pom.Dependencies))
	for _, d := range pom.Dependencies {
		if dep, ok := newDependency(d.GroupID, d.ArtifactID, d.Version); ok {
			deps = append(deps, dep)
		}
	}
	return deps
}

var (
	nestedSections = []*regexp.Regexp{
		regexp.MustCompile(`(?s)<dependencyManagement>.*?</dependencyManagement>`),
		regexp.MustCompile(`(?s)<build>.*?</build>`),
		regexp.MustCompile(`(?s)<profiles>.*?</profiles>`),
		regexp.MustCompile(`(?s)<reporting>.*?</reporting>`),
	}
	dependenciesBlock = regexp.MustCompile(`(?s)<dependencies>(.*?)</dependencies>`)
	dependencyBlock   = regexp.MustCompile(`(?s)<dependency>(.*?)</dependency>`)
	groupIDTag      = regexp.MustCompile(`(?s)<groupId>(.*?)</groupId>`)
	artifactIDTag   = regexp.MustCompile(`(?s)<artifactId>(.*?)</artifactId>`)
	versionTag      = regexp.MustCompile(`(?s)<version>(.*?)</version>`)
)

func scanDependencies(content string) []Dependency {
	for _, re := range nestedSections {
		content = re.ReplaceAllString(content, "")
	}

	var deps []Dependency
	for _, section := range dependenciesBlock.FindAllStringSubmatch(content, -1) {
		for _, m := range dependencyBlock.FindAllStringSubmatch(section[1], -1) {
			block := m[1]
			if dep, ok := newDependency(submatch(groupIDTag, block), submatch(artifactIDTag, block), submatch(versionTag, block)); ok {
				deps = append(deps, dep)
			}
		}
	}
	return deps
}

func submatch(re *regexp.Regexp, s string) string {
	if m := re.FindStringSubmatch(s); m != nil {
		return m[1]
	}
	return ""
}

func newDependency(groupID, artifactID, version string) (Dependency, bool) {
	groupID = strings.TrimSpace(groupID)
	artifactID = strings.TrimSpace(artifactID)
	if groupID == "" || artifactID == "" {
		return Dependency{}, false
	}
	version = strings.TrimSpace(version)
	if version == "" {
		version = LatestVersion
	}
	return Dependency{GroupID: groupID, ArtifactID: artifactID, Version: version}, true
}

type pomProject struct {
	XMLName      xml.Name        `xml:"project"`
	Dependencies []pomDependency `xml:"dependencies>dependency"`
}

type pomDependency struct {
	GroupID    string `xml:"groupId"`
	ArtifactID string `xml:"artifactId"`
	Version    string `xml:"version"`
}
