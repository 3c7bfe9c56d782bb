package cli

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/depviz/pkg/deps/local"
	errs "github.com/matzehuels/depviz/pkg/errors"
)

// Config holds the settings of one graph run. It is filled from an optional
// config file first; flags given on the command line override file values.
type Config struct {
	Package   string `toml:"package" yaml:"package"`       // root package, "group:artifact" or a local name
	Repo      string `toml:"repo" yaml:"repo"`             // repository URL, or file path in test mode
	TestMode  bool   `toml:"test_mode" yaml:"test_mode"`   // read Repo as a local repository file
	Version   string `toml:"version" yaml:"version"`       // root version
	Output    string `toml:"output" yaml:"output"`         // image filename for --graph
	MaxDepth  *int   `toml:"max_depth" yaml:"max_depth"`   // deepest level to expand (nil: unlimited)
	ASCII     bool   `toml:"ascii" yaml:"ascii"`           // print the ASCII tree
	Filter    string `toml:"filter" yaml:"filter"`         // drop dependencies containing this substring
	Graph     bool   `toml:"graph" yaml:"graph"`           // render Output with Graphviz
	DOT       bool   `toml:"dot" yaml:"dot"`               // write the DOT source next to Output
	JSON      bool   `toml:"json" yaml:"json"`             // write graph.json next to Output
	LoadOrder bool   `toml:"load_order" yaml:"load_order"` // print the load order
	NoCache   bool   `toml:"no_cache" yaml:"no_cache"`     // disable the response cache
	Refresh   bool   `toml:"refresh" yaml:"refresh"`       // bypass cache reads
	Redis     string `toml:"redis" yaml:"redis"`           // cache responses in Redis at this address
	Metrics   bool   `toml:"metrics" yaml:"metrics"`       // print Prometheus metrics at exit
}

// Validate checks the configuration and fills in defaults that depend on the
// mode. Every failure is an INVALID_CONFIG error.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Package) == "" {
		return errs.New(errs.ErrCodeInvalidConfig, "package name is required (-p/--package)")
	}
	if strings.TrimSpace(c.Repo) == "" {
		return errs.New(errs.ErrCodeInvalidConfig, "repository URL or test file path is required (-r/--repo)")
	}
	if c.Version == "" {
		if !c.TestMode {
			return errs.New(errs.ErrCodeInvalidConfig, "version is required for maven repositories (-V/--version)")
		}
		c.Version = local.Version
	}
	if c.Output == "" {
		c.Output = defaultOutput
	}

	checks := []error{
		errs.ValidatePackageName(c.Package),
		errs.ValidateVersion(c.Version),
		errs.ValidateOutputFilename(c.Output),
	}
	if c.MaxDepth != nil {
		checks = append(checks, errs.ValidateMaxDepth(*c.MaxDepth))
	}
	if !c.TestMode {
		checks = append(checks, errs.ValidateMavenCoordinate(c.Package), errs.ValidateURL(c.Repo))
	}
	for _, err := range checks {
		if err != nil {
			return errs.Wrap(errs.ErrCodeInvalidConfig, err, "%s", errs.UserMessage(err))
		}
	}
	return nil
}

// Depth returns the traversal limit for the builder (0: unlimited).
func (c *Config) Depth() int {
	if c.MaxDepth == nil {
		return 0
	}
	return *c.MaxDepth
}

// Entries returns the configuration as display key/value pairs.
func (c *Config) Entries() [][2]string {
	version := c.Version
	if version == "" {
		version = "latest"
	}
	depth := "unlimited"
	if c.MaxDepth != nil {
		depth = strconv.Itoa(*c.MaxDepth)
	}
	filter := c.Filter
	if filter == "" {
		filter = "none"
	}
	return [][2]string{
		{"Package", c.Package},
		{"Repository", c.Repo},
		{"Test mode", strconv.FormatBool(c.TestMode)},
		{"Version", version},
		{"Output", c.Output},
		{"ASCII tree", strconv.FormatBool(c.ASCII)},
		{"Max depth", depth},
		{"Filter", filter},
	}
}

// loadConfigFile decodes a TOML (.toml) or YAML (.yaml, .yml) config file.
func loadConfigFile(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errs.Wrap(errs.ErrCodeInvalidConfig, err, "read config %s", path)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		return cfg, errs.New(errs.ErrCodeInvalidConfig, "unsupported config format %q (use .toml, .yaml or .yml)", ext)
	}
	if err != nil {
		return cfg, errs.Wrap(errs.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	return cfg, nil
}

// merge overlays the flags the user set explicitly onto base.
func merge(base, flags Config, fs *pflag.FlagSet) Config {
	set := func(name string) bool { return fs.Changed(name) }
	if set("package") {
		base.Package = flags.Package
	}
	if set("repo") {
		base.Repo = flags.Repo
	}
	if set("test-mode") {
		base.TestMode = flags.TestMode
	}
	if set("version") {
		base.Version = flags.Version
	}
	if set("output") {
		base.Output = flags.Output
	}
	if set("max-depth") {
		base.MaxDepth = flags.MaxDepth
	}
	if set("ascii") {
		base.ASCII = flags.ASCII
	}
	if set("filter") {
		base.Filter = flags.Filter
	}
	if set("graph") {
		base.Graph = flags.Graph
	}
	if set("dot") {
		base.DOT = flags.DOT
	}
	if set("json") {
		base.JSON = flags.JSON
	}
	if set("load-order") {
		base.LoadOrder = flags.LoadOrder
	}
	if set("no-cache") {
		base.NoCache = flags.NoCache
	}
	if set("refresh") {
		base.Refresh = flags.Refresh
	}
	if set("redis") {
		base.Redis = flags.Redis
	}
	if set("metrics") {
		base.Metrics = flags.Metrics
	}
	return base
}

// printConfig prints the effective configuration before a run.
func printConfig(c *Config) {
	printInfo("Configuration")
	for _, kv := range c.Entries() {
		printKeyValue("  "+kv[0], kv[1])
	}
}
