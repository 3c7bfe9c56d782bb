// Package local provides an offline dependency backend read from a text file.
//
// The file lists one package per line:
//
//	# comment
//	pkgA -> pkgB, pkgC
//	pkgB -> pkgC
//
// Every dependency name d becomes the coordinate d:d:1.0.0. Blank lines,
// lines starting with '#', and lines without "->" are ignored; empty names
// after splitting on ',' are dropped. A package listed twice keeps its last line.
package local

import (
	"bufio"
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/matzehuels/depviz/pkg/deps"
	"github.com/matzehuels/depviz/pkg/depgraph"
	errs "github.com/matzehuels/depviz/pkg/errors"
)

// Version is assigned to every dependency read from a repository file.
const Version = "1.0.0"

const arrow = "->"

// Source reads a local repository file named by Options.Repository.
var Source = &deps.Source{
	Name:    "local",
	Aliases: []string{"test", "file"},
	NewProvider: func(opts deps.Options) (depgraph.Provider, error) {
		return Open(opts.Repository)
	},
}

// Repository is an in-memory test repository.
type Repository struct {
	packages map[string][]depgraph.Coordinate
}

// Open loads the repository file at path. A missing file is a FILE_NOT_FOUND error.
func Open(path string) (*Repository, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, errs.Wrap(errs.ErrCodeFileNotFound, err, "test repository %s not found", path)
	}
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidInput, err, "open test repository %s", path)
	}
	defer f.Close()

	r, err := Parse(f)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeMalformedInput, err, "read test repository %s", path)
	}
	return r, nil
}

// Parse reads a repository from r.
func Parse(r io.Reader) (*Repository, error) {
	repo := &Repository{packages: make(map[string][]depgraph.Coordinate)}

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		name, list, ok := strings.Cut(line, arrow)
		if !ok {
			continue
		}

		found := []depgraph.Coordinate{}
		for _, d := range strings.Split(list, ",") {
			if d = strings.TrimSpace(d); d != "" {
				found = append(found, depgraph.Coordinate{Group: d, Artifact: d, Version: Version})
			}
		}
		repo.packages[strings.TrimSpace(name)] = found
	}
	return repo, sc.Err()
}

// Dependencies looks pkg up by its full name, then by the part before the
// first ':' so that both "pkgA" and "pkgA:pkgA" resolve. version is ignored.
func (r *Repository) Dependencies(_ context.Context, pkg, _ string) ([]depgraph.Coordinate, error) {
	if found, ok := r.packages[pkg]; ok {
		return found, nil
	}
	if simple, _, ok := strings.Cut(pkg, ":"); ok {
		if found, ok := r.packages[simple]; ok {
			return found, nil
		}
	}
	return nil, errs.New(errs.ErrCodePackageNotFound, "package %s not found in test repository", pkg)
}
