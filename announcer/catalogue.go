package announcer

import (
	"github.com/Masterminds/semver/v3"
)

// PackageIdx identifies a package within one catalogue. Values are opaque
// to this package; callers typically assign positional indices.
type PackageIdx int

// Package is a read-only catalogue entry for one workspace package.
type Package struct {
	// Name is the name matched against release tags.
	Name string
	// Version is the version the package's own manifest declares, if any.
	Version *semver.Version
}

// Catalogue maps package identifiers to their catalogue entries. It is
// supplied by the caller and never modified here.
type Catalogue map[PackageIdx]Package
