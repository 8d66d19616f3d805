// Package workspace loads the package catalogue from a workspace
// manifest file.
package workspace

import (
	"fmt"
	"os"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"

	"github.com/ngyewch/release-announcer/announcer"
)

// Manifest is the on-disk workspace description.
type Manifest struct {
	Packages []ManifestPackage `yaml:"packages"`
}

// ManifestPackage describes one workspace package.
type ManifestPackage struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version,omitempty"`
}

// LoadFile reads a workspace manifest and builds the package catalogue.
func LoadFile(path string) (announcer.Catalogue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read workspace manifest: %w", err)
	}
	return Load(data)
}

// Load builds the package catalogue from raw manifest bytes. Package
// identifiers are assigned in manifest order. Duplicate package names are
// rejected because they would make tag matching ambiguous.
func Load(data []byte) (announcer.Catalogue, error) {
	var manifest Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("parse workspace manifest: %w", err)
	}

	catalogue := make(announcer.Catalogue, len(manifest.Packages))
	seen := make(map[string]struct{}, len(manifest.Packages))
	for i, pkg := range manifest.Packages {
		if pkg.Name == "" {
			return nil, fmt.Errorf("package %d: name is required", i)
		}
		if _, dup := seen[pkg.Name]; dup {
			return nil, fmt.Errorf("duplicate package name %q", pkg.Name)
		}
		seen[pkg.Name] = struct{}{}

		entry := announcer.Package{Name: pkg.Name}
		if pkg.Version != "" {
			version, err := semver.StrictNewVersion(pkg.Version)
			if err != nil {
				return nil, fmt.Errorf("package %q: invalid version %q: %w", pkg.Name, pkg.Version, err)
			}
			entry.Version = version
		}
		catalogue[announcer.PackageIdx(i)] = entry
	}
	return catalogue, nil
}
