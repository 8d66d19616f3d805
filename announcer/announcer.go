// Package announcer decides what a release pipeline should announce,
// given an optional release tag and a catalogue of workspace packages:
// a single package, a unified release of the whole workspace, or nothing.
package announcer

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// PartialAnnouncementTag is the parsed announcement decision. Later
// stages fill in the remaining details (e.g. enumerating every package
// when Version is set).
//
// Package and Version are mutually exclusive: Package names a
// single-package release, Version a unified release across the whole
// workspace. When the input tag was absent both are nil and Prerelease
// is false.
type PartialAnnouncementTag struct {
	// Tag is the raw input tag, echoed back.
	Tag *string
	// Version is set when announcing a unified release.
	Version *semver.Version
	// Package is set when announcing a single-package release.
	Package *PackageIdx
	// Prerelease reports whether the announced version carries a
	// pre-release component.
	Prerelease bool
}

// ParseTag parses a release tag against the package catalogue.
//
// A nil tag means there was no tag to parse: the zero
// PartialAnnouncementTag is returned for later passes to fill in.
// Otherwise the tag must resolve either to a single package
// ("my-app-v1.0.0", "releases/my-app/v1.0.0") or to a unified version
// ("v1.0.0", "1.0.0"). Anything else fails with one of
// TagVersionParseError, ContradictoryTagVersionError or NoTagMatchError.
func ParseTag(packages Catalogue, tag *string) (PartialAnnouncementTag, error) {
	var result PartialAnnouncementTag
	if tag == nil {
		return result, nil
	}

	rawTag := *tag
	result.Tag = &rawTag

	var announcingPackage *PackageIdx
	var announcingVersion *semver.Version

	tagSuffix := rawTag

	// Check if we're using `/`'s to delimit things.
	if prefix, suffix, ok := cutLast(rawTag, '/'); ok {
		// We're at least in "blah/v1.0.0" format. If the prefix itself
		// contains a `/`, only its last component can be a package name;
		// otherwise the whole prefix could be one.
		maybePackage := prefix
		if _, last, ok := cutLast(prefix, '/'); ok {
			maybePackage = last
		}
		// "blah/blah/some-package/v1.0.0" format requires the candidate
		// component to be exactly a package name (empty remainder).
		if idx, rest, ok := stripPrefixPackage(maybePackage, packages); ok && rest == "" {
			announcingPackage = &idx
		}
		tagSuffix = suffix
	}

	// If we don't have an announcing package yet, check if this is
	// "some-package-v1.0.0" format.
	if announcingPackage == nil {
		if idx, rest, ok := stripPrefixPackage(tagSuffix, packages); ok {
			// Must be followed by a dash to be accepted.
			if rest, ok := strings.CutPrefix(rest, "-"); ok {
				tagSuffix = rest
				announcingPackage = &idx
			}
		}
	}

	// Assuming the input is valid, tagSuffix should now be the version
	// component with an optional "v" prefix.
	tagSuffix = strings.TrimPrefix(tagSuffix, "v")

	version, err := semver.StrictNewVersion(tagSuffix)
	if err != nil {
		return PartialAnnouncementTag{}, &TagVersionParseError{Tag: rawTag, Err: err}
	}
	result.Prerelease = version.Prerelease() != ""

	if announcingPackage != nil {
		// The tag names a specific package: its manifest-recorded
		// version, if any, must agree with the tag.
		if pkg, ok := packages[*announcingPackage]; ok {
			if pkg.Version != nil && !pkg.Version.Equal(version) {
				return PartialAnnouncementTag{}, &ContradictoryTagVersionError{
					Tag:         rawTag,
					PackageName: pkg.Name,
					TagVersion:  version,
					RealVersion: pkg.Version,
				}
			}
		}
	} else {
		// No announcing package, so this is a unified release.
		announcingVersion = version
	}

	// Refuse to proceed when neither interpretation stuck. A successful
	// version parse always enables one of the branches above, so this is
	// a guard against future changes rather than a reachable path.
	if announcingPackage == nil && announcingVersion == nil {
		return PartialAnnouncementTag{}, &NoTagMatchError{Tag: rawTag}
	}

	result.Version = announcingVersion
	result.Package = announcingPackage
	return result, nil
}

// Describe renders the decision for human consumption. The catalogue is
// used to resolve the announced package's name.
func (p PartialAnnouncementTag) Describe(packages Catalogue) string {
	switch {
	case p.Package != nil:
		name := fmt.Sprintf("package #%d", *p.Package)
		if pkg, ok := packages[*p.Package]; ok {
			name = pkg.Name
		}
		if p.Prerelease {
			return fmt.Sprintf("announcing prerelease of %s", name)
		}
		return fmt.Sprintf("announcing release of %s", name)
	case p.Version != nil:
		if p.Prerelease {
			return fmt.Sprintf("announcing unified prerelease v%s", p.Version)
		}
		return fmt.Sprintf("announcing unified release v%s", p.Version)
	default:
		return "no release tag: nothing to announce"
	}
}

// cutLast slices s around the last occurrence of sep.
func cutLast(s string, sep byte) (before, after string, found bool) {
	if i := strings.LastIndexByte(s, sep); i >= 0 {
		return s[:i], s[i+1:], true
	}
	return s, "", false
}
