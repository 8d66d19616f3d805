package announcer

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// TagVersionParseError reports that the version portion of a release tag
// is not a valid semantic version.
type TagVersionParseError struct {
	Tag string
	Err error
}

func (e *TagVersionParseError) Error() string {
	return fmt.Sprintf("could not parse version from tag %q: %v", e.Tag, e.Err)
}

func (e *TagVersionParseError) Unwrap() error {
	return e.Err
}

// ContradictoryTagVersionError reports a tag that names a package whose
// manifest-recorded version disagrees with the version in the tag.
type ContradictoryTagVersionError struct {
	Tag         string
	PackageName string
	TagVersion  *semver.Version
	RealVersion *semver.Version
}

func (e *ContradictoryTagVersionError) Error() string {
	return fmt.Sprintf("tag %q implies version %s for package %s, but its manifest says %s",
		e.Tag, e.TagVersion, e.PackageName, e.RealVersion)
}

// NoTagMatchError reports a tag that resolved to neither a
// package-prefixed release nor a bare-version unified release.
type NoTagMatchError struct {
	Tag string
}

func (e *NoTagMatchError) Error() string {
	return fmt.Sprintf("tag %q does not match any known package or version format", e.Tag)
}
