package announcer

import (
	"strings"
)

// stripPrefixPackage finds the catalogue package whose name is a prefix of
// input, preferring whichever one is longest. This disambiguates
// situations where you have both `my-app` and `my-app-helper` and the
// input is `my-app-helper-v2.0.0`.
//
// Returns the package idx and the rest of the input after the name.
// Two distinct names of equal length cannot both be a prefix of the same
// input, and the comparison below is strict, so the result does not
// depend on catalogue iteration order.
func stripPrefixPackage(input string, packages Catalogue) (PackageIdx, string, bool) {
	var (
		bestIdx  PackageIdx
		bestRest string
		found    bool
	)
	for idx, pkg := range packages {
		rest, ok := strings.CutPrefix(input, pkg.Name)
		if !ok {
			continue
		}
		if found && len(bestRest) <= len(rest) {
			continue
		}
		bestIdx = idx
		bestRest = rest
		found = true
	}
	return bestIdx, bestRest, found
}
