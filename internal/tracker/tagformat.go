package tracker

import "regexp"

// Release tags look like v1.2.3: a literal lowercase "v" followed by three
// numeric dot-separated components. No pre-release or build suffixes.
var tagFormat = regexp.MustCompile(`^v\d+\.\d+\.\d+$`)

// ValidTagFormat reports whether tag follows the vX.Y.Z release format.
// A failing check only produces a warning; the deployment check still runs
// with the literal string.
func ValidTagFormat(tag string) bool {
	return tagFormat.MatchString(tag)
}
