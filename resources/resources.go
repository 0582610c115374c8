// Package resources builds paths beneath bmdebug's resource directory,
// for callers that have a number of path segments to join rather than
// package paths's fixed dir/file pair.
package resources

import (
	"path/filepath"

	"github.com/bmdebug/bmdebug/paths"
)

// JoinPath joins an arbitrary number of path segments beneath the
// resource directory. Empty segments are omitted.
func JoinPath(parts ...string) (string, error) {
	var nonEmpty []string
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}

	if len(nonEmpty) == 0 {
		return paths.ResourcePath("", "")
	}

	return paths.ResourcePath(filepath.Join(nonEmpty[:len(nonEmpty)-1]...), nonEmpty[len(nonEmpty)-1])
}
