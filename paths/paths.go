// Package paths resolves paths beneath bmdebug's resource directory
// (".bmdebug"), the root under which the global config file, per-session
// logs, and SWO capture files are all found.
package paths

import "path/filepath"

// resourceDir is the directory every resource path is rooted at, relative
// to wherever the caller chooses to anchor it (neither ResourcePath nor
// resources.JoinPath anchors it; both return a relative path).
const resourceDir = ".bmdebug"

// ResourcePath joins dir and file beneath resourceDir. Either (or both)
// may be empty, in which case that path segment is omitted.
func ResourcePath(dir string, file string) (string, error) {
	parts := []string{resourceDir}
	if dir != "" {
		parts = append(parts, dir)
	}
	if file != "" {
		parts = append(parts, file)
	}

	return filepath.Join(parts...), nil
}
