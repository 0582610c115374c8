package main

// applicationName and version are reported by the `-v` CLI flag (spec.md
// §6) and logged once at startup, mirroring the teacher's own
// version.Version()/version.ApplicationName use in its entry point.
const (
	applicationName = "bmdebug"
	version         = "0.1.0-dev"
)
