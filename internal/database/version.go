package database

import (
	"fmt"
	"strings"
)

// CompatKey reduces an application version to its (major, minor) pair, the
// compatibility key of a persisted store. Builds whose keys differ never see
// each other's records: each key maps to its own database file, so there is
// no migration path and no error across key boundaries. Patch releases share
// a key. Dev builds without a numeric version get a literal "dev" key.
func CompatKey(version string) string {
	v := strings.TrimPrefix(strings.TrimSpace(version), "v")

	parts := strings.SplitN(v, ".", 3)
	if len(parts) < 2 || !isNumeric(parts[0]) || !isNumeric(parts[1]) {
		return "dev"
	}
	return parts[0] + "." + parts[1]
}

// FileName returns the database file name for an application version,
// e.g. "sources-v1.2.db" for any 1.2.x build.
func FileName(version string) string {
	return fmt.Sprintf("sources-v%s.db", CompatKey(version))
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
