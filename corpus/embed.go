// Package corpus provides embedded C-family sample sources for tests and fuzzing.
package corpus

import (
	"embed"
	"io/fs"
)

//go:embed samples/*.c samples/*.h samples/*.cpp samples/*.cs
var samplesFS embed.FS

// Samples exposes the embedded sample sources.
func Samples() fs.FS {
	return samplesFS
}
