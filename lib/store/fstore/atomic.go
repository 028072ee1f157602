//go:build !windows

package fstore

import (
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"
)

// writeFileAtomic writes data to a temp file next to path and renames it over path.
// A symlinked path is resolved first so the link survives and its target is updated.
func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	if target, err := filepath.EvalSymlinks(path); err == nil {
		path = target
	}
	return renameio.WriteFile(path, data, perm, renameio.WithTempDir(filepath.Dir(path)))
}
