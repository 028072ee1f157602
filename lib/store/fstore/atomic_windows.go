//go:build windows

package fstore

import "os"

// writeFileAtomic falls back to a plain write, rename over an existing file is not atomic on windows
func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	return os.WriteFile(path, data, perm)
}
