//go:build windows

package generator

import (
	"os"
)

// writeFile writes path in place; renameio does not support Windows.
func writeFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0o644)
}
