package generator

import (
	"bytes"
	"os"
	"path/filepath"
)

// writeIfChanged writes data to path unless the file already holds exactly
// data. It reports whether the file was written.
func writeIfChanged(path string, data []byte) (bool, error) {
	existing, err := os.ReadFile(path)
	if err == nil && bytes.Equal(existing, data) {
		return false, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, err
	}
	if err := writeFile(path, data); err != nil {
		return false, err
	}
	return true, nil
}
