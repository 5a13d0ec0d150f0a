//go:build !windows

package generator

import (
	"fmt"

	"github.com/google/renameio/v2"
	"github.com/napalu/i18n-bundle-gen/internal/log"
)

// writeFile replaces path atomically.
func writeFile(path string, data []byte) error {
	logger := log.WithComponent("generator")

	pendingFile, err := renameio.NewPendingFile(path, renameio.WithPermissions(0o644))
	if err != nil {
		return fmt.Errorf("create pending file: %w", err)
	}
	defer func() {
		if err := pendingFile.Cleanup(); err != nil {
			logger.Debug().Err(err).Str("path", path).Msg("cleanup pending file")
		}
	}()

	if _, err := pendingFile.Write(data); err != nil {
		return fmt.Errorf("write pending file: %w", err)
	}
	if err := pendingFile.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("atomically replace %s: %w", path, err)
	}
	return nil
}
