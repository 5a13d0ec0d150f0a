package generator

import (
	"strings"

	"github.com/napalu/i18n-bundle-gen/bundle"
	"github.com/napalu/i18n-bundle-gen/errors"
	"github.com/napalu/i18n-bundle-gen/settings"
)

// Emitter renders the source file of one bundle for a target language.
type Emitter interface {
	// Name is the target name used in the settings.
	Name() string
	// OutputPath returns the absolute path of the file generated for b.
	OutputPath(b *bundle.Bundle) string
	// Render returns the file content for the given entries of b.
	Render(b *bundle.Bundle, entries []bundle.Entry) ([]byte, error)
}

// Targets lists the supported target names.
func Targets() []string {
	return []string{javaTarget, goTarget}
}

// NewEmitter returns the emitter for the target configured in s.
func NewEmitter(s *settings.GenerateI18N) (Emitter, error) {
	switch strings.ToLower(s.Target()) {
	case javaTarget:
		return &javaEmitter{genDir: s.GenDir()}, nil
	case goTarget:
		return &goEmitter{genDir: s.GenDir(), pkg: s.GoPackage()}, nil
	default:
		return nil, errors.ErrUnknownTarget.WithArgs(s.Target(), strings.Join(Targets(), ", "))
	}
}
