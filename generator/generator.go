// Package generator turns resource bundles into source files declaring their
// keys.
package generator

import (
	"context"

	"github.com/napalu/i18n-bundle-gen/bundle"
	"github.com/napalu/i18n-bundle-gen/errors"
	"github.com/napalu/i18n-bundle-gen/internal/log"
	"github.com/napalu/i18n-bundle-gen/settings"
	"golang.org/x/text/language"
)

// Status is the outcome for a single bundle.
type Status int

const (
	// Written means the output file was created or replaced.
	Written Status = iota
	// Unchanged means the output file already had the rendered content.
	Unchanged
	// Skipped means no key of the bundle passed the key filter.
	Skipped
)

func (s Status) String() string {
	switch s {
	case Written:
		return "written"
	case Unchanged:
		return "unchanged"
	case Skipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// BundleResult describes what happened to one bundle.
type BundleResult struct {
	// Source is the bundle path relative to the bundle root.
	Source string
	// Output is the generated file, empty for skipped bundles.
	Output string
	// Keys is the number of keys that passed the filter.
	Keys   int
	Status Status
}

// Result is the outcome of a generation pass.
type Result struct {
	// Disabled is set when generation is switched off in the settings.
	Disabled bool
	Bundles  []BundleResult
}

// Count returns the number of bundles with the given status.
func (r *Result) Count(status Status) int {
	n := 0
	for _, b := range r.Bundles {
		if b.Status == status {
			n++
		}
	}
	return n
}

// Generator runs generation passes over one settings value.
type Generator struct {
	settings *settings.GenerateI18N
}

// New returns a generator for s.
func New(s *settings.GenerateI18N) *Generator {
	return &Generator{settings: s}
}

// Bundles loads all base bundles selected by the settings, in path order.
// Selected locale variants are left out, they are reached through
// bundle.Variants.
func (g *Generator) Bundles() ([]*bundle.Bundle, error) {
	enc, err := bundle.ParseEncoding(g.settings.Encoding())
	if err != nil {
		return nil, errors.ErrInvalidEncoding.WithArgs(g.settings.Encoding()).Wrap(err)
	}

	tree := g.settings.Bundles()
	paths, err := tree.Files()
	if err != nil {
		return nil, errors.ErrFailedToListBundles.WithArgs(tree.Dir).Wrap(err)
	}

	bundles := make([]*bundle.Bundle, 0, len(paths))
	for _, path := range paths {
		b, err := bundle.Load(tree.Dir, path, enc)
		if err != nil {
			return nil, errors.ErrFailedToLoadBundle.WithArgs(path).Wrap(err)
		}
		if b.Locale != language.Und {
			continue
		}
		bundles = append(bundles, b)
	}
	return bundles, nil
}

// Run generates one source file per selected bundle. Nothing is read or
// written when generation is disabled.
func (g *Generator) Run(ctx context.Context) (*Result, error) {
	logger := log.WithComponent("generator")

	if !g.settings.Enabled() {
		logger.Debug().Msg("generation disabled")
		return &Result{Disabled: true}, nil
	}

	keyFilter := g.settings.KeyFilter()
	if keyFilter == nil {
		return nil, errors.ErrInvalidKeyFilter.WithArgs("")
	}

	emitter, err := NewEmitter(g.settings)
	if err != nil {
		return nil, err
	}

	bundles, err := g.Bundles()
	if err != nil {
		return nil, err
	}
	logger.Debug().
		Str("target", emitter.Name()).
		Str("bundles", g.settings.Bundles().String()).
		Int("count", len(bundles)).
		Msg("bundles selected")

	result := &Result{}
	for _, b := range bundles {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		entries := b.Filter(keyFilter)
		br := BundleResult{Source: b.RelPath, Keys: len(entries)}
		if len(entries) == 0 {
			br.Status = Skipped
			result.Bundles = append(result.Bundles, br)
			logger.Debug().Str("bundle", b.RelPath).Msg("no eligible keys")
			continue
		}

		br.Output = emitter.OutputPath(b)
		data, err := emitter.Render(b, entries)
		if err != nil {
			return nil, errors.ErrFailedToRender.WithArgs(b.RelPath).Wrap(err)
		}

		written, err := writeIfChanged(br.Output, data)
		if err != nil {
			return nil, errors.ErrFailedToWriteOutput.WithArgs(br.Output).Wrap(err)
		}
		br.Status = Unchanged
		if written {
			br.Status = Written
		}
		result.Bundles = append(result.Bundles, br)
		logger.Debug().
			Str("bundle", b.RelPath).
			Str("output", br.Output).
			Int("keys", br.Keys).
			Stringer("status", br.Status).
			Msg("bundle processed")
	}
	return result, nil
}
