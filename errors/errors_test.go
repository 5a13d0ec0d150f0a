package errors

import (
	stderrors "errors"
	"fmt"
	"io"
	"regexp/syntax"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslatableErrors(t *testing.T) {
	cause := &syntax.Error{Code: syntax.ErrMissingBracket, Expr: "["}
	err := ErrInvalidKeyFilter.WithArgs("[").Wrap(cause)

	assert.True(t, stderrors.Is(err, ErrInvalidKeyFilter))
	assert.False(t, stderrors.Is(err, ErrUnknownTarget))
	assert.Contains(t, err.Error(), `invalid key filter "["`)

	var synErr *syntax.Error
	assert.True(t, stderrors.As(err, &synErr))

	wrapped := fmt.Errorf("generate: %w", err)
	assert.True(t, stderrors.Is(wrapped, ErrInvalidKeyFilter))
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "unknown generation target \"kotlin\" (supported: java, go)", ErrUnknownTarget.WithArgs("kotlin", "java, go").Error())
	assert.Equal(t, "Command generate failed: EOF", ErrCommandFailed.WithArgs("generate", io.EOF).Error())
	assert.Equal(t, "3 locale issue(s) found", ErrCheckFailed.WithArgs(3).Error())
}
