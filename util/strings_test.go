package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T {
	return &v
}

func TestIsEmpty(t *testing.T) {
	tests := []struct {
		name  string
		input *string
		want  bool
	}{
		{
			name:  "nil",
			input: nil,
			want:  true,
		},
		{
			name:  "zero length",
			input: ptr(""),
			want:  true,
		},
		{
			name:  "whitespace is not empty",
			input: ptr(" "),
			want:  false,
		},
		{
			name:  "text",
			input: ptr("I18N_EXAMPLE"),
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsEmpty(tt.input))
			assert.Equal(t, !tt.want, NotEmpty(tt.input))
		})
	}
}

func TestSafe(t *testing.T) {
	assert.Equal(t, "", Safe(nil))
	assert.Equal(t, "", Safe(ptr("")))

	for _, s := range []string{"a", " b ", "ümlaut", "line\nbreak"} {
		assert.Equal(t, s, Safe(&s))
	}
}
