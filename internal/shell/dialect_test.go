package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDialect(t *testing.T) {
	tests := []struct {
		input string
		want  Dialect
	}{
		{"bash", Bash},
		{"ZSH", Zsh},
		{" fish ", Fish},
		{"Bash", Bash},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			d, err := ParseDialect(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, d)
		})
	}
}

func TestParseDialectUnknown(t *testing.T) {
	tests := []struct {
		input      string
		suggestion string
	}{
		{"bsh", "bash"},
		{"fsh", "fish"},
		{"sh", "zsh"},
		{"powershell", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := ParseDialect(tt.input)
			require.Error(t, err)

			var unknown *UnknownDialectError
			require.ErrorAs(t, err, &unknown)
			assert.Equal(t, tt.input, unknown.Value)
			assert.Equal(t, tt.suggestion, unknown.Suggestion)
		})
	}
}

func TestDialectString(t *testing.T) {
	assert.Equal(t, "bash", Bash.String())
	assert.Equal(t, "zsh", Zsh.String())
	assert.Equal(t, "fish", Fish.String())
	assert.Equal(t, "dialect(9)", Dialect(9).String())
}

func TestDialects(t *testing.T) {
	assert.Equal(t, []string{"bash", "zsh", "fish"}, Dialects())
}
