package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeLikePattern(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain text passes through", input: "Kim Lee", want: "Kim Lee"},
		{name: "percent is escaped", input: "100%", want: `100\%`},
		{name: "underscore is escaped", input: "kim_lee", want: `kim\_lee`},
		{name: "backslash is escaped first", input: `a\b`, want: `a\\b`},
		{name: "mixed metacharacters", input: `%_\`, want: `\%\_\\`},
		{name: "empty string", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, escapeLikePattern(tt.input))
		})
	}
}
