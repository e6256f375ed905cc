package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain words", in: "Rubiqs Grader", want: "rubiqs-grader"},
		{name: "punctuation collapses", in: "Ethics Essay #1", want: "ethics-essay-1"},
		{name: "leading and trailing separators", in: "  --Notes--  ", want: "notes"},
		{name: "accents folded", in: "Café Résumé", want: "cafe-resume"},
		{name: "already a slug", in: "discussion", want: "discussion"},
		{name: "empty", in: "", want: Fallback},
		{name: "only symbols", in: "#!?", want: Fallback},
		{name: "non latin dropped", in: "数学 math", want: "math"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Make(tt.in))
		})
	}
}
