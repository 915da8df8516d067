package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLongDesc(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		give string
		want string
	}{
		{name: "empty", give: "", want: ""},
		{name: "surrounding whitespace", give: "  Anchors a hash.  ", want: "Anchors a hash."},
		{
			name: "raw string block",
			give: `
				Prepares a deposit.
				The envelope is unsigned.
			`,
			want: "Prepares a deposit.\n\t\t\t\tThe envelope is unsigned.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, LongDesc(tt.give))
		})
	}
}

func TestExamples(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		give string
		want string
	}{
		{name: "empty", give: "   ", want: ""},
		{name: "single line", give: "linkd anchor hash", want: "  linkd anchor hash"},
		{
			name: "raw string block",
			give: `
				# Hash a record
				linkd anchor hash --invoice INV-001

				linkd anchor verify
			`,
			want: "  # Hash a record\n  linkd anchor hash --invoice INV-001\n  \n  linkd anchor verify",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, Examples(tt.give))
		})
	}
}
