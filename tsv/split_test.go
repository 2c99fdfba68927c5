package tsv

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name string
		in   string
		sep  string
		want []string
	}{
		{"empty", "", "\t", nil},
		{"single", "a", "\t", []string{"a"}},
		{"three", "a\tb\tc", "\t", []string{"a", "b", "c"}},
		{"trailing separator dropped", "a\tb\t", "\t", []string{"a", "b"}},
		{"leading separator kept", "\ta", "\t", []string{"", "a"}},
		{"empty middle kept", "a\t\tc", "\t", []string{"a", "", "c"}},
		{"only separator", "\t", "\t", []string{""}},
		{"multi-byte separator", "a\n\nb\n\n", "\n\n", []string{"a", "b"}},
		{"odd newlines", "a\n\n\nb", "\n\n", []string{"a", "\nb"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, split(tt.in, tt.sep))
		})
	}
}
