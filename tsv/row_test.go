package tsv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRow(t *testing.T) {
	row := ParseRow("a\tb\tc", NewSharedError(), 3)
	require.False(t, row.HasErr(), "Err() = %q", row.Err())

	assert.Equal(t, "a", row.Column(0))
	assert.Equal(t, "b", row.Column(1))
	assert.Equal(t, "c", row.Column(2))
	assert.Equal(t, 3, row.Len())
	assert.False(t, row.HasErr())
}

func TestParseRowColumnCount(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected int
	}{
		{"too few columns", "a\tb\tc", 10},
		{"too many columns", "a\tb\tc\td", 3},
		{"empty row", "", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := ParseRow(tt.text, NewSharedError(), tt.expected)
			assert.True(t, row.HasErr())
			assert.Equal(t, RowColumnCountMismatch, row.ErrKind())
			assert.Equal(t, "incorrect number of columns for row", row.Err())
		})
	}
}

func TestParseRowKeepsFieldsOnCountMismatch(t *testing.T) {
	row := ParseRow("a\tb", NewSharedError(), 3)
	require.True(t, row.HasErr())

	// The fields are retained, but the error state hides them.
	assert.Equal(t, []string{"a", "b"}, row.fields)
	assert.Equal(t, "", row.Column(0))
	assert.Equal(t, 0, row.Len())
}

func TestRowColumnOutOfBounds(t *testing.T) {
	for _, i := range []int{100, 3, -1} {
		row := ParseRow("a\tb\tc", NewSharedError(), 3)
		require.False(t, row.HasErr())

		assert.Equal(t, "", row.Column(i), "Column(%d)", i)
		assert.True(t, row.HasErr(), "HasErr() after Column(%d)", i)
		assert.Equal(t, IndexOutOfBounds, row.ErrKind())

		// Valid indices are now hidden too.
		assert.Equal(t, "", row.Column(0))
	}
}

func TestParseRowWithSetError(t *testing.T) {
	err := NewSharedError()
	err.set(NoColumns, "earlier failure")

	row := ParseRow("a\tb\tc", err, 3)
	assert.True(t, row.HasErr())
	assert.Equal(t, "earlier failure", row.Err())
	assert.Nil(t, row.fields)
	assert.Equal(t, "", row.Column(0))
	// Out of bounds access does not overwrite the earlier error.
	assert.Equal(t, "", row.Column(5))
	assert.Equal(t, NoColumns, row.ErrKind())
}

func TestParseRowNilError(t *testing.T) {
	row := ParseRow("a", nil, 1)
	assert.False(t, row.HasErr())
	assert.Equal(t, "a", row.Column(0))
}
