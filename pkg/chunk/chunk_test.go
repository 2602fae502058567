package chunk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartition(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
		want  []string
	}{
		{name: "pairs", input: "aeadao", width: 2, want: []string{"ae", "ad", "ao"}},
		{name: "single chunk", input: "able", width: 4, want: []string{"able"}},
		{name: "width one", input: "abc", width: 1, want: []string{"a", "b", "c"}},
		{name: "empty", input: "", width: 2, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Partition(tt.input, tt.width)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPartition_Errors(t *testing.T) {
	t.Run("uneven length", func(t *testing.T) {
		got, err := Partition("aea", 2)
		assert.ErrorIs(t, err, ErrUneven)
		assert.Nil(t, got)
	})

	t.Run("zero width", func(t *testing.T) {
		_, err := Partition("ae", 0)
		assert.ErrorIs(t, err, ErrWidth)
	})

	t.Run("negative width", func(t *testing.T) {
		_, err := Partition("ae", -2)
		assert.ErrorIs(t, err, ErrWidth)
	})
}
