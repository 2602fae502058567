// Package chunk splits strings into fixed-width pieces.
package chunk

import "fmt"

// Errors
var (
	ErrWidth  = &ChunkError{"chunk width must be positive"}
	ErrUneven = &ChunkError{"string length is not a multiple of the chunk width"}
)

// ChunkError represents a partitioning error
type ChunkError struct {
	Message string
}

func (e *ChunkError) Error() string {
	return e.Message
}

// Partition splits s into consecutive substrings of exactly width bytes.
// Strings whose length is not a multiple of width are rejected rather than
// padded or truncated. An empty string yields an empty slice.
func Partition(s string, width int) ([]string, error) {
	if width <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrWidth, width)
	}
	if len(s)%width != 0 {
		return nil, fmt.Errorf("%w: len %d, width %d", ErrUneven, len(s), width)
	}

	parts := make([]string, 0, len(s)/width)
	for i := 0; i < len(s); i += width {
		parts = append(parts, s[i:i+width])
	}
	return parts, nil
}
