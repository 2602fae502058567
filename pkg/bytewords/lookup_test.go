package bytewords

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlphabetIndex(t *testing.T) {
	tests := []struct {
		c    byte
		idx  int
		isOK bool
	}{
		{'a', 0, true},
		{'z', 25, true},
		{'A', 0, true},
		{'Z', 25, true},
		{'m', 12, true},
		{'`', 0, false},
		{'{', 0, false},
		{'@', 0, false},
		{'[', 0, false},
		{'0', 0, false},
		{'-', 0, false},
		{' ', 0, false},
		{0xc3, 0, false},
	}

	for _, tt := range tests {
		idx, ok := alphabetIndex(tt.c)
		assert.Equal(t, tt.isOK, ok, "byte %q", tt.c)
		if tt.isOK {
			assert.Equal(t, tt.idx, idx, "byte %q", tt.c)
		}
	}
}

func TestLookup_CoversTable(t *testing.T) {
	l := Lookup()

	assigned := 0
	for x := 0; x < alphabetSize; x++ {
		for y := 0; y < alphabetSize; y++ {
			if l.slots[x][y] != unassigned {
				assigned++
			}
		}
	}
	assert.Equal(t, 256, assigned)

	for i := 0; i < 256; i++ {
		w := Word(byte(i))
		b, ok := l.Get(w[0], w[3])
		require.True(t, ok, "word %q", w)
		assert.Equal(t, byte(i), b)
	}
}

func TestLookup_Unassigned(t *testing.T) {
	_, ok := Lookup().Get('a', 'z')
	assert.False(t, ok)

	_, ok = Lookup().Get('q', 'q')
	assert.False(t, ok)

	_, ok = Lookup().Get('1', 'e')
	assert.False(t, ok)
}

func TestLookup_ConcurrentFirstUse(t *testing.T) {
	var wg sync.WaitGroup
	results := make([]*ReverseLookup, 32)

	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = Lookup()
		}(i)
	}
	wg.Wait()

	for _, l := range results {
		assert.Same(t, results[0], l)
	}
}

func TestDecodeWord(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		wordLen int
		want    byte
	}{
		{name: "full word", token: "able", wordLen: 4, want: 0x00},
		{name: "last word", token: "zoom", wordLen: 4, want: 0xff},
		{name: "upper case", token: "LAVA", wordLen: 4, want: 0x80},
		{name: "mixed case", token: "JaDe", wordLen: 4, want: 0x6b},
		{name: "minimal", token: "ae", wordLen: 2, want: 0x00},
		{name: "minimal upper case", token: "ZM", wordLen: 2, want: 0xff},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeWord(tt.token, tt.wordLen)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeWord_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		wordLen int
	}{
		{name: "too short", token: "abl", wordLen: 4},
		{name: "too long", token: "ables", wordLen: 4},
		{name: "empty", token: "", wordLen: 4},
		{name: "minimal too long", token: "aed", wordLen: 2},
		{name: "non-letter first", token: "1ble", wordLen: 4},
		{name: "non-letter last", token: "abl3", wordLen: 4},
		{name: "non-letter minimal", token: "a-", wordLen: 2},
		{name: "non-ascii", token: "ébl", wordLen: 4},
		{name: "unassigned pair", token: "abcz", wordLen: 4},
		{name: "unassigned minimal pair", token: "xx", wordLen: 2},
		{name: "wrong middle letters", token: "axle", wordLen: 4},
		{name: "unsupported length", token: "abl", wordLen: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeWord(tt.token, tt.wordLen)
			assert.ErrorIs(t, err, ErrInvalidFormat)
		})
	}
}

func TestDecodeWord_MiddleLetterCorruption(t *testing.T) {
	for i := 0; i < 256; i++ {
		w := Word(byte(i))
		for pos := 1; pos <= 2; pos++ {
			for c := byte('a'); c <= 'z'; c++ {
				if c == w[pos] {
					continue
				}
				corrupted := []byte(w)
				corrupted[pos] = c

				_, err := DecodeWord(string(corrupted), fullWordLen)
				require.ErrorIs(t, err, ErrInvalidFormat, "corrupted %q -> %q", w, corrupted)
			}
		}
	}
}
