package bytewords

import (
	"fmt"
	"strings"
	"sync"
)

const (
	alphabetSize   = 26
	fullWordLen    = 4
	minimalWordLen = 2
	unassigned     = -1
)

// ReverseLookup maps the first and last letters of a byteword back to the
// byte value it encodes. It is immutable once built.
type ReverseLookup struct {
	slots [alphabetSize][alphabetSize]int16
}

var (
	lookup     *ReverseLookup
	lookupOnce sync.Once
)

// Lookup returns the process-wide reverse lookup, building it on first use
func Lookup() *ReverseLookup {
	lookupOnce.Do(func() {
		lookup = buildLookup()
	})
	return lookup
}

func buildLookup() *ReverseLookup {
	l := &ReverseLookup{}
	for x := range l.slots {
		for y := range l.slots[x] {
			l.slots[x][y] = unassigned
		}
	}

	for i, w := range wordTable {
		x, _ := alphabetIndex(w[0])
		y, _ := alphabetIndex(w[fullWordLen-1])
		l.slots[x][y] = int16(i)
	}
	return l
}

// Get returns the byte whose word starts with first and ends with last.
// Letters are matched case-insensitively.
func (l *ReverseLookup) Get(first, last byte) (byte, bool) {
	x, ok := alphabetIndex(first)
	if !ok {
		return 0, false
	}
	y, ok := alphabetIndex(last)
	if !ok {
		return 0, false
	}

	v := l.slots[x][y]
	if v == unassigned {
		return 0, false
	}
	return byte(v), true
}

// alphabetIndex returns the position of c in the Latin alphabet, ignoring
// case. ok is false for any other byte.
func alphabetIndex(c byte) (idx int, ok bool) {
	switch {
	case c >= 'a' && c <= 'z':
		return int(c - 'a'), true
	case c >= 'A' && c <= 'Z':
		return int(c - 'A'), true
	default:
		return 0, false
	}
}

// DecodeWord returns the byte encoded by token, which must be a full
// (wordLen 4) or minimal (wordLen 2) byteword.
func DecodeWord(token string, wordLen int) (byte, error) {
	if wordLen != fullWordLen && wordLen != minimalWordLen {
		return 0, fmt.Errorf("%w: unsupported word length %d", ErrInvalidFormat, wordLen)
	}
	if len(token) != wordLen {
		return 0, fmt.Errorf("%w: word %q is not %d letters", ErrInvalidFormat, token, wordLen)
	}

	first, last := token[0], token[wordLen-1]
	if _, ok := alphabetIndex(first); !ok {
		return 0, fmt.Errorf("%w: word %q starts with a non-letter", ErrInvalidFormat, token)
	}
	if _, ok := alphabetIndex(last); !ok {
		return 0, fmt.Errorf("%w: word %q ends with a non-letter", ErrInvalidFormat, token)
	}

	b, ok := Lookup().Get(first, last)
	if !ok {
		return 0, fmt.Errorf("%w: unknown word %q", ErrInvalidFormat, token)
	}

	// Endpoints select the word; the middle letters must match it too.
	if wordLen == fullWordLen {
		want := wordTable[b]
		if !strings.EqualFold(token[1:3], want[1:3]) {
			return 0, fmt.Errorf("%w: unknown word %q", ErrInvalidFormat, token)
		}
	}

	return b, nil
}
