package bytewords

import (
	"fmt"
	"strings"

	"github.com/ssargent/bytewords/pkg/chunk"
	"github.com/ssargent/bytewords/pkg/crc"
)

// minDecodedLen is one payload byte plus the checksum
const minDecodedLen = 1 + crc.Size

// Style selects how bytewords are rendered
type Style int

const (
	// Standard renders four-letter words separated by spaces
	Standard Style = iota + 1
	// URI renders four-letter words separated by hyphens
	URI
	// Minimal renders two-letter words with no separator
	Minimal
)

var styleNames = map[Style]string{
	Standard: "standard",
	URI:      "uri",
	Minimal:  "minimal",
}

func (s Style) String() string {
	if name, ok := styleNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Style(%d)", int(s))
}

// Valid reports whether s is one of the defined styles
func (s Style) Valid() bool {
	_, ok := styleNames[s]
	return ok
}

// Separator returns the string placed between words
func (s Style) Separator() string {
	switch s {
	case Standard:
		return " "
	case URI:
		return "-"
	case Minimal:
		return ""
	}
	panic(fmt.Sprintf("bytewords: unknown style %d", int(s)))
}

// WordLen returns the number of letters per word
func (s Style) WordLen() int {
	switch s {
	case Standard, URI:
		return fullWordLen
	case Minimal:
		return minimalWordLen
	}
	panic(fmt.Sprintf("bytewords: unknown style %d", int(s)))
}

// ParseStyle parses a style name (standard, uri or minimal), ignoring case
func ParseStyle(name string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "standard":
		return Standard, nil
	case "uri":
		return URI, nil
	case "minimal":
		return Minimal, nil
	}
	return 0, fmt.Errorf("unknown bytewords style %q", name)
}

// ChecksumMode controls what Decode does when the trailing checksum does
// not match the payload
type ChecksumMode int

const (
	// ChecksumStrict rejects payloads whose checksum does not match
	ChecksumStrict ChecksumMode = iota
	// ChecksumPermissive returns the payload even if the checksum does not
	// match. Older decoders behaved this way.
	ChecksumPermissive
)

func (m ChecksumMode) String() string {
	switch m {
	case ChecksumStrict:
		return "strict"
	case ChecksumPermissive:
		return "permissive"
	}
	return fmt.Sprintf("ChecksumMode(%d)", int(m))
}

// ParseChecksumMode parses "strict" or "permissive". An empty string is strict.
func ParseChecksumMode(name string) (ChecksumMode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "strict":
		return ChecksumStrict, nil
	case "permissive":
		return ChecksumPermissive, nil
	}
	return 0, fmt.Errorf("unknown checksum mode %q", name)
}

// Codec encodes and decodes bytewords. The zero value is not usable; use
// NewCodec. A Codec is safe for concurrent use.
type Codec struct {
	checksum ChecksumMode
}

// Option configures a Codec
type Option func(*Codec)

// WithChecksumMode sets how checksum mismatches are handled on decode
func WithChecksumMode(mode ChecksumMode) Option {
	return func(c *Codec) {
		c.checksum = mode
	}
}

// NewCodec creates a codec. Checksums are enforced unless overridden.
func NewCodec(opts ...Option) *Codec {
	c := &Codec{checksum: ChecksumStrict}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ChecksumMode returns the codec's checksum mode
func (c *Codec) ChecksumMode() ChecksumMode {
	return c.checksum
}

var defaultCodec = NewCodec()

// Encode renders data in the given style using a strict codec
func Encode(style Style, data []byte) string {
	return defaultCodec.Encode(style, data)
}

// Decode parses text in the given style using a strict codec
func Decode(style Style, text string) ([]byte, error) {
	return defaultCodec.Decode(style, text)
}

// AddCRC returns a new slice holding buf followed by its CRC-32
func AddCRC(buf []byte) []byte {
	out := make([]byte, len(buf), len(buf)+crc.Size)
	copy(out, buf)
	return crc.Append(out, buf)
}

// Encode appends a checksum to data and renders every byte as a word.
// It panics if style is not Standard, URI or Minimal.
func (c *Codec) Encode(style Style, data []byte) string {
	if !style.Valid() {
		panic(fmt.Sprintf("bytewords: unknown style %d", int(style)))
	}

	buf := AddCRC(data)

	var sb strings.Builder
	if style == Minimal {
		sb.Grow(len(buf) * minimalWordLen)
		for _, b := range buf {
			w := wordTable[b]
			sb.WriteByte(w[0])
			sb.WriteByte(w[fullWordLen-1])
		}
		return sb.String()
	}

	sep := style.Separator()
	sb.Grow(len(buf) * (fullWordLen + len(sep)))
	for i, b := range buf {
		if i > 0 {
			sb.WriteString(sep)
		}
		sb.WriteString(wordTable[b])
	}
	return sb.String()
}

// Decode parses text produced by Encode and returns the payload without its
// checksum. Leading and trailing whitespace is ignored. Every failure wraps
// ErrInvalidFormat and no partial payload is returned.
// It panics if style is not Standard, URI or Minimal.
func (c *Codec) Decode(style Style, text string) ([]byte, error) {
	if !style.Valid() {
		panic(fmt.Sprintf("bytewords: unknown style %d", int(style)))
	}

	tokens, err := tokenize(style, strings.TrimSpace(text))
	if err != nil {
		return nil, err
	}

	wordLen := style.WordLen()
	buf := make([]byte, 0, len(tokens))
	for i, token := range tokens {
		b, err := DecodeWord(token, wordLen)
		if err != nil {
			return nil, fmt.Errorf("word %d: %w", i, err)
		}
		buf = append(buf, b)
	}

	if len(buf) < minDecodedLen {
		return nil, fmt.Errorf("%w: decoded %d bytes, need at least %d", ErrInvalidFormat, len(buf), minDecodedLen)
	}

	n := len(buf) - crc.Size
	body, sum := buf[:n:n], buf[n:]
	if !crc.Verify(body, sum) && c.checksum == ChecksumStrict {
		return nil, fmt.Errorf("%w: got %x, want %x", ErrChecksumMismatch, sum, crc.Checksum(body))
	}

	return body, nil
}

func tokenize(style Style, text string) ([]string, error) {
	if style == Minimal {
		tokens, err := chunk.Partition(text, minimalWordLen)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
		return tokens, nil
	}
	return strings.Split(text, style.Separator()), nil
}
