package bytewords

// Errors
var (
	ErrInvalidFormat    = &FormatError{"invalid bytewords"}
	ErrChecksumMismatch = &FormatError{"bytewords checksum mismatch"}
)

// FormatError represents a bytewords decoding error
type FormatError struct {
	Message string
}

func (e *FormatError) Error() string {
	return e.Message
}

// Is reports a checksum mismatch as an invalid format as well, so callers
// that only care about rejection can test for ErrInvalidFormat alone.
func (e *FormatError) Is(target error) bool {
	return e == ErrChecksumMismatch && target == error(ErrInvalidFormat)
}
