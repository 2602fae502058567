// Package bytewords encodes binary payloads as English-like words.
//
// Every byte value 0-255 maps to one fixed four-letter word, so a payload
// can be read aloud, written down or embedded in a URI or QR code and
// transcribed back without loss. A CRC-32 checksum is appended before
// encoding and checked when decoding.
//
// # Styles
//
// Three renderings are supported:
//
//	Standard  able acid also lava zoom jade need echo taxi
//	URI       able-acid-also-lava-zoom-jade-need-echo-taxi
//	Minimal   aeadaolazmjendeoti
//
// Minimal words are the first and last letters of the full word. The word
// list is chosen so that those two letters are unique across the table,
// which lets minimal text be decoded with fixed two-letter framing.
//
// # Wire Format
//
// The encoded byte sequence is:
//
//	[Payload(n)][CRC32(4)]
//
// Fields:
//   - Payload: the caller's bytes, at least one byte when decoding
//   - CRC32: IEEE CRC-32 of the payload (big-endian)
//
// The word table, lowercase output, separators and minimal-word derivation
// are all part of the format and must not change.
//
// # Usage
//
//	text := bytewords.Encode(bytewords.URI, []byte{0x00, 0x01, 0x02, 0x80, 0xff})
//
//	payload, err := bytewords.Decode(bytewords.URI, text)
//	if err != nil {
//	    return err // errors.Is(err, bytewords.ErrInvalidFormat)
//	}
//
// # Error Handling
//
// Decode rejects, with an error wrapping ErrInvalidFormat:
//   - words of the wrong length or containing non-letters
//   - words whose first/last letter pair is not in the table
//   - four-letter words whose middle letters do not match the table
//   - minimal text whose length is odd
//   - fewer than five decoded bytes
//   - checksum mismatches (ErrChecksumMismatch), unless the codec was built
//     with WithChecksumMode(ChecksumPermissive)
//
// Decoding is case-insensitive; encoding always produces lowercase.
//
// # Thread Safety
//
// The reverse lookup table is built once on first use behind a sync.Once
// and is read-only afterwards. Codec values and the package-level functions
// are safe for concurrent use.
package bytewords
