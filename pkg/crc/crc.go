// Package crc computes the CRC-32 checksums appended to bytewords payloads.
//
// The checksum is the IEEE CRC-32 (ISO-HDLC) rendered as four big-endian
// bytes, matching the Uniform Resources bytewords format.
package crc

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
)

// Size is the length in bytes of an encoded checksum
const Size = 4

// Sum32 returns the IEEE CRC-32 of buf
func Sum32(buf []byte) uint32 {
	return crc32.ChecksumIEEE(buf)
}

// Checksum returns the CRC-32 of buf as four big-endian bytes
func Checksum(buf []byte) []byte {
	out := make([]byte, Size)
	binary.BigEndian.PutUint32(out, Sum32(buf))
	return out
}

// Append appends the checksum of buf to dst and returns the extended slice
func Append(dst, buf []byte) []byte {
	return binary.BigEndian.AppendUint32(dst, Sum32(buf))
}

// Verify reports whether sum is the encoded checksum of buf
func Verify(buf, sum []byte) bool {
	if len(sum) != Size {
		return false
	}
	return bytes.Equal(Checksum(buf), sum)
}
