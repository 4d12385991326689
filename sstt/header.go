package sstt

import (
	"bytes"
	"fmt"

	"github.com/arloliu/timetag/errs"
)

const (
	// Magic opens every SSTT v2 channel file.
	Magic = "SSTT2\x00"
	// HeaderSize is the size of the file header: Magic padded with zeros to three records.
	HeaderSize = RecordSize * 3
)

// HasHeader reports whether data starts with a complete SSTT v2 header.
func HasHeader(data []byte) bool {
	return len(data) >= HeaderSize && bytes.HasPrefix(data, []byte(Magic))
}

// SplitHeader validates the header and returns the record stream following it.
//
// Returns:
//   - []byte: The records after the header, sharing memory with data
//   - error: ErrInvalidMagic if data does not start with a header
func SplitHeader(data []byte) ([]byte, error) {
	if !HasHeader(data) {
		n := min(len(data), len(Magic))
		return nil, fmt.Errorf("%w: %q", errs.ErrInvalidMagic, data[:n])
	}

	return data[HeaderSize:], nil
}

// AppendHeader appends a header to dst.
func AppendHeader(dst []byte) []byte {
	var hdr [HeaderSize]byte
	copy(hdr[:], Magic)

	return append(dst, hdr[:]...)
}
