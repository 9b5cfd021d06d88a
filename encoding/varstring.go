// Package encoding provides the primitive byte-level encoders and decoders
// used by the container format: uint8-length-prefixed strings for names and
// attributes, and raw 64-bit columns for key and value data.
package encoding

import (
	"fmt"

	"github.com/plotprep/plotprep/endian"
	"github.com/plotprep/plotprep/errs"
)

// MaxStringLength is the longest string the uint8 length prefix can carry.
// Group names, column names and attribute keys are all bounded by it.
const MaxStringLength = 255

// AppendString appends text to buf with a uint8 length prefix.
//
// Encoding format:
//   - 1 byte: length as uint8 (0-255)
//   - N bytes: UTF-8 string data
//
// Returns:
//   - []byte: The extended buffer.
//   - error: An error when text exceeds MaxStringLength.
func AppendString(buf []byte, text string) ([]byte, error) {
	if len(text) > MaxStringLength {
		return nil, fmt.Errorf("string length %d exceeds maximum %d", len(text), MaxStringLength)
	}

	buf = append(buf, uint8(len(text)))

	return append(buf, text...), nil
}

// ReadString decodes one length-prefixed string starting at off.
//
// Returns:
//   - string: The decoded string.
//   - int: Offset of the byte following the string.
//   - error: ErrInvalidOffset when the prefix or data runs past the buffer.
func ReadString(data []byte, off int) (string, int, error) {
	if off < 0 || off >= len(data) {
		return "", 0, errs.ErrInvalidOffset
	}

	n := int(data[off])
	off++
	if off+n > len(data) {
		return "", 0, errs.ErrInvalidOffset
	}

	return string(data[off : off+n]), off + n, nil
}

// AppendLongString appends text to buf with a uint32 length prefix. Used for
// values that may exceed MaxStringLength, such as the metadata JSON blob
// stored in a group's attribute block.
func AppendLongString(buf []byte, engine endian.EndianEngine, text string) []byte {
	buf = engine.AppendUint32(buf, uint32(len(text))) //nolint:gosec

	return append(buf, text...)
}

// ReadLongString decodes one uint32-length-prefixed string starting at off.
//
// Returns:
//   - string: The decoded string.
//   - int: Offset of the byte following the string.
//   - error: ErrInvalidOffset when the prefix or data runs past the buffer.
func ReadLongString(data []byte, off int, engine endian.EndianEngine) (string, int, error) {
	if off < 0 || off+4 > len(data) {
		return "", 0, errs.ErrInvalidOffset
	}

	n := int(engine.Uint32(data[off:]))
	off += 4
	if n < 0 || off+n > len(data) {
		return "", 0, errs.ErrInvalidOffset
	}

	return string(data[off : off+n]), off + n, nil
}
