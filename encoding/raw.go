package encoding

import (
	"math"

	"github.com/plotprep/plotprep/endian"
	"github.com/plotprep/plotprep/errs"
)

// AppendInt64Slice appends vals in their 64-bit two's-complement binary
// representation using the given endian engine.
func AppendInt64Slice(buf []byte, engine endian.EndianEngine, vals []int64) []byte {
	for _, val := range vals {
		buf = engine.AppendUint64(buf, uint64(val)) //nolint:gosec
	}

	return buf
}

// AppendFloat64Slice appends vals in their IEEE 754 binary representation
// using the given endian engine.
func AppendFloat64Slice(buf []byte, engine endian.EndianEngine, vals []float64) []byte {
	for _, val := range vals {
		buf = engine.AppendUint64(buf, math.Float64bits(val))
	}

	return buf
}

// ReadInt64Slice decodes count int64 values starting at off.
//
// Returns:
//   - []int64: The decoded values.
//   - int: Offset of the byte following the last value.
//   - error: ErrInvalidOffset when the slice runs past the buffer.
func ReadInt64Slice(data []byte, off, count int, engine endian.EndianEngine) ([]int64, int, error) {
	end := off + count*8
	if off < 0 || count < 0 || end > len(data) {
		return nil, 0, errs.ErrInvalidOffset
	}

	out := make([]int64, count)
	for i := range out {
		out[i] = int64(engine.Uint64(data[off+i*8:])) //nolint:gosec
	}

	return out, end, nil
}

// ReadFloat64Slice decodes count float64 values starting at off.
//
// Returns:
//   - []float64: The decoded values.
//   - int: Offset of the byte following the last value.
//   - error: ErrInvalidOffset when the slice runs past the buffer.
func ReadFloat64Slice(data []byte, off, count int, engine endian.EndianEngine) ([]float64, int, error) {
	end := off + count*8
	if off < 0 || count < 0 || end > len(data) {
		return nil, 0, errs.ErrInvalidOffset
	}

	out := make([]float64, count)
	for i := range out {
		out[i] = math.Float64frombits(engine.Uint64(data[off+i*8:]))
	}

	return out, end, nil
}
