package section

import (
	"github.com/plotprep/plotprep/endian"
	"github.com/plotprep/plotprep/errs"
	"github.com/plotprep/plotprep/format"
)

// GroupHeader is the fixed-size header at the start of each group block.
// It is followed by the key column names, the value column names, the
// attribute block, and finally the compressed column payload.
type GroupHeader struct {
	// KeyColumnCount is the number of key (index) columns.
	KeyColumnCount uint16 // byte offset 0-1
	// ValueColumnCount is the number of value columns.
	ValueColumnCount uint16 // byte offset 2-3
	// RowCount is the number of rows in the compacted table.
	RowCount uint32 // byte offset 4-7
	// Compression identifies the codec applied to the column payload.
	Compression format.CompressionType // byte offset 8, byte 9 reserved
	// AttrCount is the number of key/value attribute pairs attached to the group.
	AttrCount uint16 // byte offset 10-11
	// PayloadSize is the compressed column payload size in bytes.
	PayloadSize uint32 // byte offset 12-15
}

// Validate checks the compression type.
func (h *GroupHeader) Validate() error {
	if !h.Compression.Valid() {
		return errs.ErrInvalidCompression
	}

	return nil
}

// Bytes serializes the header into a GroupHeaderSize byte slice.
func (h *GroupHeader) Bytes(engine endian.EndianEngine) []byte {
	b := make([]byte, GroupHeaderSize)

	engine.PutUint16(b[0:2], h.KeyColumnCount)
	engine.PutUint16(b[2:4], h.ValueColumnCount)
	engine.PutUint32(b[4:8], h.RowCount)
	b[8] = byte(h.Compression)
	engine.PutUint16(b[10:12], h.AttrCount)
	engine.PutUint32(b[12:16], h.PayloadSize)

	return b
}

// Parse parses the header from the start of data.
//
// Returns:
//   - error: ErrInvalidGroupHeaderSize if data is too short, or
//     ErrInvalidCompression from validation.
func (h *GroupHeader) Parse(data []byte, engine endian.EndianEngine) error {
	if len(data) < GroupHeaderSize {
		return errs.ErrInvalidGroupHeaderSize
	}

	h.KeyColumnCount = engine.Uint16(data[0:2])
	h.ValueColumnCount = engine.Uint16(data[2:4])
	h.RowCount = engine.Uint32(data[4:8])
	h.Compression = format.CompressionType(data[8])
	h.AttrCount = engine.Uint16(data[10:12])
	h.PayloadSize = engine.Uint32(data[12:16])

	return h.Validate()
}
