package section

import (
	"github.com/plotprep/plotprep/endian"
	"github.com/plotprep/plotprep/errs"
)

// FileHeader is the fixed-size header at the start of a container file.
//
// The options field (bytes 0-1) is always stored little-endian so a reader
// can determine the byte order of the remaining fields before decoding them.
type FileHeader struct {
	// Options is a packed field holding the magic number and the endianness flag.
	Options uint16 // byte offset 0-1, bytes 2-3 reserved
	// GroupCount is the number of data groups stored in the file.
	GroupCount uint32 // byte offset 4-7
	// IndexOffset is the byte offset to the start of the group index section.
	IndexOffset uint32 // byte offset 8-11
	// NamesOffset is the byte offset to the start of the group name section.
	NamesOffset uint32 // byte offset 12-15
	// DataOffset is the byte offset to the start of the first group block.
	DataOffset uint32 // byte offset 16-19, bytes 20-23 reserved
}

// NewFileHeader creates a header for a file holding groupCount groups.
// The section offsets are set by the writer once their sizes are known.
func NewFileHeader(groupCount int, engine endian.EndianEngine) *FileHeader {
	options := uint16(MagicContainerV1Opt)
	if endian.IsBigEndian(engine) {
		options |= EndiannessMask
	}

	return &FileHeader{
		Options:     options,
		GroupCount:  uint32(groupCount), //nolint:gosec
		IndexOffset: IndexOffsetDefault,
	}
}

// Engine returns the endian engine encoded in the options field.
func (h *FileHeader) Engine() endian.EndianEngine {
	if h.Options&EndiannessMask != 0 {
		return endian.GetBigEndianEngine()
	}

	return endian.GetLittleEndianEngine()
}

// Validate checks the magic number.
func (h *FileHeader) Validate() error {
	if h.Options&MagicNumberMask != MagicContainerV1Opt {
		return errs.ErrInvalidMagic
	}

	return nil
}

// Bytes serializes the header into a FileHeaderSize byte slice.
func (h *FileHeader) Bytes() []byte {
	b := make([]byte, FileHeaderSize)

	b[0] = byte(h.Options)
	b[1] = byte(h.Options >> 8)

	engine := h.Engine()
	engine.PutUint32(b[4:8], h.GroupCount)
	engine.PutUint32(b[8:12], h.IndexOffset)
	engine.PutUint32(b[12:16], h.NamesOffset)
	engine.PutUint32(b[16:20], h.DataOffset)

	return b
}

// Parse parses the header from the start of data.
//
// Returns:
//   - error: ErrInvalidHeaderSize if data is shorter than FileHeaderSize,
//     ErrInvalidMagic if the magic number does not match.
func (h *FileHeader) Parse(data []byte) error {
	if len(data) < FileHeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	// Options is always little-endian; it determines the endianness of the rest.
	h.Options = uint16(data[0]) | uint16(data[1])<<8
	if err := h.Validate(); err != nil {
		return err
	}

	engine := h.Engine()
	h.GroupCount = engine.Uint32(data[4:8])
	h.IndexOffset = engine.Uint32(data[8:12])
	h.NamesOffset = engine.Uint32(data[12:16])
	h.DataOffset = engine.Uint32(data[16:20])

	return nil
}
