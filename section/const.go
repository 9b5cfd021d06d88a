// Package section defines the fixed-size binary layouts of the container
// file: the file header, the group index entries, and the per-group headers.
// Each layout provides a Bytes/Parse pair and validates its magic or size on
// parse.
package section

const (
	// Bit masks for the file header options field.
	EndiannessMask  = 0x0002 // Mask for endianness bit (bit 1): 0=little, 1=big
	MagicNumberMask = 0xFFF0 // Mask for magic number (bits 4-15)

	// MagicContainerV1Opt is the version 1 magic number of the plot data
	// container format, stored in bits 4-15 of the options field.
	MagicContainerV1Opt = 0xEC10
)

// Offsets and section sizes in the container file.
const (
	FileHeaderSize      = 24 // fixed file header size in bytes
	GroupIndexEntrySize = 24 // fixed group index entry size in bytes
	GroupHeaderSize     = 16 // fixed group header size in bytes
	IndexOffsetDefault  = FileHeaderSize // byte offset where the group index starts
)
