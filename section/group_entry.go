package section

import (
	"github.com/cespare/xxhash/v2"

	"github.com/plotprep/plotprep/endian"
	"github.com/plotprep/plotprep/errs"
)

// GroupIndexEntry locates one group block inside the container file and
// carries the integrity information for it. Entries are fixed-size so the
// index can be scanned without decoding any group block.
type GroupIndexEntry struct {
	// NameHash is the xxHash64 of the group name.
	NameHash uint64 // byte offset 0-7
	// Offset is the byte offset of the group block from the start of the file.
	Offset uint32 // byte offset 8-11
	// Size is the group block size in bytes.
	Size uint32 // byte offset 12-15
	// Checksum is the xxHash64 of the group block bytes.
	Checksum uint64 // byte offset 16-23
}

// NewGroupIndexEntry builds the index entry for a group block placed at the
// given file offset.
func NewGroupIndexEntry(name string, offset uint32, block []byte) GroupIndexEntry {
	return GroupIndexEntry{
		NameHash: xxhash.Sum64String(name),
		Offset:   offset,
		Size:     uint32(len(block)), //nolint:gosec
		Checksum: xxhash.Sum64(block),
	}
}

// AppendTo appends the serialized entry to buf.
func (e GroupIndexEntry) AppendTo(buf []byte, engine endian.EndianEngine) []byte {
	buf = engine.AppendUint64(buf, e.NameHash)
	buf = engine.AppendUint32(buf, e.Offset)
	buf = engine.AppendUint32(buf, e.Size)

	return engine.AppendUint64(buf, e.Checksum)
}

// ParseGroupIndexEntry parses one entry from the start of data.
func ParseGroupIndexEntry(data []byte, engine endian.EndianEngine) (GroupIndexEntry, error) {
	if len(data) < GroupIndexEntrySize {
		return GroupIndexEntry{}, errs.ErrInvalidIndexEntrySize
	}

	return GroupIndexEntry{
		NameHash: engine.Uint64(data[0:8]),
		Offset:   engine.Uint32(data[8:12]),
		Size:     engine.Uint32(data[12:16]),
		Checksum: engine.Uint64(data[16:24]),
	}, nil
}

// Verify checks the block against the entry's name hash and checksum.
//
// Returns:
//   - error: ErrNameHashMismatch or ErrChecksumMismatch, nil when intact.
func (e GroupIndexEntry) Verify(name string, block []byte) error {
	if xxhash.Sum64String(name) != e.NameHash {
		return errs.ErrNameHashMismatch
	}
	if xxhash.Sum64(block) != e.Checksum {
		return errs.ErrChecksumMismatch
	}

	return nil
}
