package section

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/plotprep/plotprep/endian"
	"github.com/plotprep/plotprep/errs"
	"github.com/plotprep/plotprep/format"
)

func TestFileHeader_RoundTrip(t *testing.T) {
	for _, engine := range []endian.EndianEngine{
		endian.GetLittleEndianEngine(),
		endian.GetBigEndianEngine(),
	} {
		hdr := NewFileHeader(3, engine)
		hdr.NamesOffset = 96
		hdr.DataOffset = 120

		data := hdr.Bytes()
		require.Len(t, data, FileHeaderSize)

		var parsed FileHeader
		require.NoError(t, parsed.Parse(data))
		require.Equal(t, *hdr, parsed)
		require.Equal(t, engine, parsed.Engine())
	}
}

func TestFileHeader_InvalidMagic(t *testing.T) {
	hdr := NewFileHeader(1, endian.GetLittleEndianEngine())
	data := hdr.Bytes()
	data[1] ^= 0xFF

	var parsed FileHeader
	require.ErrorIs(t, parsed.Parse(data), errs.ErrInvalidMagic)
}

func TestFileHeader_TooShort(t *testing.T) {
	var parsed FileHeader
	require.ErrorIs(t, parsed.Parse(make([]byte, FileHeaderSize-1)), errs.ErrInvalidHeaderSize)
}

func TestGroupIndexEntry_RoundTrip(t *testing.T) {
	engine := endian.GetLittleEndianEngine()
	block := []byte{1, 2, 3, 4, 5}
	entry := NewGroupIndexEntry("MyGroup", 64, block)

	buf := entry.AppendTo(nil, engine)
	require.Len(t, buf, GroupIndexEntrySize)

	parsed, err := ParseGroupIndexEntry(buf, engine)
	require.NoError(t, err)
	require.Equal(t, entry, parsed)
	require.NoError(t, parsed.Verify("MyGroup", block))
}

func TestGroupIndexEntry_Verify(t *testing.T) {
	block := []byte{1, 2, 3}
	entry := NewGroupIndexEntry("MyGroup", 0, block)

	require.ErrorIs(t, entry.Verify("OtherGroup", block), errs.ErrNameHashMismatch)
	require.ErrorIs(t, entry.Verify("MyGroup", []byte{9, 9, 9}), errs.ErrChecksumMismatch)
}

func TestParseGroupIndexEntry_TooShort(t *testing.T) {
	_, err := ParseGroupIndexEntry(make([]byte, GroupIndexEntrySize-1), endian.GetLittleEndianEngine())
	require.ErrorIs(t, err, errs.ErrInvalidIndexEntrySize)
}

func TestGroupHeader_RoundTrip(t *testing.T) {
	engine := endian.GetBigEndianEngine()
	hdr := GroupHeader{
		KeyColumnCount:   2,
		ValueColumnCount: 5,
		RowCount:         1000,
		Compression:      format.CompressionS2,
		AttrCount:        1,
		PayloadSize:      56000,
	}

	data := hdr.Bytes(engine)
	require.Len(t, data, GroupHeaderSize)

	var parsed GroupHeader
	require.NoError(t, parsed.Parse(data, engine))
	require.Equal(t, hdr, parsed)
}

func TestGroupHeader_InvalidCompression(t *testing.T) {
	engine := endian.GetLittleEndianEngine()
	hdr := GroupHeader{Compression: format.CompressionType(0x7F)}

	var parsed GroupHeader
	require.ErrorIs(t, parsed.Parse(hdr.Bytes(engine), engine), errs.ErrInvalidCompression)
}

func TestGroupHeader_TooShort(t *testing.T) {
	var parsed GroupHeader
	err := parsed.Parse(make([]byte, GroupHeaderSize-1), endian.GetLittleEndianEngine())
	require.ErrorIs(t, err, errs.ErrInvalidGroupHeaderSize)
}
