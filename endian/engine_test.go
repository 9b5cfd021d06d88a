package endian

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetLittleEndianEngine(t *testing.T) {
	engine := GetLittleEndianEngine()
	require.Equal(t, binary.ByteOrder(binary.LittleEndian), binary.ByteOrder(engine))

	buf := engine.AppendUint64(nil, 0x0102030405060708)
	require.Equal(t, []byte{0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01}, buf)
	require.Equal(t, uint64(0x0102030405060708), engine.Uint64(buf))
}

func TestGetBigEndianEngine(t *testing.T) {
	engine := GetBigEndianEngine()
	require.Equal(t, binary.ByteOrder(binary.BigEndian), binary.ByteOrder(engine))

	buf := engine.AppendUint64(nil, 0x0102030405060708)
	require.Equal(t, []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}, buf)
	require.Equal(t, uint64(0x0102030405060708), engine.Uint64(buf))
}

func TestIsBigEndian(t *testing.T) {
	require.False(t, IsBigEndian(GetLittleEndianEngine()))
	require.True(t, IsBigEndian(GetBigEndianEngine()))
}
