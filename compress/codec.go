// Package compress provides the compression codecs for container group
// payloads.
//
// Compression is applied per group block, after the raw column payload has
// been assembled. The codec used for each group is recorded in its group
// header, so files written with different codecs remain readable.
//
// Supported algorithms:
//   - None: no compression (fastest, largest)
//   - Zstd: excellent compression ratio, moderate speed (default)
//   - S2: balanced compression and speed
//   - LZ4: fast decompression, moderate compression
package compress

import (
	"fmt"

	"github.com/plotprep/plotprep/format"
)

// Compressor compresses a complete group payload.
type Compressor interface {
	// Compress compresses the input data and returns the compressed result.
	//
	// Memory management:
	//   - Returned slice is newly allocated and owned by the caller
	//   - Input slice is not modified
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a payload previously compressed with the matching
// algorithm. Implementations validate the data format and return an error if
// the data is corrupted or uses an incompatible format.
type Decompressor interface {
	// Decompress decompresses the input data and returns the original result.
	//
	// Memory management:
	//   - Returned slice is newly allocated and owned by the caller
	//   - Input slice is not modified
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves a built-in Codec for the specified compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}
