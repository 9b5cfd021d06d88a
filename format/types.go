package format

import "strings"

type CompressionType uint8

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// Valid reports whether c is one of the defined compression types.
func (c CompressionType) Valid() bool {
	switch c {
	case CompressionNone, CompressionZstd, CompressionS2, CompressionLZ4:
		return true
	default:
		return false
	}
}

// ExtCanonical is the extension appended to a save path that carries none of
// the recognized container extensions.
const ExtCanonical = ".pdc"

// Extensions lists the recognized container file extensions. All three denote
// the same format.
var Extensions = []string{ExtCanonical, ".pdat", ".plotdata"}

// HasContainerExtension reports whether path ends in one of the recognized
// container extensions.
func HasContainerExtension(path string) bool {
	for _, ext := range Extensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}

	return false
}

// NormalizePath returns path unchanged when it already carries a recognized
// container extension, otherwise path with ExtCanonical appended.
func NormalizePath(path string) string {
	if HasContainerExtension(path) {
		return path
	}

	return path + ExtCanonical
}
