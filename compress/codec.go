package compress

import (
	"fmt"
	"strings"
)

// CompressionType identifies a snapshot compression algorithm.
type CompressionType uint8

const (
	// CompressionNone represents no compression.
	CompressionNone CompressionType = 0x1
	// CompressionZstd represents Zstandard compression.
	CompressionZstd CompressionType = 0x2
	// CompressionS2 represents S2 compression.
	CompressionS2 CompressionType = 0x3
	// CompressionLZ4 represents LZ4 compression.
	CompressionLZ4 CompressionType = 0x4
)

// String returns the lowercase name of the compression type.
func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionZstd:
		return "zstd"
	case CompressionS2:
		return "s2"
	case CompressionLZ4:
		return "lz4"
	default:
		return "unknown"
	}
}

// ParseCompressionType returns the CompressionType for a given name
// (case-insensitive). It fails for unknown names.
func ParseCompressionType(name string) (CompressionType, error) {
	switch strings.ToLower(name) {
	case "none", "":
		return CompressionNone, nil
	case "zstd":
		return CompressionZstd, nil
	case "s2":
		return CompressionS2, nil
	case "lz4":
		return CompressionLZ4, nil
	default:
		return 0, fmt.Errorf("unknown compression type: %s", name)
	}
}

// Compressor compresses a snapshot payload.
//
// Memory management:
//   - Returned slice is newly allocated and owned by the caller
//     (except the no-op codec, which returns the input as-is)
//   - Input slice is not modified
//   - Internal buffers may be reused for efficiency
type Compressor interface {
	// Compress compresses the input data and returns the compressed result.
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a snapshot payload compressed with the matching
// algorithm. It validates the data format and returns an error if the data
// is corrupted or uses an incompatible format.
type Decompressor interface {
	// Decompress decompresses the input data and returns the original result.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

// CreateCodec is a factory function that creates a Codec for the specified
// compression type.
//
// Parameters:
//   - compressionType: Type of compression (None, Zstd, S2, or LZ4)
//   - target: Description of target usage (for error messages)
//
// Returns:
//   - Codec: Codec instance for the specified type
//   - error: Invalid compression type error
func CreateCodec(compressionType CompressionType, target string) (Codec, error) {
	switch compressionType {
	case CompressionNone:
		return NewNoOpCompressor(), nil
	case CompressionZstd:
		return NewZstdCompressor(), nil
	case CompressionS2:
		return NewS2Compressor(), nil
	case CompressionLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("invalid %s compression: %s", target, compressionType)
	}
}

var builtinCodecs = map[CompressionType]Codec{
	CompressionNone: NewNoOpCompressor(),
	CompressionZstd: NewZstdCompressor(),
	CompressionS2:   NewS2Compressor(),
	CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves a built-in Codec for the specified compression type.
func GetCodec(compressionType CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}
