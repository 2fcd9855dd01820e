package compress

import (
	"fmt"

	"github.com/dleemiller/RagFile/format"
)

// Compressor provides optional at-rest compression for a fully-serialized
// ragfile container.
//
// This never touches the container's own byte layout (header offsets,
// minhash packing, the binary embedding) — it wraps the assembled bytes
// produced by Save as one opaque blob, the way a cold-storage or
// network-transfer layer would:
//   - A ragfile's text and metadata payload compresses well (it's natural
//     language and structured data).
//   - The header's signatures (minhash, binary embedding) are already dense
//     and gain little, but are small relative to the payload.
//   - Container sizes are typically a few KB to a few hundred KB.
type Compressor interface {
	// Compress compresses the input data and returns the compressed result.
	//
	// The input data is typically a complete serialized ragfile container
	// produced by Save, taken as an opaque byte blob.
	//
	// Memory management:
	//   - Returned slice is owned by the caller; NoOpCompressor returns the
	//     input slice itself, the other codecs allocate a new one
	//   - Input slice is not modified
	//   - Internal buffers may be reused for efficiency
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor for the same algorithm. The caller
// must pair it with the CompressionType a container was stored under —
// SaveCompressed writes no codec tag of its own into the compressed
// stream, and LoadCompressed takes codecType from its caller.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
//
// This interface is useful for implementations that can handle both operations
// efficiently with shared internal state or optimizations.
type Codec interface {
	Compressor
	Decompressor
}

// CompressionStats reports how a single SaveCompressed call fared, so a
// caller deciding which at-rest codec to standardize on for its ragfile
// collection can compare them on real containers instead of guessing.
type CompressionStats struct {
	Algorithm      format.CompressionType
	OriginalSize   int64
	CompressedSize int64
}

// NewCompressionStats builds the stats for one compress call. originalSize
// is the size of the serialized container before compression,
// compressedSize the size of the codec's output.
func NewCompressionStats(algorithm format.CompressionType, originalSize, compressedSize int) CompressionStats {
	return CompressionStats{
		Algorithm:      algorithm,
		OriginalSize:   int64(originalSize),
		CompressedSize: int64(compressedSize),
	}
}

// CompressionRatio returns compressed size / original size. Values below
// 1.0 mean the codec shrank the container. CompressionNone always reports
// 1.0; an already-dense container (short text, few embeddings) can land at
// or above 1.0 for the other codecs too.
func (s CompressionStats) CompressionRatio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the space savings as a percentage (at most 100%;
// negative when the codec grew the container).
func (s CompressionStats) SpaceSavings() float64 {
	return (1.0 - s.CompressionRatio()) * 100.0
}

// CreateCodec returns the Codec for compressionType, the sole entry point
// SaveCompressed/LoadCompressed use to pick a codec for one whole
// serialized container. target names the caller for error messages (e.g.
// "ragfile at-rest").
func CreateCodec(compressionType format.CompressionType, target string) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("invalid %s compression: %s", target, compressionType)
	}
}
