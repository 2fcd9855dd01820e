package compress

// ZstdCompressor provides Zstandard at-rest compression for a serialized
// ragfile container.
//
// This compressor favors ratio over speed, making it a fit for:
//   - Archiving a ragfile collection to cold storage
//   - Shipping containers over a bandwidth-constrained link
//   - Any case where decompression happens far less often than compression
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
