package compress

// NoOpCompressor backs format.CompressionNone: a ragfile stored uncompressed
// so a caller can diff two at-rest copies byte-for-byte, or skip the codec
// entirely for containers too small to benefit (a few KB of header+text).
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns data unchanged. The returned slice aliases the input;
// callers should not mutate data after calling this.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns data unchanged.
func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
