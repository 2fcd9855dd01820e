package compress

import "github.com/klauspost/compress/s2"

// S2Compressor backs format.CompressionS2: S2 trades ratio for decode
// speed, a reasonable default when ragfiles are pulled from storage on a
// query path rather than archived once and read rarely.
type S2Compressor struct{}

var _ Codec = (*S2Compressor)(nil)

func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Compress S2-encodes a serialized container.
func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, data), nil
}

// Decompress reverses Compress.
func (c S2Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Decode(nil, data)
}
