package ragfile

import (
	"bytes"
	"fmt"
	"io"

	"github.com/dleemiller/RagFile/compress"
	"github.com/dleemiller/RagFile/format"
	"github.com/dleemiller/RagFile/internal/pool"
)

// SaveCompressed serializes r the same way Save does, then compresses the
// entire resulting byte stream with codecType before writing it to w. The
// container's own wire layout is never touched — compression wraps the
// already-serialized bytes as one opaque blob, so LoadCompressed with the
// matching codec reproduces byte-identical container bytes before Load
// ever parses them. It returns stats on how well codecType did, so a
// caller comparing codecs across a batch of ragfiles doesn't have to
// re-derive sizes itself.
func (r *Ragfile) SaveCompressed(w io.Writer, codecType format.CompressionType) (compress.CompressionStats, error) {
	buf := pool.GetBatchBuffer()
	defer pool.PutBatchBuffer(buf)

	if err := r.Save(buf); err != nil {
		return compress.CompressionStats{}, err
	}

	codec, err := compress.CreateCodec(codecType, "ragfile at-rest")
	if err != nil {
		return compress.CompressionStats{}, err
	}

	compressed, err := codec.Compress(buf.Bytes())
	if err != nil {
		return compress.CompressionStats{}, fmt.Errorf("ragfile: compress container: %w", err)
	}

	if _, err := w.Write(compressed); err != nil {
		return compress.CompressionStats{}, fmt.Errorf("ragfile: write compressed container: %w", err)
	}

	return compress.NewCompressionStats(codecType, buf.Len(), len(compressed)), nil
}

// LoadCompressed reverses SaveCompressed: it reads all of r into a pooled
// batch buffer, decompresses it with codecType, and loads the resulting
// container bytes exactly as Load would.
func LoadCompressed(r io.Reader, codecType format.CompressionType) (*Ragfile, error) {
	buf := pool.GetBatchBuffer()
	defer pool.PutBatchBuffer(buf)

	if _, err := io.Copy(buf, r); err != nil {
		return nil, fmt.Errorf("ragfile: read compressed container: %w", err)
	}

	codec, err := compress.CreateCodec(codecType, "ragfile at-rest")
	if err != nil {
		return nil, err
	}

	decompressed, err := codec.Decompress(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("ragfile: decompress container: %w", err)
	}

	return Load(bytes.NewReader(decompressed))
}
