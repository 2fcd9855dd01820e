// Package ragfile assembles, serializes, and loads the ragfile binary
// container: a fixed-size header carrying two compact similarity
// signatures, followed by a text payload, a dense embedding matrix, and an
// optional extended metadata blob.
package ragfile

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/dleemiller/RagFile/errs"
	"github.com/dleemiller/RagFile/format"
	"github.com/dleemiller/RagFile/internal/hash"
	"github.com/dleemiller/RagFile/internal/minhash"
	"github.com/dleemiller/RagFile/internal/pool"
	"github.com/dleemiller/RagFile/internal/quantize"
	"github.com/dleemiller/RagFile/section"
)

// Ragfile is the in-memory representation of one container: a parsed
// header plus the owned text, embedding, and extended metadata buffers it
// describes. A Ragfile is produced once, by Create or Load, and is
// thereafter read-only.
type Ragfile struct {
	Header           section.Header
	Text             []byte
	Embeddings       []float32
	ExtendedMetadata []byte
}

// Create validates the supplied inputs, derives the header's minhash and
// binary embedding signatures, and returns an owned Ragfile. Input slices
// are copied; the returned value does not alias caller-owned memory.
//
// On any validation failure no partial Ragfile is returned.
func Create(
	text string,
	tokens []uint32,
	embeddings []float32,
	numEmbeddings, embeddingDim uint16,
	extendedMetadata []byte,
	tokenizerID, embeddingID string,
	metadataVersion uint16,
) (*Ragfile, error) {
	if text == "" {
		return nil, errs.ErrEmptyText
	}
	if len(tokens) == 0 {
		return nil, errs.ErrEmptyTokens
	}
	if tokenizerID == "" {
		return nil, errs.ErrEmptyTokenizerID
	}
	if embeddingID == "" {
		return nil, errs.ErrEmptyEmbeddingID
	}
	if len(embeddings) == 0 {
		return nil, errs.ErrEmptyEmbeddings
	}
	if uint64(numEmbeddings)*uint64(embeddingDim) != uint64(len(embeddings)) {
		return nil, errs.ErrEmbeddingSizeMismatch
	}

	minHash, err := minhash.Combined(
		tokens,
		format.MinHashHalfSize,
		format.DefaultMinHashSeed,
		format.ShingleBigram,
		format.ShingleTrigram,
	)
	if err != nil {
		return nil, fmt.Errorf("ragfile: compute minhash: %w", err)
	}

	avg, err := quantize.Average(embeddings, int(numEmbeddings), int(embeddingDim), format.BinaryEmbeddingDim)
	if err != nil {
		return nil, fmt.Errorf("ragfile: average embeddings: %w", err)
	}

	binaryEmbedding, err := quantize.Pack(avg)
	if err != nil {
		return nil, fmt.Errorf("ragfile: quantize embeddings: %w", err)
	}

	h := section.NewHeader()
	h.TokenizerFP = hash.CRC16(tokenizerID)
	h.EmbeddingFP = hash.CRC16(embeddingID)
	h.BinaryEmbedding = binaryEmbedding
	h.MinHash = minHash
	h.TextHash = hash.CRC16(text)
	h.TextSize = uint32(len(text))
	h.MetadataVersion = metadataVersion
	h.MetadataSize = uint32(len(extendedMetadata))
	h.NumEmbeddings = numEmbeddings
	h.EmbeddingDim = embeddingDim
	h.EmbeddingSize = uint32(len(embeddings))
	h.TokenizerID = tokenizerID
	h.EmbeddingID = embeddingID

	r := &Ragfile{
		Header:     *h,
		Text:       append([]byte(nil), text...),
		Embeddings: append([]float32(nil), embeddings...),
	}
	if len(extendedMetadata) > 0 {
		r.ExtendedMetadata = append([]byte(nil), extendedMetadata...)
	}

	return r, nil
}

// Save writes r's on-disk representation to w: the fixed-size header,
// followed by the text, embedding, and extended metadata payload, in that
// order, with no padding between sections. A short write is reported as
// ErrShortWrite.
func (r *Ragfile) Save(w io.Writer) error {
	buf := pool.GetContainerBuffer()
	defer pool.PutContainerBuffer(buf)

	buf.MustWrite(r.Header.Bytes())
	buf.MustWrite(r.Text)

	embBytes := make([]byte, len(r.Embeddings)*4)
	for i, v := range r.Embeddings {
		binary.LittleEndian.PutUint32(embBytes[i*4:], math.Float32bits(v))
	}
	buf.MustWrite(embBytes)

	if len(r.ExtendedMetadata) > 0 {
		buf.MustWrite(r.ExtendedMetadata)
	}

	n, err := w.Write(buf.Bytes())
	if n != buf.Len() {
		if err != nil {
			return fmt.Errorf("ragfile: %w: wrote %d of %d bytes: %w", errs.ErrShortWrite, n, buf.Len(), err)
		}
		return errs.ErrShortWrite
	}
	if err != nil {
		return fmt.Errorf("ragfile: save: %w", err)
	}

	return nil
}

// Load reads a complete ragfile from r: header, text, embeddings, and
// extended metadata. Loading is all-or-nothing; on any failure no partial
// Ragfile is returned.
func Load(r io.Reader) (*Ragfile, error) {
	header, err := ReadHeader(r)
	if err != nil {
		return nil, err
	}

	text := make([]byte, header.TextSize)
	if err := readFull(r, text); err != nil {
		return nil, err
	}

	embBytes := make([]byte, uint64(header.EmbeddingSize)*4)
	if err := readFull(r, embBytes); err != nil {
		return nil, err
	}
	embeddings := make([]float32, header.EmbeddingSize)
	for i := range embeddings {
		embeddings[i] = math.Float32frombits(binary.LittleEndian.Uint32(embBytes[i*4:]))
	}

	var metadata []byte
	if header.MetadataSize > 0 {
		metadata = make([]byte, header.MetadataSize)
		if err := readFull(r, metadata); err != nil {
			return nil, err
		}
	}

	return &Ragfile{
		Header:           header,
		Text:             text,
		Embeddings:       embeddings,
		ExtendedMetadata: metadata,
	}, nil
}

// ReadHeader reads exactly the fixed-size header from r and returns it
// without touching the payload. This is the cheap, allocation-light path
// the scan engine uses to score candidates.
func ReadHeader(r io.Reader) (section.Header, error) {
	raw := make([]byte, section.HeaderSize)
	if err := readFull(r, raw); err != nil {
		return section.Header{}, err
	}

	return section.ParseHeader(raw)
}

// readFull reads exactly len(buf) bytes from r, translating any
// short-read condition into ErrShortRead.
func readFull(r io.Reader, buf []byte) error {
	if len(buf) == 0 {
		return nil
	}

	n, err := io.ReadFull(r, buf)
	if err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return fmt.Errorf("ragfile: %w: read %d of %d bytes", errs.ErrShortRead, n, len(buf))
		}
		return fmt.Errorf("ragfile: %w", err)
	}

	return nil
}
