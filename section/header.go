package section

import (
	"encoding/binary"

	"github.com/dleemiller/RagFile/errs"
	"github.com/dleemiller/RagFile/format"
)

// Header is the fixed-size header section at the start of every ragfile.
//
// Header section order (authoritative, spec.md §4.5): magic, version,
// flags, tokenizer_fingerprint, embedding_model_fingerprint,
// binary_embedding, minhash, text_hash, text_size, metadata_version,
// metadata_size, num_embeddings, embedding_dim, embedding_size,
// tokenizer_id, embedding_id. All multi-byte fields are little-endian.
type Header struct {
	Magic       uint32
	Version     uint16
	Flags       uint64 // reserved, zeroed on write, not rejected on read
	TokenizerFP uint16
	EmbeddingFP uint16

	BinaryEmbedding []byte   // format.BinaryEmbeddingBytes bytes
	MinHash         []uint32 // format.MinHashSize entries

	TextHash        uint16
	TextSize        uint32
	MetadataVersion uint16
	MetadataSize    uint32
	NumEmbeddings   uint16
	EmbeddingDim    uint16
	EmbeddingSize   uint32

	TokenizerID string
	EmbeddingID string
}

// NewHeader returns a Header with magic and version already set to the
// values this package writes, and zero-valued signature slices sized per
// the current format constants. Callers fill in the remaining fields
// before calling Bytes.
func NewHeader() *Header {
	return &Header{
		Magic:           format.MagicRAGF,
		Version:         format.CurrentVersion,
		BinaryEmbedding: make([]byte, format.BinaryEmbeddingBytes),
		MinHash:         make([]uint32, format.MinHashSize),
	}
}

// Bytes serializes h into a new HeaderSize-length byte slice.
func (h *Header) Bytes() []byte {
	b := make([]byte, HeaderSize)

	binary.LittleEndian.PutUint32(b[offMagic:], h.Magic)
	binary.LittleEndian.PutUint16(b[offVersion:], h.Version)
	binary.LittleEndian.PutUint64(b[offFlags:], h.Flags)
	binary.LittleEndian.PutUint16(b[offTokFP:], h.TokenizerFP)
	binary.LittleEndian.PutUint16(b[offEmbFP:], h.EmbeddingFP)

	copy(b[offBinaryEmb:offBinaryEmb+format.BinaryEmbeddingBytes], h.BinaryEmbedding)

	for i, v := range h.MinHash {
		binary.LittleEndian.PutUint32(b[offMinHash+i*4:], v)
	}

	binary.LittleEndian.PutUint16(b[offTextHash:], h.TextHash)
	binary.LittleEndian.PutUint32(b[offTextSize:], h.TextSize)
	binary.LittleEndian.PutUint16(b[offMetaVersion:], h.MetadataVersion)
	binary.LittleEndian.PutUint32(b[offMetaSize:], h.MetadataSize)
	binary.LittleEndian.PutUint16(b[offNumEmb:], h.NumEmbeddings)
	binary.LittleEndian.PutUint16(b[offEmbDim:], h.EmbeddingDim)
	binary.LittleEndian.PutUint32(b[offEmbSize:], h.EmbeddingSize)

	putFixedString(b[offTokenizerID:offTokenizerID+format.IDStringSize], h.TokenizerID)
	putFixedString(b[offEmbeddingID:offEmbeddingID+format.IDStringSize], h.EmbeddingID)

	return b
}

// Parse decodes a HeaderSize-length byte slice into h. It rejects a magic
// or version mismatch and a missing zero terminator in either fixed id
// string region, but does not reject a nonzero Flags value (the field is
// reserved for a future flags contract, spec.md §9).
func (h *Header) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	magic := binary.LittleEndian.Uint32(data[offMagic:])
	if magic != format.MagicRAGF {
		return errs.ErrInvalidMagic
	}

	version := binary.LittleEndian.Uint16(data[offVersion:])
	if version != format.CurrentVersion {
		return errs.ErrUnsupportedVersion
	}

	h.Magic = magic
	h.Version = version
	h.Flags = binary.LittleEndian.Uint64(data[offFlags:])
	h.TokenizerFP = binary.LittleEndian.Uint16(data[offTokFP:])
	h.EmbeddingFP = binary.LittleEndian.Uint16(data[offEmbFP:])

	h.BinaryEmbedding = append([]byte(nil), data[offBinaryEmb:offBinaryEmb+format.BinaryEmbeddingBytes]...)

	h.MinHash = make([]uint32, format.MinHashSize)
	for i := range h.MinHash {
		h.MinHash[i] = binary.LittleEndian.Uint32(data[offMinHash+i*4:])
	}

	h.TextHash = binary.LittleEndian.Uint16(data[offTextHash:])
	h.TextSize = binary.LittleEndian.Uint32(data[offTextSize:])
	h.MetadataVersion = binary.LittleEndian.Uint16(data[offMetaVersion:])
	h.MetadataSize = binary.LittleEndian.Uint32(data[offMetaSize:])
	h.NumEmbeddings = binary.LittleEndian.Uint16(data[offNumEmb:])
	h.EmbeddingDim = binary.LittleEndian.Uint16(data[offEmbDim:])
	h.EmbeddingSize = binary.LittleEndian.Uint32(data[offEmbSize:])

	tokenizerID, err := getFixedString(data[offTokenizerID : offTokenizerID+format.IDStringSize])
	if err != nil {
		return err
	}
	embeddingID, err := getFixedString(data[offEmbeddingID : offEmbeddingID+format.IDStringSize])
	if err != nil {
		return err
	}
	h.TokenizerID = tokenizerID
	h.EmbeddingID = embeddingID

	if uint64(h.NumEmbeddings)*uint64(h.EmbeddingDim) != uint64(h.EmbeddingSize) {
		return errs.ErrEmbeddingSizeMismatch
	}

	return nil
}

// ParseHeader parses a Header from a byte slice.
func ParseHeader(data []byte) (Header, error) {
	h := Header{}
	if err := h.Parse(data); err != nil {
		return Header{}, err
	}

	return h, nil
}

// putFixedString zeroes dst, then copies at most len(dst)-1 bytes of s and
// always terminates with a zero byte at the last index.
func putFixedString(dst []byte, s string) {
	for i := range dst {
		dst[i] = 0
	}

	n := len(s)
	if n > len(dst)-1 {
		n = len(dst) - 1
	}
	copy(dst, s[:n])
	dst[len(dst)-1] = 0
}

// getFixedString reads a zero-terminated string out of a fixed-width
// region, requiring a zero byte within the region per spec.md §4.5.
func getFixedString(src []byte) (string, error) {
	idx := -1
	for i, b := range src {
		if b == 0 {
			idx = i
			break
		}
	}
	if idx < 0 {
		return "", errs.ErrMissingIDTerminator
	}

	return string(src[:idx]), nil
}
