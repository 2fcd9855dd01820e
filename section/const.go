// Package section defines the fixed-size binary header of a ragfile and
// the byte offsets of every field within it (spec.md §4.5).
package section

import "github.com/dleemiller/RagFile/format"

// Field byte offsets and sizes within the fixed header, in declared order.
// The header is packed with no implicit padding: every field is
// serialized explicitly at these offsets rather than copied from a native
// struct layout, since Go (like the C original) may insert padding that
// differs across platforms.
const (
	offMagic       = 0
	offVersion     = offMagic + 4
	offFlags       = offVersion + 2
	offTokFP       = offFlags + 8
	offEmbFP       = offTokFP + 2
	offBinaryEmb   = offEmbFP + 2
	offMinHash     = offBinaryEmb + format.BinaryEmbeddingBytes
	offTextHash    = offMinHash + format.MinHashSize*4
	offTextSize    = offTextHash + 2
	offMetaVersion = offTextSize + 4
	offMetaSize    = offMetaVersion + 2
	offNumEmb      = offMetaSize + 4
	offEmbDim      = offNumEmb + 2
	offEmbSize     = offEmbDim + 2
	offTokenizerID = offEmbSize + 4
	offEmbeddingID = offTokenizerID + format.IDStringSize

	// HeaderSize is the fixed byte size of every version-1 ragfile header.
	// A reader can read exactly this many bytes to obtain both signatures
	// without touching the payload.
	HeaderSize = offEmbeddingID + format.IDStringSize
)
