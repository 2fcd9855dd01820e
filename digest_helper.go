package ragfile

import (
	"bytes"

	"github.com/dleemiller/RagFile/digest"
)

// ContentDigest serializes r and returns a fast 64-bit digest over the
// resulting bytes, for callers that want to deduplicate or catalog ragfiles
// externally. It builds no index inside this package.
func (r *Ragfile) ContentDigest() (uint64, error) {
	var buf bytes.Buffer
	if err := r.Save(&buf); err != nil {
		return 0, err
	}

	return digest.ContentHash(buf.Bytes()), nil
}
