// Package minhash builds fixed-width MinHash signatures over a sequence of
// integer token ids, the basis of the Jaccard-comparable half of a
// ragfile's header (spec.md §4.2).
package minhash

import (
	"encoding/binary"
	"math"

	"github.com/dleemiller/RagFile/errs"
	"github.com/dleemiller/RagFile/internal/hash"
)

// Signature is a fixed-length MinHash signature: the j-th entry is the
// minimum hash seen under the j-th hash function over every shingle.
type Signature []uint32

// FromTokens computes a width-wide MinHash signature over shingleSize-token
// windows of tokens, seeded at seed for hash index 0 and seed+j for hash
// index j.
//
// Each shingle is hashed as its byte view: shingleSize consecutive token
// ids packed little-endian, one after another. The inner loop is a lazy
// window over tokens — no shingle slice is materialized ahead of time.
func FromTokens(tokens []uint32, shingleSize, width int, seed uint32) (Signature, error) {
	if len(tokens) < shingleSize {
		return nil, errs.ErrTooFewTokens
	}

	sig := make(Signature, width)
	for j := range sig {
		sig[j] = math.MaxUint32
	}

	shingleBytes := make([]byte, shingleSize*4)
	numShingles := len(tokens) - shingleSize + 1

	for i := 0; i < numShingles; i++ {
		for k := 0; k < shingleSize; k++ {
			binary.LittleEndian.PutUint32(shingleBytes[k*4:k*4+4], tokens[i+k])
		}

		for j := 0; j < width; j++ {
			h := hash.Murmur3_32(shingleBytes, seed+uint32(j)) //nolint:gosec
			if h < sig[j] {
				sig[j] = h
			}
		}
	}

	return sig, nil
}

// Combined builds the header's two-half MinHash signature: the first
// halfWidth entries are a MinHash over bigram shingles, the second
// halfWidth entries a MinHash over trigram shingles. Both halves share the
// same seed but hash disjoint shingle sets (spec.md §4.2, "Combined
// signature for the header").
func Combined(tokens []uint32, halfWidth int, seed uint32, bigram, trigram int) (Signature, error) {
	largest := bigram
	if trigram > largest {
		largest = trigram
	}
	if len(tokens) < largest {
		return nil, errs.ErrTooFewTokens
	}

	bigrams, err := FromTokens(tokens, bigram, halfWidth, seed)
	if err != nil {
		return nil, err
	}

	trigrams, err := FromTokens(tokens, trigram, halfWidth, seed)
	if err != nil {
		return nil, err
	}

	combined := make(Signature, 2*halfWidth)
	copy(combined[:halfWidth], bigrams)
	copy(combined[halfWidth:], trigrams)

	return combined, nil
}
