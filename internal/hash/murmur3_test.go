package hash

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMurmur3_32Deterministic(t *testing.T) {
	data := []byte("the quick brown fox")
	assert.Equal(t, Murmur3_32(data, 42), Murmur3_32(data, 42), "same input and seed must hash identically")
}

func TestMurmur3_32SeedSensitivity(t *testing.T) {
	data := []byte("the quick brown fox")
	assert.NotEqual(t, Murmur3_32(data, 0), Murmur3_32(data, 1), "different seeds should (almost always) diverge")
}

func TestMurmur3_32TokenShingle(t *testing.T) {
	// Mirrors how the minhash engine feeds a shingle: a packed sequence of
	// little-endian uint32 token ids.
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint32(buf[0:4], 1)
	binary.LittleEndian.PutUint32(buf[4:8], 2)

	h1 := Murmur3_32(buf, 0)
	h2 := Murmur3_32(buf, 0)
	assert.Equal(t, h1, h2)
}

func TestMurmur3_32EmptyInput(t *testing.T) {
	assert.NotPanics(t, func() {
		Murmur3_32(nil, 0)
	})
}

func BenchmarkMurmur3_32(b *testing.B) {
	data := make([]byte, 12)
	b.ResetTimer()
	for b.Loop() {
		Murmur3_32(data, 7)
	}
}
