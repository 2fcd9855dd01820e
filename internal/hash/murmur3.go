// Package hash provides the two fixed hash primitives the ragfile wire
// format is built on: a bit-exact MurmurHash3 32-bit implementation used by
// the MinHash engine, and a CRC16 variant used to fingerprint short
// identifier strings. Neither is a general-purpose hash library import
// because the format pins their exact constants — see DESIGN.md.
package hash

// Murmur3_32 computes the 32-bit little-endian variant of MurmurHash3 over
// data with the given seed. The mixing constants and finalizer must match
// this implementation bit-for-bit across platforms: the MinHash signatures
// written into a ragfile header are only reproducible (and therefore only
// comparable file-to-file) if every implementation derives the same hash
// from the same shingle bytes.
func Murmur3_32(data []byte, seed uint32) uint32 { //nolint:revive
	const (
		c1 = 0xcc9e2d51
		c2 = 0x1b873593
		r1 = 15
		r2 = 13
		m  = 5
		n  = 0xe6546b64
	)

	h := seed
	length := len(data)
	nblocks := length / 4

	for i := 0; i < nblocks; i++ {
		k := uint32(data[i*4]) | uint32(data[i*4+1])<<8 | uint32(data[i*4+2])<<16 | uint32(data[i*4+3])<<24

		k *= c1
		k = (k << r1) | (k >> (32 - r1))
		k *= c2

		h ^= k
		h = ((h << r2) | (h >> (32 - r2))) * m + n
	}

	tail := data[nblocks*4:]
	var k1 uint32
	switch length & 3 {
	case 3:
		k1 ^= uint32(tail[2]) << 16
		fallthrough
	case 2:
		k1 ^= uint32(tail[1]) << 8
		fallthrough
	case 1:
		k1 ^= uint32(tail[0])
		k1 *= c1
		k1 = (k1 << r1) | (k1 >> (32 - r1))
		k1 *= c2
		h ^= k1
	}

	h ^= uint32(length) //nolint:gosec
	h ^= h >> 16
	h *= 0x85ebca6b
	h ^= h >> 13
	h *= 0xc2b2ae35
	h ^= h >> 16

	return h
}
