// Package identity computes the stable numeric ids exposed by the API and
// resolves cross-references between heroes and items.
//
// Item ids are a pure function of the class name, so clients can compute them
// offline and ids never shift between builds. Changing the hash or the seed
// would break every stored id, so both are frozen.
package identity

import "encoding/binary"

// ClassNameSeed is the fixed seed for class-name ids. Frozen for wire
// compatibility with existing API consumers.
const ClassNameSeed uint32 = 0x31415926

// ClassNameID returns the stable 32-bit id for a class name.
func ClassNameID(className string) uint32 {
	return murmur2([]byte(className), ClassNameSeed)
}

// murmur2 is MurmurHash2 (Austin Appleby), 32-bit, little-endian.
func murmur2(data []byte, seed uint32) uint32 {
	const (
		m = 0x5bd1e995
		r = 24
	)

	h := seed ^ uint32(len(data))

	for len(data) >= 4 {
		k := binary.LittleEndian.Uint32(data)
		k *= m
		k ^= k >> r
		k *= m

		h *= m
		h ^= k

		data = data[4:]
	}

	switch len(data) {
	case 3:
		h ^= uint32(data[2]) << 16
		fallthrough
	case 2:
		h ^= uint32(data[1]) << 8
		fallthrough
	case 1:
		h ^= uint32(data[0])
		h *= m
	}

	h ^= h >> 13
	h *= m
	h ^= h >> 15

	return h
}
