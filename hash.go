// hash.go -- seeded universal hash primitives
//
// (c) Sudhi Herle 2018
//
// License GPLv2
//
// If you need a commercial license for this work, please contact
// the author.
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim  is made to its
// suitability for any purpose.

package phf

import "math/bits"

// Key is the set of types this package can build a perfect hash function
// over: unsigned 32- and 64-bit integers, and opaque byte slices. Callers
// cannot implement Key themselves -- the feed method is unexported so that
// the wire-compatible byte order in feedBytes (below) can never be
// accidentally broken by a third-party implementation.
type Key interface {
	Uint32Key | Uint64Key | BytesKey

	feed(h uint32) uint32
}

// Uint32Key is a 32-bit integer key.
type Uint32Key uint32

// Uint64Key is a 64-bit integer key.
type Uint64Key uint64

// BytesKey is an opaque byte-slice key. The library reads but never copies
// the underlying bytes, so the slice must remain valid and unmodified for
// the duration of Build.
type BytesKey []byte

func (k Uint32Key) feed(h uint32) uint32 {
	return round32(uint32(k), h)
}

func (k Uint64Key) feed(h uint32) uint32 {
	h = round32(uint32(k), h)
	h = round32(uint32(k>>32), h)
	return h
}

// feed consumes the key in big-endian 4-byte groups; this endianness
// choice is load-bearing for cross-implementation compatibility with the
// C phf(3) library this package is ported from and must be preserved
// verbatim.
func (k BytesKey) feed(h uint32) uint32 {
	p := []byte(k)
	n := len(p)

	for n >= 4 {
		word := uint32(p[0])<<24 | uint32(p[1])<<16 | uint32(p[2])<<8 | uint32(p[3])
		h = round32(word, h)
		p = p[4:]
		n -= 4
	}

	var word uint32
	switch n & 3 {
	case 3:
		word |= uint32(p[2]) << 8
		fallthrough
	case 2:
		word |= uint32(p[1]) << 16
		fallthrough
	case 1:
		word |= uint32(p[0]) << 24
		h = round32(word, h)
	}

	return h
}

// round32 is one round of MurmurHash3_x86_32's mixing function.
func round32(word, h uint32) uint32 {
	k := word * 0xcc9e2d51
	k = bits.RotateLeft32(k, 15)
	k *= 0x1b873593

	h ^= k
	h = bits.RotateLeft32(h, 13)
	h = h*5 + 0xe6546b64
	return h
}

// mix32 is MurmurHash3_x86_32's finalization mix.
func mix32(h uint32) uint32 {
	h ^= h >> 16
	h *= 0x85ebca6b
	h ^= h >> 13
	h *= 0xc2b2ae35
	h ^= h >> 16
	return h
}

// hashG selects the displacement bucket for k under seed.
func hashG[K Key](k K, seed uint32) uint32 {
	return mix32(k.feed(seed))
}

// hashF is the bucket's placement hash for trial displacement d.
func hashF[K Key](d uint32, k K, seed uint32) uint32 {
	h := round32(d, seed)
	h = k.feed(h)
	return mix32(h)
}

// modReduce reduces h into [0, n) -- a bitmask if nodiv (n a power of two),
// otherwise ordinary modulo.
func modReduce(h uint32, n int, nodiv bool) int {
	if nodiv {
		return int(h) & (n - 1)
	}
	return int(h % uint32(n))
}
