// hash_test.go -- hash primitive tests
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

import "testing"

func TestRound32MixesH(t *testing.T) {
	assert := newAsserter(t)

	// round32 must actually mix h in, not just echo back a function of
	// word: two different h with the same word must (almost certainly)
	// diverge.
	a := round32(1, 0)
	b := round32(1, 0xffffffff)
	assert(a != b, "round32 ignored h")
}

func TestMix32Avalanche(t *testing.T) {
	assert := newAsserter(t)

	a := mix32(0)
	b := mix32(1)
	assert(a != b, "mix32(0) == mix32(1)")
	assert(mix32(0) == a, "mix32 not deterministic")
}

// Byte-slice keys must feed 4-byte big-endian words into round32; for
// "abcd" the first (and only) word is 0x61626364. This byte-order
// contract must be preserved verbatim for cross-implementation
// compatibility.
func TestBytesKeyEndianness(t *testing.T) {
	assert := newAsserter(t)

	k := BytesKey("abcd")
	want := round32(0x61626364, 0)
	got := k.feed(0)
	assert(got == want, "endianness mismatch: want %#x, got %#x", want, got)
}

func TestBytesKeyRemainder(t *testing.T) {
	assert := newAsserter(t)

	// A 1-byte remainder ("a") should populate only the top byte of the
	// final word: 0x61000000.
	var word uint32
	word |= uint32('a') << 24
	want := round32(word, 0)
	got := BytesKey("a").feed(0)
	assert(got == want, "1-byte remainder: want %#x, got %#x", want, got)

	// A 3-byte remainder ("abc") populates the top three bytes.
	word = 0
	word |= uint32('a') << 24
	word |= uint32('b') << 16
	word |= uint32('c') << 8
	want = round32(word, 0)
	got = BytesKey("abc").feed(0)
	assert(got == want, "3-byte remainder: want %#x, got %#x", want, got)
}

func TestUint64KeyFeedsLoThenHi(t *testing.T) {
	assert := newAsserter(t)

	k := Uint64Key(0x1122334455667788)
	h := round32(uint32(k), 0)
	h = round32(uint32(k>>32), h)
	assert(k.feed(0) == h, "Uint64Key.feed order mismatch")
}

func TestModReduce(t *testing.T) {
	assert := newAsserter(t)

	assert(modReduce(10, 4, false) == 2, "modReduce div mode")
	assert(modReduce(10, 4, true) == 2, "modReduce mask mode")
	assert(modReduce(0xffffffff, 8, true) == 7, "modReduce mask mode high bits")
}
