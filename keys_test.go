// keys_test.go -- Uniq/UniqBytes tests
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

import (
	"reflect"
	"testing"
)

func TestUniqPreservesFirstSeenOrder(t *testing.T) {
	assert := newAsserter(t)

	in := []int{1, 2, 1, 3, 2}
	got := Uniq(in)
	want := []int{1, 2, 3}
	assert(reflect.DeepEqual(got, want), "Uniq(%v) = %v, want %v", in, got, want)
}

func TestUniqBytesPreservesFirstSeenOrder(t *testing.T) {
	assert := newAsserter(t)

	in := []BytesKey{BytesKey("a"), BytesKey("b"), BytesKey("a"), BytesKey("c"), BytesKey("b")}
	got := UniqBytes(in)
	assert(len(got) == 3, "expected 3 unique keys, got %d", len(got))
	assert(string(got[0]) == "a", "got[0] = %q", got[0])
	assert(string(got[1]) == "b", "got[1] = %q", got[1])
	assert(string(got[2]) == "c", "got[2] = %q", got[2])
}

func TestUniqEmpty(t *testing.T) {
	assert := newAsserter(t)

	got := Uniq([]int{})
	assert(len(got) == 0, "expected empty result, got %v", got)
}
