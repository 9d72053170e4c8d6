// bucket_test.go -- bucket sort order and duplicate detection tests
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
	"sort"
	"testing"
)

func TestBucketSortLargestFirst(t *testing.T) {
	assert := newAsserter(t)

	keys := []bucketKey[Uint32Key]{
		{key: 0, bucket: 0},
		{key: 1, bucket: 1},
		{key: 2, bucket: 1},
		{key: 3, bucket: 2},
		{key: 4, bucket: 2},
		{key: 5, bucket: 2},
	}
	size := []int{1, 2, 3}

	bs := &bucketSort[Uint32Key]{keys: keys, size: size}
	sort.Sort(bs)

	assert(bs.keys[0].bucket == 2, "largest bucket should sort first, got %d", bs.keys[0].bucket)
	assert(bs.keys[1].bucket == 2, "expected bucket 2, got %d", bs.keys[1].bucket)
	assert(bs.keys[2].bucket == 2, "expected bucket 2, got %d", bs.keys[2].bucket)
	assert(bs.keys[3].bucket == 1, "expected bucket 1, got %d", bs.keys[3].bucket)
	assert(bs.keys[5].bucket == 0, "smallest bucket should sort last, got %d", bs.keys[5].bucket)
}

func TestBucketSortDuplicateKeyPanics(t *testing.T) {
	keys := []bucketKey[Uint32Key]{
		{key: 7, bucket: 0},
		{key: 7, bucket: 0},
	}
	size := []int{2}
	bs := &bucketSort[Uint32Key]{keys: keys, size: size}

	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic on duplicate key")
		}
		if r != ErrDuplicateKey {
			t.Fatalf("expected ErrDuplicateKey, got %v", r)
		}
	}()

	sort.Sort(bs)
}

func TestKeysEqual(t *testing.T) {
	assert := newAsserter(t)

	assert(keysEqual(Uint32Key(1), Uint32Key(1)), "uint32 equal keys reported unequal")
	assert(!keysEqual(Uint32Key(1), Uint32Key(2)), "uint32 unequal keys reported equal")
	assert(keysEqual(BytesKey("ab"), BytesKey("ab")), "bytes equal keys reported unequal")
	assert(!keysEqual(BytesKey("ab"), BytesKey("abc")), "bytes keys of different length reported equal")
	assert(!keysEqual(BytesKey("ab"), BytesKey("ac")), "bytes keys differing in one byte reported equal")
}
