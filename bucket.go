// bucket.go -- per-key bucket record and the CHD bucket sort order
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

// keysEqual compares two keys of the same instantiated type K for
// equality. BytesKey compares length then byte-by-byte, matching phf.cc's
// phf_string_t operator==.
func keysEqual[K Key](a, b K) bool {
	switch va := any(a).(type) {
	case Uint32Key:
		return va == any(b).(Uint32Key)
	case Uint64Key:
		return va == any(b).(Uint64Key)
	case BytesKey:
		vb := any(b).(BytesKey)
		if len(va) != len(vb) {
			return false
		}
		for i := range va {
			if va[i] != vb[i] {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// bucketKey is one key's record during construction: the key itself and
// the bucket it was assigned to by g(k) mod r. The source's per-key
// pointer into a shared bucket-size counter is re-expressed here as an
// index into a sibling []int slice (bucketSort.size), looked up at
// comparison time.
type bucketKey[K Key] struct {
	key    K
	bucket int
}

// bucketSort implements sort.Interface over a slice of bucketKey records,
// ordering larger buckets first and breaking ties by descending bucket
// index. It also enforces the duplicate-key contract: two records that
// land in the same bucket and compare equal as keys are a programming
// error, and construction aborts rather than silently continuing (see
// errors.go).
type bucketSort[K Key] struct {
	keys []bucketKey[K]
	size []int // size[bucket] = number of keys assigned to that bucket
}

func (b *bucketSort[K]) Len() int { return len(b.keys) }

func (b *bucketSort[K]) Swap(i, j int) { b.keys[i], b.keys[j] = b.keys[j], b.keys[i] }

func (b *bucketSort[K]) Less(i, j int) bool {
	bi, bj := b.keys[i].bucket, b.keys[j].bucket
	ni, nj := b.size[bi], b.size[bj]
	if ni != nj {
		return ni > nj
	}
	if bi != bj {
		return bi > bj
	}

	// Same bucket: this is the only place two records can legitimately
	// be the same key. Anything else landing here is just bucket-mates.
	if i != j && keysEqual(b.keys[i].key, b.keys[j].key) {
		panic(ErrDuplicateKey)
	}
	return false
}
