// builder.go -- CHD construction: partition, sort, place with retry
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
	"context"
	"fmt"
	"sort"
)

// defaultMaxDisplacement bounds the per-bucket retry loop in Config. The
// value mirrors the teacher's _MaxSeed cap in chd.go: high enough that a
// well-formed input (alpha <= ~90%, lambda around 4) never comes close to
// it, low enough that a pathological input fails fast instead of spinning
// forever.
const defaultMaxDisplacement = 65536 * 2

// Config controls a Build/Builder.Freeze call.
type Config struct {
	// Lambda is the target mean number of keys per displacement bucket.
	// Smaller values mean more buckets and a smaller DMax, at the cost
	// of a larger displacement table. Coerced up to 1 if <= 0.
	Lambda int

	// Alpha is the output table's load factor, in percent (1-100).
	// Higher values give a smaller table at the cost of a harder
	// placement search. Clamped into [1,100].
	Alpha int

	// Seed is the caller-supplied hash seed. There is no special
	// meaning to Seed == 0; it is a valid seed like any other.
	Seed uint32

	// NoDiv rounds R and M up to powers of two so that modular
	// reduction becomes a bitmask (x & (n-1)) instead of a division.
	NoDiv bool

	// MaxDisplacement caps the number of trial displacements tried per
	// bucket before Build gives up and returns ErrSearchExhausted.
	// Zero means defaultMaxDisplacement.
	MaxDisplacement uint32
}

func (c Config) normalize() Config {
	if c.Lambda < 1 {
		c.Lambda = 1
	}
	if c.Alpha < 1 {
		c.Alpha = 1
	} else if c.Alpha > 100 {
		c.Alpha = 100
	}
	if c.MaxDisplacement == 0 {
		c.MaxDisplacement = defaultMaxDisplacement
	}
	return c
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

// sizes computes r (bucket count) and m (output table size) for n keys
// under cfg, per spec: r = ceil(n/lambda), m = ceil(n*100/alpha), each
// rounded up to a power of two when cfg.NoDiv.
func sizes(n int, cfg Config) (r, m int) {
	r = ceilDiv(n, cfg.Lambda)
	m = ceilDiv(n*100, cfg.Alpha)
	if cfg.NoDiv {
		r = int(powerup(uint64(r)))
		m = int(powerup(uint64(m)))
	}
	return r, m
}

// Build runs the CHD construction over keys and returns a Table that
// evaluates the resulting perfect hash function. Build panics with
// ErrDuplicateKey if keys contains two equal entries -- callers must
// dedupe with Uniq/UniqBytes first (see errors.go and spec §7).
//
// n == 0 is valid and returns a trivial Table whose Hash always returns
// 0.
func Build[K Key](ctx context.Context, keys []K, cfg Config) (*Table[K], error) {
	cfg = cfg.normalize()

	n := len(keys)
	if n == 0 {
		return &Table[K]{seed: cfg.Seed, nodiv: cfg.NoDiv, r: 1, m: 1, disp: u32disp{0}}, nil
	}

	r, m := sizes(n, cfg)

	// Phase 1: partition into buckets.
	bkeys := make([]bucketKey[K], n)
	bsize := make([]int, r)
	for i, k := range keys {
		g := modReduce(hashG(k, cfg.Seed), r, cfg.NoDiv)
		bkeys[i] = bucketKey[K]{key: k, bucket: g}
		bsize[g]++
	}

	// Phase 2: sort largest-bucket-first, tie-broken by bucket index
	// descending. This also performs a first duplicate-key check (see
	// bucket.go); phase 3 checks each bucket in full.
	bs := &bucketSort[K]{keys: bkeys, size: bsize}
	sort.Sort(bs)

	occ := newBitVector(m)
	trial := newBitVector(m)
	g := make([]uint32, r)
	var dmax uint32

	// Phase 3: place each bucket via retry search.
	i := 0
	for i < n {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		bucket := bkeys[i].bucket
		j := i
		for j < n && bkeys[j].bucket == bucket {
			j++
		}

		// Equal keys always share a bucket, but the sort only compares
		// some pairs of bucket-mates; check every pair here.
		for a := i; a < j; a++ {
			for b := a + 1; b < j; b++ {
				if keysEqual(bkeys[a].key, bkeys[b].key) {
					panic(ErrDuplicateKey)
				}
			}
		}

		d, ok := place(bkeys[i:j], cfg.Seed, m, cfg.NoDiv, occ, trial, cfg.MaxDisplacement)
		if !ok {
			return nil, fmt.Errorf("phf: bucket %d: %w", bucket, ErrSearchExhausted)
		}

		g[bucket] = d
		if d > dmax {
			dmax = d
		}
		i = j
	}

	return &Table[K]{
		seed:  cfg.Seed,
		nodiv: cfg.NoDiv,
		r:     r,
		m:     m,
		dmax:  dmax,
		disp:  u32disp(g),
	}, nil
}

// Builder accumulates keys incrementally before running Build, mirroring
// the teacher's chdBuilder Add/Freeze idiom in chd.go. It is not safe for
// concurrent use.
type Builder[K Key] struct {
	keys []K
}

// NewBuilder returns an empty Builder.
func NewBuilder[K Key]() *Builder[K] {
	return &Builder[K]{}
}

// Add appends k to the pending key set.
func (b *Builder[K]) Add(k K) {
	b.keys = append(b.keys, k)
}

// Len returns the number of keys added so far.
func (b *Builder[K]) Len() int { return len(b.keys) }

// Freeze runs Build over the accumulated keys and returns the resulting
// Table. The Builder can be reused afterwards; its key slice is
// untouched by Build.
func (b *Builder[K]) Freeze(ctx context.Context, cfg Config) (*Table[K], error) {
	return Build(ctx, b.keys, cfg)
}

// place runs the retry loop for one bucket's keys, returning the smallest
// displacement d >= 1 that maps every key in the bucket into a slot free
// in both occ (globally committed) and trial (this attempt), committing
// those slots into occ on success.
func place[K Key](bucket []bucketKey[K], seed uint32, m int, nodiv bool, occ, trial *bitVector, maxDisp uint32) (uint32, bool) {
trying:
	for d := uint32(1); d <= maxDisp; d++ {
		for k, bk := range bucket {
			f := modReduce(hashF(d, bk.key, seed), m, nodiv)
			if occ.IsSet(f) || trial.IsSet(f) {
				// Clear only the bits this trial set so far.
				for _, done := range bucket[:k] {
					ff := modReduce(hashF(d, done.key, seed), m, nodiv)
					trial.Clear(ff)
				}
				continue trying
			}
			trial.Set(f)
		}

		for _, bk := range bucket {
			f := modReduce(hashF(d, bk.key, seed), m, nodiv)
			occ.Set(f)
		}
		return d, true
	}
	return 0, false
}
