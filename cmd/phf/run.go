// run.go -- build the table over a key slice and report the result
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

package main

import (
	"context"
	"fmt"
	"math/bits"

	phf "github.com/opencoff/go-phf"
)

func run[K phf.Key](keys []K, cfg phf.Config, verbose, noprint bool) {
	n := len(keys)
	if verbose {
		warn("loaded %d keys", n)
	}

	var t *phf.Table[K]
	elapsed, err := timeit(func() error {
		var err error
		t, err = phf.Build(context.Background(), keys, cfg)
		return err
	})
	if err != nil {
		die("%s", err)
	}

	if verbose {
		warn("found perfect hash for %d keys in %s", n, elapsed)

		dBits := 0
		if t.DMax() > 0 {
			dBits = bits.Len32(t.DMax())
		}
		var kBits, gLoad float64
		if n > 0 {
			kBits = float64(t.R()*dBits) / float64(n)
			gLoad = float64(n) / float64(t.R())
		}
		warn("r:%d m:%d d_max:%d d_bits:%d k_bits:%.2f g_load:%.2f",
			t.R(), t.M(), t.DMax(), dBits, kBits, gLoad)

		var x uint32
		hashElapsed, _ := timeit(func() error {
			for _, k := range keys {
				x += t.Hash(k)
			}
			return nil
		})
		warn("hashed %d keys in %s (x:%d)", n, hashElapsed, x)
	}

	if !noprint {
		for _, k := range keys {
			printKey(k, t.Hash(k))
		}
	}
}

func printKey[K phf.Key](k K, hash uint32) {
	switch v := any(k).(type) {
	case phf.BytesKey:
		fmt.Printf("%-32s : %d\n", string(v), hash)
	default:
		fmt.Printf("%v : %d\n", v, hash)
	}
}
