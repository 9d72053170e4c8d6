// helpers_test.go - helper routines for tests
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
	"runtime"
	"testing"

	"github.com/opencoff/go-fasthash"
)

func newAsserter(t *testing.T) func(cond bool, msg string, args ...interface{}) {
	return func(cond bool, msg string, args ...interface{}) {
		if cond {
			return
		}

		_, file, line, ok := runtime.Caller(1)
		if !ok {
			file = "???"
			line = 0
		}

		s := fmt.Sprintf(msg, args...)
		t.Fatalf("%s: %d: Assertion failed: %s\n", file, line, s)
	}
}

var keyw = []string{
	"expectoration",
	"mizzenmastman",
	"stockfather",
	"pictorialness",
	"villainous",
	"unquality",
	"sized",
	"Tarahumari",
	"endocrinotherapy",
	"quicksandy",
	"heretics",
	"pediment",
	"spleen's",
	"Shepard's",
	"paralyzed",
	"megahertzes",
	"Richardson's",
	"mechanics's",
	"Springfield",
	"burlesques",
}

// bytesKeys turns the word list into BytesKey values.
func bytesKeys() []BytesKey {
	out := make([]BytesKey, len(keyw))
	for i, s := range keyw {
		out[i] = BytesKey(s)
	}
	return out
}

// uint64Keys hashes the word list into distinct Uint64Key values via
// go-fasthash, the same generator the teacher's chd_test.go used to turn
// a word list into a synthetic uint64 key set.
func uint64Keys(seed uint64) []Uint64Key {
	out := make([]Uint64Key, len(keyw))
	for i, s := range keyw {
		out[i] = Uint64Key(fasthash.Hash64(seed, []byte(s)))
	}
	return out
}

func ctx() context.Context { return context.Background() }
