// phfdb_test.go -- writer/reader round trip
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

package phfdb

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	phf "github.com/opencoff/go-phf"
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
		t.Fatalf("%s:%d: assertion failed: %s", file, line, s)
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	assert := newAsserter(t)

	keys := make([]phf.Uint64Key, 0, 100)
	for i := uint64(0); i < 100; i++ {
		keys = append(keys, phf.Uint64Key(i*2654435761+1))
	}

	tbl, err := phf.Build(context.Background(), keys, phf.Config{Lambda: 4, Alpha: 80, Seed: 3})
	assert(err == nil, "build failed: %v", err)

	dir := t.TempDir()
	fn := filepath.Join(dir, "keys.phfdb")

	w, err := NewWriter[phf.Uint64Key](fn)
	assert(err == nil, "new writer failed: %v", err)

	err = w.Freeze(tbl)
	assert(err == nil, "freeze failed: %v", err)

	if _, err := os.Stat(fn); err != nil {
		t.Fatalf("expected %s to exist: %v", fn, err)
	}

	rd, err := Open[phf.Uint64Key](fn)
	assert(err == nil, "open failed: %v", err)
	defer rd.Close()

	for _, k := range keys {
		assert(rd.Hash(k) == tbl.Hash(k), "hash mismatch for key %d", uint64(k))
	}
}

func TestOpenRejectsCorruptFile(t *testing.T) {
	assert := newAsserter(t)

	dir := t.TempDir()
	fn := filepath.Join(dir, "bad.phfdb")
	if err := os.WriteFile(fn, []byte("not a phfdb file"), 0600); err != nil {
		t.Fatalf("setup: %v", err)
	}

	_, err := Open[phf.Uint32Key](fn)
	assert(err != nil, "expected error opening corrupt file")
}
