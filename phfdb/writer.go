// writer.go -- durable, checksummed storage for a built phf.Table
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

// Package phfdb persists a phf.Table to a file so it can be mapped back
// in without rerunning construction. It is generalized from the
// teacher's DB writer/reader (dbwriter.go, dbreader.go), stripped of the
// value-record store: a Table alone does not know whether a given key
// was in the original key set, so this package is a checksummed
// container for the table bytes, not a key/value database.
package phfdb

import (
	"bytes"
	"crypto/sha512"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/opencoff/go-phf"
)

// headerSize is the fixed-size file header: magic, version, reserved
// bytes, then the big-endian length of the marshaled table.
const headerSize = 32

const magic = "PHF1"

// Writer builds a single durable file holding one phf.Table.
type Writer[K phf.Key] struct {
	fd    *os.File
	fntmp string
	fn    string
	done  bool
}

// NewWriter opens fn for writing via a temp-file-then-rename sequence,
// matching the teacher's newDBWriter in dbwriter.go.
func NewWriter[K phf.Key](fn string) (*Writer[K], error) {
	tmp := fmt.Sprintf("%s.tmp.%d", fn, os.Getpid())
	fd, err := os.OpenFile(tmp, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return nil, err
	}
	return &Writer[K]{fd: fd, fntmp: tmp, fn: fn}, nil
}

// Freeze writes t to disk under a strong checksum and atomically renames
// the result into place. The Writer is spent afterwards.
func (w *Writer[K]) Freeze(t *phf.Table[K]) (err error) {
	if w.done {
		return fmt.Errorf("phfdb: writer already frozen")
	}
	defer func() {
		if err != nil {
			os.Remove(w.fntmp)
			w.fd.Close()
		}
	}()

	var buf bytes.Buffer
	if _, err = t.MarshalBinary(&buf); err != nil {
		return err
	}
	body := buf.Bytes()

	var hdr [headerSize]byte
	copy(hdr[:4], magic)
	hdr[4] = 1
	binary.BigEndian.PutUint64(hdr[8:16], uint64(len(body)))

	h := sha512.New512_256()
	tee := io.MultiWriter(w.fd, h)

	if _, err = writeAll(tee, hdr[:]); err != nil {
		return err
	}
	if _, err = writeAll(tee, body); err != nil {
		return err
	}

	sum := h.Sum(nil)
	if _, err = writeAll(w.fd, sum); err != nil {
		return err
	}

	if err = w.fd.Sync(); err != nil {
		return err
	}
	if err = w.fd.Close(); err != nil {
		return err
	}
	if err = os.Rename(w.fntmp, w.fn); err != nil {
		return err
	}

	w.done = true
	return nil
}

// Abort discards the in-progress temp file without writing fn.
func (w *Writer[K]) Abort() error {
	if w.done {
		return nil
	}
	w.fd.Close()
	return os.Remove(w.fntmp)
}

func writeAll(w io.Writer, buf []byte) (int, error) {
	n, err := w.Write(buf)
	if err != nil {
		return n, err
	}
	if n != len(buf) {
		return n, io.ErrShortWrite
	}
	return n, nil
}
