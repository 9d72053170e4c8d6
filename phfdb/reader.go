// reader.go -- open and verify a file written by Writer
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
	"crypto/sha512"
	"crypto/subtle"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/opencoff/go-mmap"
	"github.com/opencoff/go-phf"
)

// Reader maps a file written by Writer.Freeze back into a usable
// phf.Table, verifying its checksum once at open time (see
// verifyChecksum in the teacher's dbreader.go).
type Reader[K phf.Key] struct {
	table *phf.Table[K]

	mm *mmap.Mapping
	fd *os.File
	fn string
}

// Open maps fn and reconstructs the Table it holds. The mapping stays
// live until Close.
func Open[K phf.Key](fn string) (rd *Reader[K], err error) {
	fd, err := os.Open(fn)
	if err != nil {
		return nil, err
	}

	rd = &Reader[K]{fd: fd, fn: fn}
	defer func() {
		if err != nil {
			fd.Close()
		}
	}()

	st, err := fd.Stat()
	if err != nil {
		return nil, fmt.Errorf("%s: can't stat: %w", fn, err)
	}
	if st.Size() < headerSize+sha512.Size256 {
		return nil, fmt.Errorf("%s: file too small or corrupted", fn)
	}

	var hdr [headerSize]byte
	if _, err = io.ReadFull(fd, hdr[:]); err != nil {
		return nil, fmt.Errorf("%s: can't read header: %w", fn, err)
	}
	if string(hdr[:4]) != magic {
		return nil, fmt.Errorf("%s: bad file magic %q", fn, hdr[:4])
	}
	if hdr[4] != 1 {
		return nil, fmt.Errorf("%s: unsupported version %d", fn, hdr[4])
	}

	bodyLen := binary.BigEndian.Uint64(hdr[8:16])
	want := int64(headerSize) + int64(bodyLen) + sha512.Size256
	if st.Size() != want {
		return nil, fmt.Errorf("%s: corrupt header: expected file size %d, saw %d", fn, want, st.Size())
	}

	if err = rd.verifyChecksum(hdr[:], bodyLen, st.Size()); err != nil {
		return nil, err
	}

	mm := mmap.New(fd)
	mapping, err := mm.Map(int64(headerSize)+int64(bodyLen), 0, mmap.PROT_READ, mmap.F_READAHEAD)
	if err != nil {
		return nil, fmt.Errorf("%s: can't mmap %d bytes: %w", fn, int64(headerSize)+int64(bodyLen), err)
	}

	t, err := phf.Unmarshal[K](mapping.Bytes()[headerSize:])
	if err != nil {
		mapping.Unmap()
		return nil, fmt.Errorf("%s: can't unmarshal table: %w", fn, err)
	}

	rd.mm = mapping
	rd.table = t
	return rd, nil
}

// Hash evaluates the mapped table's perfect hash function.
func (rd *Reader[K]) Hash(k K) uint32 { return rd.table.Hash(k) }

// Table returns the underlying mapped Table.
func (rd *Reader[K]) Table() *phf.Table[K] { return rd.table }

// Close unmaps and closes the underlying file. The Reader must not be
// used afterwards.
func (rd *Reader[K]) Close() error {
	if rd.mm != nil {
		rd.mm.Unmap()
		rd.mm = nil
	}
	rd.table = nil
	return rd.fd.Close()
}

func (rd *Reader[K]) verifyChecksum(hdr []byte, bodyLen uint64, sz int64) error {
	h := sha512.New512_256()
	h.Write(hdr)

	if _, err := io.CopyN(h, rd.fd, int64(bodyLen)); err != nil {
		return fmt.Errorf("%s: metadata i/o error: %w", rd.fn, err)
	}

	var expsum [sha512.Size256]byte
	if _, err := io.ReadFull(rd.fd, expsum[:]); err != nil {
		return fmt.Errorf("%s: checksum i/o error: %w", rd.fn, err)
	}

	sum := h.Sum(nil)
	if subtle.ConstantTimeCompare(sum, expsum[:]) != 1 {
		return fmt.Errorf("%s: checksum failure", rd.fn)
	}

	if _, err := rd.fd.Seek(headerSize, io.SeekStart); err != nil {
		return err
	}
	return nil
}
