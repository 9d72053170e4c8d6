// marshal.go -- durable binary encoding of a built Table
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
	"encoding/binary"
	"fmt"
	"io"
)

// tableHeaderSize is the fixed-size header written ahead of the packed
// displacement stream: version, width, nodiv byte, one reserved byte,
// then r, m, dmax, seed and n as little-endian uint32s.
const tableHeaderSize = 4 + 5*4

const tableVersion = 1

// MarshalBinary encodes t into a binary form suitable for durable
// storage, generalized from the teacher's chd.MarshalBinary in
// chd_marshal.go to carry the extra fields (r, m, nodiv) a Table needs
// that a bare seed array did not.
func (t *Table[K]) MarshalBinary(w io.Writer) (int, error) {
	var hdr [tableHeaderSize]byte

	hdr[0] = tableVersion
	hdr[1] = t.disp.width()
	if t.nodiv {
		hdr[2] = 1
	}
	binary.LittleEndian.PutUint32(hdr[4:8], uint32(t.r))
	binary.LittleEndian.PutUint32(hdr[8:12], uint32(t.m))
	binary.LittleEndian.PutUint32(hdr[12:16], t.dmax)
	binary.LittleEndian.PutUint32(hdr[16:20], t.seed)
	binary.LittleEndian.PutUint32(hdr[20:24], uint32(t.disp.length()))

	nw, err := writeAll(w, hdr[:])
	if err != nil {
		return nw, err
	}

	n := t.disp.length()
	width := int(t.disp.width())
	body := make([]byte, n*width)
	for i := 0; i < n; i++ {
		v := t.disp.at(i)
		off := i * width
		switch width {
		case 1:
			body[off] = byte(v)
		case 2:
			binary.LittleEndian.PutUint16(body[off:], uint16(v))
		default:
			binary.LittleEndian.PutUint32(body[off:], v)
		}
	}

	m, err := writeAll(w, body)
	return nw + m, err
}

// Unmarshal decodes a Table previously written by MarshalBinary. data
// must be the complete encoding; the caller may pass a slice into a
// memory-mapped file (see phfdb).
func Unmarshal[K Key](data []byte) (*Table[K], error) {
	if len(data) < tableHeaderSize {
		return nil, fmt.Errorf("phf: unmarshal: %w", io.ErrUnexpectedEOF)
	}

	hdr := data[:tableHeaderSize]
	body := data[tableHeaderSize:]

	if hdr[0] != tableVersion {
		return nil, fmt.Errorf("phf: unmarshal: unsupported version %d", hdr[0])
	}

	width := hdr[1]
	nodiv := hdr[2] != 0
	r := binary.LittleEndian.Uint32(hdr[4:8])
	m := binary.LittleEndian.Uint32(hdr[8:12])
	dmax := binary.LittleEndian.Uint32(hdr[12:16])
	seed := binary.LittleEndian.Uint32(hdr[16:20])
	n := binary.LittleEndian.Uint32(hdr[20:24])

	need := int(n) * int(width)
	if len(body) < need {
		return nil, fmt.Errorf("phf: unmarshal: %w", io.ErrUnexpectedEOF)
	}
	body = body[:need]

	var disp displacements
	switch width {
	case 1:
		d := make(u8disp, n)
		copy(d, body)
		disp = d
	case 2:
		d := make(u16disp, n)
		for i := range d {
			d[i] = binary.LittleEndian.Uint16(body[i*2:])
		}
		disp = d
	case 4:
		d := make(u32disp, n)
		for i := range d {
			d[i] = binary.LittleEndian.Uint32(body[i*4:])
		}
		disp = d
	default:
		return nil, fmt.Errorf("phf: unmarshal: unknown displacement width %d", width)
	}

	return &Table[K]{
		seed:  seed,
		nodiv: nodiv,
		r:     int(r),
		m:     int(m),
		dmax:  dmax,
		disp:  disp,
	}, nil
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
