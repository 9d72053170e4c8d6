// compact.go -- narrow the displacement table to its minimum bit width
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

// displacements abstracts the storage width of the per-bucket
// displacement table, generalized from the teacher's seeder interface
// (u8Seeder/u16Seeder/u32Seeder in chd.go), which does the same
// three-width split for a per-slot seed array instead of a per-bucket
// displacement array.
type displacements interface {
	at(i int) uint32
	length() int
	width() byte
}

type u32disp []uint32

func (u u32disp) at(i int) uint32 { return u[i] }
func (u u32disp) length() int     { return len(u) }
func (u u32disp) width() byte     { return 4 }

type u16disp []uint16

func (u u16disp) at(i int) uint32 { return uint32(u[i]) }
func (u u16disp) length() int     { return len(u) }
func (u u16disp) width() byte     { return 2 }

type u8disp []uint8

func (u u8disp) at(i int) uint32 { return uint32(u[i]) }
func (u u8disp) length() int     { return len(u) }
func (u u8disp) width() byte     { return 1 }

// Compact narrows the committed displacement table down to the smallest
// of {8,16,32} bits that fits DMax, in place. It is idempotent and safe
// to call on an empty table.
//
// Callers must not call Hash concurrently with Compact on the same
// Table.
func (t *Table[K]) Compact() {
	w := byte(4)
	switch {
	case t.dmax < 256:
		w = 1
	case t.dmax < 65536:
		w = 2
	}

	if t.disp.width() == w {
		return
	}

	n := t.disp.length()
	switch w {
	case 1:
		d := make(u8disp, n)
		for i := 0; i < n; i++ {
			d[i] = uint8(t.disp.at(i))
		}
		t.disp = d
	case 2:
		d := make(u16disp, n)
		for i := 0; i < n; i++ {
			d[i] = uint16(t.disp.at(i))
		}
		t.disp = d
	default:
		d := make(u32disp, n)
		for i := 0; i < n; i++ {
			d[i] = t.disp.at(i)
		}
		t.disp = d
	}
}
