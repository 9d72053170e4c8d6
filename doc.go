// doc.go - top level documentation
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

// Package phf implements the CHD (Compress Hash Displace) minimal-ish
// perfect hash function: http://cmph.sourceforge.net/papers/esa09.pdf
//
// A perfect hash function maps a fixed, known set of keys injectively into
// [0, m). This package builds one from a caller-supplied set of distinct
// uint32, uint64 or byte-slice keys and evaluates it at O(1) cost per
// lookup thereafter. The mapping is only guaranteed collision-free for the
// exact set of keys used at build time; looking up a foreign key returns
// some index in [0, m) but the result is meaningless.
//
// The primary entry points are Build (or the incremental Builder type) to
// construct a Table, and Table.Hash to evaluate it. Table.Compact narrows
// the displacement table down to the smallest storage width that fits, and
// package phfdb persists a built Table to a checksummed, mmap-able file.
package phf
