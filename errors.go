// errors.go - public errors exposed by phf
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

import "errors"

var (
	// ErrOutOfMemory is reserved for parity with the source contract.
	// Go's runtime does not surface allocation failure as a recoverable
	// error, so Build never returns it, and phfdb passes OS errors
	// (disk full, too many open files) through unchanged. Nothing in
	// this module returns it.
	ErrOutOfMemory = errors.New("phf: out of memory")

	// ErrDuplicateKey is the panic value when two equal keys are found
	// during construction. This is a programming-contract violation,
	// not a recoverable error: the caller supplied a key set with
	// duplicates and must dedupe with Uniq/UniqBytes first.
	ErrDuplicateKey = errors.New("phf: duplicate key")

	// ErrSearchExhausted is returned when a bucket's displacement
	// search exceeds Config.MaxDisplacement without finding a
	// collision-free placement.
	ErrSearchExhausted = errors.New("phf: displacement search exhausted")
)
