// ingest.go -- turn CLI input into typed key slices
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
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	phf "github.com/opencoff/go-phf"
)

// openInput resolves path ("" for none, "-" for stdin, else a file) into
// a reader plus a close func, mirroring the reference tool's -f handling.
func openInput(path string) (io.Reader, func(), error) {
	switch path {
	case "":
		return nil, func() {}, nil
	case "-":
		return os.Stdin, func() {}, nil
	default:
		fd, err := os.Open(path)
		if err != nil {
			return nil, nil, err
		}
		return fd, func() { fd.Close() }, nil
	}
}

// buildUint32 gathers uint32 keys from positional args and -f, one token
// per whitespace-delimited word -- the numeric analogue of the reference
// tool's getline-per-key ingestion.
func buildUint32(args []string, path string) []phf.Uint32Key {
	var keys []phf.Uint32Key
	for _, a := range args {
		if v, err := strconv.ParseUint(a, 0, 32); err == nil {
			keys = append(keys, phf.Uint32Key(v))
		}
	}

	r, closeFn, err := openInput(path)
	if err != nil {
		die("%s", err)
	}
	defer closeFn()
	if r == nil {
		return keys
	}

	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		v, err := strconv.ParseUint(sc.Text(), 0, 32)
		if err != nil {
			continue
		}
		keys = append(keys, phf.Uint32Key(v))
	}
	return keys
}

func buildUint64(args []string, path string) []phf.Uint64Key {
	var keys []phf.Uint64Key
	for _, a := range args {
		if v, err := strconv.ParseUint(a, 0, 64); err == nil {
			keys = append(keys, phf.Uint64Key(v))
		}
	}

	r, closeFn, err := openInput(path)
	if err != nil {
		die("%s", err)
	}
	defer closeFn()
	if r == nil {
		return keys
	}

	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		v, err := strconv.ParseUint(sc.Text(), 0, 64)
		if err != nil {
			continue
		}
		keys = append(keys, phf.Uint64Key(v))
	}
	return keys
}

// buildStrings slurps its input into one buffer and slices lines out of
// it in place, matching the reference tool's slab-slurp strategy for
// phf_string_t (as opposed to the getline-per-key strategy used for the
// numeric key types above).
func buildStrings(args []string, path string) []phf.BytesKey {
	var keys []phf.BytesKey
	for _, a := range args {
		keys = append(keys, phf.BytesKey(a))
	}

	r, closeFn, err := openInput(path)
	if err != nil {
		die("%s", err)
	}
	defer closeFn()
	if r == nil {
		return keys
	}

	slab, err := io.ReadAll(r)
	if err != nil {
		die("%s", err)
	}

	for _, line := range strings.Split(string(slab), "\n") {
		if len(line) > 0 {
			keys = append(keys, phf.BytesKey(line))
		}
	}
	return keys
}
