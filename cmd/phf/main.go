// main.go -- command line front-end for building a perfect hash function
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

// phf reads a set of keys and builds a minimal-ish perfect hash function
// over them, printing each key alongside its hash value. It is a
// re-expression of the reference phf(1) tool's PHF_MAIN block, using
// this module's Table/Build API instead of the C library it was
// originally bundled with.
package main

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"os"
	"time"

	flag "github.com/opencoff/pflag"

	phf "github.com/opencoff/go-phf"
)

func main() {
	var path string
	var lambda, alpha int
	var seed uint64
	var typ string
	var nodiv, noprint, verbose bool
	var primesUpto uint64

	fs := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	fs.SetOutput(os.Stdout)
	fs.StringVarP(&path, "file", "f", "", "read keys from `PATH` (- for stdin)")
	fs.IntVarP(&lambda, "lambda", "l", 4, "use `NUM` keys per displacement bucket")
	fs.IntVarP(&alpha, "alpha", "a", 80, "hash table load factor as a `PCT` (1-100)")
	fs.Uint64VarP(&seed, "seed", "s", 0, "use `SEED` instead of one from the OS CSPRNG")
	fs.StringVarP(&typ, "type", "t", "uint32", "parse and hash keys as `TYPE`: uint32, uint64, or string")
	fs.BoolVarP(&nodiv, "nodiv", "2", false, "avoid modular division by rounding r and m to a power of two")
	fs.BoolVarP(&noprint, "no-print", "n", false, "do not print key-hash pairs")
	fs.BoolVarP(&verbose, "verbose", "v", false, "report construction and hashing status")
	fs.Uint64VarP(&primesUpto, "primes", "p", 0, "print primes up to `N` and exit, ignoring every other flag")

	fs.Usage = func() {
		fmt.Printf(`Usage: %s [-f PATH] [-l NUM] [-a PCT] [-s SEED] [-t TYPE] [-2nv] [-p N] [key [...]]

Builds a perfect hash function over the given keys (from -f, from
positional arguments, or both) and prints each key next to its hash.

Options:
`, os.Args[0])
		fs.PrintDefaults()
		os.Exit(0)
	}

	if err := fs.Parse(os.Args[1:]); err != nil {
		die("%s", err)
	}

	if primesUpto > 0 {
		printPrimes(primesUpto)
		return
	}

	if seed == 0 {
		s, err := randomSeed()
		if err != nil {
			die("seed: %s", err)
		}
		seed = uint64(s)
	}

	cfg := phf.Config{
		Lambda: lambda,
		Alpha:  alpha,
		Seed:   uint32(seed),
		NoDiv:  nodiv,
	}

	args := fs.Args()
	switch typ {
	case "uint32":
		run(buildUint32(args, path), cfg, verbose, noprint)
	case "uint64":
		run(buildUint64(args, path), cfg, verbose, noprint)
	case "string":
		run(buildStrings(args, path), cfg, verbose, noprint)
	default:
		die("%s: invalid key type", typ)
	}
}

func randomSeed() (uint32, error) {
	var b [4]byte
	if _, err := rand.Read(b[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b[:]), nil
}

func printPrimes(upto uint64) {
	for n := uint64(2); n <= upto; n++ {
		if phf.IsPrime(n) {
			fmt.Println(n)
		}
	}
}

// die with error
func die(f string, v ...interface{}) {
	warn(f, v...)
	os.Exit(1)
}

func warn(f string, v ...interface{}) {
	z := fmt.Sprintf("%s: %s", os.Args[0], f)
	s := fmt.Sprintf(z, v...)
	if n := len(s); s[n-1] != '\n' {
		s += "\n"
	}
	os.Stderr.WriteString(s)
	os.Stderr.Sync()
}

func timeit(f func() error) (time.Duration, error) {
	begin := time.Now()
	err := f()
	return time.Since(begin), err
}
