// Command linkvec regenerates the version 1 size-class conformance table.
//
// The table pins the quantized fetch-size encoding: for each probed data
// size it prints the decoded fetch size and the raw bitfield. The output is
// meant to be pasted into the size-class test vectors after any deliberate
// review of the encoding, never edited by hand.
package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"os"
	"sort"

	"xdao.co/lumen/link"
)

func main() {
	var (
		maxSize = flag.Uint64("max", link.SectorSize, "largest data size to probe")
		sweep   = flag.Bool("sweep", false, "probe every size-class boundary, not just powers of two")
	)
	flag.Parse()

	sizes := probeSizes(*maxSize, *sweep)
	fmt.Println("dataSize\tfetchSize\tbitfield")
	var root [link.TargetSize]byte
	for _, size := range sizes {
		l, err := link.NewV1(root, size)
		if err != nil {
			fatalf("NewV1(%d): %v", size, err)
		}
		_, fetchSize, err := l.OffsetAndFetchSize()
		if err != nil {
			fatalf("decode %d: %v", size, err)
		}
		bf := binary.LittleEndian.Uint16(l.Bytes()[:2])
		fmt.Printf("%d\t%d\t%#04x\n", size, fetchSize, bf)
	}
}

// probeSizes picks the data sizes worth pinning: each power of two, one byte
// either side of it, and with -sweep every class boundary in range.
func probeSizes(maxSize uint64, sweep bool) []uint64 {
	seen := map[uint64]bool{}
	var sizes []uint64
	add := func(n uint64) {
		if n >= 1 && n <= maxSize && !seen[n] {
			seen[n] = true
			sizes = append(sizes, n)
		}
	}

	add(1)
	for p := uint64(4096); p <= maxSize; p *= 2 {
		add(p - 1)
		add(p)
		add(p + 1)
	}
	add(maxSize)

	if sweep {
		var root [link.TargetSize]byte
		prev := uint64(0)
		for n := uint64(1); n <= maxSize; n++ {
			l, err := link.NewV1(root, n)
			if err != nil {
				fatalf("NewV1(%d): %v", n, err)
			}
			_, fetchSize, err := l.OffsetAndFetchSize()
			if err != nil {
				fatalf("decode %d: %v", n, err)
			}
			if fetchSize != prev {
				add(n)
				prev = fetchSize
			}
		}
	}
	sort.Slice(sizes, func(i, j int) bool { return sizes[i] < sizes[j] })
	return sizes
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
