// Package seed implements the root user secret and its human-writable
// phrase encoding.
//
// A seed is 16 bytes of entropy and is the sole durable secret of an
// identity: every keypair, datakey, and address is derived from it. The seed
// itself never leaves the trust boundary; only derivations do.
package seed

import (
	"xdao.co/lumen/lumerr"
)

const (
	// SeedSize is the exact byte length of a seed.
	SeedSize = 16

	// DictionarySize is the number of words in the phrase dictionary.
	DictionarySize = 1024

	// UniquePrefixLen is the number of leading characters that uniquely
	// identify a dictionary word. Lookup matches on this prefix, so users
	// may abbreviate words when writing a phrase down.
	UniquePrefixLen = 3

	// EntropyWords is the number of phrase words that carry seed bits.
	// The first 12 carry 10 bits each, the 13th carries 8
	// (12*10 + 8 = 128 bits = 16 bytes exactly).
	EntropyWords = 13

	// ChecksumWords is the number of trailing checksum words in a phrase.
	ChecksumWords = 2

	// PhraseWords is the total word count of a valid phrase.
	PhraseWords = EntropyWords + ChecksumWords
)

// Seed is the 16-byte root secret.
type Seed [SeedSize]byte

// FromBytes converts a byte slice into a Seed, enforcing the exact length.
func FromBytes(b []byte) (Seed, error) {
	var s Seed
	if len(b) != SeedSize {
		return s, lumerr.New(lumerr.KindValidation, "LUM-SEED-001", "seed must be exactly 16 bytes")
	}
	copy(s[:], b)
	return s, nil
}
