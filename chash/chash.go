// Package chash adapts the hash primitives the derivation chains are built on.
//
// Every caller in this module goes through these two functions rather than
// importing hash packages directly, so the primitive-to-purpose mapping is
// recorded in exactly one place:
//
//   - HashWide (sha512) backs seed, phrase-checksum, and key derivation.
//   - HashContent (blake2b-256) backs entry IDs, entry signatures, and
//     sector Merkle roots.
//
// Both mappings are frozen by the external protocol. Swapping either hash
// breaks every identity and address ever derived.
package chash

import (
	"crypto/sha512"

	"golang.org/x/crypto/blake2b"
)

// WideSize is the output size of HashWide in bytes.
const WideSize = sha512.Size

// ContentSize is the output size of HashContent in bytes.
const ContentSize = blake2b.Size256

// HashWide returns the 64-byte wide hash of data.
func HashWide(data []byte) [WideSize]byte {
	return sha512.Sum512(data)
}

// HashContent returns the 32-byte content hash of data.
func HashContent(data []byte) [ContentSize]byte {
	return blake2b.Sum256(data)
}
