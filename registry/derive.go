// Package registry implements the mutable registry entry model: deterministic
// keypair and datakey derivation, entry identifiers, and entry signatures.
//
// A registry entry is a small signed record at a (public key, datakey)
// address with a monotonically increasing revision. Everything here derives
// from the user seed; nothing is stored.
package registry

import (
	"crypto/ed25519"

	"xdao.co/lumen/chash"
	"xdao.co/lumen/lumerr"
	"xdao.co/lumen/seed"
)

// DatakeySize is the byte length of a datakey.
const DatakeySize = 32

// MaxTagLen bounds the keypair tag so its length fits the one-byte prefix in
// the datakey derivation input.
const MaxTagLen = 255

// Datakey identifies a mutable slot owned by a keypair.
type Datakey [DatakeySize]byte

// Keys bundles the derived keypair with the datakey for one registry slot.
type Keys struct {
	PublicKey  ed25519.PublicKey
	PrivateKey ed25519.PrivateKey
	Datakey    Datakey
}

// TaggedKeys derives the keypair and datakey for a (keypairTag, datakeyTag)
// pair under a seed.
//
// The keypair depends only on the keypair tag; the datakey depends on both.
// The derivation input for the datakey carries the keypair tag's length as a
// single byte before the tag itself. Without it, distinct tag pairs such as
// ("ab", "c") and ("a", "bc") would concatenate identically and collide;
// the prefix is a mandatory anti-collision measure, not an encoding nicety.
func TaggedKeys(s []byte, keypairTag, datakeyTag string) (Keys, error) {
	if len(s) != seed.SeedSize {
		return Keys{}, lumerr.New(lumerr.KindValidation, "LUM-REG-001", "seed must be exactly 16 bytes")
	}
	if len(keypairTag) > MaxTagLen {
		return Keys{}, lumerr.New(lumerr.KindValidation, "LUM-REG-002", "keypair tag exceeds 255 characters")
	}

	keyInput := make([]byte, 0, len(s)+len(keypairTag))
	keyInput = append(keyInput, s...)
	keyInput = append(keyInput, keypairTag...)
	keyEntropy := chash.HashWide(keyInput)
	priv := ed25519.NewKeyFromSeed(keyEntropy[:ed25519.SeedSize])

	dkInput := make([]byte, 0, len(s)+1+len(keypairTag)+len(datakeyTag))
	dkInput = append(dkInput, s...)
	dkInput = append(dkInput, byte(len(keypairTag)))
	dkInput = append(dkInput, keypairTag...)
	dkInput = append(dkInput, datakeyTag...)
	dkHash := chash.HashWide(dkInput)

	var dk Datakey
	copy(dk[:], dkHash[:DatakeySize])

	return Keys{
		PublicKey:  priv.Public().(ed25519.PublicKey),
		PrivateKey: priv,
		Datakey:    dk,
	}, nil
}
