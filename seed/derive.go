package seed

import (
	"crypto/ed25519"

	"xdao.co/lumen/chash"
)

// childSeedSeparator namespaces child-seed derivation inputs so a parent
// seed and a tag cannot be confused with a raw hash preimage.
const childSeedSeparator = " - "

// DeriveChildSeed derives a namespaced sub-identity seed from a parent seed.
//
// Distinct tags yield unrelated child seeds; the same (parent, tag) pair
// always yields the same child.
func DeriveChildSeed(parent Seed, tag string) Seed {
	input := make([]byte, 0, SeedSize+len(childSeedSeparator)+len(tag))
	input = append(input, parent[:]...)
	input = append(input, childSeedSeparator...)
	input = append(input, tag...)
	h := chash.HashWide(input)

	var child Seed
	copy(child[:], h[:SeedSize])
	return child
}

// legacyRootSalt is the fixed derivation salt of the pre-existing external
// ecosystem this library stays compatible with.
const legacyRootSalt = "root discoverable key"

// LegacyRootKeypair derives the user's root discoverable keypair.
//
// The two-stage construction — hash the salt and the seed separately, then
// hash the concatenation and truncate to 32 bytes of keypair entropy — is a
// frozen compatibility contract. It must never be simplified or "improved":
// any change silently re-keys every existing identity.
func LegacyRootKeypair(s Seed) (ed25519.PublicKey, ed25519.PrivateKey) {
	saltHash := chash.HashWide([]byte(legacyRootSalt))
	seedHash := chash.HashWide(s[:])

	merged := make([]byte, 0, 2*chash.WideSize)
	merged = append(merged, saltHash[:]...)
	merged = append(merged, seedHash[:]...)
	entropy := chash.HashWide(merged)

	priv := ed25519.NewKeyFromSeed(entropy[:ed25519.SeedSize])
	return priv.Public().(ed25519.PublicKey), priv
}
