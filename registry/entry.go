package registry

import (
	"crypto/ed25519"

	"xdao.co/lumen/chash"
	"xdao.co/lumen/codec"
	"xdao.co/lumen/link"
	"xdao.co/lumen/lumerr"
)

// MaxDataSize is the largest payload a registry entry may carry.
const MaxDataSize = 86

// EntryIDSize is the byte length of an entry identifier.
const EntryIDSize = 32

// entryIDSpecifier tags the key algorithm inside the entry ID preimage.
// Fixed by the external protocol, including its 7-byte length.
var entryIDSpecifier = []byte("ed25519")

// EntryID computes the deterministic 32-byte identifier of the registry slot
// at (pubkey, datakey). The ID is independent of the entry's mutable
// contents, so it doubles as a stable lookup key and as the target of
// resolver addresses.
func EntryID(pubkey []byte, datakey []byte) ([EntryIDSize]byte, error) {
	var id [EntryIDSize]byte
	if len(pubkey) != ed25519.PublicKeySize {
		return id, lumerr.New(lumerr.KindValidation, "LUM-REG-101", "public key must be exactly 32 bytes")
	}
	if len(datakey) != DatakeySize {
		return id, lumerr.New(lumerr.KindValidation, "LUM-REG-102", "datakey must be exactly 32 bytes")
	}

	input := make([]byte, 0, len(entryIDSpecifier)+codec.U64Size+len(pubkey)+len(datakey))
	input = append(input, entryIDSpecifier...)
	input = append(input, codec.EncodeU64(uint64(len(pubkey)))...)
	input = append(input, pubkey...)
	input = append(input, datakey...)
	return chash.HashContent(input), nil
}

// EntryIDToAddress wraps an entry ID in a resolver content address.
func EntryIDToAddress(entryID [EntryIDSize]byte) link.Link {
	return link.NewResolver(entryID)
}

// signedDigest is the hash covered by an entry signature.
func signedDigest(datakey Datakey, data []byte, revision uint64) [chash.ContentSize]byte {
	msg := make([]byte, 0, DatakeySize+codec.U64Size+len(data)+codec.U64Size)
	msg = append(msg, datakey[:]...)
	msg = append(msg, codec.EncodePrefixedBytes(data)...)
	msg = append(msg, codec.EncodeU64(revision)...)
	return chash.HashContent(msg)
}

// SignEntry produces the signature for a registry entry.
func SignEntry(priv ed25519.PrivateKey, datakey Datakey, data []byte, revision uint64) ([]byte, error) {
	if len(priv) != ed25519.PrivateKeySize {
		return nil, lumerr.New(lumerr.KindValidation, "LUM-REG-103", "private key must be exactly 64 bytes")
	}
	if len(data) > MaxDataSize {
		return nil, lumerr.New(lumerr.KindValidation, "LUM-REG-104", "entry data exceeds 86 bytes")
	}
	digest := signedDigest(datakey, data, revision)
	return ed25519.Sign(priv, digest[:]), nil
}

// VerifyEntry reports whether sig is a valid signature for the entry.
//
// VerifyEntry is total and fail-closed: malformed input of any shape returns
// false, never an error and never a panic.
func VerifyEntry(pubkey []byte, datakey Datakey, data []byte, revision uint64, sig []byte) bool {
	if len(pubkey) != ed25519.PublicKeySize {
		return false
	}
	if len(data) > MaxDataSize {
		return false
	}
	if len(sig) != ed25519.SignatureSize {
		return false
	}
	digest := signedDigest(datakey, data, revision)
	return ed25519.Verify(ed25519.PublicKey(pubkey), digest[:], sig)
}
