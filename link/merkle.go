package link

import (
	"xdao.co/lumen/chash"
	"xdao.co/lumen/lumerr"
)

// LeafSize is the byte length of a Merkle tree leaf.
const LeafSize = 64

// Domain-separation prefixes for tree hashing. A leaf hash can never be
// confused with an interior hash.
const (
	merkleLeafPrefix     = 0x00
	merkleInteriorPrefix = 0x01
)

// MerkleRoot computes the content Merkle root of a full sector.
//
// The sector is split into 64-byte leaves and reduced as a binary tree with
// the content hash. The sector must be exactly SectorSize bytes; callers
// addressing smaller payloads zero-pad before hashing, because the root is
// defined over the padded sector.
func MerkleRoot(sector []byte) ([chash.ContentSize]byte, error) {
	var root [chash.ContentSize]byte
	if len(sector) != SectorSize {
		return root, lumerr.New(lumerr.KindValidation, "LUM-LINK-201", "sector must be exactly 4 MiB")
	}

	level := make([][chash.ContentSize]byte, SectorSize/LeafSize)
	var buf [1 + LeafSize]byte
	buf[0] = merkleLeafPrefix
	for i := range level {
		copy(buf[1:], sector[i*LeafSize:(i+1)*LeafSize])
		level[i] = chash.HashContent(buf[:])
	}

	var node [1 + 2*chash.ContentSize]byte
	node[0] = merkleInteriorPrefix
	for len(level) > 1 {
		next := level[:len(level)/2]
		for i := range next {
			copy(node[1:], level[2*i][:])
			copy(node[1+chash.ContentSize:], level[2*i+1][:])
			next[i] = chash.HashContent(node[:])
		}
		level = next
	}
	return level[0], nil
}
