// Package link implements the 34-byte self-describing content address.
//
// An address is a 2-byte little-endian bitfield followed by a 32-byte target
// hash. Version 1 addresses point at immutable content (the target is a
// sector Merkle root) and encode a quantized fetch-size class plus an offset
// in the bitfield. Version 2 addresses point at a mutable registry entry
// (the target is an entry ID) and carry an empty bitfield remainder.
//
// The layout is fixed by an external protocol specification; nothing in this
// package is free to change.
package link

import (
	"encoding/binary"

	"xdao.co/lumen/codec"
	"xdao.co/lumen/lumerr"
)

const (
	// Size is the raw byte length of an address.
	Size = 34

	// TargetSize is the byte length of the target hash.
	TargetSize = 32

	// StringSize is the length of the base64url string form.
	StringSize = 46

	// SectorSize bounds the data reachable through a version 1 address.
	SectorSize = 1 << 22
)

// Link is a 34-byte content address.
type Link [Size]byte

// NewV1 builds a version 1 address for immutable content: the Merkle root of
// the carrying sector, plus the smallest size class covering dataSize.
func NewV1(root [TargetSize]byte, dataSize uint64) (Link, error) {
	var l Link
	bf, err := buildBitfield(dataSize)
	if err != nil {
		return l, err
	}
	binary.LittleEndian.PutUint16(l[:2], bf)
	copy(l[2:], root[:])
	return l, nil
}

// NewResolver builds a version 2 address pointing at a registry entry ID.
// The bitfield carries only the version; a resolver address has no size.
func NewResolver(entryID [TargetSize]byte) Link {
	var l Link
	binary.LittleEndian.PutUint16(l[:2], resolverBitfield)
	copy(l[2:], entryID[:])
	return l
}

// FromBytes parses a raw 34-byte address, validating the bitfield.
func FromBytes(b []byte) (Link, error) {
	var l Link
	if len(b) != Size {
		return l, lumerr.New(lumerr.KindValidation, "LUM-LINK-001", "address must be exactly 34 bytes")
	}
	copy(l[:], b)
	if _, _, _, err := parseBitfield(binary.LittleEndian.Uint16(l[:2])); err != nil {
		return Link{}, err
	}
	return l, nil
}

// FromString parses the 46-character base64url form.
func FromString(s string) (Link, error) {
	if len(s) != StringSize {
		return Link{}, lumerr.New(lumerr.KindValidation, "LUM-LINK-002", "address string must be exactly 46 characters")
	}
	raw, err := codec.FromB64(s)
	if err != nil {
		return Link{}, lumerr.Wrap(lumerr.KindValidation, "LUM-LINK-003", "undecodable address string", err)
	}
	return FromBytes(raw)
}

// String returns the base64url form.
func (l Link) String() string {
	return codec.ToB64(l[:])
}

// Bytes returns a copy of the raw address.
func (l Link) Bytes() []byte {
	out := make([]byte, Size)
	copy(out, l[:])
	return out
}

// Target returns the 32-byte target hash (Merkle root or entry ID).
func (l Link) Target() [TargetSize]byte {
	var t [TargetSize]byte
	copy(t[:], l[2:])
	return t
}

// Version returns the address version (1 or 2).
func (l Link) Version() (int, error) {
	v, _, _, err := parseBitfield(binary.LittleEndian.Uint16(l[:2]))
	return v, err
}

// OffsetAndFetchSize decodes the version 1 data window. Version 2 addresses
// report a zero window.
func (l Link) OffsetAndFetchSize() (offset uint64, fetchSize uint64, err error) {
	_, offset, fetchSize, err = parseBitfield(binary.LittleEndian.Uint16(l[:2]))
	return offset, fetchSize, err
}
