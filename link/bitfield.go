package link

import "xdao.co/lumen/lumerr"

// The 16-bit bitfield, reading up from the least significant bit:
//
//	bits 0-1   version minus one
//	then       the mode, in unary: m consecutive 1 bits and a 0 terminator
//	then       3 bits selecting the fetch-size class within the mode
//	then       the remaining 10-m bits of offset, in offset-aligned units
//
// Mode 0 classes step by 4096 up to 32768; each higher mode starts where the
// previous ended and doubles the step, topping out at the sector size. The
// class is an upper bound, not an exact byte count: addresses trade size
// precision for compactness.
const (
	// resolverBitfield is the fixed bitfield of a version 2 (mutable
	// resolver) address: version bits 01, every other bit zero.
	resolverBitfield uint16 = 1

	maxMode = 7

	baseAlign = 4096
)

// buildBitfield returns the version 1 bitfield with the smallest size class
// covering dataSize and a zero offset.
func buildBitfield(dataSize uint64) (uint16, error) {
	if dataSize > SectorSize {
		return 0, lumerr.New(lumerr.KindValidation, "LUM-LINK-101", "data size exceeds the largest representable class")
	}

	mode := uint16(0)
	for dataSize > uint64(1)<<(15+mode) {
		mode++
	}

	align := uint64(baseAlign)
	start := uint64(0)
	if mode > 0 {
		align = baseAlign << (mode - 1)
		start = align << 3
	}
	class := uint16(0)
	if dataSize > start+align {
		class = uint16((dataSize - start - 1) / align)
	}

	bf := class
	bf = bf<<(mode+1) | (1<<mode - 1)
	bf = bf << 2 // version 1 encodes as 00
	return bf, nil
}

// parseBitfield decodes a bitfield into version, offset, and fetch size.
func parseBitfield(bf uint16) (version int, offset uint64, fetchSize uint64, err error) {
	version = int(bf&3) + 1
	bf >>= 2

	switch version {
	case 1:
		// fall through to the mode decode below
	case 2:
		if bf != 0 {
			return 0, 0, 0, lumerr.New(lumerr.KindValidation, "LUM-LINK-102", "resolver address carries nonzero payload bits")
		}
		return 2, 0, 0, nil
	default:
		return 0, 0, 0, lumerr.New(lumerr.KindValidation, "LUM-LINK-103", "unrecognized address version")
	}

	mode := uint16(0)
	for bf&1 == 1 {
		bf >>= 1
		mode++
		if mode > maxMode {
			return 0, 0, 0, lumerr.New(lumerr.KindValidation, "LUM-LINK-104", "address mode out of range")
		}
	}
	bf >>= 1 // mode terminator

	align := uint64(baseAlign)
	fetchAlign := uint64(baseAlign)
	if mode > 0 {
		align = baseAlign << mode
		fetchAlign = baseAlign << (mode - 1)
	}

	fetchSize = uint64(bf&7)*fetchAlign + fetchAlign
	if mode > 0 {
		fetchSize += fetchAlign << 3
	}
	bf >>= 3

	offset = uint64(bf) * align
	if offset+fetchSize > SectorSize {
		return 0, 0, 0, lumerr.New(lumerr.KindValidation, "LUM-LINK-105", "address window exceeds the sector")
	}
	return 1, offset, fetchSize, nil
}
