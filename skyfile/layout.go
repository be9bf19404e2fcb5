// Package skyfile implements the fixed wire layouts for uploaded content:
// the 99-byte sector layout header, the 92-byte upload-request header, and
// base-sector assembly with verifiable addressing.
//
// These shapes belong to an external protocol specification. Field order,
// widths, and endianness are not negotiable.
package skyfile

import (
	"encoding/binary"

	"xdao.co/lumen/lumerr"
)

// LayoutSize is the encoded size of the sector layout header.
const LayoutSize = 99

// LayoutVersion is the only layout version this library produces.
const LayoutVersion = 1

// cipherTypePlaintext is the 8-byte cipher-type field for unencrypted
// content: all zero with the trailer byte set.
var cipherTypePlaintext = [8]byte{7: 1}

// Layout is the header at the front of every base sector. It tells a
// downloader how to slice the sector without consulting anything external.
type Layout struct {
	Version            uint8
	Filesize           uint64
	MetadataSize       uint64
	FanoutSize         uint64
	FanoutDataPieces   uint8
	FanoutParityPieces uint8
	CipherType         [8]byte
	KeyData            [64]byte
}

// Encode renders the layout into its fixed 99-byte form.
func (l *Layout) Encode() []byte {
	b := make([]byte, LayoutSize)
	b[0] = l.Version
	binary.LittleEndian.PutUint64(b[1:9], l.Filesize)
	binary.LittleEndian.PutUint64(b[9:17], l.MetadataSize)
	binary.LittleEndian.PutUint64(b[17:25], l.FanoutSize)
	b[25] = l.FanoutDataPieces
	b[26] = l.FanoutParityPieces
	copy(b[27:35], l.CipherType[:])
	copy(b[35:99], l.KeyData[:])
	return b
}

// DecodeLayout parses a 99-byte layout header.
func DecodeLayout(b []byte) (Layout, error) {
	var l Layout
	if len(b) != LayoutSize {
		return l, lumerr.New(lumerr.KindValidation, "LUM-FILE-001", "layout must be exactly 99 bytes")
	}
	l.Version = b[0]
	if l.Version != LayoutVersion {
		return Layout{}, lumerr.New(lumerr.KindValidation, "LUM-FILE-002", "unrecognized layout version")
	}
	l.Filesize = binary.LittleEndian.Uint64(b[1:9])
	l.MetadataSize = binary.LittleEndian.Uint64(b[9:17])
	l.FanoutSize = binary.LittleEndian.Uint64(b[17:25])
	l.FanoutDataPieces = b[25]
	l.FanoutParityPieces = b[26]
	copy(l.CipherType[:], b[27:35])
	copy(l.KeyData[:], b[35:99])
	return l, nil
}
