// Package codec implements the fixed binary and text encodings shared by
// every higher layer.
//
// All multi-byte integers in this module are little-endian. This is not a
// style choice: signatures and content addresses are computed over these
// exact byte sequences, so the encoding must be bit-stable forever.
package codec

import (
	"encoding/base64"
	"encoding/binary"
	"encoding/hex"
	"strings"

	"xdao.co/lumen/lumerr"
)

// U64Size is the encoded width of a 64-bit integer.
const U64Size = 8

// EncodeU64 returns n as 8 little-endian bytes.
func EncodeU64(n uint64) []byte {
	b := make([]byte, U64Size)
	binary.LittleEndian.PutUint64(b, n)
	return b
}

// DecodeU64 reads a little-endian uint64 from exactly 8 bytes.
func DecodeU64(b []byte) (uint64, error) {
	if len(b) != U64Size {
		return 0, lumerr.New(lumerr.KindCodec, "LUM-CODEC-001", "u64 requires exactly 8 bytes")
	}
	return binary.LittleEndian.Uint64(b), nil
}

// EncodePrefixedBytes returns EncodeU64(len(b)) followed by b.
func EncodePrefixedBytes(b []byte) []byte {
	out := make([]byte, U64Size+len(b))
	binary.LittleEndian.PutUint64(out, uint64(len(b)))
	copy(out[U64Size:], b)
	return out
}

// DecodePrefixedBytes reads one length-prefixed byte string from the front of
// b and returns it along with the remaining unread bytes.
func DecodePrefixedBytes(b []byte) (val []byte, rest []byte, err error) {
	if len(b) < U64Size {
		return nil, nil, lumerr.New(lumerr.KindCodec, "LUM-CODEC-002", "short buffer for length prefix")
	}
	n := binary.LittleEndian.Uint64(b)
	if n > uint64(len(b)-U64Size) {
		return nil, nil, lumerr.New(lumerr.KindCodec, "LUM-CODEC-003", "length prefix exceeds buffer")
	}
	return b[U64Size : U64Size+n], b[U64Size+n:], nil
}

// b64 is the URL-safe, unpadded alphabet used for link strings and wire text.
var b64 = base64.RawURLEncoding

// ToB64 encodes b using the URL-safe unpadded base64 alphabet.
func ToB64(b []byte) string {
	return b64.EncodeToString(b)
}

// FromB64 decodes a URL-safe unpadded base64 string. Any byte outside the
// alphabet is an error, newlines included.
func FromB64(s string) ([]byte, error) {
	// DecodeString skips \r and \n rather than rejecting them. The wire
	// forms decoded here never contain whitespace, so treat both like any
	// other out-of-alphabet byte.
	if strings.ContainsAny(s, "\r\n") {
		return nil, lumerr.New(lumerr.KindCodec, "LUM-CODEC-011", "invalid base64")
	}
	b, err := b64.DecodeString(s)
	if err != nil {
		return nil, lumerr.Wrap(lumerr.KindCodec, "LUM-CODEC-011", "invalid base64", err)
	}
	return b, nil
}

// ToHex encodes b as lowercase hex.
func ToHex(b []byte) string {
	return hex.EncodeToString(b)
}

// FromHex decodes a hex string.
func FromHex(s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, lumerr.Wrap(lumerr.KindCodec, "LUM-CODEC-012", "invalid hex", err)
	}
	return b, nil
}
