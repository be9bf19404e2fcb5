package codec

import (
	"bytes"
	"testing"

	"xdao.co/lumen/lumerr"
)

func TestEncodeU64LittleEndian(t *testing.T) {
	cases := []struct {
		n    uint64
		want []byte
	}{
		{0, []byte{0, 0, 0, 0, 0, 0, 0, 0}},
		{1, []byte{1, 0, 0, 0, 0, 0, 0, 0}},
		{256, []byte{0, 1, 0, 0, 0, 0, 0, 0}},
		{0x0102030405060708, []byte{8, 7, 6, 5, 4, 3, 2, 1}},
		{^uint64(0), []byte{255, 255, 255, 255, 255, 255, 255, 255}},
	}
	for _, c := range cases {
		got := EncodeU64(c.n)
		if !bytes.Equal(got, c.want) {
			t.Fatalf("EncodeU64(%d) = %v, want %v", c.n, got, c.want)
		}
		back, err := DecodeU64(got)
		if err != nil {
			t.Fatalf("DecodeU64: %v", err)
		}
		if back != c.n {
			t.Fatalf("round trip mismatch: got %d want %d", back, c.n)
		}
	}
}

func TestDecodeU64WrongLength(t *testing.T) {
	if _, err := DecodeU64([]byte{1, 2, 3}); err == nil {
		t.Fatalf("expected error for short buffer")
	}
	if _, err := DecodeU64(make([]byte, 9)); err == nil {
		t.Fatalf("expected error for long buffer")
	}
}

func TestEncodePrefixedBytes(t *testing.T) {
	b := EncodePrefixedBytes([]byte("abc"))
	want := append([]byte{3, 0, 0, 0, 0, 0, 0, 0}, 'a', 'b', 'c')
	if !bytes.Equal(b, want) {
		t.Fatalf("EncodePrefixedBytes = %v, want %v", b, want)
	}

	val, rest, err := DecodePrefixedBytes(append(b, 0xFF))
	if err != nil {
		t.Fatalf("DecodePrefixedBytes: %v", err)
	}
	if string(val) != "abc" {
		t.Fatalf("value = %q, want abc", val)
	}
	if !bytes.Equal(rest, []byte{0xFF}) {
		t.Fatalf("rest = %v", rest)
	}
}

func TestDecodePrefixedBytesMalformed(t *testing.T) {
	if _, _, err := DecodePrefixedBytes([]byte{1, 2}); err == nil {
		t.Fatalf("expected error for truncated prefix")
	}
	// Length prefix claims more bytes than the buffer holds.
	if _, _, err := DecodePrefixedBytes([]byte{9, 0, 0, 0, 0, 0, 0, 0, 'x'}); err == nil {
		t.Fatalf("expected error for overlong prefix")
	}
}

func TestB64RoundTrip(t *testing.T) {
	inputs := [][]byte{nil, {0}, {0xFF, 0xFE, 0x00}, bytes.Repeat([]byte{0xAB}, 34)}
	for _, in := range inputs {
		s := ToB64(in)
		out, err := FromB64(s)
		if err != nil {
			t.Fatalf("FromB64(%q): %v", s, err)
		}
		if !bytes.Equal(out, in) {
			t.Fatalf("round trip mismatch for %v", in)
		}
	}
}

func TestB64RejectsInvalid(t *testing.T) {
	for _, s := range []string{"!!!!", "a=b=", "ab\ncd", "ab\rcd", "abcd\n"} {
		if _, err := FromB64(s); err == nil {
			t.Fatalf("FromB64(%q): expected error", s)
		} else if !lumerr.IsKind(err, lumerr.KindCodec) {
			t.Fatalf("FromB64(%q): expected Codec kind, got %v", s, err)
		}
	}
}

func TestHexRoundTrip(t *testing.T) {
	in := []byte{0x00, 0x01, 0xAB, 0xFF}
	s := ToHex(in)
	if s != "0001abff" {
		t.Fatalf("ToHex = %q", s)
	}
	out, err := FromHex(s)
	if err != nil {
		t.Fatalf("FromHex: %v", err)
	}
	if !bytes.Equal(out, in) {
		t.Fatalf("round trip mismatch")
	}
	if _, err := FromHex("zz"); err == nil {
		t.Fatalf("expected error for invalid hex")
	}
	if _, err := FromHex("abc"); err == nil {
		t.Fatalf("expected error for odd-length hex")
	}
}
