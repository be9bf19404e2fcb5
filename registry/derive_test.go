package registry

import (
	"bytes"
	"strings"
	"testing"
)

func testSeed(fill byte) []byte {
	s := make([]byte, 16)
	for i := range s {
		s[i] = fill + byte(i)
	}
	return s
}

func TestTaggedKeysDeterministic(t *testing.T) {
	a, err := TaggedKeys(testSeed(1), "profile", "prefs")
	if err != nil {
		t.Fatalf("TaggedKeys: %v", err)
	}
	b, err := TaggedKeys(testSeed(1), "profile", "prefs")
	if err != nil {
		t.Fatalf("TaggedKeys: %v", err)
	}
	if !a.PublicKey.Equal(b.PublicKey) || a.Datakey != b.Datakey {
		t.Fatalf("expected deterministic derivation")
	}
}

func TestTaggedKeysIndependence(t *testing.T) {
	ad, err := TaggedKeys(testSeed(1), "A", "D")
	if err != nil {
		t.Fatalf("TaggedKeys: %v", err)
	}
	bd, err := TaggedKeys(testSeed(1), "B", "D")
	if err != nil {
		t.Fatalf("TaggedKeys: %v", err)
	}
	// Different keypair tag: both keypair and datakey change.
	if ad.PublicKey.Equal(bd.PublicKey) {
		t.Fatalf("distinct keypair tags produced the same keypair")
	}
	if ad.Datakey == bd.Datakey {
		t.Fatalf("distinct keypair tags produced the same datakey")
	}

	// Same keypair tag, different datakey tag: keypair fixed, datakey moves.
	ad2, err := TaggedKeys(testSeed(1), "A", "D2")
	if err != nil {
		t.Fatalf("TaggedKeys: %v", err)
	}
	if !ad.PublicKey.Equal(ad2.PublicKey) {
		t.Fatalf("datakey tag changed the keypair")
	}
	if ad.Datakey == ad2.Datakey {
		t.Fatalf("distinct datakey tags produced the same datakey")
	}

	// Different seed: everything changes.
	other, err := TaggedKeys(testSeed(2), "A", "D")
	if err != nil {
		t.Fatalf("TaggedKeys: %v", err)
	}
	if ad.PublicKey.Equal(other.PublicKey) || ad.Datakey == other.Datakey {
		t.Fatalf("distinct seeds produced related keys")
	}
}

// The one-byte tag-length prefix keeps ("ab","c") and ("a","bc") from
// colliding. Losing this property would let one slot impersonate another.
func TestTaggedKeysNoTagPairAmbiguity(t *testing.T) {
	a, err := TaggedKeys(testSeed(1), "ab", "c")
	if err != nil {
		t.Fatalf("TaggedKeys: %v", err)
	}
	b, err := TaggedKeys(testSeed(1), "a", "bc")
	if err != nil {
		t.Fatalf("TaggedKeys: %v", err)
	}
	if a.Datakey == b.Datakey {
		t.Fatalf("tag pair ambiguity: (ab,c) and (a,bc) derived the same datakey")
	}
}

func TestTaggedKeysValidation(t *testing.T) {
	if _, err := TaggedKeys(testSeed(1)[:15], "A", "D"); err == nil {
		t.Fatalf("expected error for short seed")
	}
	if _, err := TaggedKeys(testSeed(1), strings.Repeat("x", 256), "D"); err == nil {
		t.Fatalf("expected error for overlong keypair tag")
	}
	// 255 characters is still legal.
	if _, err := TaggedKeys(testSeed(1), strings.Repeat("x", 255), "D"); err != nil {
		t.Fatalf("TaggedKeys with 255-char tag: %v", err)
	}
	// The datakey tag is unbounded; only the keypair tag carries the
	// one-byte length prefix.
	if _, err := TaggedKeys(testSeed(1), "A", strings.Repeat("y", 300)); err != nil {
		t.Fatalf("TaggedKeys with long datakey tag: %v", err)
	}
}

func TestTaggedKeysSignCapable(t *testing.T) {
	k, err := TaggedKeys(testSeed(5), "app", "slot")
	if err != nil {
		t.Fatalf("TaggedKeys: %v", err)
	}
	sig, err := SignEntry(k.PrivateKey, k.Datakey, []byte("hello"), 1)
	if err != nil {
		t.Fatalf("SignEntry: %v", err)
	}
	if !VerifyEntry(k.PublicKey, k.Datakey, []byte("hello"), 1, sig) {
		t.Fatalf("derived keypair failed entry sign/verify")
	}
	if bytes.Equal(k.PublicKey, k.Datakey[:]) {
		t.Fatalf("public key and datakey should be unrelated")
	}
}
