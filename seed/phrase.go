package seed

import (
	"crypto/rand"
	"encoding/binary"
	"strings"

	"xdao.co/lumen/chash"
	"xdao.co/lumen/lumerr"
)

// GeneratePhrase returns a 15-word seed phrase.
//
// With an empty password, 32 bytes are drawn from the system entropy source
// and hashed to select words; two calls will produce unrelated phrases.
//
// With a non-empty password, the word-selection entropy is the wide hash of
// the password text, so the same password always yields the same phrase.
// This path exists for low-security and testing flows only; callers must not
// treat a password-derived phrase as a secret of the password's strength.
//
// Quirk, preserved deliberately: the deterministic path restricts the final
// entropy word to the first quarter of the dictionary, while the random path
// draws it from the full dictionary. Both forms validate, because the final
// word only contributes its low 8 bits of index to the seed.
func GeneratePhrase(password string) (string, error) {
	var entropy [chash.WideSize]byte
	if password == "" {
		var draw [32]byte
		if _, err := rand.Read(draw[:]); err != nil {
			return "", lumerr.Wrap(lumerr.KindInternal, "LUM-SEED-011", "entropy source failed", err)
		}
		entropy = chash.HashWide(draw[:])
	} else {
		entropy = chash.HashWide([]byte(password))
	}

	var indices [EntropyWords]int
	for i := 0; i < EntropyWords; i++ {
		n := int(binary.LittleEndian.Uint16(entropy[2*i : 2*i+2]))
		if password != "" && i == EntropyWords-1 {
			indices[i] = n % (DictionarySize / 4)
		} else {
			indices[i] = n % DictionarySize
		}
	}

	s := packIndices(indices)
	c1, c2 := SeedToChecksumWords(s)

	words := make([]string, 0, PhraseWords)
	for _, idx := range indices {
		words = append(words, dictionary[idx])
	}
	words = append(words, c1, c2)
	return strings.Join(words, " "), nil
}

// PhraseToSeed converts a phrase back into its seed.
//
// The phrase is split on whitespace into 13 entropy words and 2 checksum
// words. Words are resolved by their unique 3-character prefix, the entropy
// indices are packed into 16 bytes (low 8 bits only for the final word), and
// the checksum words are recomputed from the resulting seed and compared by
// the same prefix rule.
func PhraseToSeed(phrase string) (Seed, error) {
	var s Seed
	words := strings.Fields(phrase)
	if len(words) != PhraseWords {
		return s, lumerr.New(lumerr.KindValidation, "LUM-SEED-101", "phrase must contain exactly 15 words")
	}

	var indices [EntropyWords]int
	for i := 0; i < EntropyWords; i++ {
		idx, err := wordIndex(words[i])
		if err != nil {
			return s, err
		}
		indices[i] = idx
	}
	s = packIndices(indices)

	c1, c2 := SeedToChecksumWords(s)
	if !prefixEqual(words[EntropyWords], c1) || !prefixEqual(words[EntropyWords+1], c2) {
		return s, lumerr.New(lumerr.KindChecksum, "LUM-SEED-103", "phrase checksum mismatch")
	}
	return s, nil
}

// ValidPhrase reports whether phrase decodes to a seed.
func ValidPhrase(phrase string) bool {
	_, err := PhraseToSeed(phrase)
	return err == nil
}

// SeedToChecksumWords returns the two checksum words for a seed.
//
// The wide hash of the seed is taken and the first 20 bits index the
// dictionary: word one from bits [0,10), word two from bits [10,20).
func SeedToChecksumWords(s Seed) (string, string) {
	h := chash.HashWide(s[:])
	i1 := int(h[0])<<2 | int(h[1])>>6
	i2 := (int(h[1])&0x3F)<<4 | int(h[2])>>4
	return dictionary[i1], dictionary[i2]
}

// wordIndex resolves a user-supplied word to its dictionary index by unique
// prefix. The word must carry at least UniquePrefixLen characters.
func wordIndex(word string) (int, error) {
	w := strings.ToLower(word)
	if len(w) < UniquePrefixLen {
		return 0, lumerr.New(lumerr.KindValidation, "LUM-SEED-102", "word not found in dictionary: "+word)
	}
	prefix := w[:UniquePrefixLen]
	for i, d := range dictionary {
		if strings.HasPrefix(d, prefix) {
			return i, nil
		}
	}
	return 0, lumerr.New(lumerr.KindValidation, "LUM-SEED-102", "word not found in dictionary: "+word)
}

func prefixEqual(got, want string) bool {
	g := strings.ToLower(got)
	if len(g) < UniquePrefixLen || len(want) < UniquePrefixLen {
		return false
	}
	return g[:UniquePrefixLen] == want[:UniquePrefixLen]
}

// packIndices packs 13 word indices into a seed: 10 bits per word, except
// the final word which contributes only its low 8 bits. Bits fill each byte
// most-significant first.
func packIndices(indices [EntropyWords]int) Seed {
	var s Seed
	bitPos := 0
	for i, idx := range indices {
		width := 10
		if i == EntropyWords-1 {
			width = 8
			idx &= 0xFF
		}
		for j := width - 1; j >= 0; j-- {
			if idx&(1<<j) != 0 {
				s[bitPos/8] |= 1 << (7 - bitPos%8)
			}
			bitPos++
		}
	}
	return s
}
