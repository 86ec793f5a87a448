package cipher

import "strings"

// Alphabet is the fixed ordered character set every cipher operates over:
// digits, lowercase, uppercase, punctuation and whitespace, 100 characters
// total. All index arithmetic is modulo its length. Every character handed
// to Encrypt or Decrypt must be a member; callers check with NonMember
// before invoking a cipher.
const Alphabet = "0123456789abcdefghijklmnopqrstuvwxyz" +
	"ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~" +
	" \t\n\r\x0b\x0c"

const alphabetLen = len(Alphabet)

func index(b byte) int {
	return strings.IndexByte(Alphabet, b)
}

// NonMember returns the first character of s outside the alphabet, if any.
func NonMember(s string) (rune, bool) {
	for _, r := range s {
		if r > 0x7f || !strings.ContainsRune(Alphabet, r) {
			return r, true
		}
	}
	return 0, false
}

// shiftChar maps a single alphabet member by a signed index offset.
func shiftChar(b byte, offset int) byte {
	i := (index(b) + offset) % alphabetLen
	if i < 0 {
		i += alphabetLen
	}
	return Alphabet[i]
}
