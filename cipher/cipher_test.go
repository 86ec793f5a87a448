package cipher

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlphabet(t *testing.T) {
	assert.Len(t, Alphabet, 100)
	for i := 0; i < len(Alphabet); i++ {
		assert.Equal(t, i, index(Alphabet[i]), "alphabet characters must be unique")
	}
}

func TestNonMember(t *testing.T) {
	r, bad := NonMember("all printable: 123 {}\t")
	assert.False(t, bad, "unexpected non-member %q", r)

	r, bad = NonMember("caffè")
	assert.True(t, bad)
	assert.Equal(t, 'è', r)

	_, bad = NonMember("")
	assert.False(t, bad)
}

func TestRoundTrip(t *testing.T) {
	texts := []string{
		"Hello, World!",
		"0",
		"with whitespace\tand\nnewlines",
		"~`!@#$%^&*()_+-=[]{}|;':\",./<>?",
		strings.Repeat("abcXYZ019", 11),
	}
	test := []struct {
		name string
		key  string
	}{
		{NameIdentity, ""},
		{NameCaesar, "5"},
		{NameCaesar, "199"},   // shift wraps modulo the alphabet
		{NameCaesar, "-42"},   // negative shifts are valid keys
		{NameScytale, "1"},
		{NameScytale, "3"},
		{NameScytale, "7"},
		{NameScytale, "1000"}, // more columns than characters
		{NameVigenere, "Key 1"},
		{NameVigenere, "~"},
	}
	for _, tt := range test {
		t.Run(tt.name+"_"+tt.key, func(t *testing.T) {
			c, err := New(tt.name, tt.key)
			require.NoError(t, err)
			for _, text := range texts {
				enc := c.Encrypt(text)
				assert.Equal(t, text, c.Decrypt(enc))
				if tt.name != NameIdentity && tt.name != NameScytale {
					assert.NotEqual(t, text, enc)
				}
			}
		})
	}
}

func TestScytaleRaggedGrid(t *testing.T) {
	// L=7, k=3: two columns of 3 rows and one column of 2.
	c, err := NewScytale("3")
	require.NoError(t, err)

	enc := c.Encrypt("abcdefg")
	assert.Equal(t, "adgbecf", enc)
	assert.Equal(t, "abcdefg", c.Decrypt(enc))

	// Every ragged combination inverts exactly.
	for k := 1; k <= 9; k++ {
		c, err := NewScytale(string(rune('0' + k)))
		require.NoError(t, err)
		for l := 0; l <= 20; l++ {
			text := Alphabet[:l]
			assert.Equal(t, text, c.Decrypt(c.Encrypt(text)), "L=%d k=%d", l, k)
		}
	}
}

func TestCaesarDegenerateKey(t *testing.T) {
	for _, key := range []string{"0", "100", "200", "-100"} {
		_, err := NewCaesar(key)
		assert.ErrorIs(t, err, ErrDegenerateKey, "key=%s", key)
		assert.ErrorIs(t, err, ErrKey, "key=%s", key)
	}
	_, err := NewCaesar("not a number")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrKey)
	assert.NotErrorIs(t, err, ErrDegenerateKey)
}

func TestHillKeyRejection(t *testing.T) {
	// "0000" fills a singular 2×2 all-zero matrix.
	_, err := NewHill("0000")
	assert.ErrorIs(t, err, ErrNonInvertibleKey)

	// "20" derives [[2,0],[0,1]]: det 2 shares a factor with the
	// 100-character alphabet.
	_, err = NewHill("20")
	assert.ErrorIs(t, err, ErrNotCoprime)

	_, err = NewHill("")
	assert.ErrorIs(t, err, ErrKey)

	_, err = NewHill("caffè")
	assert.ErrorIs(t, err, ErrKey)
}

func TestHillRoundTrip(t *testing.T) {
	test := []struct {
		name string
		key  string
		dim  int
	}{
		{"2x2_padded", "31", 2},     // [[3,1],[0,1]], det 3
		{"2x2_full_key", "3021", 2}, // [[3,0],[2,1]], det 3
		{"3x3", "123014001", 3},     // upper triangular, det 1
		{"1x1", "3", 1},
	}
	for _, tt := range test {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewHill(tt.key)
			require.NoError(t, err)
			require.Equal(t, tt.dim, c.dim)

			// Whole blocks invert exactly.
			text := Alphabet[:6*tt.dim]
			assert.Equal(t, text, c.Decrypt(c.Encrypt(text)))

			// A partial final block is padded with the fill counter, so
			// decryption returns the text plus decoded padding.
			text = "Hello!?"
			dec := c.Decrypt(c.Encrypt(text))
			assert.True(t, strings.HasPrefix(dec, text), "got %q", dec)
			assert.Zero(t, len(dec)%tt.dim)
		})
	}
}

func TestHillEmptyText(t *testing.T) {
	c, err := NewHill("31")
	require.NoError(t, err)
	assert.Equal(t, "", c.Encrypt(""))
	assert.Equal(t, "", c.Decrypt(""))
}

func TestModInverse(t *testing.T) {
	for _, a := range []int{1, 3, 7, 9, 11, 13, 17, 19, 21, 23, -3, -7, 99, 101} {
		require.Equal(t, 1, gcd(a, alphabetLen))
		inv := modInverse(a, alphabetLen)
		assert.Equal(t, 1, ((a*inv)%alphabetLen+alphabetLen)%alphabetLen, "a=%d", a)
	}
}

func TestNewUnknownName(t *testing.T) {
	_, err := New("Enigma", "key")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrKey)
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"", "Caesar", "Hill", "Scytale", "Vigenère"}, Names())
	for _, name := range Names()[1:] {
		_, err := New(name, "")
		assert.ErrorIs(t, err, ErrKey, "empty key must not build a %s cipher", name)
	}
}

func TestValidate(t *testing.T) {
	test := []struct {
		name   string
		cipher string
		action Action
		data   string
		want   bool
	}{
		{"identity_rejects_insert", NameIdentity, ActionInsert, "1", false},
		{"identity_rejects_delete", NameIdentity, ActionDelete, "", false},
		{"caesar_digit", NameCaesar, ActionInsert, "7", true},
		{"caesar_digits", NameCaesar, ActionInsert, "42", true},
		{"caesar_letter", NameCaesar, ActionInsert, "x", false},
		{"caesar_empty", NameCaesar, ActionInsert, "", false},
		{"caesar_delete", NameCaesar, ActionDelete, "x", true},
		{"scytale_positive", NameScytale, ActionInsert, "12", true},
		{"scytale_leading_zero", NameScytale, ActionInsert, "012", false},
		{"scytale_zero", NameScytale, ActionInsert, "0", false},
		{"scytale_delete", NameScytale, ActionDelete, "", true},
		{"vigenere_member", NameVigenere, ActionInsert, "aZ9!", true},
		{"vigenere_non_member", NameVigenere, ActionInsert, "è", false},
		{"hill_member", NameHill, ActionInsert, "abc", true},
		{"hill_delete", NameHill, ActionDelete, "è", true},
	}
	for _, tt := range test {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Validate(tt.cipher, tt.action, tt.data))
		})
	}
}

func TestValidateMatchesInstances(t *testing.T) {
	instances := map[string]Cipher{
		NameCaesar:   must(NewCaesar("5")),
		NameHill:     must(NewHill("31")),
		NameScytale:  must(NewScytale("3")),
		NameVigenere: must(NewVigenere("key")),
	}
	for name, c := range instances {
		for _, data := range []string{"5", "a", "è", "012"} {
			assert.Equal(t, Validate(name, ActionInsert, data), c.Validate(ActionInsert, data),
				"%s disagrees with package-level Validate on %q", name, data)
		}
		assert.True(t, c.Validate(ActionDelete, ""))
	}
}

func must[C Cipher](c C, err error) C {
	if err != nil {
		panic(err)
	}
	return c
}

func TestCodes(t *testing.T) {
	for _, name := range Names() {
		key := "31"
		if name == NameIdentity {
			key = ""
		}
		c, err := New(name, key)
		require.NoError(t, err)
		codes := c.Codes()
		assert.NotEmpty(t, codes[0])
		assert.NotEmpty(t, codes[1])
		assert.Equal(t, name, c.Name())
	}
}

func TestCaesarKnownValues(t *testing.T) {
	c, err := NewCaesar("5")
	require.NoError(t, err)
	// '0' is index 0, so a shift of 5 maps it to '5'.
	assert.Equal(t, "5", c.Encrypt("0"))
	assert.Equal(t, "0", c.Decrypt("5"))
	// 'z' (index 35) + 5 wraps into the uppercase range.
	assert.Equal(t, "E", c.Encrypt("z"))
}
