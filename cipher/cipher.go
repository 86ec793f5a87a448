// Package cipher implements the classical text ciphers used to transform a
// message before it is hidden in an image: an identity cipher, Caesar
// (additive shift), Hill (invertible matrix blocks), Scytale (columnar
// transposition) and Vigenère (polyalphabetic substitution).
//
// The ciphers are pedagogical, not secure against modern cryptanalysis.
// Instances are immutable once constructed; re-keying means constructing a
// new instance.
package cipher

import (
	"errors"
	"fmt"
)

// Action is the kind of single-character edit applied to a key while it is
// being typed. Validate predicates gate key entry one edit at a time.
type Action int

const (
	ActionDelete Action = iota
	ActionInsert
)

var (
	// ErrKey is the base of every key construction failure. All of the
	// more specific failures below satisfy errors.Is(err, ErrKey).
	ErrKey = errors.New("unusable cipher key")
	// ErrDegenerateKey reports an additive shift equivalent to zero.
	ErrDegenerateKey = fmt.Errorf("%w: shift value is equal to 0", ErrKey)
	// ErrNonInvertibleKey reports a singular key matrix.
	ErrNonInvertibleKey = fmt.Errorf("%w: key matrix is not invertible", ErrKey)
	// ErrNotCoprime reports a key matrix whose determinant has no modular
	// inverse over the alphabet.
	ErrNotCoprime = fmt.Errorf("%w: key determinant and alphabet length are not co-prime", ErrKey)
)

// Cipher transforms text over Alphabet. Out-of-alphabet input is a
// precondition violation, not a runtime error; no operation fails after
// successful construction.
type Cipher interface {
	Name() string
	// Codes returns the two opaque input-filter tokens a key entry widget
	// needs to wire this cipher's Validate predicate.
	Codes() [2]string
	// Validate reports whether a key-entry edit is acceptable.
	// Pure deletions are always acceptable.
	Validate(action Action, data string) bool
	Encrypt(text string) string
	Decrypt(text string) string
}

// The closed cipher enumeration. Selection is by name; there is no
// registration mechanism.
const (
	NameIdentity = ""
	NameCaesar   = "Caesar"
	NameHill     = "Hill"
	NameScytale  = "Scytale"
	NameVigenere = "Vigenère"
)

// Names returns the cipher enumeration in selection order.
func Names() []string {
	return []string{NameIdentity, NameCaesar, NameHill, NameScytale, NameVigenere}
}

// New builds the named cipher bound to key. An unknown name is a caller
// error and is reported outside the ErrKey family.
func New(name, key string) (Cipher, error) {
	switch name {
	case NameIdentity:
		return Identity{}, nil
	case NameCaesar:
		return NewCaesar(key)
	case NameHill:
		return NewHill(key)
	case NameScytale:
		return NewScytale(key)
	case NameVigenere:
		return NewVigenere(key)
	}
	return nil, fmt.Errorf("unknown cipher: %q", name)
}

// Validate runs the named cipher's key-entry predicate without an instance,
// for callers gating input before any valid key exists yet.
func Validate(name string, action Action, data string) bool {
	switch name {
	case NameCaesar:
		return validateDigits(action, data)
	case NameHill, NameVigenere:
		return validateMembers(action, data)
	case NameScytale:
		return validatePositiveInt(action, data)
	}
	return false
}

// Identity is the no-op cipher selected by the empty name. It takes no key,
// so its Validate rejects every edit.
type Identity struct{}

func (Identity) Name() string                 { return NameIdentity }
func (Identity) Codes() [2]string             { return [2]string{"%d", "%S"} }
func (Identity) Validate(Action, string) bool { return false }
func (Identity) Encrypt(text string) string   { return text }
func (Identity) Decrypt(text string) string   { return text }

func validateDigits(action Action, data string) bool {
	if action == ActionDelete {
		return true
	}
	if data == "" {
		return false
	}
	for i := 0; i < len(data); i++ {
		if data[i] < '0' || data[i] > '9' {
			return false
		}
	}
	return true
}

func validateMembers(action Action, data string) bool {
	if action == ActionDelete {
		return true
	}
	if data == "" {
		return false
	}
	_, bad := NonMember(data)
	return !bad
}
