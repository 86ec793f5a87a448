package cipher

import "fmt"

// Vigenere is the polyalphabetic substitution cipher. The key stream is the
// key repeated to message length; each character is shifted by the index of
// its key-stream character.
type Vigenere struct {
	key string
}

// NewVigenere requires a non-empty key composed of alphabet members.
func NewVigenere(key string) (*Vigenere, error) {
	if key == "" {
		return nil, fmt.Errorf("%w: empty key", ErrKey)
	}
	if r, bad := NonMember(key); bad {
		return nil, fmt.Errorf("%w: %q is not in the alphabet", ErrKey, r)
	}
	return &Vigenere{key: key}, nil
}

func (v *Vigenere) Name() string     { return NameVigenere }
func (v *Vigenere) Codes() [2]string { return [2]string{"%d", "%S"} }

func (v *Vigenere) Validate(action Action, data string) bool {
	return validateMembers(action, data)
}

func (v *Vigenere) Encrypt(text string) string { return v.run(text, 1) }
func (v *Vigenere) Decrypt(text string) string { return v.run(text, -1) }

func (v *Vigenere) run(text string, sign int) string {
	out := make([]byte, len(text))
	for i := 0; i < len(text); i++ {
		k := index(v.key[i%len(v.key)])
		out[i] = shiftChar(text[i], sign*k)
	}
	return string(out)
}
