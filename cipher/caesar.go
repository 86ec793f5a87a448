package cipher

import (
	"fmt"
	"strconv"
)

// Caesar is the additive shift cipher. The key is an integer shift applied
// to every character's alphabet index.
type Caesar struct {
	shift int
}

// NewCaesar parses key as an integer shift. A shift equivalent to zero
// modulo the alphabet length is rejected with ErrDegenerateKey: it would
// map every message to itself.
func NewCaesar(key string) (*Caesar, error) {
	shift, err := strconv.Atoi(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrKey, err)
	}
	if shift%alphabetLen == 0 {
		return nil, ErrDegenerateKey
	}
	return &Caesar{shift: shift}, nil
}

func (c *Caesar) Name() string     { return NameCaesar }
func (c *Caesar) Codes() [2]string { return [2]string{"%d", "%S"} }

func (c *Caesar) Validate(action Action, data string) bool {
	return validateDigits(action, data)
}

func (c *Caesar) Encrypt(text string) string { return addText(text, c.shift) }
func (c *Caesar) Decrypt(text string) string { return addText(text, -c.shift) }

func addText(text string, offset int) string {
	out := make([]byte, len(text))
	for i := 0; i < len(text); i++ {
		out[i] = shiftChar(text[i], offset)
	}
	return string(out)
}
