package cipher

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var positiveInt = regexp.MustCompile(`^[1-9][0-9]*$`)

// Scytale is the columnar transposition cipher. The message is arranged
// row-major into a grid of key columns; the ciphertext concatenates the
// columns top to bottom. When the message length is not a multiple of the
// key, the leading columns are one character taller than the rest.
type Scytale struct {
	columns int
}

// NewScytale parses key as a positive column count.
func NewScytale(key string) (*Scytale, error) {
	n, err := strconv.Atoi(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrKey, err)
	}
	if n < 1 {
		return nil, fmt.Errorf("%w: column count must be positive", ErrKey)
	}
	return &Scytale{columns: n}, nil
}

func (s *Scytale) Name() string     { return NameScytale }
func (s *Scytale) Codes() [2]string { return [2]string{"%d", "%P"} }

func (s *Scytale) Validate(action Action, data string) bool {
	return validatePositiveInt(action, data)
}

func (s *Scytale) Encrypt(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for col := 0; col < s.columns; col++ {
		for i := col; i < len(text); i += s.columns {
			b.WriteByte(text[i])
		}
	}
	return b.String()
}

// Decrypt reconstructs the row-major order from the column-concatenated
// ciphertext. Column heights are derivable from the length alone: with
// L = full·k + ragged, the first ragged columns hold full+1 characters.
func (s *Scytale) Decrypt(text string) string {
	k := s.columns
	full, ragged := len(text)/k, len(text)%k
	out := make([]byte, len(text))
	pos := 0
	for col := 0; col < k; col++ {
		height := full
		if col < ragged {
			height = full + 1
		}
		for row := 0; row < height; row++ {
			out[row*k+col] = text[pos]
			pos++
		}
	}
	return string(out)
}

func validatePositiveInt(action Action, data string) bool {
	if action == ActionDelete {
		return true
	}
	return positiveInt.MatchString(data)
}
