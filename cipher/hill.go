package cipher

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Hill is the matrix block cipher. The key string fills a square matrix of
// alphabet indices row-major; cells beyond the key take an incrementing
// fill counter (0, 1, 2, …). The same counter pads the final message block,
// so encrypt/decrypt symmetry depends on both fills matching.
type Hill struct {
	dim    int
	key    *mat.Dense
	decode *mat.Dense
}

// NewHill derives an m×m key matrix with m = ceil(sqrt(len(key))). The
// matrix must be invertible and its determinant co-prime with the alphabet
// length, otherwise no decode matrix exists. The decode matrix is the
// adjugate scaled by the determinant's modular inverse, rounded to the
// nearest integer matrix; an accepted approximation for the small
// dimensions realistic keys produce.
func NewHill(key string) (*Hill, error) {
	if key == "" {
		return nil, fmt.Errorf("%w: empty key", ErrKey)
	}
	if r, bad := NonMember(key); bad {
		return nil, fmt.Errorf("%w: %q is not in the alphabet", ErrKey, r)
	}
	dim := int(math.Ceil(math.Sqrt(float64(len(key)))))
	keyMat := fillRowMajor(key, dim)

	det := int(math.Round(mat.Det(keyMat)))
	if det == 0 {
		return nil, ErrNonInvertibleKey
	}
	if gcd(det, alphabetLen) != 1 {
		return nil, ErrNotCoprime
	}

	var inv mat.Dense
	if err := inv.Inverse(keyMat); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNonInvertibleKey, err)
	}
	// adjugate = inverse × det; decode = round(adjugate × det⁻¹ mod N)
	var decode mat.Dense
	decode.Scale(float64(det), &inv)
	decode.Scale(float64(modInverse(det, alphabetLen)), &decode)
	decode.Apply(func(_, _ int, v float64) float64 { return math.Round(v) }, &decode)

	return &Hill{dim: dim, key: keyMat, decode: &decode}, nil
}

func (h *Hill) Name() string     { return NameHill }
func (h *Hill) Codes() [2]string { return [2]string{"%d", "%S"} }

func (h *Hill) Validate(action Action, data string) bool {
	return validateMembers(action, data)
}

func (h *Hill) Encrypt(text string) string { return h.apply(h.key, text) }
func (h *Hill) Decrypt(text string) string { return h.apply(h.decode, text) }

// apply splits text into column vectors of length dim (padding the last
// with the fill counter), multiplies each by m and maps the results back to
// characters modulo the alphabet length.
func (h *Hill) apply(m *mat.Dense, text string) string {
	if text == "" {
		return ""
	}
	cols := (len(text) + h.dim - 1) / h.dim
	vectors := fillColMajor(text, h.dim, cols)

	var product mat.Dense
	product.Mul(m, vectors)

	out := make([]byte, h.dim*cols)
	at := 0
	for j := 0; j < cols; j++ {
		for i := 0; i < h.dim; i++ {
			v := int(math.Round(product.At(i, j))) % alphabetLen
			if v < 0 {
				v += alphabetLen
			}
			out[at] = Alphabet[v]
			at++
		}
	}
	return string(out)
}

func fillRowMajor(values string, dim int) *mat.Dense {
	m := mat.NewDense(dim, dim, nil)
	extra, idx := 0, 0
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			if idx == len(values) {
				m.Set(i, j, float64(extra))
				extra++
				continue
			}
			m.Set(i, j, float64(index(values[idx])))
			idx++
		}
	}
	return m
}

func fillColMajor(values string, rows, cols int) *mat.Dense {
	m := mat.NewDense(rows, cols, nil)
	extra, idx := 0, 0
	for j := 0; j < cols; j++ {
		for i := 0; i < rows; i++ {
			if idx == len(values) {
				m.Set(i, j, float64(extra))
				extra++
				continue
			}
			m.Set(i, j, float64(index(values[idx])))
			idx++
		}
	}
	return m
}

func gcd(a, b int) int {
	if a < 0 {
		a = -a
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// modInverse returns x in [0, n) with a·x ≡ 1 (mod n). Callers guarantee
// gcd(a, n) == 1.
func modInverse(a, n int) int {
	a = ((a % n) + n) % n
	t, newt := 0, 1
	r, newr := n, a
	for newr != 0 {
		q := r / newr
		t, newt = newt, t-q*newt
		r, newr = newr, r-q*newr
	}
	if t < 0 {
		t += n
	}
	return t
}
