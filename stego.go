// Package stego hides printable text inside the least-significant bits of
// an image's color channels.
//
// A message is framed with a fixed delimiter, converted to a bitstream and
// packed into the low-order bits of selected channels, optionally visiting
// pixels in a seed-derived permuted order. Extraction walks the same
// channel plan, decoding one character at a time until the delimiter
// appears. Both ends must agree on the plan and the seed.
package stego

import (
	"context"
	"errors"
	"image"
)

// Delimiter marks the end of an embedded payload. Embed and extract must
// share the exact same value; changing it breaks compatibility with
// previously encoded images.
const Delimiter = "$t3nb7$3rh@tC3l!k"

// MinPixels is the smallest usable pixel count: one payload character plus
// the delimiter at one bit per pixel.
const MinPixels = 8 * (len(Delimiter) + 1)

var (
	// ErrCapacityExceeded reports a payload the plan cannot fully embed in
	// the given pixel count. Callers pre-check with Capacity and decide
	// whether to truncate, change the plan, or abort.
	ErrCapacityExceeded = errors.New("message exceeds plan capacity")
	// ErrNotFound reports that the whole pixel space was scanned without
	// the delimiter ever appearing. An expected outcome, not a fault.
	ErrNotFound = errors.New("no hidden message found")
)

// Capacity returns how many message characters fit in pixelCount pixels
// under plan, after reserving room for the delimiter.
func Capacity(pixelCount int, plan Plan) int {
	return (pixelCount*plan.BitsPerPixel())/8 - len(Delimiter)
}

// Embed hides message in a copy of src and returns the modified image.
// See EmbedBuffer for the codec contract.
func Embed(ctx context.Context, src image.Image, message string, plan Plan, opts ...Option) (image.Image, error) {
	out, err := EmbedBuffer(ctx, FromImage(src), message, plan, opts...)
	if err != nil {
		return nil, err
	}
	return out.Image(), nil
}

// Extract recovers a hidden message from src using the same plan and seed
// it was embedded with. Returns ErrNotFound if no delimiter-terminated
// payload is present.
func Extract(ctx context.Context, src image.Image, plan Plan, opts ...Option) (string, error) {
	return ExtractBuffer(ctx, FromImage(src), plan, opts...)
}

// ExtractBruteForce recovers a hidden message from src without knowing the
// plan, trying every channel/depth assignment. The seed, if any, must still
// match the embedding seed.
func ExtractBruteForce(ctx context.Context, src image.Image, opts ...Option) (string, error) {
	return ExtractBruteForceBuffer(ctx, FromImage(src), opts...)
}
