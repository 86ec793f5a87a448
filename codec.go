package stego

import (
	"bytes"
	"context"
	"fmt"
	"runtime"
	"strings"
	"sync"

	"github.com/yyyoichi/bitstream-go"

	"github.com/hiddenink/stego/internal/permute"
)

// EmbedBuffer embeds message (plus the delimiter) into a copy of buf and
// returns the copy; the caller's buffer is never mutated. Bits are consumed
// over the Cartesian product of visitation order and plan entries: for each
// visited pixel, each planned channel has its low-order Depth bits
// overwritten while the high-order bits are preserved. Pixels beyond the
// payload are left untouched.
//
// Returns ErrCapacityExceeded if the plan cannot hold the framed message.
func EmbedBuffer(ctx context.Context, buf *Buffer, message string, plan Plan, opts ...Option) (*Buffer, error) {
	cfg := newConfig(opts...)
	if err := plan.validate(buf.Channels()); err != nil {
		return nil, err
	}

	payload := message + Delimiter
	w := bitstream.NewBitWriter[uint64](0, 0)
	for i := 0; i < len(payload); i++ {
		w.Write8(0, 8, payload[i])
	}
	r := bitstream.NewBitReader(w.Data(), 0, 0)
	r.SetBits(w.Bits())
	total := w.Bits()

	out := buf.Clone()
	order := permute.Order(buf.Pixels(), cfg.seed)

	cursor := 0
	for _, pix := range order {
		if cursor >= total {
			break
		}
		for _, band := range plan {
			if cursor >= total {
				break
			}
			take := band.Depth
			if rem := total - cursor; rem < take {
				take = rem
			}
			var chunk uint8
			for i := 0; i < take; i++ {
				bit, _ := r.ReadBitAt(cursor + i)
				chunk <<= 1
				if bit {
					chunk |= 1
				}
			}
			// A short final chunk occupies the high end of the depth
			// window; the low bits below it keep their carrier values.
			shift := band.Depth - take
			mask := uint8((1<<take - 1) << shift)
			v := out.At(pix, band.Channel)
			out.Set(pix, band.Channel, v&^mask|chunk<<shift)
			cursor += take
		}
	}
	if cursor < total {
		return nil, fmt.Errorf("%w: %d bits left over", ErrCapacityExceeded, total-cursor)
	}
	return out, nil
}

// ExtractBuffer recovers a hidden message from buf using the plan and seed
// it was embedded with. The delimiter is stripped from the result.
func ExtractBuffer(ctx context.Context, buf *Buffer, plan Plan, opts ...Option) (string, error) {
	cfg := newConfig(opts...)
	if err := plan.validate(buf.Channels()); err != nil {
		return "", err
	}
	order := permute.Order(buf.Pixels(), cfg.seed)
	msg, ok := scan(buf, plan, order)
	if !ok {
		return "", ErrNotFound
	}
	return strings.TrimSuffix(msg, Delimiter), nil
}

// ExtractBruteForceBuffer tries every nonzero channel/depth assignment for
// the three color channels (728 candidates) and returns the first plan's
// payload in enumeration order. Candidates are scanned concurrently, but
// the winner is chosen by candidate index, never by completion order, so
// results are reproducible.
func ExtractBruteForceBuffer(ctx context.Context, buf *Buffer, opts ...Option) (string, error) {
	cfg := newConfig(opts...)
	if buf.Channels() < 3 {
		return "", fmt.Errorf("brute force needs 3 color channels, buffer has %d", buf.Channels())
	}
	order := permute.Order(buf.Pixels(), cfg.seed)
	plans := bruteforcePlans()

	var (
		results = make([]string, len(plans))
		found   = make([]bool, len(plans))
		workers = runtime.GOMAXPROCS(0)
		wg      sync.WaitGroup
	)
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(w int) {
			defer wg.Done()
			for i := w; i < len(plans); i += workers {
				if ctx.Err() != nil {
					return
				}
				if msg, ok := scan(buf, plans[i], order); ok {
					results[i], found[i] = msg, true
				}
			}
		}(w)
	}
	wg.Wait()
	if err := ctx.Err(); err != nil {
		return "", err
	}
	for i := range plans {
		if found[i] {
			return strings.TrimSuffix(results[i], Delimiter), nil
		}
	}
	return "", ErrNotFound
}

var delimiterBytes = []byte(Delimiter)

// scan walks pixels in the given order, pulling each planned channel's
// low-order bits into an accumulator and decoding a character per 8 bits.
// It stops the moment the decoded text ends with the delimiter: early
// termination is part of the contract, not just an optimization, because
// the data past the payload is arbitrary. Scanning is strictly sequential
// and must not be parallelized.
func scan(buf *Buffer, plan Plan, order []int) (string, bool) {
	var (
		msg   []byte
		acc   uint8
		nbits int
	)
	for _, pix := range order {
		for _, band := range plan {
			v := buf.At(pix, band.Channel)
			for i := band.Depth - 1; i >= 0; i-- {
				acc = acc<<1 | v>>i&1
				nbits++
				if nbits < 8 {
					continue
				}
				msg = append(msg, acc)
				acc, nbits = 0, 0
				if bytes.HasSuffix(msg, delimiterBytes) {
					return string(msg), true
				}
			}
		}
	}
	return "", false
}
