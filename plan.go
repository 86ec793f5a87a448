package stego

import (
	"errors"
	"fmt"
)

// Band assigns a payload bit depth to one pixel channel.
type Band struct {
	Channel int
	// Depth is the number of low-order bits used, 1..8.
	Depth int
}

// Plan is an ordered channel→depth mapping. Slice order is the iteration
// order during bit packing, so embed and extract must share the same plan,
// in the same order.
type Plan []Band

// ErrEmptyPlan reports a plan that selects no channels.
var ErrEmptyPlan = errors.New("plan selects no channels")

// PlanFromDepths builds a plan from per-channel depths in channel order,
// skipping channels with depth zero.
func PlanFromDepths(depths ...int) (Plan, error) {
	var p Plan
	for ch, d := range depths {
		if d < 0 || d > 8 {
			return nil, fmt.Errorf("channel %d: depth %d out of range 0..8", ch, d)
		}
		if d == 0 {
			continue
		}
		p = append(p, Band{Channel: ch, Depth: d})
	}
	if len(p) == 0 {
		return nil, ErrEmptyPlan
	}
	return p, nil
}

// BitsPerPixel is the number of payload bits one pixel carries under p.
func (p Plan) BitsPerPixel() int {
	var sum int
	for _, b := range p {
		sum += b.Depth
	}
	return sum
}

func (p Plan) validate(channels int) error {
	if len(p) == 0 {
		return ErrEmptyPlan
	}
	for _, b := range p {
		if b.Channel < 0 || b.Channel >= channels {
			return fmt.Errorf("plan references channel %d, buffer has %d channels", b.Channel, channels)
		}
		if b.Depth < 1 || b.Depth > 8 {
			return fmt.Errorf("channel %d: depth %d out of range 1..8", b.Channel, b.Depth)
		}
	}
	return nil
}

// bruteforcePlans enumerates every depth assignment for the three color
// channels in lexicographic (d0, d1, d2) order, excluding the all-zero
// triple: 9³−1 = 728 candidates. The order is fixed so brute-force results
// are reproducible.
func bruteforcePlans() []Plan {
	plans := make([]Plan, 0, 9*9*9-1)
	for d0 := 0; d0 <= 8; d0++ {
		for d1 := 0; d1 <= 8; d1++ {
			for d2 := 0; d2 <= 8; d2++ {
				if d0 == 0 && d1 == 0 && d2 == 0 {
					continue
				}
				p, _ := PlanFromDepths(d0, d1, d2)
				plans = append(plans, p)
			}
		}
	}
	return plans
}
