// Package morton interleaves the bits of two coordinates into a Z-order (Morton) code.
// x occupies the even bit positions and y the odd ones, so reading a code from the most
// significant end yields one (y, x) bit pair per subdivision level of the grid.
package morton

import (
	"fmt"
	"math"
)

type Z = uint

// steps of the magic bits method, widest first. Each step halves the size of the bit
// blocks, the last one leaves a zero bit after every input bit.
var steps = [...]struct {
	shift uint
	mask  uint
}{
	{shift: 16, mask: 0x0000ffff0000ffff},
	{shift: 8, mask: 0x00ff00ff00ff00ff},
	{shift: 4, mask: 0x0f0f0f0f0f0f0f0f},
	{shift: 2, mask: 0x3333333333333333},
	{shift: 1, mask: 0x5555555555555555},
}

// spread moves bit i of the lower 32 bits of v to bit 2i
func spread(v uint) uint {
	v &= math.MaxUint32
	for _, s := range steps {
		v = (v | v<<s.shift) & s.mask
	}
	return v
}

// compact is the inverse of spread, it drops the odd bits of v
func compact(v uint) uint {
	v &= steps[len(steps)-1].mask
	for i := len(steps) - 1; i >= 0; i-- {
		mask := uint(math.MaxUint32)
		if i > 0 {
			mask = steps[i-1].mask
		}
		v = (v | v>>steps[i].shift) & mask
	}
	return v
}

// ToZ interleaves x and y. ok is false if either does not fit in 32 bits.
func ToZ(x, y uint) (z Z, ok bool) {
	ok = x <= math.MaxUint32 && y <= math.MaxUint32
	return spread(x) | spread(y)<<1, ok
}

func MustToZ(x, y uint) Z {
	z, ok := ToZ(x, y)
	if !ok {
		panic(fmt.Errorf(`cannot make Z out of %v and %v`, x, y))
	}
	return z
}

// FromZ is the inverse of ToZ
func FromZ(z Z) (x, y uint) {
	return compact(z), compact(z >> 1)
}
