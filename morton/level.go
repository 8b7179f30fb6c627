package morton

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/iancoleman/strcase"
	"github.com/pdok/zgrid/mathhelp"
)

const MaxBits Bits = 32

var (
	ErrInvalidBits  = errors.New("morton: bit width out of range")
	ErrOutOfRange   = errors.New("morton: coordinate out of range")
	ErrInvalidLevel = errors.New("morton: level not valid for bit width")
)

// Bits is the number of bits per axis. A grid of Bits b has 2^b cells on a side
// and its codes are 2*b bits wide.
type Bits uint

// Level is a subdivision depth, counted from the coarsest one.
// Each level owns one 2-bit group of a code.
type Level uint

const (
	WholeGrid Level = iota
	TopLevelParent
	SecondLevelParent
)

var levelNames = [...]string{"WholeGrid", "TopLevelParent", "SecondLevelParent"}

func (l Level) String() string {
	if int(l) < len(levelNames) {
		return levelNames[l]
	}
	return "Level" + strconv.Itoa(int(l))
}

// ParseLevel accepts a level name in any case style (whole-grid, top_level_parent, ...)
// or a plain depth.
func ParseLevel(s string) (Level, error) {
	if n, err := strconv.ParseUint(s, 10, 8); err == nil {
		return Level(n), nil
	}
	camel := strcase.ToCamel(strings.TrimSpace(s))
	for i, name := range levelNames {
		if camel == name {
			return Level(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown level %q", ErrInvalidLevel, s)
}

// BitsFor returns the bits of a grid with size cells on one side
func BitsFor(size uint) (Bits, error) {
	if mathhelp.IsPow2(size) && mathhelp.Log2(size) <= uint(MaxBits) {
		return Bits(mathhelp.Log2(size)), nil
	}
	return 0, fmt.Errorf("%w: %d is not a power of two up to 2^%d", ErrInvalidBits, size, MaxBits)
}

func (b Bits) Validate() error {
	if b > MaxBits {
		return fmt.Errorf("%w: %d > %d", ErrInvalidBits, b, MaxBits)
	}
	return nil
}

// Size is the number of cells on one side
func (b Bits) Size() uint {
	return 1 << b
}

// Width is the number of bits in a code
func (b Bits) Width() uint {
	return 2 * uint(b)
}

// ToZ interleaves x and y, both of which must be smaller than Size.
func (b Bits) ToZ(x, y uint) (Z, error) {
	if err := b.Validate(); err != nil {
		return 0, err
	}
	if x >= b.Size() || y >= b.Size() {
		return 0, fmt.Errorf("%w: (%d, %d) does not fit in %d bits", ErrOutOfRange, x, y, b)
	}
	return MustToZ(x, y), nil
}

// Shift returns the right shift that isolates the group of the given level.
// Valid shifts are 2, 4, ... 2b-2, shift 0 (the leaf itself) is not a level.
func (b Bits) Shift(l Level) (uint, error) {
	if b < 2 || uint(l) > uint(b)-2 {
		return 0, fmt.Errorf("%w: %v (%d bits allow %d levels)", ErrInvalidLevel, l, b, len(b.Levels()))
	}
	return b.Width() - 2 - 2*uint(l), nil
}

func (b Bits) MustShift(l Level) uint {
	s, err := b.Shift(l)
	if err != nil {
		panic(err)
	}
	return s
}

// Levels returns all valid levels, coarsest first
func (b Bits) Levels() []Level {
	if b < 2 {
		return nil
	}
	levels := make([]Level, 0, b-1)
	for l := Level(0); uint(l) <= uint(b)-2; l++ {
		levels = append(levels, l)
	}
	return levels
}

// Group returns the 2-bit group at shift
func Group(z Z, shift uint) uint {
	return (z >> shift) & 0b11
}

// Groups returns all b groups of z, most significant first.
// The last one is the leaf's position inside its finest parent.
func (b Bits) Groups(z Z) []uint {
	groups := make([]uint, b)
	for i := range groups {
		groups[i] = Group(z, b.Width()-2-2*uint(i))
	}
	return groups
}

// Prefix returns the bits of z from the top down to and including the group at shift
func Prefix(z Z, shift uint) Z {
	return z >> shift
}
