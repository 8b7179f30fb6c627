package neighbor

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/iancoleman/strcase"
	"github.com/pdok/zgrid/morton"
)

var (
	ErrNoSelection     = errors.New("neighbor: no selection")
	ErrUnknownStrategy = errors.New("neighbor: unknown strategy")
)

type Kind uint8

const (
	// SharesBitsAt groups cells with the same 2-bit group at one level
	SharesBitsAt Kind = iota
	// SharesAncestryThrough groups cells with the same groups from the top down to a level
	SharesAncestryThrough
	// SharesNoBits matches cells whose code has no set bit in common with the selected one
	SharesNoBits
	// WithinSequence matches cells at most Radius positions away in the collection
	WithinSequence
)

var kindNames = [...]string{"SharesBitsAt", "SharesAncestryThrough", "SharesNoBits", "WithinSequence"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind" + strconv.Itoa(int(k))
}

// Strategy is a tagged choice. Level only applies to SharesBitsAt and SharesAncestryThrough,
// Radius only to WithinSequence.
type Strategy struct {
	Kind   Kind
	Level  morton.Level
	Radius uint
}

func BitsAt(l morton.Level) Strategy {
	return Strategy{Kind: SharesBitsAt, Level: l}
}

func AncestryThrough(l morton.Level) Strategy {
	return Strategy{Kind: SharesAncestryThrough, Level: l}
}

func NoBits() Strategy {
	return Strategy{Kind: SharesNoBits}
}

func Window(radius uint) Strategy {
	return Strategy{Kind: WithinSequence, Radius: radius}
}

func (s Strategy) String() string {
	switch s.Kind {
	case SharesBitsAt, SharesAncestryThrough:
		return fmt.Sprintf("%v(%v)", s.Kind, s.Level)
	case WithinSequence:
		return fmt.Sprintf("%v(%d)", s.Kind, s.Radius)
	default:
		return s.Kind.String()
	}
}

// ParseStrategy reads the String form back, e.g. "SharesBitsAt(WholeGrid)", "shares-no-bits"
// or "within_sequence(4)". Levels may also be given as depths.
func ParseStrategy(s string) (Strategy, error) {
	name, arg, hasArg := strings.Cut(strings.TrimSpace(s), "(")
	if hasArg {
		var closed bool
		arg, closed = strings.CutSuffix(arg, ")")
		if !closed {
			return Strategy{}, fmt.Errorf("%w: unbalanced parentheses in %q", ErrUnknownStrategy, s)
		}
	}
	kind := -1
	camel := strcase.ToCamel(strings.TrimSpace(name))
	for i, kindName := range kindNames {
		if camel == kindName {
			kind = i
		}
	}
	if kind < 0 {
		return Strategy{}, fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
	}
	strategy := Strategy{Kind: Kind(kind)}
	switch strategy.Kind {
	case SharesBitsAt, SharesAncestryThrough:
		if !hasArg {
			return Strategy{}, fmt.Errorf("%w: %v needs a level", ErrUnknownStrategy, strategy.Kind)
		}
		level, err := morton.ParseLevel(strings.TrimSpace(arg))
		if err != nil {
			return Strategy{}, err
		}
		strategy.Level = level
	case WithinSequence:
		if !hasArg {
			return Strategy{}, fmt.Errorf("%w: %v needs a radius", ErrUnknownStrategy, strategy.Kind)
		}
		radius, err := strconv.ParseUint(strings.TrimSpace(arg), 10, 32)
		if err != nil {
			return Strategy{}, fmt.Errorf("%w: bad radius in %q: %w", ErrUnknownStrategy, s, err)
		}
		strategy.Radius = uint(radius)
	case SharesNoBits:
		if hasArg && strings.TrimSpace(arg) != "" {
			return Strategy{}, fmt.Errorf("%w: %v takes no argument", ErrUnknownStrategy, strategy.Kind)
		}
	}
	return strategy, nil
}
