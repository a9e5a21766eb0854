package typesystem

import "fmt"

// Kind represents the "type of a type".
// * (Star) is the kind of proper types (Int, Bool, List Int).
// * -> * is the kind of type constructors (List, Option).
type Kind interface {
	String() string
	Equal(Kind) bool
}

// KStar represents the kind of a value type (*).
type KStar struct{}

func (k KStar) String() string { return "*" }
func (k KStar) Equal(other Kind) bool {
	_, ok := other.(KStar)
	return ok
}

// KArrow represents a higher-kinded type (k1 -> k2).
type KArrow struct {
	Left  Kind
	Right Kind
}

func (k KArrow) String() string {
	return fmt.Sprintf("(%s -> %s)", k.Left.String(), k.Right.String())
}

func (k KArrow) Equal(other Kind) bool {
	o, ok := other.(KArrow)
	if !ok {
		return false
	}
	return k.Left.Equal(o.Left) && k.Right.Equal(o.Right)
}

var Star Kind = KStar{}

// MakeArrow builds an N-ary arrow kind.
// e.g. MakeArrow(Star, Star, Star) is * -> * -> *
func MakeArrow(args ...Kind) Kind {
	if len(args) == 0 {
		return Star
	}
	if len(args) == 1 {
		return args[0]
	}
	return KArrow{Left: args[0], Right: MakeArrow(args[1:]...)}
}
