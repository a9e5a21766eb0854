// Package traits provides the runtime interface values that generated code
// references: small records of function values, one constructor per
// interface. The constructors take raw functions and fill in every
// derivable operation, so callers supply only the primitive.
package traits

// Ordering is the result of a three-way comparison.
type Ordering int

const (
	LT Ordering = -1
	EQ Ordering = 0
	GT Ordering = 1
)

func (o Ordering) String() string {
	switch {
	case o < 0:
		return "LT"
	case o > 0:
		return "GT"
	default:
		return "EQ"
	}
}

// ThenCompare chains comparisons lexicographically: the first non-EQ wins.
func ThenCompare(first, second Ordering) Ordering {
	if first != EQ {
		return first
	}
	return second
}

// Eq bundles equality and its derived inequality.
type Eq[T any] struct {
	Equal    func(T, T) bool
	NotEqual func(T, T) bool
}

// MkEq builds an Eq from an equality function. The inequality is its
// logical negation.
func MkEq[T any](equal func(T, T) bool) Eq[T] {
	return Eq[T]{
		Equal:    equal,
		NotEqual: func(a, b T) bool { return !equal(a, b) },
	}
}

// Ord bundles a total order and everything derivable from it.
type Ord[T any] struct {
	Eq[T]
	Compare func(T, T) Ordering
	Lt      func(T, T) bool
	Gt      func(T, T) bool
	Leq     func(T, T) bool
	Geq     func(T, T) bool
	Min     func(T, T) T
	Max     func(T, T) T
}

// MkOrd builds an Ord from a three-way comparison. All comparison
// predicates, Min/Max, and the equality are derived from it.
func MkOrd[T any](compare func(T, T) Ordering) Ord[T] {
	return Ord[T]{
		Eq:      MkEq(func(a, b T) bool { return compare(a, b) == EQ }),
		Compare: compare,
		Lt:      func(a, b T) bool { return compare(a, b) == LT },
		Gt:      func(a, b T) bool { return compare(a, b) == GT },
		Leq:     func(a, b T) bool { return compare(a, b) != GT },
		Geq:     func(a, b T) bool { return compare(a, b) != LT },
		Min: func(a, b T) T {
			if compare(a, b) == GT {
				return b
			}
			return a
		},
		Max: func(a, b T) T {
			if compare(a, b) == LT {
				return b
			}
			return a
		},
	}
}

// Num bundles addition, multiplication and literal conversion.
type Num[T any] struct {
	Add         func(T, T) T
	Mul         func(T, T) T
	FromLiteral func(int64) T
}

func MkNum[T any](add, mul func(T, T) T, fromLiteral func(int64) T) Num[T] {
	return Num[T]{Add: add, Mul: mul, FromLiteral: fromLiteral}
}

// Neg is the negation capability.
type Neg[T any] struct {
	Negate func(T) T
}

func MkNeg[T any](negate func(T) T) Neg[T] {
	return Neg[T]{Negate: negate}
}

// Abs is the absolute-value capability.
type Abs[T any] struct {
	Abs func(T) T
}

func MkAbs[T any](abs func(T) T) Abs[T] {
	return Abs[T]{Abs: abs}
}

// Fractional is the division capability.
type Fractional[T any] struct {
	Div func(T, T) T
}

func MkFractional[T any](div func(T, T) T) Fractional[T] {
	return Fractional[T]{Div: div}
}

// Integral bundles integer division and modulo.
type Integral[T any] struct {
	Div func(T, T) T
	Mod func(T, T) T
}

func MkIntegral[T any](div, mod func(T, T) T) Integral[T] {
	return Integral[T]{Div: div, Mod: mod}
}

// Show is the display capability.
type Show[T any] struct {
	Show func(T) string
}

func MkShow[T any](show func(T) string) Show[T] {
	return Show[T]{Show: show}
}

// Uninhabited witnesses that T has no values: Absurd can never be called
// with a real argument.
type Uninhabited[T any] struct {
	Absurd func(T)
}

func MkUninhabited[T any](absurd func(T)) Uninhabited[T] {
	return Uninhabited[T]{Absurd: absurd}
}

// Semigroup is an associative combine.
type Semigroup[T any] struct {
	Combine func(T, T) T
}

func MkSemigroup[T any](combine func(T, T) T) Semigroup[T] {
	return Semigroup[T]{Combine: combine}
}

// Monoid extends a Semigroup with its identity element.
type Monoid[T any] struct {
	Semigroup[T]
	Empty T
}

func MkMonoid[T any](sg Semigroup[T], empty T) Monoid[T] {
	return Monoid[T]{Semigroup: sg, Empty: empty}
}
