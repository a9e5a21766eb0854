package config

// ImplNamePrefix is prepended to every generated implementation function
// name: impl + interface + type, e.g. implEqEither.
const ImplNamePrefix = "impl"

// SchemaFileExtensions are all recognized schema file extensions.
var SchemaFileExtensions = []string{".yaml", ".yml", ".proto", ".binpb", ".pb"}

// Canonical interface names understood by the bundled generators.
const (
	EqInterface          = "Eq"
	OrdInterface         = "Ord"
	NumInterface         = "Num"
	NegInterface         = "Neg"
	AbsInterface         = "Abs"
	FractionalInterface  = "Fractional"
	IntegralInterface    = "Integral"
	ShowInterface        = "Show"
	UninhabitedInterface = "Uninhabited"
	SemigroupInterface   = "Semigroup"
	MonoidInterface      = "Monoid"
)

// Built-in function names referenced by generated bodies.
const (
	CompareFuncName     = "compare"
	ThenCompareFuncName = "thenCompare"
	CtorTagFuncName     = "ctorTag"
	ShowFuncName        = "show"
	NegateFuncName      = "negate"
	AbsFuncName         = "abs"
	FromLiteralFuncName = "fromLiteral"
	EmptyValueName      = "empty"
	OrderingEqName      = "EQ"
)

// Convenience factory names (the runtime constructors generated bodies call).
const (
	MkEqFuncName          = "mkEq"
	MkOrdFuncName         = "mkOrd"
	MkNumFuncName         = "mkNum"
	MkNegFuncName         = "mkNeg"
	MkAbsFuncName         = "mkAbs"
	MkFractionalFuncName  = "mkFractional"
	MkIntegralFuncName    = "mkIntegral"
	MkShowFuncName        = "mkShow"
	MkUninhabitedFuncName = "mkUninhabited"
	MkSemigroupFuncName   = "mkSemigroup"
	MkMonoidFuncName      = "mkMonoid"
)
