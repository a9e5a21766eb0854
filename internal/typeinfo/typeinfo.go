// Package typeinfo holds the structural description of declared data types
// that derivation consumes. A ParamTypeInfo is supplied per derivation
// request (by a schema loader or the symbol table) and never mutated.
package typeinfo

import (
	"errors"
	"fmt"

	"github.com/funvibe/deriva/internal/typesystem"
)

var (
	// ErrNotFound is returned when a name does not resolve at all.
	ErrNotFound = errors.New("type not found")

	// ErrNotADataType is returned when a name resolves to something other
	// than a data type declaration (e.g. a function or an alias).
	ErrNotADataType = errors.New("not a data type declaration")
)

// TypeParam is one entry of a data type's parameter list.
type TypeParam struct {
	Name string
	Kind typesystem.Kind
}

// ConstructorArg is a single typed field of a constructor. Implicit
// arguments exist in the surface language but never participate in
// derivation.
type ConstructorArg struct {
	Explicit bool
	Type     typesystem.Type
}

// Constructor is one case of an algebraic data type.
type Constructor struct {
	Name string
	Args []ConstructorArg
}

// ExplicitArgs returns the explicit arguments only, in declaration order.
func (c Constructor) ExplicitArgs() []ConstructorArg {
	out := []ConstructorArg{}
	for _, a := range c.Args {
		if a.Explicit {
			out = append(out, a)
		}
	}
	return out
}

// ParamTypeInfo is the fully-resolved structural description of a declared
// data type: its name, ordered type parameters, and constructors.
// Zero parameters and zero constructors are both valid.
type ParamTypeInfo struct {
	Name         string
	Params       []TypeParam
	Constructors []Constructor
}

// ParamNames returns the parameter names only, order-preserving.
func (ti *ParamTypeInfo) ParamNames() []string {
	names := make([]string, len(ti.Params))
	for i, p := range ti.Params {
		names[i] = p.Name
	}
	return names
}

func (ti *ParamTypeInfo) String() string {
	return fmt.Sprintf("%s/%d (%d constructors)", ti.Name, len(ti.Params), len(ti.Constructors))
}

// Lookup resolves a type name to its structural description.
// Implementations report ErrNotFound or ErrNotADataType (possibly wrapped).
type Lookup interface {
	LookupDataType(name string) (*ParamTypeInfo, error)
}
