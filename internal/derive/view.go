// Package derive implements the type-introspection-to-declaration pipeline:
// it builds a reusable utility view of a data type's structure and lowers
// interface-implementation descriptors into top-level declarations.
package derive

import (
	"github.com/funvibe/deriva/internal/typeinfo"
	"github.com/funvibe/deriva/internal/typesystem"
)

// UtilityView is the immutable, derived view of a data type that every
// generator receives. It is built once per derivation request, shared
// read-only across generators, and discarded afterwards.
type UtilityView struct {
	// TypeInfo is the structural description the view was built from.
	TypeInfo *typeinfo.ParamTypeInfo

	// AppliedType is the type expression with all parameters re-applied in
	// declaration order, e.g. Either a b. Used as the target type in
	// generated signatures.
	AppliedType typesystem.Type

	// ParamNames are the parameter names only, order-preserving. They
	// become implicit binders in generated signatures.
	ParamNames []string

	// ArgTypesWithParams are the explicit constructor-argument types, across
	// all constructors, whose expression mentions at least one type
	// parameter. Order follows constructor-then-argument order. Duplicates
	// are kept: each occurrence may need its own constraint.
	ArgTypesWithParams []typesystem.Type
}

// BuildUtilityView derives a UtilityView from a fully-resolved data type
// description. A type with no parameters yields empty ParamNames and
// ArgTypesWithParams; that is valid, not an error.
func BuildUtilityView(ti *typeinfo.ParamTypeInfo) *UtilityView {
	paramNames := ti.ParamNames()

	kinds := make([]typesystem.Kind, 0, len(ti.Params)+1)
	for _, p := range ti.Params {
		k := p.Kind
		if k == nil {
			k = typesystem.Star
		}
		kinds = append(kinds, k)
	}
	kinds = append(kinds, typesystem.Star)

	head := typesystem.TCon{Name: ti.Name, KindVal: typesystem.MakeArrow(kinds...)}

	// Fold the parameters onto the bare type-name reference, in order.
	var applied typesystem.Type = head
	for _, p := range ti.Params {
		applied = apply(applied, typesystem.TVar{Name: p.Name, KindVal: p.Kind})
	}

	// Purely syntactic membership test: no alias resolution, no unfolding.
	argTypes := []typesystem.Type{}
	for _, ctor := range ti.Constructors {
		for _, arg := range ctor.ExplicitArgs() {
			if typesystem.MentionsAny(arg.Type, paramNames) {
				argTypes = append(argTypes, arg.Type)
			}
		}
	}

	return &UtilityView{
		TypeInfo:           ti,
		AppliedType:        applied,
		ParamNames:         paramNames,
		ArgTypesWithParams: argTypes,
	}
}

func apply(fn typesystem.Type, arg typesystem.Type) typesystem.Type {
	if app, ok := fn.(typesystem.TApp); ok {
		args := make([]typesystem.Type, 0, len(app.Args)+1)
		args = append(args, app.Args...)
		args = append(args, arg)
		return typesystem.TApp{Constructor: app.Constructor, Args: args}
	}
	return typesystem.TApp{Constructor: fn, Args: []typesystem.Type{arg}}
}
