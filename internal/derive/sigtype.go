package derive

import (
	"github.com/funvibe/deriva/internal/typesystem"
)

// ImplementationType builds the fully quantified function type for an
// implementation of interfaceName over the viewed type:
//
//   - the target capability is the interface applied to AppliedType;
//   - every entry of ArgTypesWithParams adds one automatically-resolved
//     obligation of the interface applied to that entry (the interface must
//     hold for every parameter-dependent field type);
//   - one implicit binder per type parameter, outermost-first, of
//     unconstrained kind.
//
// When all implicit and automatic arguments are supplied by the calling
// context the type reduces to "the interface holds for the fully-applied
// type". Only valid for interfaces with exactly one type argument;
// multi-parameter interfaces must hand-build their type.
func ImplementationType(interfaceName string, view *UtilityView) typesystem.Type {
	target := typesystem.TApp{
		Constructor: typesystem.TCon{Name: interfaceName},
		Args:        []typesystem.Type{view.AppliedType},
	}

	if len(view.ParamNames) == 0 {
		// Nothing to quantify over: Interface T is already closed.
		return target
	}

	vars := make([]typesystem.TVar, len(view.ParamNames))
	for i, name := range view.ParamNames {
		vars[i] = typesystem.TVar{Name: name}
	}

	constraints := make([]typesystem.Constraint, len(view.ArgTypesWithParams))
	for i, argType := range view.ArgTypesWithParams {
		constraints[i] = typesystem.Constraint{Interface: interfaceName, Target: argType}
	}

	return typesystem.TForall{
		Vars:        vars,
		Constraints: constraints,
		Type:        target,
	}
}
