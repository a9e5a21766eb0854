package impls

import (
	"fmt"

	"github.com/funvibe/deriva/internal/ast"
	"github.com/funvibe/deriva/internal/config"
	"github.com/funvibe/deriva/internal/derive"
)

// Semigroup derives an associative combine, pointwise over the fields of a
// single-constructor type.
func Semigroup() derive.Generator { return derive.GeneratorFunc(genSemigroup) }

func genSemigroup(view *derive.UtilityView) (derive.ImplementationDescriptor, error) {
	ctor, err := requireSingleConstructor(config.SemigroupInterface, view)
	if err != nil {
		return derive.ImplementationDescriptor{}, err
	}
	return derive.ImplementationDescriptor{
		InterfaceName: config.SemigroupInterface,
		Visibility:    ast.Public,
		Impl:          ast.Call(config.MkSemigroupFuncName, pointwiseBinary(ctor, "<>")),
		ImplType:      derive.ImplementationType(config.SemigroupInterface, view),
	}, nil
}

// Monoid derives the identity element: the constructor applied to the
// identity of each field.
func Monoid() derive.Generator { return derive.GeneratorFunc(genMonoid) }

func genMonoid(view *derive.UtilityView) (derive.ImplementationDescriptor, error) {
	ctor, err := requireSingleConstructor(config.MonoidInterface, view)
	if err != nil {
		return derive.ImplementationDescriptor{}, err
	}

	n := len(ctor.ExplicitArgs())
	fields := make([]ast.Expression, n)
	for i := range fields {
		fields[i] = ast.Var(config.EmptyValueName)
	}

	return derive.ImplementationDescriptor{
		InterfaceName: config.MonoidInterface,
		Visibility:    ast.Public,
		Impl:          ast.Call(config.MkMonoidFuncName, ctorApply(ctor.Name, fields)),
		ImplType:      derive.ImplementationType(config.MonoidInterface, view),
	}, nil
}

// Uninhabited derives an emptiness witness for types with no constructors.
func Uninhabited() derive.Generator { return derive.GeneratorFunc(genUninhabited) }

func genUninhabited(view *derive.UtilityView) (derive.ImplementationDescriptor, error) {
	if n := len(view.TypeInfo.Constructors); n != 0 {
		return derive.ImplementationDescriptor{}, fmt.Errorf(
			"%s generator: type %s has %d constructors, none allowed",
			config.UninhabitedInterface, view.TypeInfo.Name, n)
	}

	// The empty match is the canonical absurdity eliminator.
	absurd := ast.Lambda([]string{"v"}, ast.Match(ast.Var("v")))

	return derive.ImplementationDescriptor{
		InterfaceName: config.UninhabitedInterface,
		Visibility:    ast.Public,
		Impl:          ast.Call(config.MkUninhabitedFuncName, absurd),
		ImplType:      derive.ImplementationType(config.UninhabitedInterface, view),
	}, nil
}
