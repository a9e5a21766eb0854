package impls

import (
	"github.com/funvibe/deriva/internal/ast"
	"github.com/funvibe/deriva/internal/config"
	"github.com/funvibe/deriva/internal/derive"
)

// The numeric generators lift operations pointwise over the fields of a
// single-constructor type. Multi-constructor types have no canonical
// numeric structure, so these generators fail for them.

// Num derives addition, multiplication and literal conversion.
func Num() derive.Generator { return derive.GeneratorFunc(genNum) }

func genNum(view *derive.UtilityView) (derive.ImplementationDescriptor, error) {
	ctor, err := requireSingleConstructor(config.NumInterface, view)
	if err != nil {
		return derive.ImplementationDescriptor{}, err
	}

	n := len(ctor.ExplicitArgs())
	fromFields := make([]ast.Expression, n)
	for i := range fromFields {
		fromFields[i] = ast.Call(config.FromLiteralFuncName, ast.Var("n"))
	}
	fromLit := ast.Lambda([]string{"n"}, ctorApply(ctor.Name, fromFields))

	return derive.ImplementationDescriptor{
		InterfaceName: config.NumInterface,
		Visibility:    ast.Public,
		Impl: ast.Call(config.MkNumFuncName,
			pointwiseBinary(ctor, "+"),
			pointwiseBinary(ctor, "*"),
			fromLit),
		ImplType: derive.ImplementationType(config.NumInterface, view),
	}, nil
}

// Neg derives negation.
func Neg() derive.Generator { return derive.GeneratorFunc(genNeg) }

func genNeg(view *derive.UtilityView) (derive.ImplementationDescriptor, error) {
	ctor, err := requireSingleConstructor(config.NegInterface, view)
	if err != nil {
		return derive.ImplementationDescriptor{}, err
	}
	return derive.ImplementationDescriptor{
		InterfaceName: config.NegInterface,
		Visibility:    ast.Public,
		Impl:          ast.Call(config.MkNegFuncName, pointwiseUnary(ctor, config.NegateFuncName)),
		ImplType:      derive.ImplementationType(config.NegInterface, view),
	}, nil
}

// Abs derives absolute value.
func Abs() derive.Generator { return derive.GeneratorFunc(genAbs) }

func genAbs(view *derive.UtilityView) (derive.ImplementationDescriptor, error) {
	ctor, err := requireSingleConstructor(config.AbsInterface, view)
	if err != nil {
		return derive.ImplementationDescriptor{}, err
	}
	return derive.ImplementationDescriptor{
		InterfaceName: config.AbsInterface,
		Visibility:    ast.Public,
		Impl:          ast.Call(config.MkAbsFuncName, pointwiseUnary(ctor, config.AbsFuncName)),
		ImplType:      derive.ImplementationType(config.AbsInterface, view),
	}, nil
}

// Fractional derives division.
func Fractional() derive.Generator { return derive.GeneratorFunc(genFractional) }

func genFractional(view *derive.UtilityView) (derive.ImplementationDescriptor, error) {
	ctor, err := requireSingleConstructor(config.FractionalInterface, view)
	if err != nil {
		return derive.ImplementationDescriptor{}, err
	}
	return derive.ImplementationDescriptor{
		InterfaceName: config.FractionalInterface,
		Visibility:    ast.Public,
		Impl:          ast.Call(config.MkFractionalFuncName, pointwiseBinary(ctor, "/")),
		ImplType:      derive.ImplementationType(config.FractionalInterface, view),
	}, nil
}

// Integral derives integer division and modulo.
func Integral() derive.Generator { return derive.GeneratorFunc(genIntegral) }

func genIntegral(view *derive.UtilityView) (derive.ImplementationDescriptor, error) {
	ctor, err := requireSingleConstructor(config.IntegralInterface, view)
	if err != nil {
		return derive.ImplementationDescriptor{}, err
	}
	return derive.ImplementationDescriptor{
		InterfaceName: config.IntegralInterface,
		Visibility:    ast.Public,
		Impl: ast.Call(config.MkIntegralFuncName,
			pointwiseBinary(ctor, "/"),
			pointwiseBinary(ctor, "%")),
		ImplType: derive.ImplementationType(config.IntegralInterface, view),
	}, nil
}
