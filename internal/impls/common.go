// Package impls provides the bundled interface generators: one
// derive.Generator per derivable interface. Generated bodies call the
// runtime convenience factories (mkEq, mkOrd, ...) with structural
// functions assembled from the type's constructors.
package impls

import (
	"fmt"

	"github.com/funvibe/deriva/internal/ast"
	"github.com/funvibe/deriva/internal/derive"
	"github.com/funvibe/deriva/internal/typeinfo"
)

func bindNames(prefix string, n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("%s%d", prefix, i+1)
	}
	return names
}

func identPats(names []string) []ast.Pattern {
	pats := make([]ast.Pattern, len(names))
	for i, n := range names {
		pats[i] = ast.IdentPat(n)
	}
	return pats
}

func identExprs(names []string) []ast.Expression {
	exprs := make([]ast.Expression, len(names))
	for i, n := range names {
		exprs[i] = ast.Var(n)
	}
	return exprs
}

// ctorApply builds the constructor application C(e1, ..., en); a nullary
// constructor is a bare identifier.
func ctorApply(name string, args []ast.Expression) ast.Expression {
	if len(args) == 0 {
		return ast.Var(name)
	}
	return &ast.CallExpression{Fn: ast.Var(name), Args: args}
}

// requireSingleConstructor guards the pointwise generators (Num, Semigroup,
// ...), which only support record-like single-constructor types.
func requireSingleConstructor(interfaceName string, view *derive.UtilityView) (typeinfo.Constructor, error) {
	ctors := view.TypeInfo.Constructors
	if len(ctors) != 1 {
		return typeinfo.Constructor{}, fmt.Errorf(
			"%s generator: type %s has %d constructors, exactly one supported",
			interfaceName, view.TypeInfo.Name, len(ctors))
	}
	return ctors[0], nil
}

// pointwiseBinary builds (x, y) -> match (x, y) { (C a1.., C b1..) -> C(a1 op b1, ..) }
func pointwiseBinary(ctor typeinfo.Constructor, op string) ast.Expression {
	n := len(ctor.ExplicitArgs())
	xs := bindNames("a", n)
	ys := bindNames("b", n)

	fields := make([]ast.Expression, n)
	for i := 0; i < n; i++ {
		fields[i] = ast.Infix(op, ast.Var(xs[i]), ast.Var(ys[i]))
	}

	arm := ast.Arm(
		ast.TuplePat(ast.CtorPat(ctor.Name, identPats(xs)...), ast.CtorPat(ctor.Name, identPats(ys)...)),
		ctorApply(ctor.Name, fields),
	)
	return ast.Lambda([]string{"x", "y"},
		ast.Match(ast.Tuple(ast.Var("x"), ast.Var("y")), arm))
}

// pointwiseUnary builds x -> match x { C a1.. -> C(f(a1), ..) }
func pointwiseUnary(ctor typeinfo.Constructor, fn string) ast.Expression {
	n := len(ctor.ExplicitArgs())
	xs := bindNames("a", n)

	fields := make([]ast.Expression, n)
	for i := 0; i < n; i++ {
		fields[i] = ast.Call(fn, ast.Var(xs[i]))
	}

	arm := ast.Arm(ast.CtorPat(ctor.Name, identPats(xs)...), ctorApply(ctor.Name, fields))
	return ast.Lambda([]string{"x"}, ast.Match(ast.Var("x"), arm))
}
