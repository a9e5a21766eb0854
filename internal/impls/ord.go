package impls

import (
	"github.com/funvibe/deriva/internal/ast"
	"github.com/funvibe/deriva/internal/config"
	"github.com/funvibe/deriva/internal/derive"
)

// Ord derives a total order: values of the same constructor compare
// lexicographically by field, values of different constructors compare by
// constructor declaration index.
func Ord() derive.Generator { return derive.GeneratorFunc(genOrd) }

func genOrd(view *derive.UtilityView) (derive.ImplementationDescriptor, error) {
	ctors := view.TypeInfo.Constructors

	var cmpFn ast.Expression
	if len(ctors) == 0 {
		cmpFn = ast.Lambda([]string{"x", "y"}, ast.Var(config.OrderingEqName))
	} else {
		arms := []*ast.MatchArm{}
		for _, ctor := range ctors {
			n := len(ctor.ExplicitArgs())
			xs := bindNames("a", n)
			ys := bindNames("b", n)

			// Lexicographic chain: thenCompare(compare(a1, b1), ...).
			var body ast.Expression = ast.Var(config.OrderingEqName)
			for i := n - 1; i >= 0; i-- {
				cmp := ast.Call(config.CompareFuncName, ast.Var(xs[i]), ast.Var(ys[i]))
				if i == n-1 {
					body = cmp
				} else {
					body = ast.Call(config.ThenCompareFuncName, cmp, body)
				}
			}

			arms = append(arms, ast.Arm(
				ast.TuplePat(ast.CtorPat(ctor.Name, identPats(xs)...), ast.CtorPat(ctor.Name, identPats(ys)...)),
				body,
			))
		}
		if len(ctors) > 1 {
			arms = append(arms, ast.Arm(
				ast.TuplePat(ast.IdentPat("x"), ast.IdentPat("y")),
				ast.Call(config.CompareFuncName,
					ast.Call(config.CtorTagFuncName, ast.Var("x")),
					ast.Call(config.CtorTagFuncName, ast.Var("y"))),
			))
		}
		cmpFn = ast.Lambda([]string{"x", "y"},
			ast.Match(ast.Tuple(ast.Var("x"), ast.Var("y")), arms...))
	}

	return derive.ImplementationDescriptor{
		InterfaceName: config.OrdInterface,
		Visibility:    ast.Public,
		Impl:          ast.Call(config.MkOrdFuncName, cmpFn),
		ImplType:      derive.ImplementationType(config.OrdInterface, view),
	}, nil
}
