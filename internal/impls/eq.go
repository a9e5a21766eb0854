package impls

import (
	"github.com/funvibe/deriva/internal/ast"
	"github.com/funvibe/deriva/internal/config"
	"github.com/funvibe/deriva/internal/derive"
)

// Eq derives structural equality. Two values are equal when they are built
// by the same constructor and all corresponding fields compare equal.
func Eq() derive.Generator { return derive.GeneratorFunc(genEq) }

func genEq(view *derive.UtilityView) (derive.ImplementationDescriptor, error) {
	ctors := view.TypeInfo.Constructors

	var eqFn ast.Expression
	if len(ctors) == 0 {
		// No inhabitants: equality holds vacuously.
		eqFn = ast.Lambda([]string{"x", "y"}, &ast.BooleanLiteral{Value: true})
	} else {
		arms := []*ast.MatchArm{}
		for _, ctor := range ctors {
			n := len(ctor.ExplicitArgs())
			xs := bindNames("a", n)
			ys := bindNames("b", n)

			var body ast.Expression = &ast.BooleanLiteral{Value: true}
			for i := n - 1; i >= 0; i-- {
				cmp := ast.Infix("==", ast.Var(xs[i]), ast.Var(ys[i]))
				if i == n-1 {
					body = cmp
				} else {
					body = ast.Infix("&&", cmp, body)
				}
			}

			arms = append(arms, ast.Arm(
				ast.TuplePat(ast.CtorPat(ctor.Name, identPats(xs)...), ast.CtorPat(ctor.Name, identPats(ys)...)),
				body,
			))
		}
		if len(ctors) > 1 {
			arms = append(arms, ast.Arm(ast.Wildcard(), &ast.BooleanLiteral{Value: false}))
		}
		eqFn = ast.Lambda([]string{"x", "y"},
			ast.Match(ast.Tuple(ast.Var("x"), ast.Var("y")), arms...))
	}

	return derive.ImplementationDescriptor{
		InterfaceName: config.EqInterface,
		Visibility:    ast.Public,
		Impl:          ast.Call(config.MkEqFuncName, eqFn),
		ImplType:      derive.ImplementationType(config.EqInterface, view),
	}, nil
}
