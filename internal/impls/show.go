package impls

import (
	"github.com/funvibe/deriva/internal/ast"
	"github.com/funvibe/deriva/internal/config"
	"github.com/funvibe/deriva/internal/derive"
)

// Show derives a display function: the constructor name followed by the
// shown fields, space-separated.
func Show() derive.Generator { return derive.GeneratorFunc(genShow) }

func genShow(view *derive.UtilityView) (derive.ImplementationDescriptor, error) {
	arms := []*ast.MatchArm{}
	for _, ctor := range view.TypeInfo.Constructors {
		n := len(ctor.ExplicitArgs())
		xs := bindNames("a", n)

		var body ast.Expression = ast.Str(ctor.Name)
		for i := 0; i < n; i++ {
			body = ast.Infix("++", body,
				ast.Infix("++", ast.Str(" "), ast.Call(config.ShowFuncName, ast.Var(xs[i]))))
		}

		arms = append(arms, ast.Arm(ast.CtorPat(ctor.Name, identPats(xs)...), body))
	}

	// A zero-constructor type yields an empty match: unreachable at runtime.
	showFn := ast.Lambda([]string{"v"}, ast.Match(ast.Var("v"), arms...))

	return derive.ImplementationDescriptor{
		InterfaceName: config.ShowInterface,
		Visibility:    ast.Public,
		Impl:          ast.Call(config.MkShowFuncName, showFn),
		ImplType:      derive.ImplementationType(config.ShowInterface, view),
	}, nil
}
