package prettyprinter

import (
	"testing"

	"github.com/funvibe/deriva/internal/ast"
	"github.com/funvibe/deriva/internal/typesystem"
)

func TestPrintExprPrecedence(t *testing.T) {
	tests := []struct {
		name string
		expr ast.Expression
		want string
	}{
		{
			"equal precedence needs no parens",
			ast.Infix("&&", ast.Infix("==", ast.Var("a"), ast.Var("b")), ast.Var("c")),
			"a == b && c",
		},
		{
			"lower precedence child is parenthesized",
			ast.Infix("*", ast.Infix("+", ast.Var("a"), ast.Var("b")), ast.Var("c")),
			"(a + b) * c",
		},
		{
			"higher precedence child needs no parens",
			ast.Infix("+", ast.Infix("*", ast.Var("a"), ast.Var("b")), ast.Var("c")),
			"a * b + c",
		},
		{
			"call",
			ast.Call("compare", ast.Var("x"), ast.Var("y")),
			"compare(x, y)",
		},
		{
			"nested call",
			ast.Call("thenCompare", ast.Call("compare", ast.Var("a"), ast.Var("b")), ast.Var("rest")),
			"thenCompare(compare(a, b), rest)",
		},
		{
			"single-parameter lambda",
			ast.Lambda([]string{"v"}, ast.Var("v")),
			"v -> v",
		},
		{
			"multi-parameter lambda",
			ast.Lambda([]string{"x", "y"}, ast.Infix("==", ast.Var("x"), ast.Var("y"))),
			"(x, y) -> x == y",
		},
		{
			"string literal",
			ast.Str("Left"),
			`"Left"`,
		},
		{
			"tuple",
			ast.Tuple(ast.Var("x"), ast.Var("y")),
			"(x, y)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewCodePrinter().PrintExpr(tt.expr); got != tt.want {
				t.Errorf("PrintExpr = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPrintMatch(t *testing.T) {
	match := ast.Match(ast.Tuple(ast.Var("x"), ast.Var("y")),
		ast.Arm(
			ast.TuplePat(ast.CtorPat("Left", ast.IdentPat("a1")), ast.CtorPat("Left", ast.IdentPat("b1"))),
			ast.Infix("==", ast.Var("a1"), ast.Var("b1")),
		),
		ast.Arm(ast.Wildcard(), &ast.BooleanLiteral{Value: false}),
	)

	want := `match (x, y) {
  (Left a1, Left b1) -> a1 == b1,
  _ -> false
}`
	if got := NewCodePrinter().PrintExpr(match); got != want {
		t.Errorf("PrintExpr =\n%s\nwant:\n%s", got, want)
	}
}

func TestPrintEmptyMatch(t *testing.T) {
	got := NewCodePrinter().PrintExpr(ast.Match(ast.Var("v")))
	if got != "match v { }" {
		t.Errorf("PrintExpr = %q, want %q", got, "match v { }")
	}
}

func TestPrintNestedConstructorPattern(t *testing.T) {
	match := ast.Match(ast.Var("v"),
		ast.Arm(
			ast.CtorPat("Just", ast.CtorPat("MkPair", ast.IdentPat("a"), ast.IdentPat("b"))),
			ast.Var("a"),
		),
	)
	want := `match v {
  Just (MkPair a b) -> a
}`
	if got := NewCodePrinter().PrintExpr(match); got != want {
		t.Errorf("PrintExpr =\n%s\nwant:\n%s", got, want)
	}
}

func TestPrintDecls(t *testing.T) {
	either := typesystem.TApp{
		Constructor: typesystem.TCon{Name: "Either"},
		Args:        []typesystem.Type{typesystem.TVar{Name: "a"}, typesystem.TVar{Name: "b"}},
	}
	sig := typesystem.TForall{
		Vars: []typesystem.TVar{{Name: "a"}, {Name: "b"}},
		Constraints: []typesystem.Constraint{
			{Interface: "Eq", Target: typesystem.TVar{Name: "a"}},
			{Interface: "Eq", Target: typesystem.TVar{Name: "b"}},
		},
		Type: typesystem.TApp{Constructor: typesystem.TCon{Name: "Eq"}, Args: []typesystem.Type{either}},
	}

	decls := []ast.Decl{
		&ast.ClaimDecl{Name: "implEqEither", Type: sig, Hint: true, Visibility: ast.Public},
		&ast.DefDecl{Name: "implEqEither", Body: ast.Call("mkEq", ast.Var("eqFn")), Visibility: ast.Public},
	}

	want := `@hint
pub implEqEither : forall a b. Eq a => Eq b => Eq (Either a b)

pub implEqEither = mkEq(eqFn)
`
	if got := NewCodePrinter().PrintDecls(decls); got != want {
		t.Errorf("PrintDecls =\n%s\nwant:\n%s", got, want)
	}
}

func TestPrintType(t *testing.T) {
	tests := []struct {
		name string
		typ  typesystem.Type
		want string
	}{
		{
			"top-level application loses outer parens",
			typesystem.TApp{Constructor: typesystem.TCon{Name: "Show"}, Args: []typesystem.Type{typesystem.TCon{Name: "IntBox"}}},
			"Show IntBox",
		},
		{
			"nested application keeps parens",
			typesystem.TApp{
				Constructor: typesystem.TCon{Name: "Eq"},
				Args: []typesystem.Type{typesystem.TApp{
					Constructor: typesystem.TCon{Name: "List"},
					Args:        []typesystem.Type{typesystem.TVar{Name: "a"}},
				}},
			},
			"Eq (List a)",
		},
		{
			"bare constructor",
			typesystem.TCon{Name: "Void"},
			"Void",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewCodePrinter().PrintType(tt.typ); got != tt.want {
				t.Errorf("PrintType = %q, want %q", got, tt.want)
			}
		})
	}
}
