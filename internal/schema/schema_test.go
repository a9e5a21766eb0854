package schema

import (
	"testing"

	"github.com/funvibe/deriva/internal/typesystem"
)

func TestParseTypeExpr(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"a", "a"},
		{"Int", "Int"},
		{"List a", "(List a)"},
		{"Map String a", "(Map String a)"},
		{"Either a b", "(Either a b)"},
		{"(a, b)", "(a, b)"},
		{"List (Either a b)", "(List (Either a b))"},
		{"a -> b", "(a) -> b"},
		{"(a, b) -> c", "(a, b) -> c"},
		{"a -> b -> c", "(a) -> (b) -> c"},
		{"(List a)", "(List a)"},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			typ, err := ParseTypeExpr(tt.src)
			if err != nil {
				t.Fatalf("ParseTypeExpr(%q): %v", tt.src, err)
			}
			if got := typ.String(); got != tt.want {
				t.Errorf("ParseTypeExpr(%q) = %s, want %s", tt.src, got, tt.want)
			}
		})
	}
}

func TestParseTypeExprVariablesVsConstructors(t *testing.T) {
	typ, err := ParseTypeExpr("Either a Int")
	if err != nil {
		t.Fatal(err)
	}
	app := typ.(typesystem.TApp)
	if _, ok := app.Constructor.(typesystem.TCon); !ok {
		t.Errorf("Either should parse as a constructor")
	}
	if _, ok := app.Args[0].(typesystem.TVar); !ok {
		t.Errorf("a should parse as a variable")
	}
	if _, ok := app.Args[1].(typesystem.TCon); !ok {
		t.Errorf("Int should parse as a constructor")
	}
}

func TestParseTypeExprErrors(t *testing.T) {
	for _, src := range []string{"", "(a", "a)", "List a,"} {
		if _, err := ParseTypeExpr(src); err == nil {
			t.Errorf("ParseTypeExpr(%q) should fail", src)
		}
	}
}

func TestParseKindExpr(t *testing.T) {
	tests := []struct {
		src  string
		want typesystem.Kind
	}{
		{"*", typesystem.Star},
		{"* -> *", typesystem.MakeArrow(typesystem.Star, typesystem.Star)},
		{"* -> * -> *", typesystem.MakeArrow(typesystem.Star, typesystem.Star, typesystem.Star)},
	}
	for _, tt := range tests {
		k, err := ParseKindExpr(tt.src)
		if err != nil {
			t.Fatalf("ParseKindExpr(%q): %v", tt.src, err)
		}
		if !k.Equal(tt.want) {
			t.Errorf("ParseKindExpr(%q) = %s, want %s", tt.src, k, tt.want)
		}
	}

	if _, err := ParseKindExpr("Type"); err == nil {
		t.Errorf("non-star kinds should be rejected")
	}
}
