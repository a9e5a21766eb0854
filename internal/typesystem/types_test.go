package typesystem

import (
	"testing"
)

func TestTypeStrings(t *testing.T) {
	either := TApp{
		Constructor: TCon{Name: "Either"},
		Args:        []Type{TVar{Name: "a"}, TVar{Name: "b"}},
	}

	tests := []struct {
		name string
		typ  Type
		want string
	}{
		{"TVar", TVar{Name: "a"}, "a"},
		{"TCon", TCon{Name: "Int"}, "Int"},
		{"Qualified TCon", TCon{Name: "Tree", Module: "collections"}, "collections.Tree"},
		{"TApp", either, "(Either a b)"},
		{"TTuple", TTuple{Elements: []Type{Int, Bool}}, "(Int, Bool)"},
		{"TFunc", TFunc{Params: []Type{Int, Int}, ReturnType: Bool}, "(Int, Int) -> Bool"},
		{
			"TForall with constraints",
			TForall{
				Vars: []TVar{{Name: "a"}, {Name: "b"}},
				Constraints: []Constraint{
					{Interface: "Eq", Target: TVar{Name: "a"}},
					{Interface: "Eq", Target: TVar{Name: "b"}},
				},
				Type: TApp{Constructor: TCon{Name: "Eq"}, Args: []Type{either}},
			},
			"forall a b. Eq a => Eq b => (Eq (Either a b))",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.typ.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSubstApply(t *testing.T) {
	s := Subst{"a": Int, "b": Bool}

	applied := TApp{
		Constructor: TCon{Name: "Either"},
		Args:        []Type{TVar{Name: "a"}, TVar{Name: "b"}},
	}.Apply(s)

	if applied.String() != "(Either Int Bool)" {
		t.Errorf("Apply = %s, want (Either Int Bool)", applied.String())
	}
}

func TestSubstApplyFlattensNestedApp(t *testing.T) {
	// f := Result String, so f b must flatten to Result String b.
	s := Subst{
		"f": TApp{Constructor: TCon{Name: "Result"}, Args: []Type{String}},
	}
	applied := TApp{
		Constructor: TVar{Name: "f"},
		Args:        []Type{TVar{Name: "b"}},
	}.Apply(s)

	if applied.String() != "(Result String b)" {
		t.Errorf("Apply = %s, want (Result String b)", applied.String())
	}
}

func TestSubstApplySkipsBoundVars(t *testing.T) {
	forall := TForall{
		Vars: []TVar{{Name: "a"}},
		Type: TApp{Constructor: TCon{Name: "List"}, Args: []Type{TVar{Name: "a"}}},
	}
	applied := forall.Apply(Subst{"a": Int})
	if applied.String() != "forall a. (List a)" {
		t.Errorf("Apply = %s, want forall a. (List a)", applied.String())
	}
}

func TestFreeTypeVariables(t *testing.T) {
	forall := TForall{
		Vars:        []TVar{{Name: "a"}},
		Constraints: []Constraint{{Interface: "Eq", Target: TVar{Name: "c"}}},
		Type: TApp{
			Constructor: TCon{Name: "Either"},
			Args:        []Type{TVar{Name: "a"}, TVar{Name: "b"}},
		},
	}

	free := forall.FreeTypeVariables()
	names := map[string]bool{}
	for _, v := range free {
		names[v.Name] = true
	}
	if names["a"] {
		t.Errorf("bound variable a should not be free")
	}
	if !names["b"] || !names["c"] {
		t.Errorf("free variables = %v, want b and c", free)
	}
}

func TestMentionsAny(t *testing.T) {
	listA := TApp{Constructor: TCon{Name: "List"}, Args: []Type{TVar{Name: "a"}}}

	tests := []struct {
		name  string
		typ   Type
		names []string
		want  bool
	}{
		{"direct variable", TVar{Name: "a"}, []string{"a", "b"}, true},
		{"nested in application", listA, []string{"a"}, true},
		{"different variable", listA, []string{"b"}, false},
		{"constant", Int, []string{"a"}, false},
		{"no names", listA, nil, false},
		{"inside tuple", TTuple{Elements: []Type{Int, TVar{Name: "b"}}}, []string{"b"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MentionsAny(tt.typ, tt.names); got != tt.want {
				t.Errorf("MentionsAny = %v, want %v", got, tt.want)
			}
		})
	}
}
