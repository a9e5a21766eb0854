package derive

import (
	"testing"

	"github.com/funvibe/deriva/internal/typeinfo"
	"github.com/funvibe/deriva/internal/typesystem"
)

func TestImplementationTypeEither(t *testing.T) {
	view := BuildUtilityView(eitherInfo())
	typ := ImplementationType("Eq", view)

	forall, ok := typ.(typesystem.TForall)
	if !ok {
		t.Fatalf("type is %T, want TForall", typ)
	}
	if len(forall.Vars) != 2 || forall.Vars[0].Name != "a" || forall.Vars[1].Name != "b" {
		t.Errorf("binders = %v, want [a b]", forall.Vars)
	}
	if len(forall.Constraints) != 2 {
		t.Fatalf("constraints = %v, want 2 entries", forall.Constraints)
	}
	if forall.Constraints[0].String() != "Eq a" || forall.Constraints[1].String() != "Eq b" {
		t.Errorf("constraints = %v, want [Eq a, Eq b]", forall.Constraints)
	}
	if forall.Type.String() != "(Eq (Either a b))" {
		t.Errorf("target = %s, want (Eq (Either a b))", forall.Type)
	}
}

func TestImplementationTypeZeroParams(t *testing.T) {
	ti := &typeinfo.ParamTypeInfo{
		Name: "IntBox",
		Constructors: []typeinfo.Constructor{
			{Name: "MkIntBox", Args: []typeinfo.ConstructorArg{explicitArg(typesystem.Int)}},
		},
	}
	typ := ImplementationType("Show", BuildUtilityView(ti))

	// No parameters: no quantifier at all, just Show IntBox.
	if _, ok := typ.(typesystem.TForall); ok {
		t.Fatalf("zero-parameter type should not be quantified: %s", typ)
	}
	if typ.String() != "(Show IntBox)" {
		t.Errorf("type = %s, want (Show IntBox)", typ)
	}
}

func TestImplementationTypeOneConstraintPerOccurrence(t *testing.T) {
	ti := &typeinfo.ParamTypeInfo{
		Name:   "Twice",
		Params: []typeinfo.TypeParam{{Name: "a"}},
		Constructors: []typeinfo.Constructor{
			{Name: "MkTwice", Args: []typeinfo.ConstructorArg{
				explicitArg(tvar("a")),
				explicitArg(tvar("a")),
			}},
		},
	}
	typ := ImplementationType("Eq", BuildUtilityView(ti))

	forall := typ.(typesystem.TForall)
	if len(forall.Constraints) != 2 {
		t.Errorf("constraints = %v, want one per field occurrence", forall.Constraints)
	}
}
