package derive

import (
	"reflect"
	"testing"

	"github.com/funvibe/deriva/internal/typeinfo"
	"github.com/funvibe/deriva/internal/typesystem"
)

func tvar(name string) typesystem.Type { return typesystem.TVar{Name: name} }

func explicitArg(t typesystem.Type) typeinfo.ConstructorArg {
	return typeinfo.ConstructorArg{Explicit: true, Type: t}
}

func eitherInfo() *typeinfo.ParamTypeInfo {
	return &typeinfo.ParamTypeInfo{
		Name:   "Either",
		Params: []typeinfo.TypeParam{{Name: "a"}, {Name: "b"}},
		Constructors: []typeinfo.Constructor{
			{Name: "Left", Args: []typeinfo.ConstructorArg{explicitArg(tvar("a"))}},
			{Name: "Right", Args: []typeinfo.ConstructorArg{explicitArg(tvar("b"))}},
		},
	}
}

func TestBuildUtilityViewEither(t *testing.T) {
	view := BuildUtilityView(eitherInfo())

	if got := view.AppliedType.String(); got != "(Either a b)" {
		t.Errorf("AppliedType = %s, want (Either a b)", got)
	}
	if !reflect.DeepEqual(view.ParamNames, []string{"a", "b"}) {
		t.Errorf("ParamNames = %v, want [a b]", view.ParamNames)
	}

	// Constructor-then-argument order: Left's field first, then Right's.
	if len(view.ArgTypesWithParams) != 2 {
		t.Fatalf("ArgTypesWithParams has %d entries, want 2", len(view.ArgTypesWithParams))
	}
	if view.ArgTypesWithParams[0].String() != "a" || view.ArgTypesWithParams[1].String() != "b" {
		t.Errorf("ArgTypesWithParams = %v, want [a b]", view.ArgTypesWithParams)
	}
}

func TestBuildUtilityViewZeroParams(t *testing.T) {
	ti := &typeinfo.ParamTypeInfo{
		Name: "IntBox",
		Constructors: []typeinfo.Constructor{
			{Name: "MkIntBox", Args: []typeinfo.ConstructorArg{explicitArg(typesystem.Int)}},
		},
	}
	view := BuildUtilityView(ti)

	if got := view.AppliedType.String(); got != "IntBox" {
		t.Errorf("AppliedType = %s, want bare IntBox", got)
	}
	if len(view.ParamNames) != 0 {
		t.Errorf("ParamNames = %v, want empty", view.ParamNames)
	}
	if len(view.ArgTypesWithParams) != 0 {
		t.Errorf("ArgTypesWithParams = %v, want empty", view.ArgTypesWithParams)
	}
}

func TestBuildUtilityViewAppliedTypeArity(t *testing.T) {
	ti := &typeinfo.ParamTypeInfo{
		Name:   "Pair",
		Params: []typeinfo.TypeParam{{Name: "a"}, {Name: "b"}},
		Constructors: []typeinfo.Constructor{
			{Name: "MkPair", Args: []typeinfo.ConstructorArg{explicitArg(tvar("a")), explicitArg(tvar("b"))}},
		},
	}
	view := BuildUtilityView(ti)

	app, ok := view.AppliedType.(typesystem.TApp)
	if !ok {
		t.Fatalf("AppliedType is %T, want TApp", view.AppliedType)
	}
	if len(app.Args) != len(ti.Params) {
		t.Errorf("applied type has %d arguments, want %d", len(app.Args), len(ti.Params))
	}
	head, ok := app.Constructor.(typesystem.TCon)
	if !ok || head.Name != "Pair" {
		t.Errorf("applied head = %v, want TCon Pair", app.Constructor)
	}
	// Two parameters of kind Star make the head * -> * -> *.
	wantKind := typesystem.MakeArrow(typesystem.Star, typesystem.Star, typesystem.Star)
	if !head.Kind().Equal(wantKind) {
		t.Errorf("head kind = %s, want %s", head.Kind(), wantKind)
	}
}

func TestBuildUtilityViewDeterministic(t *testing.T) {
	a := BuildUtilityView(eitherInfo())
	b := BuildUtilityView(eitherInfo())

	if a.AppliedType.String() != b.AppliedType.String() {
		t.Errorf("applied types differ: %s vs %s", a.AppliedType, b.AppliedType)
	}
	if !reflect.DeepEqual(a.ParamNames, b.ParamNames) {
		t.Errorf("param names differ: %v vs %v", a.ParamNames, b.ParamNames)
	}
	if !reflect.DeepEqual(a.ArgTypesWithParams, b.ArgTypesWithParams) {
		t.Errorf("arg types differ: %v vs %v", a.ArgTypesWithParams, b.ArgTypesWithParams)
	}
}

func TestBuildUtilityViewFiltersAndDuplicates(t *testing.T) {
	listA := typesystem.TApp{Constructor: typesystem.TCon{Name: "List"}, Args: []typesystem.Type{tvar("a")}}
	ti := &typeinfo.ParamTypeInfo{
		Name:   "Rose",
		Params: []typeinfo.TypeParam{{Name: "a"}},
		Constructors: []typeinfo.Constructor{
			{Name: "Node", Args: []typeinfo.ConstructorArg{
				explicitArg(tvar("a")),
				explicitArg(typesystem.Int), // no parameter, filtered out
				explicitArg(listA),
				{Explicit: false, Type: tvar("a")}, // implicit, never collected
				explicitArg(tvar("a")),             // duplicate occurrence, kept
			}},
		},
	}
	view := BuildUtilityView(ti)

	got := make([]string, len(view.ArgTypesWithParams))
	for i, at := range view.ArgTypesWithParams {
		got[i] = at.String()
	}
	want := []string{"a", "(List a)", "a"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ArgTypesWithParams = %v, want %v", got, want)
	}
}
