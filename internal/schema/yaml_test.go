package schema

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/funvibe/deriva/internal/typesystem"
)

const eitherSchema = `
types:
  - name: Either
    params: [a, b]
    constructors:
      - name: Left
        args: ["a"]
      - name: Right
        args: ["b"]
`

func TestParseYAMLEither(t *testing.T) {
	infos, err := ParseYAML([]byte(eitherSchema))
	if err != nil {
		t.Fatalf("ParseYAML: %v", err)
	}
	if len(infos) != 1 {
		t.Fatalf("got %d types, want 1", len(infos))
	}

	ti := infos[0]
	if ti.Name != "Either" {
		t.Errorf("name = %s, want Either", ti.Name)
	}
	if len(ti.Params) != 2 || ti.Params[0].Name != "a" || ti.Params[1].Name != "b" {
		t.Errorf("params = %v, want [a b]", ti.Params)
	}
	if !ti.Params[0].Kind.Equal(typesystem.Star) {
		t.Errorf("default param kind = %s, want *", ti.Params[0].Kind)
	}
	if len(ti.Constructors) != 2 {
		t.Fatalf("got %d constructors, want 2", len(ti.Constructors))
	}
	left := ti.Constructors[0]
	if left.Name != "Left" || len(left.Args) != 1 || left.Args[0].Type.String() != "a" {
		t.Errorf("Left = %+v", left)
	}
	if !left.Args[0].Explicit {
		t.Errorf("bare argument should be explicit")
	}
}

func TestParseYAMLKindsAndImplicits(t *testing.T) {
	doc := `
types:
  - name: Fix
    params:
      - name: f
        kind: "* -> *"
    constructors:
      - name: MkFix
        args:
          - type: "f (Fix f)"
          - type: "a"
            implicit: true
`
	infos, err := ParseYAML([]byte(doc))
	if err != nil {
		t.Fatalf("ParseYAML: %v", err)
	}

	ti := infos[0]
	wantKind := typesystem.MakeArrow(typesystem.Star, typesystem.Star)
	if !ti.Params[0].Kind.Equal(wantKind) {
		t.Errorf("kind = %s, want %s", ti.Params[0].Kind, wantKind)
	}

	args := ti.Constructors[0].Args
	if len(args) != 2 {
		t.Fatalf("got %d args, want 2", len(args))
	}
	if !args[0].Explicit || args[1].Explicit {
		t.Errorf("implicit flag lost: %+v", args)
	}
	if got := ti.Constructors[0].ExplicitArgs(); len(got) != 1 {
		t.Errorf("ExplicitArgs = %v, want the single explicit field", got)
	}
}

func TestParseYAMLNullaryConstructors(t *testing.T) {
	doc := `
types:
  - name: Color
    constructors:
      - name: Red
      - name: Green
      - name: Blue
  - name: Void
`
	infos, err := ParseYAML([]byte(doc))
	if err != nil {
		t.Fatalf("ParseYAML: %v", err)
	}
	if len(infos) != 2 {
		t.Fatalf("got %d types, want 2", len(infos))
	}
	if len(infos[0].Constructors) != 3 {
		t.Errorf("Color has %d constructors, want 3", len(infos[0].Constructors))
	}
	if len(infos[1].Constructors) != 0 {
		t.Errorf("Void has %d constructors, want 0", len(infos[1].Constructors))
	}
}

func TestParseYAMLErrors(t *testing.T) {
	bad := []string{
		"types:\n  - params: [a]",                                            // missing name
		"types:\n  - name: T\n    constructors:\n      - name: C\n        args: [\"(a\"]", // bad type expr
		"types: {",                                                           // malformed YAML
	}
	for _, doc := range bad {
		if _, err := ParseYAML([]byte(doc)); err == nil {
			t.Errorf("ParseYAML(%q) should fail", doc)
		}
	}
}

func TestLoadYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schema.yaml")
	if err := os.WriteFile(path, []byte(eitherSchema), 0644); err != nil {
		t.Fatal(err)
	}

	infos, err := LoadYAMLFile(path)
	if err != nil {
		t.Fatalf("LoadYAMLFile: %v", err)
	}
	if len(infos) != 1 || infos[0].Name != "Either" {
		t.Errorf("loaded %v", infos)
	}

	if _, err := LoadYAMLFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Errorf("missing file should fail")
	}
}
