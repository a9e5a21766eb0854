package schema

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/funvibe/deriva/internal/typeinfo"
	"github.com/funvibe/deriva/internal/typesystem"
)

// File represents the top-level YAML schema document:
//
//	types:
//	  - name: Either
//	    params: [a, b]
//	    constructors:
//	      - name: Left
//	        args: ["a"]
//	      - name: Right
//	        args: ["b"]
type File struct {
	Types []TypeDecl `yaml:"types"`
}

// TypeDecl is one declared data type.
type TypeDecl struct {
	Name         string     `yaml:"name"`
	Params       []Param    `yaml:"params,omitempty"`
	Constructors []CtorDecl `yaml:"constructors,omitempty"`
}

// Param is a type parameter: either a bare name ("a") or a mapping with an
// explicit kind ({name: f, kind: "* -> *"}).
type Param struct {
	Name string `yaml:"name"`
	Kind string `yaml:"kind,omitempty"`
}

func (p *Param) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		p.Name = value.Value
		return nil
	}
	type plain Param
	return value.Decode((*plain)(p))
}

// CtorDecl is one constructor with its argument type expressions.
type CtorDecl struct {
	Name string `yaml:"name"`
	Args []Arg  `yaml:"args,omitempty"`
}

// Arg is a constructor argument: a bare type expression ("List a") or a
// mapping marking it implicit ({type: "a", implicit: true}).
type Arg struct {
	Type     string `yaml:"type"`
	Implicit bool   `yaml:"implicit,omitempty"`
}

func (a *Arg) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		a.Type = value.Value
		return nil
	}
	type plain Arg
	return value.Decode((*plain)(a))
}

// LoadYAMLFile reads and resolves a YAML schema file.
func LoadYAMLFile(path string) ([]*typeinfo.ParamTypeInfo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schema %s: %w", path, err)
	}
	return ParseYAML(data)
}

// ParseYAML resolves a YAML schema document into type descriptions.
func ParseYAML(data []byte) ([]*typeinfo.ParamTypeInfo, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}

	infos := []*typeinfo.ParamTypeInfo{}
	for _, td := range file.Types {
		if td.Name == "" {
			return nil, fmt.Errorf("schema type with empty name")
		}

		ti := &typeinfo.ParamTypeInfo{Name: td.Name}
		for _, p := range td.Params {
			kind := typesystem.Star
			if p.Kind != "" {
				k, err := ParseKindExpr(p.Kind)
				if err != nil {
					return nil, fmt.Errorf("type %s, param %s: %w", td.Name, p.Name, err)
				}
				kind = k
			}
			ti.Params = append(ti.Params, typeinfo.TypeParam{Name: p.Name, Kind: kind})
		}

		for _, cd := range td.Constructors {
			ctor := typeinfo.Constructor{Name: cd.Name}
			for _, arg := range cd.Args {
				t, err := ParseTypeExpr(arg.Type)
				if err != nil {
					return nil, fmt.Errorf("type %s, constructor %s: %w", td.Name, cd.Name, err)
				}
				ctor.Args = append(ctor.Args, typeinfo.ConstructorArg{
					Explicit: !arg.Implicit,
					Type:     t,
				})
			}
			ti.Constructors = append(ti.Constructors, ctor)
		}

		infos = append(infos, ti)
	}
	return infos, nil
}
