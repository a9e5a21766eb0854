package derive

import (
	"fmt"

	"github.com/funvibe/deriva/internal/ast"
	"github.com/funvibe/deriva/internal/config"
	"github.com/funvibe/deriva/internal/typeinfo"
)

// Sink accepts a batch of declarations and adds them to the active program.
// The host performs its own duplicate-name and well-formedness checks; the
// engine does not pre-validate.
type Sink interface {
	Install(decls []ast.Decl) error
}

// Engine drives one derivation request: resolve the type, build the view,
// run the generators in order, lower every descriptor, install the batch.
type Engine struct {
	lookup typeinfo.Lookup
	sink   Sink
}

func New(lookup typeinfo.Lookup, sink Sink) *Engine {
	return &Engine{lookup: lookup, sink: sink}
}

// ImplName derives the generated function name deterministically from the
// interface and type names: impl + interface + type, e.g. implEqEither.
// Distinct types sharing a name collide; that is a known, accepted limitation.
func ImplName(interfaceName, typeName string) string {
	return config.ImplNamePrefix + interfaceName + typeName
}

// Lower turns one descriptor into its two declarations: the hint/signature
// declaration and the one-clause definition, sharing the generated name.
func Lower(d ImplementationDescriptor, typeName string) []ast.Decl {
	name := ImplName(d.InterfaceName, typeName)
	return []ast.Decl{
		&ast.ClaimDecl{
			Name:       name,
			Type:       d.ImplType,
			Hint:       true,
			Visibility: d.Visibility,
		},
		&ast.DefDecl{
			Name:       name,
			Body:       d.Impl,
			Visibility: d.Visibility,
		},
	}
}

// Derive resolves typeName, builds one shared UtilityView, invokes each
// generator in the order given, and installs all resulting declarations as
// a unit. Any failure (name resolution or generator) aborts the request
// with zero declarations installed.
func (e *Engine) Derive(typeName string, gens []Generator) ([]ast.Decl, error) {
	ti, err := e.lookup.LookupDataType(typeName)
	if err != nil {
		return nil, fmt.Errorf("derive %s: %w", typeName, err)
	}

	view := BuildUtilityView(ti)

	decls := []ast.Decl{}
	for _, gen := range gens {
		d, err := gen.Generate(view)
		if err != nil {
			// Whole-batch-or-nothing: nothing accumulated so far is installed.
			return nil, fmt.Errorf("derive %s: %w", typeName, err)
		}
		decls = append(decls, Lower(d, ti.Name)...)
	}

	if e.sink != nil {
		if err := e.sink.Install(decls); err != nil {
			return nil, fmt.Errorf("derive %s: %w", typeName, err)
		}
	}

	return decls, nil
}
