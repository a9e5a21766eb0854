package derive

import (
	"github.com/funvibe/deriva/internal/ast"
	"github.com/funvibe/deriva/internal/typesystem"
)

// ImplementationDescriptor captures one interface implementation prior to
// lowering: its interface name, visibility, generated body, and generated
// function type. Descriptors are produced by generators and consumed by
// the engine; nothing deduplicates them, so requesting the same interface
// twice in one batch yields conflicting declarations.
type ImplementationDescriptor struct {
	InterfaceName string
	Visibility    ast.Visibility
	Impl          ast.Expression
	ImplType      typesystem.Type
}

// Generator is the sole extension point for derivable interfaces: one
// implementation per interface, invoked with the shared view. A generator
// may fail when it cannot handle the type's shape (wrong number of type
// parameters, unsupported constructor pattern); the failure aborts the
// whole derivation request.
type Generator interface {
	Generate(view *UtilityView) (ImplementationDescriptor, error)
}

// GeneratorFunc adapts a plain function to the Generator interface.
type GeneratorFunc func(view *UtilityView) (ImplementationDescriptor, error)

func (f GeneratorFunc) Generate(view *UtilityView) (ImplementationDescriptor, error) {
	return f(view)
}
