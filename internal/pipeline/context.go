package pipeline

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/funvibe/deriva/internal/ast"
	"github.com/funvibe/deriva/internal/typeinfo"
)

// Processor is one stage of a derivation run.
type Processor interface {
	Process(ctx *Context) *Context
}

// Diagnostic is one problem reported by a stage.
type Diagnostic struct {
	Stage   string
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("[%s] %s", d.Stage, d.Message)
}

// TypeResult is the outcome of deriving one type.
type TypeResult struct {
	TypeInfo  *typeinfo.ParamTypeInfo
	Decls     []ast.Decl
	Rendered  string
	FromCache bool
}

// Context carries state between stages of one derivation run. Each run is
// tagged with a request ID for diagnostics.
type Context struct {
	RequestID   string
	Interfaces  []string
	Types       []*typeinfo.ParamTypeInfo
	Results     []TypeResult
	Diagnostics []Diagnostic
}

func NewContext(interfaces []string) *Context {
	return &Context{
		RequestID:  uuid.NewString(),
		Interfaces: interfaces,
	}
}

func (c *Context) AddDiagnostic(stage, format string, args ...interface{}) {
	c.Diagnostics = append(c.Diagnostics, Diagnostic{
		Stage:   stage,
		Message: fmt.Sprintf(format, args...),
	})
}

func (c *Context) HasErrors() bool {
	return len(c.Diagnostics) > 0
}
