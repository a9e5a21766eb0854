package pipeline

import (
	"github.com/funvibe/deriva/internal/cache"
	"github.com/funvibe/deriva/internal/derive"
	"github.com/funvibe/deriva/internal/impls"
	"github.com/funvibe/deriva/internal/prettyprinter"
	"github.com/funvibe/deriva/internal/symbols"
	"github.com/funvibe/deriva/internal/typeinfo"
)

// LoadStage pulls type descriptions from a schema source.
type LoadStage struct {
	Source func() ([]*typeinfo.ParamTypeInfo, error)
}

func (s *LoadStage) Process(ctx *Context) *Context {
	infos, err := s.Source()
	if err != nil {
		ctx.AddDiagnostic("load", "%v", err)
		return ctx
	}
	if len(infos) == 0 {
		ctx.AddDiagnostic("load", "schema contains no types")
		return ctx
	}
	ctx.Types = infos
	return ctx
}

// DeriveStage registers every loaded type in the symbol table, then runs
// one derivation request per type for the requested interfaces. A failing
// type contributes a diagnostic and installs nothing; other types still run
// (each request is independently atomic).
type DeriveStage struct {
	Table *symbols.SymbolTable
}

func (s *DeriveStage) Process(ctx *Context) *Context {
	if ctx.Types == nil {
		return ctx
	}

	for _, ti := range ctx.Types {
		if err := s.Table.DefineDataType(ti); err != nil {
			ctx.AddDiagnostic("derive", "%v", err)
			return ctx
		}
	}

	gens := make([]derive.Generator, 0, len(ctx.Interfaces))
	for _, name := range ctx.Interfaces {
		gen, ok := impls.ForName(name)
		if !ok {
			ctx.AddDiagnostic("derive", "no generator for interface %s", name)
			return ctx
		}
		gens = append(gens, gen)
	}

	engine := derive.New(s.Table, s.Table)
	for _, ti := range ctx.Types {
		decls, err := engine.Derive(ti.Name, gens)
		if err != nil {
			ctx.AddDiagnostic("derive", "%v", err)
			continue
		}
		ctx.Results = append(ctx.Results, TypeResult{TypeInfo: ti, Decls: decls})
	}
	return ctx
}

// RenderStage pretty-prints the derived declarations of every result,
// consulting the cache (when configured) to skip re-rendering unchanged
// types.
type RenderStage struct {
	Cache *cache.Store // optional
}

func (s *RenderStage) Process(ctx *Context) *Context {
	for i := range ctx.Results {
		res := &ctx.Results[i]

		var fingerprint string
		if s.Cache != nil {
			fingerprint = cache.Fingerprint(res.TypeInfo, ctx.Interfaces)
			if rendered, ok, err := s.Cache.Get(fingerprint); err != nil {
				ctx.AddDiagnostic("render", "%v", err)
			} else if ok {
				res.Rendered = rendered
				res.FromCache = true
				continue
			}
		}

		res.Rendered = prettyprinter.NewCodePrinter().PrintDecls(res.Decls)

		if s.Cache != nil {
			if err := s.Cache.Put(fingerprint, res.TypeInfo.Name, res.Rendered); err != nil {
				ctx.AddDiagnostic("render", "%v", err)
			}
		}
	}
	return ctx
}
