package schema

import (
	"fmt"
	"go/types"

	"golang.org/x/tools/go/packages"

	"github.com/funvibe/deriva/internal/typeinfo"
	"github.com/funvibe/deriva/internal/typesystem"
)

// LoadGoPackage introspects a Go package and converts its exported struct
// types: each struct becomes a single-constructor type whose fields are the
// constructor arguments, and whose type parameters (for generic structs)
// become derivation parameters.
func LoadGoPackage(pattern string) ([]*typeinfo.ParamTypeInfo, error) {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedTypes | packages.NeedTypesInfo,
	}
	pkgs, err := packages.Load(cfg, pattern)
	if err != nil {
		return nil, fmt.Errorf("load package %s: %w", pattern, err)
	}
	if packages.PrintErrors(pkgs) > 0 {
		return nil, fmt.Errorf("load package %s: package contains errors", pattern)
	}

	infos := []*typeinfo.ParamTypeInfo{}
	for _, pkg := range pkgs {
		scope := pkg.Types.Scope()
		for _, name := range scope.Names() {
			obj, ok := scope.Lookup(name).(*types.TypeName)
			if !ok || !obj.Exported() || obj.IsAlias() {
				continue
			}
			named, ok := obj.Type().(*types.Named)
			if !ok {
				continue
			}
			structType, ok := named.Underlying().(*types.Struct)
			if !ok {
				continue
			}
			infos = append(infos, convertStruct(obj.Name(), named, structType))
		}
	}
	return infos, nil
}

func convertStruct(name string, named *types.Named, s *types.Struct) *typeinfo.ParamTypeInfo {
	ti := &typeinfo.ParamTypeInfo{Name: name}

	tparams := named.TypeParams()
	for i := 0; i < tparams.Len(); i++ {
		ti.Params = append(ti.Params, typeinfo.TypeParam{
			Name: tparams.At(i).Obj().Name(),
			Kind: typesystem.Star,
		})
	}

	ctor := typeinfo.Constructor{Name: name}
	for i := 0; i < s.NumFields(); i++ {
		field := s.Field(i)
		if !field.Exported() {
			continue
		}
		ctor.Args = append(ctor.Args, typeinfo.ConstructorArg{
			Explicit: true,
			Type:     goTypeExpr(field.Type()),
		})
	}
	ti.Constructors = []typeinfo.Constructor{ctor}
	return ti
}

func goTypeExpr(t types.Type) typesystem.Type {
	switch tt := t.(type) {
	case *types.Basic:
		switch {
		case tt.Info()&types.IsBoolean != 0:
			return typesystem.Bool
		case tt.Info()&types.IsInteger != 0:
			return typesystem.Int
		case tt.Info()&types.IsFloat != 0:
			return typesystem.Float
		case tt.Info()&types.IsString != 0:
			return typesystem.String
		default:
			return typesystem.TCon{Name: tt.Name()}
		}
	case *types.Slice:
		if elem, ok := tt.Elem().(*types.Basic); ok && elem.Kind() == types.Byte {
			return typesystem.Bytes
		}
		return typesystem.TApp{
			Constructor: typesystem.TCon{Name: "List", KindVal: typesystem.MakeArrow(typesystem.Star, typesystem.Star)},
			Args:        []typesystem.Type{goTypeExpr(tt.Elem())},
		}
	case *types.Map:
		return typesystem.TApp{
			Constructor: typesystem.TCon{Name: "Map", KindVal: typesystem.MakeArrow(typesystem.Star, typesystem.Star, typesystem.Star)},
			Args:        []typesystem.Type{goTypeExpr(tt.Key()), goTypeExpr(tt.Elem())},
		}
	case *types.Pointer:
		// Pointer fields read as optional values.
		return typesystem.TApp{
			Constructor: typesystem.TCon{Name: "Option", KindVal: typesystem.MakeArrow(typesystem.Star, typesystem.Star)},
			Args:        []typesystem.Type{goTypeExpr(tt.Elem())},
		}
	case *types.TypeParam:
		return typesystem.TVar{Name: tt.Obj().Name()}
	case *types.Named:
		if args := tt.TypeArgs(); args != nil && args.Len() > 0 {
			converted := make([]typesystem.Type, args.Len())
			for i := 0; i < args.Len(); i++ {
				converted[i] = goTypeExpr(args.At(i))
			}
			return typesystem.TApp{
				Constructor: typesystem.TCon{Name: tt.Obj().Name()},
				Args:        converted,
			}
		}
		return typesystem.TCon{Name: tt.Obj().Name()}
	default:
		return typesystem.TCon{Name: t.String()}
	}
}
