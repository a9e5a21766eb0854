package symbols

import (
	"fmt"

	"github.com/funvibe/deriva/internal/ast"
	"github.com/funvibe/deriva/internal/typeinfo"
	"github.com/funvibe/deriva/internal/typesystem"
)

type SymbolKind int

const (
	TypeSymbol SymbolKind = iota
	FunctionSymbol
)

type Symbol struct {
	Name     string
	Kind     SymbolKind
	TypeInfo *typeinfo.ParamTypeInfo // For TypeSymbol: the structural description
	Decl     ast.Decl                // For FunctionSymbol: the installed declaration
	IsHint   bool                    // True if the symbol is an instance-resolution candidate
}

// InstanceDef records one installed interface implementation, for overlap
// detection on later installs.
type InstanceDef struct {
	InterfaceName string
	TargetHead    string // Head constructor name of the implemented type
	FunctionName  string
}

// SymbolTable models the enclosing program: declared data types, installed
// declarations, and registered interface implementations. It serves as both
// the name-lookup collaborator and the declaration sink of the derivation
// engine. Scopes chain outward like the language's own scoping.
type SymbolTable struct {
	store           map[string]Symbol
	implementations map[string][]InstanceDef
	outer           *SymbolTable
}

func NewSymbolTable() *SymbolTable {
	return &SymbolTable{
		store:           make(map[string]Symbol),
		implementations: make(map[string][]InstanceDef),
	}
}

func NewEnclosedSymbolTable(outer *SymbolTable) *SymbolTable {
	st := NewSymbolTable()
	st.outer = outer
	return st
}

// Find looks up a symbol in this scope or any outer scope.
func (s *SymbolTable) Find(name string) (Symbol, bool) {
	if sym, ok := s.store[name]; ok {
		return sym, true
	}
	if s.outer != nil {
		return s.outer.Find(name)
	}
	return Symbol{}, false
}

// DefineDataType registers a data type declaration in the current scope.
func (s *SymbolTable) DefineDataType(ti *typeinfo.ParamTypeInfo) error {
	if _, ok := s.store[ti.Name]; ok {
		return fmt.Errorf("duplicate declaration of %s", ti.Name)
	}
	s.store[ti.Name] = Symbol{Name: ti.Name, Kind: TypeSymbol, TypeInfo: ti}
	return nil
}

// LookupDataType implements typeinfo.Lookup.
func (s *SymbolTable) LookupDataType(name string) (*typeinfo.ParamTypeInfo, error) {
	sym, ok := s.Find(name)
	if !ok {
		return nil, fmt.Errorf("%s: %w", name, typeinfo.ErrNotFound)
	}
	if sym.Kind != TypeSymbol || sym.TypeInfo == nil {
		return nil, fmt.Errorf("%s: %w", name, typeinfo.ErrNotADataType)
	}
	return sym.TypeInfo, nil
}

// Install adds a batch of generated declarations to the program, rejecting
// duplicate names and overlapping implementations. The batch is checked
// up-front so a rejected install leaves the table untouched.
func (s *SymbolTable) Install(decls []ast.Decl) error {
	type pending struct {
		sym  Symbol
		inst *InstanceDef
	}
	adds := []pending{}
	seen := make(map[string]bool)

	for _, d := range decls {
		name := d.DeclName()

		switch decl := d.(type) {
		case *ast.ClaimDecl:
			if seen[name] {
				return fmt.Errorf("duplicate declaration of %s in batch", name)
			}
			seen[name] = true
			if _, exists := s.Find(name); exists {
				return fmt.Errorf("duplicate declaration of %s", name)
			}

			p := pending{sym: Symbol{Name: name, Kind: FunctionSymbol, Decl: d, IsHint: decl.Hint}}
			if decl.Hint {
				inst, err := s.instanceFromClaim(decl)
				if err != nil {
					return err
				}
				p.inst = inst
			}
			adds = append(adds, p)

		case *ast.DefDecl:
			// The definition accompanies its claim; the claim carries the
			// symbol. A bare definition still gets a symbol of its own.
			if !seen[name] {
				if _, exists := s.Find(name); exists {
					return fmt.Errorf("duplicate declaration of %s", name)
				}
				seen[name] = true
				adds = append(adds, pending{sym: Symbol{Name: name, Kind: FunctionSymbol, Decl: d}})
			}

		default:
			return fmt.Errorf("cannot install declaration %s: unsupported kind %T", name, d)
		}
	}

	for _, p := range adds {
		s.store[p.sym.Name] = p.sym
		if p.inst != nil {
			s.implementations[p.inst.InterfaceName] = append(
				s.implementations[p.inst.InterfaceName], *p.inst)
		}
	}
	return nil
}

// instanceFromClaim extracts the (interface, target type) pair from a hint
// signature and checks it against already-registered implementations.
func (s *SymbolTable) instanceFromClaim(decl *ast.ClaimDecl) (*InstanceDef, error) {
	iface, target, ok := capabilityOf(decl.Type)
	if !ok {
		return nil, fmt.Errorf("hint %s: signature is not a capability type", decl.Name)
	}

	head := headConstructorName(target)
	for _, existing := range s.AllImplementations()[iface] {
		if existing.TargetHead == head {
			return nil, fmt.Errorf("overlapping instances for interface %s: %s and %s",
				iface, existing.FunctionName, decl.Name)
		}
	}

	return &InstanceDef{InterfaceName: iface, TargetHead: head, FunctionName: decl.Name}, nil
}

// AllImplementations returns every registered implementation, outer scopes
// included (inner scopes appended last).
func (s *SymbolTable) AllImplementations() map[string][]InstanceDef {
	result := make(map[string][]InstanceDef)
	if s.outer != nil {
		for k, v := range s.outer.AllImplementations() {
			result[k] = append([]InstanceDef(nil), v...)
		}
	}
	for iface, impls := range s.implementations {
		result[iface] = append(result[iface], impls...)
	}
	return result
}

// capabilityOf peels quantifiers off a signature and splits the final
// Interface Target application.
func capabilityOf(t typesystem.Type) (string, typesystem.Type, bool) {
	if forall, ok := t.(typesystem.TForall); ok {
		t = forall.Type
	}
	app, ok := t.(typesystem.TApp)
	if !ok || len(app.Args) != 1 {
		return "", nil, false
	}
	con, ok := app.Constructor.(typesystem.TCon)
	if !ok {
		return "", nil, false
	}
	return con.Name, app.Args[0], true
}

func headConstructorName(t typesystem.Type) string {
	switch tt := t.(type) {
	case typesystem.TCon:
		return tt.Name
	case typesystem.TApp:
		return headConstructorName(tt.Constructor)
	default:
		return t.String()
	}
}
