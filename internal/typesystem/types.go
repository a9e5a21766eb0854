package typesystem

import (
	"fmt"
	"strings"
)

// Type is the interface for all type expressions in our system.
type Type interface {
	String() string
	Apply(Subst) Type
	FreeTypeVariables() []TVar
	Kind() Kind
}

// TVar represents a type variable (e.g. 'a', 'b', 't1').
type TVar struct {
	Name    string
	KindVal Kind // Renamed from Kind to KindVal to avoid collision with method
}

func (t TVar) String() string { return t.Name }

func (t TVar) Kind() Kind {
	if t.KindVal == nil {
		return Star
	}
	return t.KindVal
}

func (t TVar) Apply(s Subst) Type {
	return ApplyWithCycleCheck(t, s, make(map[string]bool))
}

func (t TVar) FreeTypeVariables() []TVar {
	return []TVar{t}
}

// ApplyWithCycleCheck applies substitution with cycle detection.
// This is the main entry point for substitution application.
func ApplyWithCycleCheck(t Type, s Subst, visited map[string]bool) Type {
	if t == nil {
		return nil
	}

	switch typ := t.(type) {
	case TVar:
		if visited[typ.Name] {
			return typ // Break cycle - return the variable as-is
		}

		if replacement, ok := s[typ.Name]; ok {
			// Check for direct self-reference
			if tv, ok := replacement.(TVar); ok && tv.Name == typ.Name {
				return typ
			}
			newVisited := copyVisited(visited)
			newVisited[typ.Name] = true
			return ApplyWithCycleCheck(replacement, s, newVisited)
		}
		return typ

	case TCon:
		return typ // Constants don't change

	case TApp:
		newArgs := make([]Type, len(typ.Args))
		for i, arg := range typ.Args {
			newArgs[i] = ApplyWithCycleCheck(arg, s, visited)
		}
		newCtor := ApplyWithCycleCheck(typ.Constructor, s, visited)

		// Flatten nested TApp: if constructor is TApp, merge args
		// e.g. (Result String) B becomes Result String B
		if ctorApp, ok := newCtor.(TApp); ok {
			mergedArgs := make([]Type, 0, len(ctorApp.Args)+len(newArgs))
			mergedArgs = append(mergedArgs, ctorApp.Args...)
			mergedArgs = append(mergedArgs, newArgs...)
			return TApp{Constructor: ctorApp.Constructor, Args: mergedArgs}
		}

		return TApp{Constructor: newCtor, Args: newArgs}

	case TTuple:
		newElems := make([]Type, len(typ.Elements))
		for i, e := range typ.Elements {
			newElems[i] = ApplyWithCycleCheck(e, s, visited)
		}
		return TTuple{Elements: newElems}

	case TFunc:
		newParams := make([]Type, len(typ.Params))
		for i, p := range typ.Params {
			newParams[i] = ApplyWithCycleCheck(p, s, visited)
		}
		return TFunc{
			Params:     newParams,
			ReturnType: ApplyWithCycleCheck(typ.ReturnType, s, visited),
		}

	case TForall:
		// Filter substitution to exclude quantified variables
		newSubst := make(Subst)
		boundVars := make(map[string]bool)
		for _, v := range typ.Vars {
			boundVars[v.Name] = true
		}
		for k, v := range s {
			if !boundVars[k] {
				newSubst[k] = v
			}
		}

		newConstraints := make([]Constraint, len(typ.Constraints))
		for i, c := range typ.Constraints {
			newConstraints[i] = Constraint{
				Interface: c.Interface,
				Target:    ApplyWithCycleCheck(c.Target, newSubst, visited),
			}
		}

		return TForall{
			Vars:        typ.Vars,
			Constraints: newConstraints,
			Type:        ApplyWithCycleCheck(typ.Type, newSubst, visited),
		}

	default:
		return t.Apply(s)
	}
}

func copyVisited(m map[string]bool) map[string]bool {
	newMap := make(map[string]bool, len(m))
	for k, v := range m {
		newMap[k] = v
	}
	return newMap
}

// TCon represents a type constant/constructor (e.g. Int, Bool, List, Either).
type TCon struct {
	Name    string
	Module  string // Optional module path for imported types
	KindVal Kind
}

func (t TCon) Kind() Kind {
	if t.KindVal != nil {
		return t.KindVal
	}
	return Star
}

func (t TCon) String() string {
	if t.Module != "" {
		return t.Module + "." + t.Name
	}
	return t.Name
}

func (t TCon) Apply(s Subst) Type {
	return ApplyWithCycleCheck(t, s, make(map[string]bool))
}

func (t TCon) FreeTypeVariables() []TVar {
	return []TVar{}
}

// Common builtin types referenced by the schema loaders.
var (
	Int    Type = TCon{Name: "Int"}
	Float  Type = TCon{Name: "Float"}
	Bool   Type = TCon{Name: "Bool"}
	Char   Type = TCon{Name: "Char"}
	Bytes  Type = TCon{Name: "Bytes"}
	Nil    Type = TCon{Name: "Nil"}
	String Type = TCon{Name: "String"}
)

// TApp represents a type application (e.g. List Int, Either a b).
type TApp struct {
	Constructor Type
	Args        []Type
	KindVal     Kind // Cache the kind
}

func (t TApp) Kind() Kind {
	if t.KindVal != nil {
		return t.KindVal
	}
	k := t.Constructor.Kind()
	for range t.Args {
		if arrow, ok := k.(KArrow); ok {
			k = arrow.Right
		} else {
			return Star
		}
	}
	return k
}

func (t TApp) String() string {
	args := []string{}
	for _, arg := range t.Args {
		args = append(args, arg.String())
	}
	if len(args) == 0 {
		return t.Constructor.String()
	}
	return fmt.Sprintf("(%s %s)", t.Constructor.String(), strings.Join(args, " "))
}

func (t TApp) Apply(s Subst) Type {
	return ApplyWithCycleCheck(t, s, make(map[string]bool))
}

func (t TApp) FreeTypeVariables() []TVar {
	vars := []TVar{}
	vars = append(vars, t.Constructor.FreeTypeVariables()...)
	for _, arg := range t.Args {
		vars = append(vars, arg.FreeTypeVariables()...)
	}
	return uniqueTVars(vars)
}

// TTuple represents a tuple type (e.g. (Int, Bool)).
type TTuple struct {
	Elements []Type
}

func (t TTuple) Kind() Kind { return Star }

func (t TTuple) String() string {
	args := []string{}
	for _, el := range t.Elements {
		args = append(args, el.String())
	}
	return fmt.Sprintf("(%s)", strings.Join(args, ", "))
}

func (t TTuple) Apply(s Subst) Type {
	return ApplyWithCycleCheck(t, s, make(map[string]bool))
}

func (t TTuple) FreeTypeVariables() []TVar {
	vars := []TVar{}
	for _, el := range t.Elements {
		vars = append(vars, el.FreeTypeVariables()...)
	}
	return uniqueTVars(vars)
}

// TFunc represents a function type (e.g. (Int, Int) -> Bool).
type TFunc struct {
	Params     []Type
	ReturnType Type
}

func (t TFunc) Kind() Kind { return Star }

func (t TFunc) String() string {
	params := []string{}
	for _, p := range t.Params {
		params = append(params, p.String())
	}
	return fmt.Sprintf("(%s) -> %s", strings.Join(params, ", "), t.ReturnType.String())
}

func (t TFunc) Apply(s Subst) Type {
	return ApplyWithCycleCheck(t, s, make(map[string]bool))
}

func (t TFunc) FreeTypeVariables() []TVar {
	vars := []TVar{}
	for _, p := range t.Params {
		vars = append(vars, p.FreeTypeVariables()...)
	}
	vars = append(vars, t.ReturnType.FreeTypeVariables()...)
	return uniqueTVars(vars)
}

// Constraint represents an automatically-resolved interface obligation on a
// quantified signature, e.g. Eq (List a) in
// forall a b. Eq (List a) => Eq (Either a b).
type Constraint struct {
	Interface string
	Target    Type
}

func (c Constraint) String() string {
	return fmt.Sprintf("%s %s", c.Interface, c.Target.String())
}

// TForall represents a universally quantified type with constraints.
// e.g. forall a b. Eq a => Eq b => Eq (Either a b)
type TForall struct {
	Vars        []TVar
	Constraints []Constraint
	Type        Type
}

func (t TForall) Kind() Kind { return Star }

func (t TForall) String() string {
	vars := []string{}
	for _, v := range t.Vars {
		vars = append(vars, v.String())
	}

	var sb strings.Builder
	if len(vars) > 0 {
		sb.WriteString(fmt.Sprintf("forall %s. ", strings.Join(vars, " ")))
	}
	for _, c := range t.Constraints {
		sb.WriteString(c.String())
		sb.WriteString(" => ")
	}
	sb.WriteString(t.Type.String())
	return sb.String()
}

func (t TForall) Apply(s Subst) Type {
	return ApplyWithCycleCheck(t, s, make(map[string]bool))
}

func (t TForall) FreeTypeVariables() []TVar {
	bound := make(map[string]bool)
	for _, v := range t.Vars {
		bound[v.Name] = true
	}

	free := t.Type.FreeTypeVariables()
	for _, c := range t.Constraints {
		free = append(free, c.Target.FreeTypeVariables()...)
	}

	result := []TVar{}
	for _, v := range free {
		if !bound[v.Name] {
			result = append(result, v)
		}
	}
	return uniqueTVars(result)
}

// Subst is a mapping from Type Variables to Types.
type Subst map[string]Type

// Compose combines two substitutions.
func (s1 Subst) Compose(s2 Subst) Subst {
	subst := Subst{}
	for k, v := range s2 {
		subst[k] = v
	}
	for k, v := range s1 {
		subst[k] = v.Apply(s2)
	}
	return subst
}

func uniqueTVars(vars []TVar) []TVar {
	unique := []TVar{}
	seen := map[string]bool{}
	for _, v := range vars {
		if !seen[v.Name] {
			seen[v.Name] = true
			unique = append(unique, v)
		}
	}
	return unique
}

// MentionsAny reports whether any of the given variable names occurs free in t.
// Purely syntactic: aliases are not resolved, definitions are not unfolded.
func MentionsAny(t Type, names []string) bool {
	if t == nil || len(names) == 0 {
		return false
	}
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	for _, v := range t.FreeTypeVariables() {
		if set[v.Name] {
			return true
		}
	}
	return false
}
