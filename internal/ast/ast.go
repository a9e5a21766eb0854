package ast

import (
	"github.com/funvibe/deriva/internal/typesystem"
)

// Node is the base interface for all generated-code nodes.
type Node interface {
	node()
}

// Decl is a top-level declaration produced by derivation.
type Decl interface {
	Node
	declNode()
	DeclName() string
}

// Expression is a Node that represents a term-level expression.
type Expression interface {
	Node
	expressionNode()
}

// Pattern is a Node usable on the left side of a match arm.
type Pattern interface {
	Node
	patternNode()
}

// Visibility controls whether a generated declaration is exported.
type Visibility int

const (
	Private Visibility = iota
	Public
)

func (v Visibility) String() string {
	if v == Public {
		return "pub"
	}
	return "priv"
}

// ClaimDecl is a signature-only declaration.
// When Hint is set it marks the function as a candidate for
// interface-instance resolution:
//
//	@hint
//	pub implEqEither : forall a b. Eq a => Eq b => Eq (Either a b)
type ClaimDecl struct {
	Name       string
	Type       typesystem.Type
	Hint       bool
	Visibility Visibility
}

func (cd *ClaimDecl) node()            {}
func (cd *ClaimDecl) declNode()        {}
func (cd *ClaimDecl) DeclName() string { return cd.Name }

// DefDecl is a single-clause definition binding a name to a body:
//
//	implEqEither = mkEq(...)
type DefDecl struct {
	Name       string
	Body       Expression
	Visibility Visibility
}

func (dd *DefDecl) node()            {}
func (dd *DefDecl) declNode()        {}
func (dd *DefDecl) DeclName() string { return dd.Name }
