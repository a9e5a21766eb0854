// Package schema loads structural type descriptions from external sources:
// YAML schema files, protobuf definitions (.proto files, serialized
// descriptor sets, live gRPC server reflection), and Go packages. Every
// loader produces the same typeinfo.ParamTypeInfo shape consumed by the
// derivation engine.
package schema

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/funvibe/deriva/internal/typesystem"
)

// ParseTypeExpr parses a surface type expression such as "List a",
// "(a, b)", "Map String a" or "a -> b". Names starting with a lowercase
// letter are type variables; everything else is a constructor.
func ParseTypeExpr(src string) (typesystem.Type, error) {
	p := &typeParser{tokens: tokenizeType(src)}
	t, err := p.parseArrow()
	if err != nil {
		return nil, fmt.Errorf("parse type %q: %w", src, err)
	}
	if p.pos != len(p.tokens) {
		return nil, fmt.Errorf("parse type %q: trailing input at %q", src, p.tokens[p.pos])
	}
	return t, nil
}

// ParseKindExpr parses a kind such as "*" or "* -> * -> *".
func ParseKindExpr(src string) (typesystem.Kind, error) {
	parts := strings.Split(src, "->")
	kinds := make([]typesystem.Kind, 0, len(parts))
	for _, part := range parts {
		if strings.TrimSpace(part) != "*" {
			return nil, fmt.Errorf("parse kind %q: only star kinds supported", src)
		}
		kinds = append(kinds, typesystem.Star)
	}
	if len(kinds) == 0 {
		return nil, fmt.Errorf("parse kind %q: empty", src)
	}
	return typesystem.MakeArrow(kinds...), nil
}

func tokenizeType(src string) []string {
	src = strings.ReplaceAll(src, "(", " ( ")
	src = strings.ReplaceAll(src, ")", " ) ")
	src = strings.ReplaceAll(src, ",", " , ")
	src = strings.ReplaceAll(src, "->", " -> ")
	return strings.Fields(src)
}

type typeParser struct {
	tokens []string
	pos    int
}

func (p *typeParser) peek() string {
	if p.pos < len(p.tokens) {
		return p.tokens[p.pos]
	}
	return ""
}

func (p *typeParser) next() string {
	tok := p.peek()
	p.pos++
	return tok
}

// arrow := app ('->' arrow)?   (right-associative)
func (p *typeParser) parseArrow() (typesystem.Type, error) {
	left, err := p.parseApp()
	if err != nil {
		return nil, err
	}
	if p.peek() == "->" {
		p.next()
		right, err := p.parseArrow()
		if err != nil {
			return nil, err
		}
		// A tuple on the left of an arrow is its parameter list.
		if tup, ok := left.(typesystem.TTuple); ok {
			return typesystem.TFunc{Params: tup.Elements, ReturnType: right}, nil
		}
		return typesystem.TFunc{Params: []typesystem.Type{left}, ReturnType: right}, nil
	}
	return left, nil
}

// app := atom atom*
func (p *typeParser) parseApp() (typesystem.Type, error) {
	head, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	args := []typesystem.Type{}
	for {
		tok := p.peek()
		if tok == "" || tok == ")" || tok == "," || tok == "->" {
			break
		}
		arg, err := p.parseAtom()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	if len(args) == 0 {
		return head, nil
	}
	return typesystem.TApp{Constructor: head, Args: args}, nil
}

// atom := name | '(' arrow (',' arrow)* ')'
func (p *typeParser) parseAtom() (typesystem.Type, error) {
	tok := p.next()
	switch {
	case tok == "":
		return nil, fmt.Errorf("unexpected end of input")
	case tok == "(":
		elems := []typesystem.Type{}
		for {
			t, err := p.parseArrow()
			if err != nil {
				return nil, err
			}
			elems = append(elems, t)
			sep := p.next()
			if sep == ")" {
				break
			}
			if sep != "," {
				return nil, fmt.Errorf("expected ',' or ')', got %q", sep)
			}
		}
		if len(elems) == 1 {
			return elems[0], nil
		}
		return typesystem.TTuple{Elements: elems}, nil
	case tok == ")" || tok == ",":
		return nil, fmt.Errorf("unexpected %q", tok)
	default:
		return nameToType(tok), nil
	}
}

func nameToType(name string) typesystem.Type {
	r := []rune(name)[0]
	if unicode.IsLower(r) || r == '_' {
		return typesystem.TVar{Name: name}
	}
	return typesystem.TCon{Name: name}
}
