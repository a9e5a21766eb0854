package prettyprinter

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/funvibe/deriva/internal/ast"
	"github.com/funvibe/deriva/internal/typesystem"
)

// --- Code Printer (output looks like source code) ---

// Operator precedence (higher = binds tighter)
var operatorPrecedence = map[string]int{
	"||": 1,
	"&&": 2,
	"==": 3,
	"!=": 3,
	"<":  4,
	">":  4,
	"<=": 4,
	">=": 4,
	"<>": 5, // Semigroup
	"++": 5, // Concatenation
	"+":  7,
	"-":  7,
	"*":  8,
	"/":  8,
	"%":  8,
}

func getPrecedence(op string) int {
	if p, ok := operatorPrecedence[op]; ok {
		return p
	}
	return 10 // Default high precedence for unknown ops
}

type CodePrinter struct {
	buf    bytes.Buffer
	indent int
}

func NewCodePrinter() *CodePrinter {
	return &CodePrinter{indent: 0}
}

// PrintDecls renders a sequence of declarations, blank-line separated.
func (p *CodePrinter) PrintDecls(decls []ast.Decl) string {
	p.buf.Reset()
	for i, d := range decls {
		if i > 0 {
			p.write("\n")
		}
		p.printDecl(d)
	}
	return p.buf.String()
}

// PrintExpr renders a single expression.
func (p *CodePrinter) PrintExpr(e ast.Expression) string {
	p.buf.Reset()
	p.printExpr(e, 0)
	return p.buf.String()
}

// PrintType renders a type without redundant outer parentheses.
func (p *CodePrinter) PrintType(t typesystem.Type) string {
	return typeString(t)
}

func typeString(t typesystem.Type) string {
	switch typ := t.(type) {
	case typesystem.TApp:
		parts := []string{typ.Constructor.String()}
		for _, a := range typ.Args {
			parts = append(parts, a.String())
		}
		return strings.Join(parts, " ")
	case typesystem.TForall:
		var sb strings.Builder
		if len(typ.Vars) > 0 {
			names := make([]string, len(typ.Vars))
			for i, v := range typ.Vars {
				names[i] = v.Name
			}
			sb.WriteString("forall ")
			sb.WriteString(strings.Join(names, " "))
			sb.WriteString(". ")
		}
		for _, c := range typ.Constraints {
			sb.WriteString(c.String())
			sb.WriteString(" => ")
		}
		sb.WriteString(typeString(typ.Type))
		return sb.String()
	default:
		return t.String()
	}
}

func (p *CodePrinter) printDecl(d ast.Decl) {
	switch decl := d.(type) {
	case *ast.ClaimDecl:
		if decl.Hint {
			p.writeLine("@hint")
		}
		p.writeIndent()
		if decl.Visibility == ast.Public {
			p.write("pub ")
		}
		p.write(decl.Name)
		p.write(" : ")
		p.write(typeString(decl.Type))
		p.write("\n")
	case *ast.DefDecl:
		p.writeIndent()
		if decl.Visibility == ast.Public {
			p.write("pub ")
		}
		p.write(decl.Name)
		p.write(" = ")
		p.printExpr(decl.Body, 0)
		p.write("\n")
	}
}

func (p *CodePrinter) printExpr(e ast.Expression, parentPrec int) {
	switch expr := e.(type) {
	case *ast.Identifier:
		p.write(expr.Name)
	case *ast.IntegerLiteral:
		p.write(fmt.Sprintf("%d", expr.Value))
	case *ast.BooleanLiteral:
		if expr.Value {
			p.write("true")
		} else {
			p.write("false")
		}
	case *ast.StringLiteral:
		p.write(fmt.Sprintf("%q", expr.Value))
	case *ast.TupleExpression:
		p.write("(")
		for i, el := range expr.Elements {
			if i > 0 {
				p.write(", ")
			}
			p.printExpr(el, 0)
		}
		p.write(")")
	case *ast.CallExpression:
		p.printExpr(expr.Fn, 10)
		p.write("(")
		for i, a := range expr.Args {
			if i > 0 {
				p.write(", ")
			}
			p.printExpr(a, 0)
		}
		p.write(")")
	case *ast.LambdaExpression:
		if len(expr.Params) == 1 {
			p.write(expr.Params[0])
		} else {
			p.write("(")
			p.write(strings.Join(expr.Params, ", "))
			p.write(")")
		}
		p.write(" -> ")
		p.printExpr(expr.Body, 0)
	case *ast.InfixExpression:
		prec := getPrecedence(expr.Operator)
		needParens := prec < parentPrec
		if needParens {
			p.write("(")
		}
		p.printExpr(expr.Left, prec)
		p.write(" ")
		p.write(expr.Operator)
		p.write(" ")
		p.printExpr(expr.Right, prec)
		if needParens {
			p.write(")")
		}
	case *ast.MatchExpression:
		p.write("match ")
		p.printExpr(expr.Subject, 10)
		p.write(" {")
		if len(expr.Arms) == 0 {
			p.write(" }")
			return
		}
		p.write("\n")
		p.indent++
		for i, arm := range expr.Arms {
			p.writeIndent()
			p.printPattern(arm.Pattern)
			p.write(" -> ")
			p.printExpr(arm.Body, 0)
			if i < len(expr.Arms)-1 {
				p.write(",")
			}
			p.write("\n")
		}
		p.indent--
		p.writeIndent()
		p.write("}")
	}
}

func (p *CodePrinter) printPattern(pat ast.Pattern) {
	switch pt := pat.(type) {
	case *ast.WildcardPattern:
		p.write("_")
	case *ast.IdentifierPattern:
		p.write(pt.Name)
	case *ast.ConstructorPattern:
		p.write(pt.Name)
		for _, el := range pt.Elements {
			p.write(" ")
			p.printNestedPattern(el)
		}
	case *ast.TuplePattern:
		p.write("(")
		for i, el := range pt.Elements {
			if i > 0 {
				p.write(", ")
			}
			p.printPattern(el)
		}
		p.write(")")
	}
}

// printNestedPattern parenthesizes constructor patterns with arguments when
// they appear inside another pattern.
func (p *CodePrinter) printNestedPattern(pat ast.Pattern) {
	if ctor, ok := pat.(*ast.ConstructorPattern); ok && len(ctor.Elements) > 0 {
		p.write("(")
		p.printPattern(pat)
		p.write(")")
		return
	}
	p.printPattern(pat)
}

func (p *CodePrinter) write(s string) {
	p.buf.WriteString(s)
}

func (p *CodePrinter) writeIndent() {
	p.buf.WriteString(strings.Repeat("  ", p.indent))
}

func (p *CodePrinter) writeLine(s string) {
	p.writeIndent()
	p.buf.WriteString(s)
	p.buf.WriteString("\n")
}
