package ast

// Identifier represents a reference to a name, e.g. a function or constructor.
type Identifier struct {
	Name string
}

func (i *Identifier) node()           {}
func (i *Identifier) expressionNode() {}

// IntegerLiteral represents an integer literal.
type IntegerLiteral struct {
	Value int64
}

func (il *IntegerLiteral) node()           {}
func (il *IntegerLiteral) expressionNode() {}

// BooleanLiteral represents boolean literals true/false.
type BooleanLiteral struct {
	Value bool
}

func (b *BooleanLiteral) node()           {}
func (b *BooleanLiteral) expressionNode() {}

// StringLiteral represents a string, e.g. "Left"
type StringLiteral struct {
	Value string
}

func (sl *StringLiteral) node()           {}
func (sl *StringLiteral) expressionNode() {}

// TupleExpression represents a tuple, e.g. (x, y)
type TupleExpression struct {
	Elements []Expression
}

func (te *TupleExpression) node()           {}
func (te *TupleExpression) expressionNode() {}

// CallExpression represents application, e.g. mkEq(f) or compare(a, b)
type CallExpression struct {
	Fn   Expression
	Args []Expression
}

func (ce *CallExpression) node()           {}
func (ce *CallExpression) expressionNode() {}

// LambdaExpression represents an anonymous function, e.g. (x, y) -> body
type LambdaExpression struct {
	Params []string
	Body   Expression
}

func (le *LambdaExpression) node()           {}
func (le *LambdaExpression) expressionNode() {}

// InfixExpression represents a binary operator application, e.g. a == b
type InfixExpression struct {
	Operator string
	Left     Expression
	Right    Expression
}

func (ie *InfixExpression) node()           {}
func (ie *InfixExpression) expressionNode() {}

// MatchArm represents a single case in a match expression.
type MatchArm struct {
	Pattern Pattern
	Body    Expression
}

// MatchExpression represents a match expression.
// match subject { arm, arm, ... }
type MatchExpression struct {
	Subject Expression
	Arms    []*MatchArm
}

func (me *MatchExpression) node()           {}
func (me *MatchExpression) expressionNode() {}

// WildcardPattern: _
type WildcardPattern struct{}

func (p *WildcardPattern) node()        {}
func (p *WildcardPattern) patternNode() {}

// IdentifierPattern: x
type IdentifierPattern struct {
	Name string
}

func (p *IdentifierPattern) node()        {}
func (p *IdentifierPattern) patternNode() {}

// ConstructorPattern: Left x, Pair x y
type ConstructorPattern struct {
	Name     string
	Elements []Pattern
}

func (p *ConstructorPattern) node()        {}
func (p *ConstructorPattern) patternNode() {}

// TuplePattern: (x, y)
type TuplePattern struct {
	Elements []Pattern
}

func (p *TuplePattern) node()        {}
func (p *TuplePattern) patternNode() {}
