package ast

// Builder helpers used by the interface generators to assemble bodies.

func Var(name string) *Identifier { return &Identifier{Name: name} }

func Str(v string) *StringLiteral { return &StringLiteral{Value: v} }

func Call(fn string, args ...Expression) *CallExpression {
	return &CallExpression{Fn: Var(fn), Args: args}
}

func Lambda(params []string, body Expression) *LambdaExpression {
	return &LambdaExpression{Params: params, Body: body}
}

func Infix(op string, left, right Expression) *InfixExpression {
	return &InfixExpression{Operator: op, Left: left, Right: right}
}

func Tuple(elems ...Expression) *TupleExpression {
	return &TupleExpression{Elements: elems}
}

func Match(subject Expression, arms ...*MatchArm) *MatchExpression {
	return &MatchExpression{Subject: subject, Arms: arms}
}

func Arm(p Pattern, body Expression) *MatchArm {
	return &MatchArm{Pattern: p, Body: body}
}

func CtorPat(name string, elems ...Pattern) *ConstructorPattern {
	return &ConstructorPattern{Name: name, Elements: elems}
}

func IdentPat(name string) *IdentifierPattern { return &IdentifierPattern{Name: name} }

func TuplePat(elems ...Pattern) *TuplePattern { return &TuplePattern{Elements: elems} }

func Wildcard() *WildcardPattern { return &WildcardPattern{} }
