package sat

import "fmt"

// Literal represents a boolean variable or its negation. Literals are encoded
// as 2*varID+sign so that negation is a single bit flip and both polarities
// of a variable can index side-by-side arrays.
type Literal int

// LiteralUndef is a sentinel that does not represent any literal.
const LiteralUndef Literal = -1

// PositiveLiteral returns the literal representing the variable itself.
func PositiveLiteral(varID int) Literal {
	return Literal(varID * 2)
}

// NegativeLiteral returns the literal representing the variable's negation.
func NegativeLiteral(varID int) Literal {
	return Literal(varID*2 + 1)
}

// MakeLiteral returns the positive literal of varID if positive is true, and
// its negation otherwise.
func MakeLiteral(varID int, positive bool) Literal {
	if positive {
		return PositiveLiteral(varID)
	}
	return NegativeLiteral(varID)
}

// VarID returns the ID of the literal's variable.
func (l Literal) VarID() int {
	return int(l) / 2
}

// IsPositive returns true if and only if the literal represents the value of
// its boolean variable (i.e. not its negation).
func (l Literal) IsPositive() bool {
	return l&1 == 0
}

// Opposite returns the opposite literal.
func (l Literal) Opposite() Literal {
	return l ^ 1
}

func (l Literal) String() string {
	if l.IsPositive() {
		return fmt.Sprintf("%d", l.VarID())
	}
	return fmt.Sprintf("!%d", l.VarID())
}
