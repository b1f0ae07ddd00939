package sat

import (
	"math"
	"strings"
)

// Clause is a view over a clause stored in an Arena. It is a value meant to
// be created, used, and discarded within a single operation: it must not be
// kept across a call that may allocate, since allocation can trigger a
// relocating garbage collection.
//
// The literals at positions 0 and 1 are the watched literals; positions >= 2
// are the tail. Learnt clauses additionally carry an activity and an LBD.
type Clause struct {
	arena *Arena
	ref   ClauseRef
}

// Clause returns a view over the clause designated by ref.
func (a *Arena) Clause(ref ClauseRef) Clause {
	return Clause{arena: a, ref: ref}
}

func (c Clause) header() uint32 {
	return c.arena.words[c.ref]
}

// Len returns the number of literals in the clause.
func (c Clause) Len() int {
	return int(c.header() >> hdrSizeShift)
}

// Learnt returns true if the clause was learnt by conflict analysis.
func (c Clause) Learnt() bool {
	return c.header()&hdrLearnt != 0
}

// Deleted returns true if the clause has been freed.
func (c Clause) Deleted() bool {
	return c.header()&hdrMark != 0
}

// Relocated returns true if the clause has been moved to another arena.
func (c Clause) Relocated() bool {
	return c.header()&hdrRelocated != 0
}

// Lit returns the i-th literal of the clause.
func (c Clause) Lit(i int) Literal {
	return Literal(c.arena.words[int(c.ref)+1+i])
}

// SetLit replaces the i-th literal of the clause.
func (c Clause) SetLit(i int, l Literal) {
	c.arena.words[int(c.ref)+1+i] = uint32(l)
}

// SwapLits exchanges the literals at positions i and j.
func (c Clause) SwapLits(i, j int) {
	li, lj := c.Lit(i), c.Lit(j)
	c.SetLit(i, lj)
	c.SetLit(j, li)
}

// LBD returns the literal block distance recorded for a learnt clause.
func (c Clause) LBD() int {
	return int(c.arena.words[int(c.ref)+1+c.Len()])
}

// SetLBD records the literal block distance of a learnt clause.
func (c Clause) SetLBD(lbd int) {
	c.arena.words[int(c.ref)+1+c.Len()] = uint32(lbd)
}

// Activity returns the activity of a learnt clause.
func (c Clause) Activity() float64 {
	return float64(math.Float32frombits(c.arena.words[int(c.ref)+2+c.Len()]))
}

// SetActivity sets the activity of a learnt clause.
func (c Clause) SetActivity(act float64) {
	c.arena.words[int(c.ref)+2+c.Len()] = math.Float32bits(float32(act))
}

// AppendLiterals appends the clause's literals to buf and returns it.
func (c Clause) AppendLiterals(buf []Literal) []Literal {
	for i := 0; i < c.Len(); i++ {
		buf = append(buf, c.Lit(i))
	}
	return buf
}

func (c Clause) String() string {
	if c.Len() == 0 {
		return "Clause[]"
	}
	sb := strings.Builder{}
	sb.WriteString("Clause[")
	sb.WriteString(c.Lit(0).String())
	for i := 1; i < c.Len(); i++ {
		sb.WriteByte(' ')
		sb.WriteString(c.Lit(i).String())
	}
	sb.WriteByte(']')
	return sb.String()
}
