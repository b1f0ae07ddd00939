package sat

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestSolver returns a solver with nVars fresh variables.
func newTestSolver(nVars int, ops Options) *Solver {
	s := NewSolver(ops)
	for i := 0; i < nVars; i++ {
		s.AddVariable(false)
	}
	return s
}

// addPigeonhole adds the clauses stating that nHoles+1 pigeons fit in nHoles
// holes, one pigeon per hole. The resulting formula is unsatisfiable.
// Variable p*nHoles+h means "pigeon p sits in hole h".
func addPigeonhole(s *Solver, nHoles int) {
	nPigeons := nHoles + 1
	for p := 0; p < nPigeons; p++ {
		clause := make([]Literal, nHoles)
		for h := 0; h < nHoles; h++ {
			clause[h] = PositiveLiteral(p*nHoles + h)
		}
		s.AddClause(clause)
	}
	for h := 0; h < nHoles; h++ {
		for p1 := 0; p1 < nPigeons; p1++ {
			for p2 := p1 + 1; p2 < nPigeons; p2++ {
				s.AddClause([]Literal{
					NegativeLiteral(p1*nHoles + h),
					NegativeLiteral(p2*nHoles + h),
				})
			}
		}
	}
}

func newPigeonholeSolver(nHoles int, ops Options) *Solver {
	s := newTestSolver((nHoles+1)*nHoles, ops)
	addPigeonhole(s, nHoles)
	return s
}

// random3SAT returns a random 3-CNF formula over nVars variables as DIMACS
// integers.
func random3SAT(rng *rand.Rand, nVars int, nClauses int) [][]int {
	cnf := make([][]int, nClauses)
	for i := range cnf {
		vars := rng.Perm(nVars)[:3]
		clause := make([]int, 3)
		for j, v := range vars {
			clause[j] = v + 1
			if rng.Intn(2) == 0 {
				clause[j] = -clause[j]
			}
		}
		cnf[i] = clause
	}
	return cnf
}

func addDIMACS(s *Solver, cnf [][]int) {
	for _, c := range cnf {
		clause := make([]Literal, len(c))
		for i, l := range c {
			if l < 0 {
				clause[i] = NegativeLiteral(-l - 1)
			} else {
				clause[i] = PositiveLiteral(l - 1)
			}
		}
		s.AddClause(clause)
	}
}

// satisfies returns true if the model satisfies every clause of the DIMACS
// formula.
func satisfies(model []bool, cnf [][]int) bool {
	for _, c := range cnf {
		sat := false
		for _, l := range c {
			if v := model[abs(l)-1]; (l > 0) == v {
				sat = true
				break
			}
		}
		if !sat {
			return false
		}
	}
	return true
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// checkWellFormed verifies the solver invariants that must hold between API
// calls: the propagation queue is empty, trail literals are true, and both
// watched literals of every live clause are registered in the watch lists.
func checkWellFormed(t *testing.T, s *Solver) {
	t.Helper()

	assert.Equal(t, len(s.trail), s.qhead, "propagation queue not empty")
	for _, l := range s.trail {
		assert.Equal(t, True, s.LitValue(l), "trail literal %v not true", l)
		assert.Equal(t, False, s.LitValue(l.Opposite()))
	}

	watched := func(ref ClauseRef, watch Literal) bool {
		for _, w := range s.watches.occs[watch.Opposite()] {
			if w.ref == ref {
				return true
			}
		}
		return false
	}
	for _, refs := range [][]ClauseRef{s.clauses, s.learnts} {
		for _, ref := range refs {
			c := s.arena.Clause(ref)
			if c.Deleted() {
				continue
			}
			assert.True(t, watched(ref, c.Lit(0)), "clause %v not watched on %v", c, c.Lit(0))
			assert.True(t, watched(ref, c.Lit(1)), "clause %v not watched on %v", c, c.Lit(1))
		}
	}
}

func TestSolveUnitClause(t *testing.T) {
	s := newTestSolver(1, DefaultOptions)

	require.True(t, s.AddClause([]Literal{PositiveLiteral(0)}))
	require.Equal(t, True, s.Solve())

	assert.Equal(t, []bool{true}, s.Model)
}

func TestAddClauseContradiction(t *testing.T) {
	s := newTestSolver(1, DefaultOptions)

	assert.True(t, s.AddClause([]Literal{PositiveLiteral(0)}))
	assert.False(t, s.AddClause([]Literal{NegativeLiteral(0)}))

	assert.False(t, s.Okay())
	assert.Equal(t, False, s.Solve())

	// The conflicting state is sticky.
	assert.False(t, s.AddClause([]Literal{PositiveLiteral(0)}))
	assert.Equal(t, False, s.Solve())
}

func TestAddClauseTautology(t *testing.T) {
	s := newTestSolver(2, DefaultOptions)

	assert.True(t, s.AddClause([]Literal{
		PositiveLiteral(0),
		NegativeLiteral(0),
		PositiveLiteral(1),
	}))

	assert.Equal(t, 0, s.NumClauses(), "tautologies should not be stored")
	assert.Equal(t, True, s.Solve())
}

func TestAddClauseDuplicateLiterals(t *testing.T) {
	s := newTestSolver(2, DefaultOptions)

	require.True(t, s.AddClause([]Literal{
		PositiveLiteral(0),
		PositiveLiteral(0),
		PositiveLiteral(1),
	}))

	require.Equal(t, 1, s.NumClauses())
	c := s.arena.Clause(s.clauses[0])
	assert.Equal(t, 2, c.Len())
}

func TestSolveAllAssignmentsForbidden(t *testing.T) {
	s := newTestSolver(2, DefaultOptions)

	s.AddClause([]Literal{PositiveLiteral(0), PositiveLiteral(1)})
	s.AddClause([]Literal{NegativeLiteral(0), PositiveLiteral(1)})
	s.AddClause([]Literal{PositiveLiteral(0), NegativeLiteral(1)})
	s.AddClause([]Literal{NegativeLiteral(0), NegativeLiteral(1)})

	assert.Equal(t, False, s.Solve())
	assert.False(t, s.Okay())
}

func TestSolvePigeonhole(t *testing.T) {
	s := newPigeonholeSolver(2, DefaultOptions) // PHP(3, 2)
	assert.Equal(t, False, s.Solve())
}

func TestSolveRandom3SAT(t *testing.T) {
	// Underconstrained random 3-SAT (ratio 2.0) is satisfiable with
	// overwhelming probability.
	rng := rand.New(rand.NewSource(42))
	cnf := random3SAT(rng, 50, 100)

	s := newTestSolver(50, DefaultOptions)
	addDIMACS(s, cnf)

	require.Equal(t, True, s.Solve())
	assert.True(t, satisfies(s.Model, cnf), "model does not satisfy the formula")
	checkWellFormed(t, s)
}

func TestSolveDeterministicUnsat(t *testing.T) {
	first := newPigeonholeSolver(4, DefaultOptions)
	second := newPigeonholeSolver(4, DefaultOptions)

	assert.Equal(t, False, first.Solve())
	assert.Equal(t, False, second.Solve())
	assert.Equal(t, first.Conflicts, second.Conflicts)
}

func TestSolvePhaseSaving(t *testing.T) {
	s := NewSolver(DefaultOptions)
	s.AddVariable(true)
	s.AddVariable(false)

	// Unconstrained variables are assigned their initial polarity.
	require.Equal(t, True, s.Solve())
	assert.Equal(t, []bool{true, false}, s.Model)
}

func TestConflictBudget(t *testing.T) {
	s := newPigeonholeSolver(5, DefaultOptions) // too hard for 10 conflicts
	s.SetConflictBudget(10)

	assert.Equal(t, Unknown, s.Solve())
	assert.True(t, s.Okay(), "a budget stop must not poison the solver")
	checkWellFormed(t, s)

	// The solver remains usable once the budget is lifted.
	s.BudgetOff()
	assert.Equal(t, False, s.Solve())
}

func TestPropagationBudget(t *testing.T) {
	s := newPigeonholeSolver(5, DefaultOptions)
	s.SetPropagationBudget(10)

	assert.Equal(t, Unknown, s.Solve())

	s.BudgetOff()
	assert.Equal(t, False, s.Solve())
}

func TestInterrupt(t *testing.T) {
	s := newPigeonholeSolver(5, DefaultOptions)
	s.Interrupt()

	assert.Equal(t, Unknown, s.Solve())

	s.ClearInterrupt()
	assert.Equal(t, False, s.Solve())
}

func TestSolveWithAssumptions(t *testing.T) {
	s := newTestSolver(2, DefaultOptions)
	require.True(t, s.AddClause([]Literal{PositiveLiteral(0), PositiveLiteral(1)}))

	require.Equal(t, True, s.SolveWithAssumptions([]Literal{NegativeLiteral(0)}))
	assert.Equal(t, []bool{false, true}, s.Model)

	require.Equal(t, True, s.SolveWithAssumptions([]Literal{NegativeLiteral(1)}))
	assert.Equal(t, []bool{true, false}, s.Model)
}

func TestSolveWithConflictingAssumptions(t *testing.T) {
	s := newTestSolver(1, DefaultOptions)
	require.True(t, s.AddClause([]Literal{PositiveLiteral(0)}))

	assert.Equal(t, False, s.SolveWithAssumptions([]Literal{NegativeLiteral(0)}))
	assert.True(t, s.Okay(), "failed assumptions must not poison the solver")

	// Without the assumptions the formula is satisfiable.
	assert.Equal(t, True, s.Solve())
}

func TestReduceDBAndGarbageCollection(t *testing.T) {
	ops := DefaultOptions
	ops.FirstReduceDB = 50
	ops.GCFrac = 0.01

	s := newPigeonholeSolver(5, ops) // PHP(6, 5): a few thousand conflicts
	require.Equal(t, False, s.Solve())

	assert.GreaterOrEqual(t, s.Reductions, int64(1), "expected at least one DB reduction")
	assert.GreaterOrEqual(t, s.Collections, int64(1), "expected at least one garbage collection")
	assert.Greater(t, s.RemovedClauses, int64(0))
	checkWellFormed(t, s)
}

func TestModelEnumerationStaysConsistent(t *testing.T) {
	// Repeatedly forbidding the previous model reuses the solver across
	// solves and must enumerate each model exactly once.
	s := newTestSolver(3, DefaultOptions)
	s.AddClause([]Literal{NegativeLiteral(0), PositiveLiteral(1)})
	s.AddClause([]Literal{NegativeLiteral(1), PositiveLiteral(2)})

	seen := map[[3]bool]bool{}
	count := 0
	for s.Solve() == True {
		key := [3]bool{s.Model[0], s.Model[1], s.Model[2]}
		assert.False(t, seen[key], "model %v found twice", key)
		seen[key] = true
		count++

		blocking := make([]Literal, len(s.Model))
		for v, b := range s.Model {
			blocking[v] = MakeLiteral(v, !b)
		}
		if !s.AddClause(blocking) {
			break
		}
	}

	// x0 -> x1 -> x2 has exactly 4 models.
	assert.Equal(t, 4, count)
}
