package sat

import (
	"github.com/rhartert/yagh"
)

// varOrder maintains the set of candidate decision variables ordered by
// activity. Activities are negated before being stored so that the min-heap
// pops the variable with the highest activity first.
//
// The heap may transiently contain assigned variables; they are skipped when
// popped.
type varOrder struct {
	solver *Solver
	heap   *yagh.IntMap[float64]
}

func newVarOrder(s *Solver, nVar int) *varOrder {
	vo := &varOrder{
		solver: s,
		heap:   yagh.New[float64](nVar),
	}
	for v := 0; v < nVar; v++ {
		vo.insert(v)
	}
	return vo
}

// insert puts the variable back among the decision candidates, or refreshes
// its priority if it is already there.
func (vo *varOrder) insert(varID int) {
	vo.heap.Put(varID, -vo.solver.activity[varID])
}

// update refreshes the variable's priority if it is a decision candidate.
func (vo *varOrder) update(varID int) {
	if vo.heap.Contains(varID) {
		vo.insert(varID)
	}
}

// rebuild refreshes the priority of every variable currently in the heap.
// Used after activity rescaling, which invalidates the stored keys.
func (vo *varOrder) rebuild() {
	for v := 0; v < vo.solver.NumVariables(); v++ {
		vo.update(v)
	}
}

// pop removes and returns the unassigned variable with the highest activity.
// It returns false if no unassigned variable remains, in which case the
// current assignment is total.
func (vo *varOrder) pop() (int, bool) {
	for {
		next, ok := vo.heap.Pop()
		if !ok {
			return -1, false
		}
		if vo.solver.VarValue(next.Elem) == Unknown {
			return next.Elem, true
		}
	}
}
