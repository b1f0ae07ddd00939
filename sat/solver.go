package sat

import (
	"fmt"
	"math"
	"sort"
	"sync/atomic"
	"time"
)

const (
	// Variable activities are rescaled when one exceeds this threshold.
	maxVarActivity     = 1e100
	varActivityRescale = 1e-100

	// Clause activities are rescaled when one exceeds this threshold.
	maxClauseActivity     = 1e20
	clauseActivityRescale = 1e-20

	// Glucose restarts: sizes of the recent-LBD and trail-size queues, the
	// factor applied to the recent average, and the blocking parameters.
	lbdQueueSize             = 50
	trailQueueSize           = 5000
	forceRestartFactor       = 0.8
	blockRestartFactor       = 1.4
	blockRestartMinConflicts = 10000

	// Outer restart schedule: each run is capped at base*32 conflicts where
	// base follows the Luby sequence or a geometric progression.
	searchConflictFactor = 32
	restartGrowth        = 1.5

	// Conflicts between two learnt database reductions grow by this amount
	// after each reduction.
	reduceDBIncrement = 1000
)

// Solver is a CDCL SAT solver. Variables are added with AddVariable, clauses
// with AddClause, and Solve decides satisfiability. After a True result the
// Model field holds a satisfying assignment.
//
// The solver is strictly sequential: all methods must be called from a single
// goroutine, with the sole exception of Interrupt and ClearInterrupt which
// may be called concurrently (e.g. from a signal handler).
type Solver struct {
	// Clause database. Clause storage lives in the arena; clauses and
	// learnts hold references into it.
	arena       Arena
	clauses     []ClauseRef
	learnts     []ClauseRef
	clauseInc   float64
	clauseDecay float64
	gcFrac      float64

	// Per-variable state.
	activity []float64
	polarity []bool
	level    []int
	reason   []ClauseRef
	varInc   float64
	varDecay float64
	order    *varOrder

	// Value assigned to each literal.
	assigns []LBool

	// Trail. trailLim[d] is the trail index at which decision level d+1
	// starts; qhead is the propagation head.
	trail    []Literal
	trailLim []int
	qhead    int

	watches watchLists

	// Restart policy state.
	lubyRestart bool
	lbdQueue    *boundedQueue
	trailQueue  *boundedQueue
	sumLBD      int64

	// Learnt database reduction schedule.
	firstReduceDB int64
	nextReduceDB  int64

	// Whether the problem has reached a top level conflict. Once false, the
	// solver stays false.
	ok bool

	assumptions []Literal

	// Budgets and cooperative interruption, polled at restart boundaries.
	conflictBudget    int64
	propagationBudget int64
	interrupted       atomic.Bool

	// Progress output: 0 silent, 1 search statistics, 2 adds GC reports.
	Verbosity int

	// Search statistics.
	Starts         int64
	Decisions      int64
	Propagations   int64
	Conflicts      int64
	Reductions     int64
	RemovedClauses int64
	Collections    int64
	startTime      time.Time
	avgLearntSize  EMA

	// Model found by the last successful Solve, indexed by variable.
	Model []bool

	// Scratch state shared by analyze and computeLBD.
	seen     ResetSet
	levelSet ResetSet

	// Reusable buffers for the learnt clause under construction and for
	// clause addition.
	tmpLearnt []Literal
	tmpClause []Literal
}

// NewDefaultSolver returns a solver configured with DefaultOptions.
func NewDefaultSolver() *Solver {
	return NewSolver(DefaultOptions)
}

func NewSolver(ops Options) *Solver {
	s := &Solver{
		arena:             newArena(1024),
		clauseInc:         1,
		clauseDecay:       ops.ClauseDecay,
		gcFrac:            ops.GCFrac,
		varInc:            1,
		varDecay:          ops.VariableDecay,
		lubyRestart:       ops.LubyRestart,
		lbdQueue:          newBoundedQueue(lbdQueueSize),
		trailQueue:        newBoundedQueue(trailQueueSize),
		firstReduceDB:     ops.FirstReduceDB,
		nextReduceDB:      ops.FirstReduceDB,
		ok:                true,
		conflictBudget:    -1,
		propagationBudget: -1,
		Verbosity:         ops.Verbosity,
		avgLearntSize:     NewEMA(0.99),
	}
	s.levelSet.Expand() // level 0
	return s
}

// AddVariable creates a new variable and returns its ID. The polarity gives
// the value the variable will be assigned to the first time it is branched
// on; phase saving takes over afterwards.
func (s *Solver) AddVariable(polarity bool) int {
	v := s.NumVariables()
	s.watches.expand()
	s.assigns = append(s.assigns, Unknown, Unknown)
	s.activity = append(s.activity, 0)
	s.polarity = append(s.polarity, polarity)
	s.level = append(s.level, -1)
	s.reason = append(s.reason, RefUndef)
	s.seen.Expand()
	s.levelSet.Expand()
	return v
}

func (s *Solver) NumVariables() int { return len(s.activity) }
func (s *Solver) NumAssigns() int   { return len(s.trail) }
func (s *Solver) NumClauses() int   { return len(s.clauses) }
func (s *Solver) NumLearnts() int   { return len(s.learnts) }

// Okay returns false if the solver is in a conflicting state: a top level
// contradiction has been found and no further solving will be attempted.
func (s *Solver) Okay() bool { return s.ok }

// VarValue returns the current value of a variable.
func (s *Solver) VarValue(varID int) LBool {
	return s.assigns[PositiveLiteral(varID)]
}

// LitValue returns the current value of a literal.
func (s *Solver) LitValue(l Literal) LBool {
	return s.assigns[l]
}

func (s *Solver) decisionLevel() int {
	return len(s.trailLim)
}

func (s *Solver) newDecisionLevel() {
	s.trailLim = append(s.trailLim, len(s.trail))
}

// AddClause adds a clause to the solver. It must be called at the root level
// (before or between Solve calls). The input slice is not modified. It
// returns false if the solver detects a top level inconsistency, in which
// case every later call returns false as well.
func (s *Solver) AddClause(literals []Literal) bool {
	if s.decisionLevel() != 0 {
		panic("sat: AddClause called below the root level")
	}
	if !s.ok {
		return false
	}

	// Sorting groups duplicates and opposite literals next to each other.
	lits := append(s.tmpClause[:0], literals...)
	sort.Slice(lits, func(i, j int) bool { return lits[i] < lits[j] })
	s.tmpClause = lits

	j := 0
	prev := LiteralUndef
	for _, l := range lits {
		if s.LitValue(l) == True || l == prev.Opposite() {
			return true // clause is already satisfied, or a tautology
		}
		if s.LitValue(l) != False && l != prev {
			lits[j] = l
			prev = l
			j++
		}
	}
	lits = lits[:j]

	switch len(lits) {
	case 0:
		s.ok = false
		return false
	case 1:
		s.uncheckedEnqueue(lits[0], RefUndef)
		s.ok = s.Propagate() == RefUndef
		return s.ok
	default:
		ref := s.arena.Alloc(lits, false)
		s.clauses = append(s.clauses, ref)
		s.attachClause(ref)
		return true
	}
}

func (s *Solver) attachClause(ref ClauseRef) {
	c := s.arena.Clause(ref)
	s.watches.push(c.Lit(0).Opposite(), watcher{ref: ref, blocker: c.Lit(1)})
	s.watches.push(c.Lit(1).Opposite(), watcher{ref: ref, blocker: c.Lit(0)})
}

func (s *Solver) detachClause(ref ClauseRef) {
	c := s.arena.Clause(ref)
	s.watches.smudge(c.Lit(0).Opposite())
	s.watches.smudge(c.Lit(1).Opposite())
}

// locked returns true if the clause is the reason of its first literal's
// assignment. Locked clauses must not be removed.
func (s *Solver) locked(ref ClauseRef) bool {
	first := s.arena.Clause(ref).Lit(0)
	return s.LitValue(first) == True && s.reason[first.VarID()] == ref
}

func (s *Solver) removeClause(ref ClauseRef) {
	s.detachClause(ref)
	if s.locked(ref) {
		s.reason[s.arena.Clause(ref).Lit(0).VarID()] = RefUndef
	}
	s.arena.Free(ref)
	s.RemovedClauses++
}

// uncheckedEnqueue assigns literal l to true and records its reason. The
// literal must be unassigned.
func (s *Solver) uncheckedEnqueue(l Literal, from ClauseRef) {
	if s.LitValue(l) != Unknown {
		panic("sat: enqueue of an assigned literal")
	}
	v := l.VarID()
	s.assigns[l] = True
	s.assigns[l.Opposite()] = False
	s.level[v] = s.decisionLevel()
	s.reason[v] = from
	s.trail = append(s.trail, l)
}

// Propagate propagates all enqueued facts through the watch lists until a
// fixpoint is reached or a conflict arises. It returns the reference of the
// conflicting clause, or RefUndef. The propagation queue is empty when it
// returns, even on conflict.
func (s *Solver) Propagate() ClauseRef {
	confl := RefUndef
	s.watches.cleanAll(&s.arena)

	for s.qhead < len(s.trail) {
		p := s.trail[s.qhead] // p is the enqueued fact to propagate
		s.qhead++
		s.Propagations++

		falseLit := p.Opposite()
		ws := s.watches.occs[p]
		i, j := 0, 0

	clauses:
		for i < len(ws) {
			blocker := ws[i].blocker

			// Satisfied blockers spare loading the clause.
			if s.LitValue(blocker) == True {
				ws[j] = ws[i]
				i++
				j++
				continue
			}

			// Make sure the false literal is at position 1.
			c := s.arena.Clause(ws[i].ref)
			if c.Lit(0) == falseLit {
				c.SetLit(0, c.Lit(1))
				c.SetLit(1, falseLit)
			}
			w := watcher{ref: ws[i].ref, blocker: c.Lit(0)}
			i++

			// If the first watch is true, the clause is satisfied.
			first := c.Lit(0)
			if first != blocker && s.LitValue(first) == True {
				ws[j] = w
				j++
				continue
			}

			// Look for a new literal to watch in the tail.
			for k := 2; k < c.Len(); k++ {
				if s.LitValue(c.Lit(k)) != False {
					c.SetLit(1, c.Lit(k))
					c.SetLit(k, falseLit)
					s.watches.push(c.Lit(1).Opposite(), w)
					continue clauses
				}
			}

			// No replacement: the clause is unit or conflicting.
			ws[j] = w
			j++
			if s.LitValue(first) == False {
				confl = w.ref
				s.qhead = len(s.trail)
				for i < len(ws) { // keep the remaining watchers
					ws[j] = ws[i]
					i++
					j++
				}
			} else {
				s.uncheckedEnqueue(first, w.ref)
			}
		}
		s.watches.occs[p] = ws[:j]
	}

	return confl
}

// analyze derives an asserting clause from the conflicting clause by first
// unique implication point resolution. The returned slice is reused by the
// next call; its first literal is the negation of the UIP and, when longer
// than one literal, its second literal is assigned at the returned backjump
// level. The last return value is the clause's literal block distance.
func (s *Solver) analyze(confl ClauseRef) ([]Literal, int, int) {
	// Number of literals of the current decision level that remain to be
	// resolved away. The resolution reaching zero is the first UIP.
	unresolved := 0

	s.tmpLearnt = s.tmpLearnt[:0]
	s.tmpLearnt = append(s.tmpLearnt, LiteralUndef) // room for the UIP

	s.seen.Clear()
	idx := len(s.trail) - 1
	p := LiteralUndef

	for {
		c := s.arena.Clause(confl)
		if c.Learnt() {
			s.bumpClauseActivity(confl)
		}

		start := 0
		if p != LiteralUndef {
			start = 1 // position 0 holds the literal being resolved on
		}
		for i := start; i < c.Len(); i++ {
			q := c.Lit(i)
			v := q.VarID()
			if s.seen.Contains(v) || s.level[v] == 0 {
				continue
			}
			s.seen.Add(v)
			s.bumpVarActivity(v)
			if s.level[v] >= s.decisionLevel() {
				unresolved++
			} else {
				s.tmpLearnt = append(s.tmpLearnt, q)
			}
		}

		// Walk the trail backwards to the next literal to resolve on.
		for {
			p = s.trail[idx]
			idx--
			if s.seen.Contains(p.VarID()) {
				break
			}
		}
		confl = s.reason[p.VarID()]
		unresolved--
		if unresolved <= 0 {
			break
		}
	}
	s.tmpLearnt[0] = p.Opposite()

	// The backjump level is the second highest level in the clause; swap a
	// literal of that level into position 1.
	btLevel := 0
	if len(s.tmpLearnt) > 1 {
		maxI := 1
		for i := 2; i < len(s.tmpLearnt); i++ {
			if s.level[s.tmpLearnt[i].VarID()] > s.level[s.tmpLearnt[maxI].VarID()] {
				maxI = i
			}
		}
		s.tmpLearnt[1], s.tmpLearnt[maxI] = s.tmpLearnt[maxI], s.tmpLearnt[1]
		btLevel = s.level[s.tmpLearnt[1].VarID()]
	}

	return s.tmpLearnt, btLevel, s.computeLBD(s.tmpLearnt)
}

// computeLBD returns the number of distinct decision levels among the given
// literals.
func (s *Solver) computeLBD(lits []Literal) int {
	s.levelSet.Clear()
	n := 0
	for _, l := range lits {
		lvl := s.level[l.VarID()]
		if !s.levelSet.Contains(lvl) {
			s.levelSet.Add(lvl)
			n++
		}
	}
	return n
}

func (s *Solver) bumpVarActivity(varID int) {
	s.activity[varID] += s.varInc
	if s.activity[varID] > maxVarActivity {
		for i := range s.activity {
			s.activity[i] *= varActivityRescale
		}
		s.varInc *= varActivityRescale
		s.order.rebuild() // stored heap keys are stale after rescaling
		return
	}
	s.order.update(varID)
}

func (s *Solver) varDecayActivity() {
	s.varInc *= 1 / s.varDecay
}

func (s *Solver) bumpClauseActivity(ref ClauseRef) {
	c := s.arena.Clause(ref)
	act := c.Activity() + s.clauseInc
	c.SetActivity(act)
	if act > maxClauseActivity {
		for _, lr := range s.learnts {
			lc := s.arena.Clause(lr)
			lc.SetActivity(lc.Activity() * clauseActivityRescale)
		}
		s.clauseInc *= clauseActivityRescale
	}
}

func (s *Solver) clauseDecayActivity() {
	s.clauseInc *= 1 / s.clauseDecay
}

// pickBranchLit pops unassigned variables from the order heap and returns
// the literal of the most active one with its saved polarity. It returns
// false when every variable is assigned, i.e. a model has been found.
func (s *Solver) pickBranchLit() (Literal, bool) {
	v, ok := s.order.pop()
	if !ok {
		return LiteralUndef, false
	}
	s.Decisions++
	return MakeLiteral(v, s.polarity[v]), true
}

// cancelUntil undoes all assignments above the given decision level. The
// sign of each unassigned variable is saved for phase saving and the
// variable is put back among the decision candidates.
func (s *Solver) cancelUntil(level int) {
	if s.decisionLevel() <= level {
		return
	}
	for c := len(s.trail) - 1; c >= s.trailLim[level]; c-- {
		l := s.trail[c]
		v := l.VarID()
		s.assigns[l] = Unknown
		s.assigns[l.Opposite()] = Unknown
		s.level[v] = -1
		s.reason[v] = RefUndef
		s.polarity[v] = l.IsPositive()
		s.order.insert(v)
	}
	s.qhead = s.trailLim[level]
	s.trail = s.trail[:s.trailLim[level]]
	s.trailLim = s.trailLim[:level]
}

// reduceDB removes roughly half of the learnt clauses. Binary clauses and
// clauses currently acting as a reason are kept; the rest are ranked by LBD
// then activity, worst first.
func (s *Solver) reduceDB() {
	s.Reductions++
	a := &s.arena

	sort.Slice(s.learnts, func(i, j int) bool {
		x, y := a.Clause(s.learnts[i]), a.Clause(s.learnts[j])
		switch {
		case x.Len() > 2 && y.Len() == 2:
			return true
		case x.Len() == 2:
			return false
		case x.LBD() != y.LBD():
			return x.LBD() > y.LBD()
		default:
			return x.Activity() < y.Activity()
		}
	})

	j := 0
	for i := 0; i < len(s.learnts); i++ {
		c := a.Clause(s.learnts[i])
		if c.Len() > 2 && !s.locked(s.learnts[i]) && i < len(s.learnts)/2 {
			s.removeClause(s.learnts[i])
		} else {
			s.learnts[j] = s.learnts[i]
			j++
		}
	}
	s.learnts = s.learnts[:j]

	s.nextReduceDB = s.Conflicts + s.firstReduceDB + reduceDBIncrement*s.Reductions
	s.checkGarbage()
}

// checkGarbage runs a garbage collection when the wasted fraction of the
// arena exceeds the configured threshold. Must only be called at safe
// points: no clause view or raw reference may be live in a caller.
func (s *Solver) checkGarbage() {
	if float64(s.arena.Wasted()) > float64(s.arena.Size())*s.gcFrac {
		s.garbageCollect()
	}
}

// garbageCollect relocates every live clause into a fresh arena and rewrites
// all references (watch lists, reasons, clause lists) to the new copies.
func (s *Solver) garbageCollect() {
	to := newArena(s.arena.Size() - s.arena.Wasted())
	s.relocAll(&to)
	s.Collections++
	if s.Verbosity >= 2 {
		fmt.Printf("c garbage collection: %d -> %d words\n", s.arena.Size(), to.Size())
	}
	s.arena = to
}

func (s *Solver) relocAll(to *Arena) {
	// Watch lists must be cleaned first so that no freed clause is reachable
	// from them.
	s.watches.cleanAll(&s.arena)
	for l := range s.watches.occs {
		ws := s.watches.occs[l]
		for i := range ws {
			s.arena.Reloc(&ws[i].ref, to)
		}
	}

	// Reasons of assigned variables. A reason clause is either locked or
	// already moved through its watch entries.
	for _, l := range s.trail {
		v := l.VarID()
		if r := s.reason[v]; r != RefUndef &&
			(s.arena.Clause(r).Relocated() || s.locked(r)) {
			s.arena.Reloc(&s.reason[v], to)
		}
	}

	for i := range s.learnts {
		s.arena.Reloc(&s.learnts[i], to)
	}
	for i := range s.clauses {
		s.arena.Reloc(&s.clauses[i], to)
	}
}

// search runs the CDCL loop until the formula is decided, a Glucose restart
// fires, or the run reaches its conflict cap (in which case it returns
// Unknown with the trail rolled back to the root level).
func (s *Solver) search(nofConflicts int) LBool {
	conflictCount := 0

	for {
		if confl := s.Propagate(); confl != RefUndef {
			s.Conflicts++
			conflictCount++

			if s.decisionLevel() == 0 {
				s.ok = false
				return False
			}

			// Block the restart if the trail is much larger than its recent
			// average: the solver is closing in on something.
			s.trailQueue.push(int64(len(s.trail)))
			if s.Conflicts > blockRestartMinConflicts && s.lbdQueue.isFull() &&
				float64(len(s.trail)) > blockRestartFactor*s.trailQueue.avg() {
				s.lbdQueue.fastClear()
			}

			learnt, btLevel, lbd := s.analyze(confl)
			s.lbdQueue.push(int64(lbd))
			s.sumLBD += int64(lbd)

			s.cancelUntil(btLevel)

			if len(learnt) == 1 {
				s.uncheckedEnqueue(learnt[0], RefUndef)
			} else {
				ref := s.arena.Alloc(learnt, true)
				s.learnts = append(s.learnts, ref)
				s.attachClause(ref)
				s.bumpClauseActivity(ref)
				s.arena.Clause(ref).SetLBD(lbd)
				s.uncheckedEnqueue(learnt[0], ref)
			}
			s.avgLearntSize.Add(float64(len(learnt)))

			s.varDecayActivity()
			s.clauseDecayActivity()

			if s.Conflicts%1000 == 0 && s.Verbosity >= 1 {
				s.printStatsLine()
			}
		} else {
			// Glucose restart: recent learnt clauses are of much worse
			// quality than the long term average.
			if s.lbdQueue.isFull() &&
				s.lbdQueue.avg()*forceRestartFactor > float64(s.sumLBD)/float64(s.Conflicts) {
				s.lbdQueue.fastClear()
				s.cancelUntil(0)
				return Unknown
			}

			if conflictCount >= nofConflicts {
				s.cancelUntil(0)
				return Unknown
			}

			if s.Conflicts >= s.nextReduceDB {
				s.reduceDB()
			}

			// Assumptions are decided first, in order, one per level.
			next := LiteralUndef
			for next == LiteralUndef && s.decisionLevel() < len(s.assumptions) {
				p := s.assumptions[s.decisionLevel()]
				switch s.LitValue(p) {
				case True:
					s.newDecisionLevel() // already satisfied, dummy level
				case False:
					return False // conflicts with the assumptions
				default:
					next = p
				}
			}
			if next == LiteralUndef {
				l, ok := s.pickBranchLit()
				if !ok {
					return True // all variables assigned: model found
				}
				next = l
			}

			s.newDecisionLevel()
			s.uncheckedEnqueue(next, RefUndef)
		}
	}
}

// Solve decides the formula. It returns True with Model filled in, False if
// the formula is unsatisfiable, or Unknown if a budget was exhausted or the
// solver was interrupted. In the latter case the solver is left at the root
// level and can be solved again.
func (s *Solver) Solve() LBool {
	return s.SolveWithAssumptions(nil)
}

// SolveWithAssumptions decides the formula under the given assumption
// literals. It returns False either when the formula itself is unsatisfiable
// (in which case Okay reports false afterwards) or when the assumptions
// conflict with it.
func (s *Solver) SolveWithAssumptions(assumptions []Literal) LBool {
	s.Model = nil
	if !s.ok {
		return False
	}

	s.assumptions = assumptions
	s.order = newVarOrder(s, s.NumVariables())
	s.startTime = time.Now()

	if s.Verbosity >= 1 {
		s.printStatsHeader()
	}

	status := Unknown
	for restarts := 0; status == Unknown; restarts++ {
		base := math.Pow(restartGrowth, float64(restarts))
		if s.lubyRestart {
			base = luby(2, restarts)
		}
		s.Starts++
		status = s.search(int(base * searchConflictFactor))
		if !s.withinBudget() {
			break
		}
	}

	if s.Verbosity >= 1 {
		s.printStatsLine()
		s.printSeparator()
	}

	if status == True {
		s.saveModel()
	}
	s.cancelUntil(0)
	s.assumptions = nil
	return status
}

func (s *Solver) saveModel() {
	s.Model = make([]bool, s.NumVariables())
	for v := range s.Model {
		s.Model[v] = s.VarValue(v) == True
	}
}

// SetConflictBudget limits the number of conflicts of the next solves to n
// from now; solving returns Unknown once the budget is exhausted.
func (s *Solver) SetConflictBudget(n int64) {
	s.conflictBudget = s.Conflicts + n
}

// SetPropagationBudget limits the number of propagations of the next solves
// to n from now.
func (s *Solver) SetPropagationBudget(n int64) {
	s.propagationBudget = s.Propagations + n
}

// BudgetOff removes the conflict and propagation budgets.
func (s *Solver) BudgetOff() {
	s.conflictBudget = -1
	s.propagationBudget = -1
}

// Interrupt asks the solver to stop as soon as possible. It is safe to call
// from another goroutine; the flag is polled at restart boundaries.
func (s *Solver) Interrupt() {
	s.interrupted.Store(true)
}

// ClearInterrupt resets the interrupt flag so the solver can be used again.
func (s *Solver) ClearInterrupt() {
	s.interrupted.Store(false)
}

func (s *Solver) withinBudget() bool {
	return !s.interrupted.Load() &&
		(s.conflictBudget < 0 || s.Conflicts < s.conflictBudget) &&
		(s.propagationBudget < 0 || s.Propagations < s.propagationBudget)
}

// progressEstimate gives a rough idea of how constrained the assignment is:
// assignments at low decision levels weigh exponentially more. Informational
// only.
func (s *Solver) progressEstimate() float64 {
	if s.NumVariables() == 0 {
		return 0
	}
	progress := 0.0
	f := 1.0 / float64(s.NumVariables())
	for i := 0; i <= s.decisionLevel(); i++ {
		beg := 0
		if i > 0 {
			beg = s.trailLim[i-1]
		}
		end := len(s.trail)
		if i < s.decisionLevel() {
			end = s.trailLim[i]
		}
		progress += math.Pow(f, float64(i)) * float64(end-beg)
	}
	return progress / float64(s.NumVariables())
}

func (s *Solver) printSeparator() {
	fmt.Println("c ---------------------------------------------------------------------------")
}

func (s *Solver) printStatsHeader() {
	s.printSeparator()
	fmt.Println("c        time      restarts     conflicts     decisions    avg learnt     progress")
	s.printSeparator()
}

func (s *Solver) printStatsLine() {
	fmt.Printf(
		"c %10.3fs %13d %13d %13d %13.1f %11.3f%%\n",
		time.Since(s.startTime).Seconds(),
		s.Starts,
		s.Conflicts,
		s.Decisions,
		s.avgLearntSize.Val(),
		s.progressEstimate()*100)
}
