package sat

// ClauseRef is a compact handle to a clause stored in an Arena. A reference
// remains valid until the next garbage collection; operations that allocate
// may trigger one, so references must be reloaded after any such call.
type ClauseRef uint32

// RefUndef is the sentinel reference. It never designates a clause.
const RefUndef ClauseRef = ^ClauseRef(0)

// Clause header word layout. The size occupies the high bits; the low bits
// hold the tombstone, learnt, and relocation flags.
const (
	hdrMark      = 1 << 0
	hdrLearnt    = 1 << 1
	hdrRelocated = 1 << 2
	hdrSizeShift = 3
)

// Arena stores clauses back-to-back in a single word-addressed region. A
// clause occupies one header word, one word per literal, and, for learnt
// clauses only, one word for the LBD and one for the activity.
//
// Freeing a clause only marks its header and accounts the storage as wasted;
// the space is reclaimed when the solver relocates the live clauses into a
// fresh arena.
type Arena struct {
	words  []uint32
	wasted int
}

func newArena(sizeHint int) Arena {
	if sizeHint < 1024 {
		sizeHint = 1024
	}
	return Arena{words: make([]uint32, 0, sizeHint)}
}

// clauseWords returns the number of arena words occupied by a clause of the
// given size.
func clauseWords(size int, learnt bool) int {
	n := 1 + size
	if learnt {
		n += 2
	}
	return n
}

// Size returns the number of words allocated in the arena.
func (a *Arena) Size() int {
	return len(a.words)
}

// Wasted returns the number of words occupied by freed clauses.
func (a *Arena) Wasted() int {
	return a.wasted
}

// Alloc stores a new clause and returns its reference. The literals are
// copied; the caller's slice is not retained.
func (a *Arena) Alloc(literals []Literal, learnt bool) ClauseRef {
	ref := ClauseRef(len(a.words))
	hdr := uint32(len(literals)) << hdrSizeShift
	if learnt {
		hdr |= hdrLearnt
	}
	a.words = append(a.words, hdr)
	for _, l := range literals {
		a.words = append(a.words, uint32(l))
	}
	if learnt {
		a.words = append(a.words, 0) // lbd
		a.words = append(a.words, 0) // activity
	}
	return ref
}

// Free marks the clause as deleted and accounts its storage as wasted. The
// reference must not be dereferenced afterwards.
func (a *Arena) Free(ref ClauseRef) {
	c := a.Clause(ref)
	a.wasted += clauseWords(c.Len(), c.Learnt())
	a.words[ref] |= hdrMark
}

// Reloc moves the clause into arena to, rewriting ref in place. A clause that
// has already been moved holds a forwarding reference in its first literal
// slot; subsequent calls resolve through it so that every external reference
// converges to the same copy.
func (a *Arena) Reloc(ref *ClauseRef, to *Arena) {
	c := a.Clause(*ref)
	if c.Relocated() {
		*ref = ClauseRef(a.words[*ref+1])
		return
	}
	end := int(*ref) + clauseWords(c.Len(), c.Learnt())
	moved := ClauseRef(len(to.words))
	to.words = append(to.words, a.words[*ref:end]...)
	a.words[*ref] |= hdrRelocated
	a.words[*ref+1] = uint32(moved)
	*ref = moved
}
