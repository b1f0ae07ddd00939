package sat

// watcher represents a clause attached to the watch list of a literal.
type watcher struct {
	// Reference to the watching clause, to be inspected when the watched
	// literal becomes false.
	ref ClauseRef

	// Blocker is one of the clause's other literals. If it is true, the
	// clause is satisfied and does not need to be loaded at all. Caching it
	// in the watch entry avoids touching the arena for most visits.
	blocker Literal
}

// watchLists maps each literal p to the clauses that must be inspected when p
// becomes true (i.e. clauses in which ~p is a watched literal). Removal is
// lazy: detaching a clause only smudges its two lists, and cleanAll later
// drops the entries whose clause has been freed.
type watchLists struct {
	occs    [][]watcher
	dirty   []bool
	dirties []Literal
}

// expand grows the lists to accommodate one more variable (two literals).
func (w *watchLists) expand() {
	w.occs = append(w.occs, nil, nil)
	w.dirty = append(w.dirty, false, false)
}

func (w *watchLists) push(l Literal, e watcher) {
	w.occs[l] = append(w.occs[l], e)
}

// smudge marks l's list as containing entries for freed clauses.
func (w *watchLists) smudge(l Literal) {
	if !w.dirty[l] {
		w.dirty[l] = true
		w.dirties = append(w.dirties, l)
	}
}

// cleanAll removes the entries of freed clauses from every smudged list.
func (w *watchLists) cleanAll(a *Arena) {
	for _, l := range w.dirties {
		if w.dirty[l] {
			w.clean(l, a)
		}
	}
	w.dirties = w.dirties[:0]
}

func (w *watchLists) clean(l Literal, a *Arena) {
	ws := w.occs[l]
	j := 0
	for i := 0; i < len(ws); i++ {
		if !a.Clause(ws[i].ref).Deleted() {
			ws[j] = ws[i]
			j++
		}
	}
	w.occs[l] = ws[:j]
	w.dirty[l] = false
}
