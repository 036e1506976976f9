package solver

// twlEngine is the two-watched-literals propagation engine.
// Every clause of length >= 2 watches two of its literals; an assignment is
// dispatched only to the clauses watching the now-falsified literal.
// Invariant: until a clause is fully assigned, at least one of its two
// watched literals is unassigned or satisfied. Watches are never undone on
// backtrack: the invariant survives trail truncation.
type twlEngine struct {
	wlist   [][]int    // For each literal, ids of the clauses currently watching it.
	watched [][2]int32 // For each clause, positions of its two watched lits, or {-1, -1}.
}

func newTWLEngine(f *Formula) *twlEngine {
	e := &twlEngine{
		wlist:   make([][]int, f.nbVars*2),
		watched: make([][2]int32, len(f.clauses)),
	}
	for id, c := range f.clauses {
		if c.Len() < 2 {
			// Empty and unit clauses are dealt with at the top level.
			e.watched[id] = [2]int32{-1, -1}
			continue
		}
		e.watched[id] = [2]int32{0, 1}
		e.wlist[c.Get(0)] = append(e.wlist[c.Get(0)], id)
		e.wlist[c.Get(1)] = append(e.wlist[c.Get(1)], id)
	}
	return e
}

func (e *twlEngine) propagate(s *Solver) int {
	for s.qhead < len(s.trail) {
		p := s.trail[s.qhead]
		s.qhead++
		falsified := p.Negation()
		ws := e.wlist[falsified]
		j := 0
		for i := 0; i < len(ws); i++ {
			id := ws[i]
			c := s.f.clauses[id]
			w := &e.watched[id]
			if c.Get(int(w[0])) != falsified && c.Get(int(w[1])) != falsified {
				panic("watch list points at a clause that does not watch the literal")
			}
			// Make w[1] the other watched literal.
			if c.Get(int(w[1])) == falsified {
				w[0], w[1] = w[1], w[0]
			}
			other := c.Get(int(w[1]))
			if s.model.litStatus(other) == Sat {
				ws[j] = id
				j++
				continue
			}
			if idx := e.findReplacement(s, c, w); idx >= 0 {
				// Move the watch to the replacement literal.
				w[0] = int32(idx)
				lit := c.Get(idx)
				e.wlist[lit] = append(e.wlist[lit], id)
				continue
			}
			ws[j] = id
			j++
			if s.model.litStatus(other) == Indet {
				s.imply(other, id) // Clause is unit on its other watch.
			} else {
				// Conflict: keep the remaining watchers before bailing out.
				for i++; i < len(ws); i++ {
					ws[j] = ws[i]
					j++
				}
				e.wlist[falsified] = ws[:j]
				s.qhead = len(s.trail)
				return id
			}
		}
		e.wlist[falsified] = ws[:j]
	}
	return -1
}

// findReplacement searches the unwatched literals of c for one that is
// unassigned or satisfied, returning its position or -1.
func (e *twlEngine) findReplacement(s *Solver, c *Clause, w *[2]int32) int {
	for idx := 0; idx < c.Len(); idx++ {
		if int32(idx) == w[0] || int32(idx) == w[1] {
			continue
		}
		if s.model.litStatus(c.Get(idx)) != Unsat {
			return idx
		}
	}
	return -1
}

// Watches stay valid across backtracking, nothing to do.
func (*twlEngine) backtracked(*Solver) {}
