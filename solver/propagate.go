package solver

// An engine performs boolean constraint propagation: it repeatedly applies
// pending unit clauses until none remain or a clause becomes fully false.
// Both implementations must agree on every satisfiability verdict.
type engine interface {
	// propagate applies unit propagation until fixpoint.
	// It returns the id of a conflicting clause, or -1 if none arose.
	propagate(s *Solver) int
	// backtracked informs the engine that the trail was truncated.
	backtracked(s *Solver)
}

// naiveEngine rescans every clause on each propagation round, classifying it
// as satisfied, unit, conflicting or pending.
type naiveEngine struct{}

func (naiveEngine) propagate(s *Solver) int {
	for {
		unit := -1
		var unitLit Lit
		for id, c := range s.f.clauses {
			st, l := clauseStatus(c, s.model)
			switch st {
			case Unsat:
				s.qhead = len(s.trail)
				return id
			case Unit:
				if unit == -1 {
					unit = id
					unitLit = l
				}
			}
		}
		if unit == -1 {
			s.qhead = len(s.trail)
			return -1
		}
		s.imply(unitLit, unit)
	}
}

func (naiveEngine) backtracked(*Solver) {}
