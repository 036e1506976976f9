package solver

// Pure literal elimination.
// A variable is pure if, among clauses not yet satisfied, all its occurrences
// have the same polarity. Assigning the pure polarity satisfies every clause
// it appears in and can never falsify one, so the pass never changes the
// satisfiability verdict.

// pureLiterals returns the literals that are pure under a, in ascending
// variable order. Already assigned variables are ignored.
func pureLiterals(f *Formula, a Assignment) []Lit {
	pos, neg := countLiterals(f, a)
	var res []Lit
	for v := Var(0); int(v) < f.nbVars; v++ {
		if pos[v] > 0 && neg[v] == 0 {
			res = append(res, v.Lit())
		} else if neg[v] > 0 && pos[v] == 0 {
			res = append(res, v.SignedLit(true))
		}
	}
	return res
}

// eliminatePureLiterals commits pure literal assignments at the top level
// until a fixpoint is reached. Pure literals carry no antecedent and do not
// increment the decision level.
func (s *Solver) eliminatePureLiterals() {
	for {
		pures := pureLiterals(s.f, s.model)
		if len(pures) == 0 {
			return
		}
		for _, lit := range pures {
			s.assign(lit, noReason)
			s.Stats.NbPureLiterals++
			s.logStep(nil, &lit, "PLE")
		}
	}
}

// EliminatePure runs pure literal elimination on a pristine formula and
// returns the reduced formula, with all satisfied clauses removed, along with
// the committed CNF literals.
func EliminatePure(f *Formula) (*Formula, []int) {
	a := make(Assignment, f.nbVars)
	var committed []int
	for {
		pures := pureLiterals(f, a)
		if len(pures) == 0 {
			break
		}
		for _, lit := range pures {
			a[lit.Var()] = lvlToSignedLvl(lit, 1)
			committed = append(committed, lit.Int())
		}
	}
	var remaining [][]int
	for _, c := range f.clauses {
		if !clauseSat(c, a) {
			remaining = append(remaining, c.Ints())
		}
	}
	reduced, err := NewFormulaVars(remaining, f.nbVars)
	if err != nil {
		panic(err) // Clauses come from a well-formed formula.
	}
	return reduced, committed
}
