package solver

import "fmt"

// A Formula is an ordered list of clauses over variables 1..NbVars.
// It is immutable once built: search state lives in the Solver, and
// pure-literal elimination produces a new, reduced Formula.
type Formula struct {
	nbVars  int
	clauses []*Clause
	occ     [][]int // For each Lit, ids of the clauses containing it.
	status  Status  // Unsat iff an empty clause was given.
}

// NewFormula builds a formula from CNF clauses, inferring the number of
// variables as the greatest |literal|.
// A clause containing the literal 0 is rejected as a FormatError,
// as is a clause containing both a variable and its negation.
// An empty clause is accepted and makes the formula trivially unsatisfiable.
func NewFormula(clauses [][]int) (*Formula, error) {
	nbVars := 0
	for _, clause := range clauses {
		for _, val := range clause {
			v := val
			if v < 0 {
				v = -v
			}
			if v > nbVars {
				nbVars = v
			}
		}
	}
	return NewFormulaVars(clauses, nbVars)
}

// NewFormulaVars builds a formula from CNF clauses over the declared number
// of variables. A literal whose variable falls outside 1..nbVars is rejected
// as a FormatError.
func NewFormulaVars(clauses [][]int, nbVars int) (*Formula, error) {
	if nbVars < 0 {
		return nil, formatErrorf(-1, "negative number of variables %d", nbVars)
	}
	f := &Formula{
		nbVars:  nbVars,
		clauses: make([]*Clause, 0, len(clauses)),
		occ:     make([][]int, nbVars*2),
	}
	for i, clause := range clauses {
		if len(clause) == 0 {
			f.status = Unsat
			f.clauses = append(f.clauses, NewClause(nil))
			continue
		}
		lits := make([]Lit, 0, len(clause))
		seen := make(map[Var]Lit, len(clause))
		for _, val := range clause {
			if val == 0 {
				return nil, formatErrorf(i, "null literal")
			}
			if val > nbVars || -val > nbVars {
				return nil, formatErrorf(i, "literal %d for formula with %d vars only", val, nbVars)
			}
			lit := IntToLit(val)
			if prev, ok := seen[lit.Var()]; ok {
				if prev == lit { // Plain duplicate, drop it
					continue
				}
				return nil, formatErrorf(i, "both %d and %d appear", val, -val)
			}
			seen[lit.Var()] = lit
			lits = append(lits, lit)
		}
		id := len(f.clauses)
		f.clauses = append(f.clauses, NewClause(lits))
		for _, lit := range lits {
			f.occ[lit] = append(f.occ[lit], id)
		}
	}
	return f, nil
}

// NbVars returns the number of variables of the formula.
func (f *Formula) NbVars() int {
	return f.nbVars
}

// NbClauses returns the number of clauses of the formula.
func (f *Formula) NbClauses() int {
	return len(f.clauses)
}

// Clause returns the clause of the given id.
func (f *Formula) Clause(id int) *Clause {
	return f.clauses[id]
}

// ClausesWith returns the ids of the clauses containing the given literal.
// The returned slice is shared and must not be modified.
func (f *Formula) ClausesWith(l Lit) []int {
	return f.occ[l]
}

// CNF returns a DIMACS CNF representation of the formula.
func (f *Formula) CNF() string {
	res := fmt.Sprintf("p cnf %d %d\n", f.nbVars, len(f.clauses))
	for _, clause := range f.clauses {
		res += fmt.Sprintf("%s\n", clause.CNF())
	}
	return res
}
