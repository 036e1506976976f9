package solver

import (
	"fmt"
	"io"
	"strconv"
)

// Stats are statistics about the resolution of the problem.
// They are provided for information purpose only.
type Stats struct {
	NbDecisions    int
	NbPropagations int
	NbConflicts    int
	NbBacktracks   int // How many decisions were flipped
	NbPureLiterals int
}

// A Solver solves a given formula with the DPLL procedure.
// It owns all its search state; independent solvers may run concurrently,
// but a single Solver must not be shared between goroutines.
type Solver struct {
	f         *Formula
	heur      Heuristic
	engine    engine
	model     Assignment
	reason    []int // For each var, antecedent clause id, or noReason.
	trail     []Lit // Current assignment stack.
	qhead     int   // Trail index up to which propagation has been done.
	decisions []decision
	status    Status
	trace     TraceSink
	rec       *Recorder
	maxSteps  int
	Stats     Stats
}

// New makes a solver for the given formula, with the strategies picked by
// cfg. An unknown heuristic name or a negative k yields a ConfigError.
func New(f *Formula, cfg Config) (*Solver, error) {
	heur, err := NewHeuristic(cfg.Heuristic, cfg.K, cfg.rand())
	if err != nil {
		return nil, err
	}
	s := &Solver{
		f:        f,
		heur:     heur,
		model:    make(Assignment, f.nbVars),
		reason:   make([]int, f.nbVars),
		trail:    make([]Lit, 0, f.nbVars),
		status:   Indet,
		maxSteps: cfg.MaxSteps,
	}
	for i := range s.reason {
		s.reason[i] = noReason
	}
	if cfg.TWL {
		s.engine = newTWLEngine(f)
	} else {
		s.engine = naiveEngine{}
	}
	if cfg.LogSteps {
		if cfg.Trace != nil {
			s.trace = cfg.Trace
		} else {
			s.rec = &Recorder{}
			s.trace = s.rec
		}
	}
	if cfg.UsePureLiteral {
		s.eliminatePureLiterals()
	}
	return s, nil
}

// Solve runs the DPLL search and reports whether the formula is satisfiable.
// Satisfiable and unsatisfiable are both ordinary outcomes, never errors.
// When a MaxSteps limit aborts the search, Solve returns false and Status
// stays Indet.
func (s *Solver) Solve() bool {
	if s.status != Indet {
		return s.status == Sat
	}
	if s.f.status == Unsat { // An empty clause was given.
		s.status = Unsat
		return false
	}
	if !s.assignInitialUnits() {
		s.status = Unsat
		return false
	}
	steps := 0
	for {
		if s.maxSteps > 0 && steps >= s.maxSteps {
			return false
		}
		steps++
		if conflict := s.engine.propagate(s); conflict >= 0 {
			s.Stats.NbConflicts++
			if !s.backtrack() {
				s.status = Unsat
				return false
			}
			continue
		}
		if s.allSatisfied() {
			s.status = Sat
			return true
		}
		s.decide(s.heur.Select(s.f, s.model))
	}
}

// assignInitialUnits applies the unit clauses of the formula itself at the
// top level. It reports false on two contradicting unit clauses.
// The propagation engines only deal with clauses of length >= 2.
func (s *Solver) assignInitialUnits() bool {
	for id, c := range s.f.clauses {
		if c.Len() != 1 {
			continue
		}
		switch s.model.litStatus(c.First()) {
		case Sat:
		case Unsat:
			return false
		default:
			s.imply(c.First(), id)
		}
	}
	return true
}

// imply binds a literal forced by the given unit clause, at the current
// decision level.
func (s *Solver) imply(l Lit, clauseID int) {
	s.assign(l, clauseID)
	s.Stats.NbPropagations++
	s.logStep(nil, &l, "BCP "+strconv.Itoa(clauseID))
}

// decide pushes a new decision on the trail.
func (s *Solver) decide(l Lit) {
	if s.model.Assigned(l.Var()) {
		panic(fmt.Sprintf("heuristic %s picked the assigned variable %d", s.heur.Name(), l.Var()+1))
	}
	s.decisions = append(s.decisions, decision{lit: l, trailLen: len(s.trail)})
	s.Stats.NbDecisions++
	s.assign(l, noReason)
	s.logStep(&l, nil, "INC_DL "+s.heur.Name())
}

// backtrack undoes the trail back to the most recent decision whose polarity
// has not been flipped yet, flips it and retries at the same level.
// It reports false when no alternative is left, i.e. the formula is unsat.
func (s *Solver) backtrack() bool {
	for len(s.decisions) > 0 {
		d := &s.decisions[len(s.decisions)-1]
		s.undoTo(d.trailLen)
		s.engine.backtracked(s)
		if d.flipped {
			s.decisions = s.decisions[:len(s.decisions)-1]
			continue
		}
		d.flipped = true
		d.lit = d.lit.Negation()
		s.Stats.NbBacktracks++
		s.assign(d.lit, noReason)
		s.logStep(&d.lit, nil, "INC_DL "+s.heur.Name())
		return true
	}
	return false
}

// allSatisfied is true iff every clause is satisfied by the current bindings.
func (s *Solver) allSatisfied() bool {
	for _, c := range s.f.clauses {
		if !clauseSat(c, s.model) {
			return false
		}
	}
	return true
}

// Status returns the current status of the search: Indet before Solve
// terminates (or after an aborted run), Sat or Unsat afterwards.
func (s *Solver) Status() Status {
	return s.status
}

// Model returns a slice that associates, to each variable, its binding.
// Variables the search left unbound are reported as false.
// If s's status is not Sat, the method will panic.
func (s *Solver) Model() []bool {
	if s.status != Sat {
		panic("cannot call Model() from a non-Sat solver")
	}
	res := make([]bool, s.f.nbVars)
	for v, lvl := range s.model {
		res[v] = lvl > 0
	}
	return res
}

// Assignment returns the satisfying partial assignment as signed CNF
// literals, in assignment order.
func (s *Solver) Assignment() []int {
	res := make([]int, len(s.trail))
	for i, lit := range s.trail {
		res[i] = lit.Int()
	}
	return res
}

// Trace returns the recorded decision steps. It is nil unless the solver was
// configured with LogSteps and without a custom sink.
func (s *Solver) Trace() []DecisionStep {
	if s.rec == nil {
		return nil
	}
	return s.rec.Steps()
}

// OutputModel writes the solving result in DIMACS output format.
func (s *Solver) OutputModel(w io.Writer) {
	switch s.status {
	case Sat:
		fmt.Fprintf(w, "s SATISFIABLE\nv ")
		for v, lvl := range s.model {
			if lvl < 0 {
				fmt.Fprintf(w, "%d ", -v-1)
			} else {
				fmt.Fprintf(w, "%d ", v+1)
			}
		}
		fmt.Fprintf(w, "0\n")
	case Unsat:
		fmt.Fprintf(w, "s UNSATISFIABLE\n")
	default:
		fmt.Fprintf(w, "s INDETERMINATE\n")
	}
}
