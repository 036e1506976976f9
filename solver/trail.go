package solver

// An Assignment is a binding for several variables.
// Each var, in order, is associated with a binding, implemented as a signed
// decision level:
// - a 0 value means the variable is free,
// - a positive value means the variable was set to true at the given level,
// - a negative value means the variable was set to false at the given level.
type Assignment []decLevel

// Assigned is true iff v is currently bound.
func (a Assignment) Assigned(v Var) bool {
	return a[v] != 0
}

// Value returns the binding of v; it must only be called on an assigned var.
func (a Assignment) Value(v Var) bool {
	return a[v] > 0
}

// litStatus returns whether the literal is made true (Sat) or false (Unsat)
// by the current bindings, or if it is unbound (Indet).
func (a Assignment) litStatus(l Lit) Status {
	lvl := a[l.Var()]
	if lvl == 0 {
		return Indet
	}
	if lvl > 0 == l.IsPositive() {
		return Sat
	}
	return Unsat
}

// clauseSat is true iff at least one literal of c is made true by a.
func clauseSat(c *Clause, a Assignment) bool {
	for i := 0; i < c.Len(); i++ {
		if a.litStatus(c.Get(i)) == Sat {
			return true
		}
	}
	return false
}

// clauseStatus classifies c under a as Sat, Unsat, Unit or Many.
// When the clause is Unit, the single unassigned literal is returned too.
func clauseStatus(c *Clause, a Assignment) (Status, Lit) {
	free := Lit(-1)
	nbFree := 0
	for i := 0; i < c.Len(); i++ {
		lit := c.Get(i)
		switch a.litStatus(lit) {
		case Sat:
			return Sat, -1
		case Indet:
			nbFree++
			free = lit
		}
	}
	switch nbFree {
	case 0:
		return Unsat, -1
	case 1:
		return Unit, free
	default:
		return Many, -1
	}
}

// noReason marks an assignment that has no antecedent clause:
// a decision, a pure literal, or a flipped branch.
const noReason = -1

// A decision is a trail checkpoint: the literal that was decided, the length
// of the trail right before it was pushed, and whether its negation has
// already been tried.
type decision struct {
	lit      Lit
	trailLen int
	flipped  bool
}

// assign binds l at the current decision level and pushes it on the trail.
// reason is the id of the antecedent clause, or noReason.
func (s *Solver) assign(l Lit, reason int) {
	v := l.Var()
	if s.model[v] != 0 {
		panic("assigning an already bound variable")
	}
	s.model[v] = lvlToSignedLvl(l, s.curLvl())
	s.reason[v] = reason
	s.trail = append(s.trail, l)
}

// undoTo truncates the trail back to length n, clearing the corresponding
// bindings. This is the only way search state is ever undone.
func (s *Solver) undoTo(n int) {
	for i := len(s.trail) - 1; i >= n; i-- {
		v := s.trail[i].Var()
		s.model[v] = 0
		s.reason[v] = noReason
	}
	s.trail = s.trail[:n]
	if s.qhead > n {
		s.qhead = n
	}
}

// curLvl is the internal decision level: 1 for top-level bindings, one more
// for each decision on the stack.
func (s *Solver) curLvl() decLevel {
	return decLevel(len(s.decisions) + 1)
}
