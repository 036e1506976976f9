package solver

// A Status classifies either a whole search or a single clause under the
// current bindings. Indet, Sat and Unsat are the search outcomes; Unit and
// Many only ever describe clauses.
type Status byte

const (
	// Indet means satisfiability is not decided yet.
	Indet = Status(iota)
	// Sat means the formula (or the clause) is satisfied.
	Sat
	// Unsat means the formula (or the clause) is falsified.
	Unsat
	// Unit means exactly one literal of the clause is unassigned, all others false.
	Unit
	// Many means at least two literals of the clause are unassigned.
	Many
)

func (s Status) String() string {
	switch s {
	case Indet:
		return "INDETERMINATE"
	case Sat:
		return "SAT"
	case Unsat:
		return "UNSAT"
	case Unit:
		return "UNIT"
	case Many:
		return "MANY"
	default:
		panic("invalid status")
	}
}

// A Var is a 0-based variable index: CNF variable 3 is Var 2.
type Var int32

// A Lit packs a variable and a polarity in one int: the variable index in
// the high bits, the sign in the low bit. CNF literal -3 is Lit 5.
// Lits index directly into occurrence and watch lists.
type Lit int32

// IntToLit converts a signed CNF literal to a Lit.
func IntToLit(i int) Lit {
	if i < 0 {
		return Lit(2*(-i-1) + 1)
	}
	return Lit(2 * (i - 1))
}

// Lit returns the positive literal over v.
func (v Var) Lit() Lit {
	return Lit(v * 2)
}

// SignedLit returns the literal over v, negative when signed is true.
func (v Var) SignedLit(signed bool) Lit {
	if signed {
		return Lit(v*2) + 1
	}
	return Lit(v * 2)
}

// Var returns the variable of l.
func (l Lit) Var() Var {
	return Var(l / 2)
}

// Int returns l as a signed CNF literal.
func (l Lit) Int() int {
	res := int(l/2 + 1)
	if l&1 == 1 {
		return -res
	}
	return res
}

// IsPositive is true iff l is the positive literal of its variable.
func (l Lit) IsPositive() bool {
	return l%2 == 0
}

// Negation returns the opposite literal of the same variable.
func (l Lit) Negation() Lit {
	return l ^ 1
}

// A decLevel encodes a binding and the level it was made at: positive for a
// true binding, negative for a false one, zero for a free variable.
type decLevel int32

// lvlToSignedLvl gives the decLevel binding l at level lvl.
func lvlToSignedLvl(l Lit, lvl decLevel) decLevel {
	if l.IsPositive() {
		return lvl
	}
	return -lvl
}
