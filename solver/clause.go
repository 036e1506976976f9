package solver

import (
	"fmt"
	"strings"
)

// A Clause is a disjunction of literals.
// Clauses are immutable once their Formula is built: propagation engines keep
// their own watch indexes rather than reordering literals in place.
type Clause struct {
	lits []Lit
}

// NewClause returns a clause whose lits are given as an argument.
func NewClause(lits []Lit) *Clause {
	return &Clause{lits: lits}
}

// Len returns the nb of lits in the clause.
func (c *Clause) Len() int {
	return len(c.lits)
}

// First returns the first lit from the clause.
func (c *Clause) First() Lit {
	return c.lits[0]
}

// Get returns the ith literal from the clause.
func (c *Clause) Get(i int) Lit {
	return c.lits[i]
}

// Ints returns the clause as CNF literals.
func (c *Clause) Ints() []int {
	res := make([]int, len(c.lits))
	for i, l := range c.lits {
		res[i] = l.Int()
	}
	return res
}

// CNF returns a DIMACS CNF representation of the clause.
func (c *Clause) CNF() string {
	var sb strings.Builder
	for _, lit := range c.lits {
		fmt.Fprintf(&sb, "%d ", lit.Int())
	}
	sb.WriteString("0")
	return sb.String()
}
