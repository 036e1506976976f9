/*
Package solver implements a DPLL SAT solver with pluggable branching
heuristics and propagation engines, aimed at comparing search strategies on
benchmark instances.

Its input is a formula in conjunctive normal form, built either from a DIMACS
CNF stream or from a list of lists of literals. The solver then decides
satisfiability with the classic decide / propagate / backtrack loop and can
report a model and, optionally, a step-by-step decision trace.

Describing a problem

A problem can be described in two ways:

1. parse a DIMACS stream (io.Reader). If the io.Reader produces the following
content:

    p cnf 4 4
    1 -3 0
    -2 3 0
    2 4 0
    -4 0

the programmer can create the Formula by doing:

    f, err := solver.ParseCNF(r)

2. create the equivalent list of lists of literals:

    f, err := solver.ParseSlice([][]int{
        {1, -3},
        {-2, 3},
        {2, 4},
        {-4},
    })

Solving a problem

A solver is created from a formula and a configuration picking the branching
heuristic, the propagation engine and the preprocessing:

    s, err := solver.New(f, solver.Config{
        Heuristic:      solver.HeuristicDLCS,
        TWL:            true,
        UsePureLiteral: true,
        LogSteps:       true,
    })
    sat := s.Solve()

If sat is true, s.Model() returns a binding for every variable and s.Trace()
returns the recorded decision steps. Unit propagation is available either as
a naive full rescan or through two watched literals per clause; both engines
always agree on the verdict, the latter merely avoids rescanning unaffected
clauses.

The randomized heuristics (rdlcs, rdlis, rmoms) draw their polarity choices
from an injectable, seedable source, so runs are reproducible when seeded
identically.
*/
package solver
