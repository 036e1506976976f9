package solver

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// A DecisionStep is an immutable snapshot of the search, emitted on every
// decision, implied assignment or pure literal commit when tracing is
// enabled. Exactly one of DecisionLiteral and ImpliedLiteral is non-nil.
type DecisionStep struct {
	DecisionLevel       int    `json:"decision_level"`
	PartialAssignment   []int  `json:"partial_assignment"`
	DecisionLiteral     *int   `json:"decision_literal"`
	ImpliedLiteral      *int   `json:"implied_literal"`
	SatisfiedClauses    []int  `json:"satisfied_clauses"`
	ContradictedClauses []int  `json:"contradicted_clauses"`
	UnitClauses         []int  `json:"unit_clauses"`
	PendingClauses      []int  `json:"pending_clauses"`
	Explanation         string `json:"explanation"`
}

// A TraceSink consumes decision steps as the solver produces them.
// Sinks are called synchronously from the search loop and must not retain
// the step's slices beyond the call unless they copy them; the solver itself
// always hands over fresh slices.
type TraceSink interface {
	Record(step DecisionStep)
}

// A Recorder is a TraceSink accumulating every step in memory.
type Recorder struct {
	steps []DecisionStep
}

// Record implements TraceSink.
func (r *Recorder) Record(step DecisionStep) {
	r.steps = append(r.steps, step)
}

// Steps returns the recorded steps, in emission order.
func (r *Recorder) Steps() []DecisionStep {
	return r.steps
}

// WriteTable renders the recorded steps as a decision table.
func (r *Recorder) WriteTable(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DL\tAssignment\tDLit\tIL\tSat\tContradicted\tUnit\tPending\tExplanation")
	for _, step := range r.steps {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%v\t%v\t%v\t%v\t%s\n",
			step.DecisionLevel,
			fmtAssignment(step.PartialAssignment),
			fmtNullable(step.DecisionLiteral),
			fmtNullable(step.ImpliedLiteral),
			step.SatisfiedClauses,
			step.ContradictedClauses,
			step.UnitClauses,
			step.PendingClauses,
			step.Explanation,
		)
	}
	return tw.Flush()
}

func fmtAssignment(lits []int) string {
	strs := make([]string, len(lits))
	for i, l := range lits {
		strs[i] = fmt.Sprintf("%d", l)
	}
	return "{" + strings.Join(strs, ", ") + "}"
}

func fmtNullable(l *int) string {
	if l == nil {
		return "-"
	}
	return fmt.Sprintf("%d", *l)
}

// logStep emits a DecisionStep on the configured sink. It is a no-op when
// tracing is disabled: no snapshot is allocated at all.
func (s *Solver) logStep(decision, implied *Lit, explanation string) {
	if s.trace == nil {
		return
	}
	step := DecisionStep{
		DecisionLevel:     len(s.decisions),
		PartialAssignment: make([]int, len(s.trail)),
		Explanation:       explanation,
	}
	for i, lit := range s.trail {
		step.PartialAssignment[i] = lit.Int()
	}
	if decision != nil {
		v := decision.Int()
		step.DecisionLiteral = &v
	}
	if implied != nil {
		v := implied.Int()
		step.ImpliedLiteral = &v
	}
	for id, c := range s.f.clauses {
		st, _ := clauseStatus(c, s.model)
		switch st {
		case Sat:
			step.SatisfiedClauses = append(step.SatisfiedClauses, id)
		case Unsat:
			step.ContradictedClauses = append(step.ContradictedClauses, id)
		case Unit:
			step.UnitClauses = append(step.UnitClauses, id)
		default:
			step.PendingClauses = append(step.PendingClauses, id)
		}
	}
	s.trace.Record(step)
}
