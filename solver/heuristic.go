package solver

import "math/rand"

// A Heuristic picks the literal to branch on.
// Select is called only when at least one unassigned variable remains in a
// non-satisfied clause and no unit clause is pending; it must return a
// literal over a currently unassigned variable.
type Heuristic interface {
	Name() string
	Select(f *Formula, a Assignment) Lit
}

// Heuristic names accepted by NewHeuristic and Config.Heuristic.
const (
	HeuristicDefault = "default"
	HeuristicDLCS    = "dlcs"
	HeuristicDLIS    = "dlis"
	HeuristicRDLCS   = "rdlcs"
	HeuristicRDLIS   = "rdlis"
	HeuristicMOMS    = "moms"
	HeuristicRMOMS   = "rmoms"
)

// NewHeuristic returns the branching heuristic of the given name.
// k tunes the moms/rmoms score and must be nonnegative; rng drives the
// polarity choice of the randomized variants and must be non-nil for them.
// An unknown name or a negative k yields a ConfigError.
func NewHeuristic(name string, k int, rng *rand.Rand) (Heuristic, error) {
	if k < 0 {
		return nil, configErrorf("negative k value %d", k)
	}
	switch name {
	case HeuristicDefault, "":
		return defaultHeuristic{}, nil
	case HeuristicDLCS:
		return dlcs{}, nil
	case HeuristicDLIS:
		return dlis{}, nil
	case HeuristicRDLCS:
		return rdlcs{rng: rng}, nil
	case HeuristicRDLIS:
		return rdlis{rng: rng}, nil
	case HeuristicMOMS:
		return moms{k: uint(k)}, nil
	case HeuristicRMOMS:
		return rmoms{moms: moms{k: uint(k)}, rng: rng}, nil
	default:
		return nil, configErrorf("unknown heuristic %q", name)
	}
}

// countLiterals counts, for each variable, the occurrences of its positive
// and negative literals among unassigned literals of non-satisfied clauses.
func countLiterals(f *Formula, a Assignment) (pos, neg []int) {
	pos = make([]int, f.nbVars)
	neg = make([]int, f.nbVars)
	for _, c := range f.clauses {
		if clauseSat(c, a) {
			continue
		}
		for i := 0; i < c.Len(); i++ {
			lit := c.Get(i)
			if a.Assigned(lit.Var()) {
				continue
			}
			if lit.IsPositive() {
				pos[lit.Var()]++
			} else {
				neg[lit.Var()]++
			}
		}
	}
	return pos, neg
}

// defaultHeuristic branches on the lowest unassigned variable appearing in a
// non-satisfied clause, always trying true first.
type defaultHeuristic struct{}

func (defaultHeuristic) Name() string { return HeuristicDefault }

func (defaultHeuristic) Select(f *Formula, a Assignment) Lit {
	pos, neg := countLiterals(f, a)
	for v := Var(0); int(v) < f.nbVars; v++ {
		if pos[v]+neg[v] > 0 {
			return v.Lit()
		}
	}
	panic("no unassigned variable left to branch on")
}

// dlcs is the Dynamic Largest Combined Sum heuristic: it branches on the
// variable with the most occurrences, positive and negative combined, in
// non-satisfied clauses. The polarity with the higher individual count wins.
type dlcs struct{}

func (dlcs) Name() string { return HeuristicDLCS }

func (dlcs) Select(f *Formula, a Assignment) Lit {
	v, signed := selectCombined(f, a)
	return v.SignedLit(signed)
}

// selectCombined picks the variable maximizing pos+neg, ties broken by lowest
// id, and reports whether its negative polarity dominates.
func selectCombined(f *Formula, a Assignment) (Var, bool) {
	pos, neg := countLiterals(f, a)
	best := Var(-1)
	bestSum := -1
	signed := false
	for v := Var(0); int(v) < f.nbVars; v++ {
		sum := pos[v] + neg[v]
		if sum > 0 && sum > bestSum {
			best = v
			bestSum = sum
			signed = neg[v] > pos[v]
		}
	}
	if best == -1 {
		panic("no unassigned variable left to branch on")
	}
	return best, signed
}

// dlis is the Dynamic Largest Individual Sum heuristic: it branches directly
// on the literal with the most occurrences in non-satisfied clauses.
type dlis struct{}

func (dlis) Name() string { return HeuristicDLIS }

func (dlis) Select(f *Formula, a Assignment) Lit {
	v, signed := selectIndividual(f, a)
	return v.SignedLit(signed)
}

// selectIndividual picks the literal with the highest individual count, ties
// broken by lowest variable id then by positive polarity.
func selectIndividual(f *Formula, a Assignment) (Var, bool) {
	pos, neg := countLiterals(f, a)
	best := Var(-1)
	bestCount := -1
	signed := false
	for v := Var(0); int(v) < f.nbVars; v++ {
		if pos[v] > 0 && pos[v] > bestCount {
			best, bestCount, signed = v, pos[v], false
		}
		if neg[v] > 0 && neg[v] > bestCount {
			best, bestCount, signed = v, neg[v], true
		}
	}
	if best == -1 {
		panic("no unassigned variable left to branch on")
	}
	return best, signed
}

// rdlcs scores variables like dlcs but picks the polarity at random.
type rdlcs struct {
	rng *rand.Rand
}

func (rdlcs) Name() string { return HeuristicRDLCS }

func (h rdlcs) Select(f *Formula, a Assignment) Lit {
	v, _ := selectCombined(f, a)
	return v.SignedLit(h.rng.Intn(2) == 0)
}

// rdlis scores variables like dlis but picks the polarity at random.
type rdlis struct {
	rng *rand.Rand
}

func (rdlis) Name() string { return HeuristicRDLIS }

func (h rdlis) Select(f *Formula, a Assignment) Lit {
	v, _ := selectIndividual(f, a)
	return v.SignedLit(h.rng.Intn(2) == 0)
}
