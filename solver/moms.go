package solver

import "math/rand"

// moms is the Maximum Occurrences on clauses of Minimum size heuristic.
// Only the smallest non-satisfied clauses are considered; each variable is
// scored as (occ(v)+occ(¬v))·2^k + occ(v)·occ(¬v). A large k favors
// almost-pure literals, a small k keeps the search tree balanced.
type moms struct {
	k uint
}

func (moms) Name() string { return HeuristicMOMS }

func (h moms) Select(f *Formula, a Assignment) Lit {
	v, signed := h.selectVar(f, a)
	return v.SignedLit(signed)
}

func (h moms) selectVar(f *Formula, a Assignment) (Var, bool) {
	pos, neg := countMinSizeClauses(f, a)
	best := Var(-1)
	bestScore := -1
	signed := false
	for v := Var(0); int(v) < f.nbVars; v++ {
		if pos[v]+neg[v] == 0 {
			continue
		}
		score := (pos[v]+neg[v])<<h.k + pos[v]*neg[v]
		if score > bestScore {
			best = v
			bestScore = score
			signed = neg[v] > pos[v]
		}
	}
	if best == -1 {
		panic("no unassigned variable left to branch on")
	}
	return best, signed
}

// countMinSizeClauses counts unassigned literal occurrences restricted to the
// non-satisfied clauses of minimum current size.
func countMinSizeClauses(f *Formula, a Assignment) (pos, neg []int) {
	sizes := make([]int, len(f.clauses))
	minSize := -1
	for id, c := range f.clauses {
		if clauseSat(c, a) {
			sizes[id] = -1
			continue
		}
		nbFree := 0
		for i := 0; i < c.Len(); i++ {
			if !a.Assigned(c.Get(i).Var()) {
				nbFree++
			}
		}
		sizes[id] = nbFree
		if minSize == -1 || nbFree < minSize {
			minSize = nbFree
		}
	}
	pos = make([]int, f.nbVars)
	neg = make([]int, f.nbVars)
	for id, c := range f.clauses {
		if sizes[id] != minSize {
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

// rmoms scores variables like moms but picks the polarity at random.
type rmoms struct {
	moms
	rng *rand.Rand
}

func (rmoms) Name() string { return HeuristicRMOMS }

func (h rmoms) Select(f *Formula, a Assignment) Lit {
	v, _ := h.selectVar(f, a)
	return v.SignedLit(h.rng.Intn(2) == 0)
}
