package solver

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPureLiteralsDetection(t *testing.T) {
	f, err := NewFormula([][]int{{1, 2}, {-2, 3}, {1, 3}})
	require.NoError(t, err)
	pures := pureLiterals(f, make(Assignment, f.NbVars()))
	assert.Equal(t, []Lit{IntToLit(1), IntToLit(3)}, pures)
}

func TestNegativePureLiteral(t *testing.T) {
	f, err := NewFormula([][]int{{-1, 2}, {-1, -2}})
	require.NoError(t, err)
	pures := pureLiterals(f, make(Assignment, f.NbVars()))
	assert.Equal(t, []Lit{IntToLit(-1)}, pures)
}

func TestPurityIsRelativeToAssignment(t *testing.T) {
	// Var 2 is impure on the full formula but becomes pure once 1 satisfies
	// the first clause.
	f, err := NewFormula([][]int{{1, 2}, {-2, 3}})
	require.NoError(t, err)
	a := make(Assignment, f.NbVars())
	a[IntToLit(1).Var()] = 1
	pures := pureLiterals(f, a)
	assert.Equal(t, []Lit{IntToLit(-2), IntToLit(3)}, pures)
}

func TestEliminationRunsToFixpoint(t *testing.T) {
	// 1 is the only pure literal at first; committing it satisfies {1, 2} and
	// turns -2 pure in the rest.
	f, err := NewFormula([][]int{{1, 2}, {-2, 3}, {-2, -3}})
	require.NoError(t, err)
	s, err := New(f, Config{UsePureLiteral: true})
	require.NoError(t, err)
	assert.Equal(t, 2, s.Stats.NbPureLiterals)
	assert.True(t, s.Solve())
	assert.Equal(t, 0, s.Stats.NbDecisions)
}

func TestEliminatePureReducesFormula(t *testing.T) {
	f, err := NewFormula([][]int{{1, 2}, {-1, 2}, {1, -2}, {-1, -2}, {3}})
	require.NoError(t, err)
	reduced, committed := EliminatePure(f)
	assert.Equal(t, []int{3}, committed)
	assert.Equal(t, 4, reduced.NbClauses())
	assert.Equal(t, f.NbVars(), reduced.NbVars())
}

func TestEliminatePureCanEmptyTheFormula(t *testing.T) {
	f, err := NewFormula([][]int{{1, 2}, {-2, 3}, {-2, -3}})
	require.NoError(t, err)
	reduced, committed := EliminatePure(f)
	assert.Equal(t, []int{1, -2}, committed)
	assert.Equal(t, 0, reduced.NbClauses())
}

func TestEliminationPreservesVerdict(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	for i := 0; i < 100; i++ {
		clauses := randomClauses(rng, 6, 14)
		_, plain := mustSolve(t, clauses, Config{})
		s, withPLE := mustSolve(t, clauses, Config{UsePureLiteral: true})
		require.Equal(t, plain, withPLE, "formula %v", clauses)
		if withPLE {
			require.True(t, satisfies(clauses, s.Assignment()), "formula %v", clauses)
		}
	}
}

func TestPureCommitsAreTraced(t *testing.T) {
	f, err := NewFormula([][]int{{1, 2}, {-2, 3}, {-2, -3}})
	require.NoError(t, err)
	s, err := New(f, Config{UsePureLiteral: true, LogSteps: true})
	require.NoError(t, err)
	s.Solve()
	steps := s.Trace()
	require.Len(t, steps, 2)
	for _, step := range steps {
		assert.Nil(t, step.DecisionLiteral)
		require.NotNil(t, step.ImpliedLiteral)
		assert.Equal(t, "PLE", step.Explanation)
		assert.Equal(t, 0, step.DecisionLevel)
	}
	assert.Equal(t, 1, *steps[0].ImpliedLiteral)
	assert.Equal(t, -2, *steps[1].ImpliedLiteral)
}
