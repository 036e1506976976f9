package solver

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cnfExample = `c a small satisfiable problem
c
p cnf 4 4
1 -3 0
-2 3 0
2 4 0
-4 0
`

func TestParseCNF(t *testing.T) {
	f, err := ParseCNF(strings.NewReader(cnfExample))
	require.NoError(t, err)
	assert.Equal(t, 4, f.NbVars())
	assert.Equal(t, 4, f.NbClauses())
	assert.Equal(t, []int{1, -3}, f.Clause(0).Ints())
	assert.Equal(t, []int{-4}, f.Clause(3).Ints())
}

func TestParseMultiLineClause(t *testing.T) {
	cnf := "p cnf 3 2\n1 2\n3 0 -1\n-2 0\n"
	f, err := ParseCNF(strings.NewReader(cnf))
	require.NoError(t, err)
	require.Equal(t, 2, f.NbClauses())
	assert.Equal(t, []int{1, 2, 3}, f.Clause(0).Ints())
	assert.Equal(t, []int{-1, -2}, f.Clause(1).Ints())
}

func TestParseSATLIBTerminator(t *testing.T) {
	cnf := "p cnf 2 1\n1 2 0\n%\n0\nthis is ignored\n"
	f, err := ParseCNF(strings.NewReader(cnf))
	require.NoError(t, err)
	assert.Equal(t, 1, f.NbClauses())
}

func TestParseWithoutHeaderInfersVars(t *testing.T) {
	f, err := ParseCNF(strings.NewReader("1 -5 0\n2 0\n"))
	require.NoError(t, err)
	assert.Equal(t, 5, f.NbVars())
	assert.Equal(t, 2, f.NbClauses())
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		cnf  string
	}{
		{"truncated header", "p cnf 3\n1 2 0\n"},
		{"wrong format", "p wcnf 3 1\n1 2 0\n"},
		{"bad var count", "p cnf three 1\n1 2 0\n"},
		{"bad clause count", "p cnf 3 one\n1 2 0\n"},
		{"invalid literal", "p cnf 3 1\n1 x 0\n"},
		{"unterminated clause", "p cnf 3 1\n1 2\n"},
		{"literal out of range", "p cnf 2 1\n1 7 0\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCNF(strings.NewReader(tt.cnf))
			assert.Error(t, err)
		})
	}
}

func TestParsedFormulaSolves(t *testing.T) {
	f, err := ParseCNF(strings.NewReader(cnfExample))
	require.NoError(t, err)
	s, err := New(f, Config{})
	require.NoError(t, err)
	assert.True(t, s.Solve())
	clauses := make([][]int, f.NbClauses())
	for i := range clauses {
		clauses[i] = f.Clause(i).Ints()
	}
	assert.True(t, satisfies(clauses, s.Assignment()))
}

func TestParseSlice(t *testing.T) {
	f, err := ParseSlice([][]int{{1, -2}, {2}})
	require.NoError(t, err)
	assert.Equal(t, 2, f.NbVars())
	assert.Equal(t, 2, f.NbClauses())
}
