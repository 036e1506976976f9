package solver

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ParseSlice parses a slice of slices of CNF literals and returns the
// equivalent formula, inferring the number of variables.
func ParseSlice(cnf [][]int) (*Formula, error) {
	return NewFormula(cnf)
}

// ParseCNF parses a DIMACS CNF stream and returns the corresponding formula.
// Comment lines start with 'c', the header is "p cnf <nbVars> <nbClauses>",
// each clause is a sequence of literals terminated by 0, possibly spanning
// several lines, and an optional '%' line ends the problem (SATLIB style).
func ParseCNF(f io.Reader) (*Formula, error) {
	scanner := bufio.NewScanner(f)
	nbVars := -1
	var clauses [][]int
	var clause []int
loop:
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "" || strings.HasPrefix(line, "c"):
			continue
		case strings.HasPrefix(line, "%"):
			break loop
		case strings.HasPrefix(line, "p"):
			fields := strings.Fields(line)
			if len(fields) != 4 || fields[1] != "cnf" {
				return nil, errors.Errorf("invalid header %q", line)
			}
			var err error
			if nbVars, err = strconv.Atoi(fields[2]); err != nil {
				return nil, errors.Wrapf(err, "invalid nb of vars in header %q", line)
			}
			if _, err = strconv.Atoi(fields[3]); err != nil {
				return nil, errors.Wrapf(err, "invalid nb of clauses in header %q", line)
			}
		default:
			for _, field := range strings.Fields(line) {
				val, err := strconv.Atoi(field)
				if err != nil {
					return nil, errors.Wrapf(err, "invalid literal %q", field)
				}
				if val == 0 {
					clauses = append(clauses, clause)
					clause = nil
				} else {
					clause = append(clause, val)
				}
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "could not read CNF stream")
	}
	if len(clause) != 0 {
		return nil, errors.Errorf("unterminated clause %v at end of input", clause)
	}
	if nbVars < 0 {
		return NewFormula(clauses)
	}
	return NewFormulaVars(clauses, nbVars)
}
