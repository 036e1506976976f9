package bench

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/ghodss/yaml"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const satCNF = `c chain of implications
p cnf 3 3
1 0
-1 2 0
-2 3 0
`

const unsatCNF = `p cnf 2 4
1 2 0
-1 2 0
1 -2 0
-1 -2 0
`

func writeCNFDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sat.cnf"), []byte(satCNF), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "unsat.cnf"), []byte(unsatCNF), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("skip me"), 0644))
	return dir
}

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := ParseConfig([]byte("dir: problems\n"))
	require.NoError(t, err)
	assert.Equal(t, "problems", cfg.Dir)
	assert.Equal(t, allHeuristics, cfg.Heuristics)
	assert.Equal(t, []string{EngineNaive, EngineTWL}, cfg.Engines)
}

func TestParseConfigRejectsUnknownKey(t *testing.T) {
	_, err := ParseConfig([]byte("dir: problems\nheuristic: dlcs\n"))
	assert.Error(t, err)
}

func TestParseConfigRejectsBadMatrix(t *testing.T) {
	_, err := ParseConfig([]byte("heuristics: [chaff]\n"))
	assert.Error(t, err)
	_, err = ParseConfig([]byte("engines: [lazy]\n"))
	assert.Error(t, err)
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bench.yaml")
	content := "dir: problems\nheuristics: [dlcs, moms]\nk: 2\nengines: [twl]\npure_literal: true\nseed: 42\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"dlcs", "moms"}, cfg.Heuristics)
	assert.Equal(t, 2, cfg.K)
	assert.Equal(t, []string{EngineTWL}, cfg.Engines)
	assert.True(t, cfg.PureLiteral)
	assert.EqualValues(t, 42, cfg.Seed)
}

func TestRunnerSweepsTheMatrix(t *testing.T) {
	cfg := Config{
		Dir:        writeCNFDir(t),
		Heuristics: []string{"default", "dlcs"},
		Engines:    []string{EngineNaive, EngineTWL},
	}
	rep, err := NewRunner(cfg, nil).Run()
	require.NoError(t, err)
	// 2 files x 2 heuristics x 2 engines.
	require.Len(t, rep.Results, 8)

	for _, res := range rep.Results {
		switch res.File {
		case "sat.cnf":
			assert.Equal(t, "SAT", res.Verdict)
			assert.Equal(t, 3, res.Propagations)
		case "unsat.cnf":
			assert.Equal(t, "UNSAT", res.Verdict)
		default:
			t.Fatalf("unexpected file %q", res.File)
		}
	}
	// Both engines agree on every file/heuristic pair.
	byRun := lo.GroupBy(rep.Results, func(r Result) string { return r.File + "/" + r.Heuristic })
	for run, results := range byRun {
		require.Len(t, results, 2, run)
		assert.Equal(t, results[0].Verdict, results[1].Verdict, run)
	}
}

func TestRunnerFailsOnMissingDir(t *testing.T) {
	_, err := NewRunner(Config{Dir: "does-not-exist"}, nil).Run()
	assert.Error(t, err)
}

func TestRunnerFailsOnEmptyDir(t *testing.T) {
	_, err := NewRunner(Config{Dir: t.TempDir()}, nil).Run()
	assert.Error(t, err)
}

func TestReportSummaries(t *testing.T) {
	results := []Result{
		{File: "a.cnf", Heuristic: "dlcs", Engine: EngineNaive, Verdict: "SAT", Decisions: 4, Millis: 1.5},
		{File: "a.cnf", Heuristic: "dlcs", Engine: EngineTWL, Verdict: "SAT", Decisions: 4, Millis: 0.5},
		{File: "b.cnf", Heuristic: "dlcs", Engine: EngineNaive, Verdict: "UNSAT", Decisions: 2, Backtracks: 3},
		{File: "a.cnf", Heuristic: "moms", Engine: EngineNaive, Verdict: "INDETERMINATE"},
	}
	rep := NewReport(Config{}, results)
	require.Len(t, rep.Summaries, 2)

	dlcs := rep.Summaries[0]
	assert.Equal(t, "dlcs", dlcs.Heuristic)
	assert.Equal(t, 3, dlcs.Runs)
	assert.Equal(t, 2, dlcs.Sat)
	assert.Equal(t, 1, dlcs.Unsat)
	assert.Equal(t, 0, dlcs.Aborted)
	assert.Equal(t, 10, dlcs.Decisions)
	assert.Equal(t, 3, dlcs.Backtracks)
	assert.InDelta(t, 10.0/3, dlcs.MeanDecisions, 1e-9)
	assert.InDelta(t, 2.0, dlcs.TotalMillis, 1e-9)

	moms := rep.Summaries[1]
	assert.Equal(t, "moms", moms.Heuristic)
	assert.Equal(t, 1, moms.Aborted)
}

func TestReportJSONRoundTrip(t *testing.T) {
	rep := NewReport(Config{Dir: "x"}, []Result{
		{File: "a.cnf", Heuristic: "default", Engine: EngineNaive, Verdict: "SAT"},
	})
	var buf bytes.Buffer
	require.NoError(t, rep.WriteJSON(&buf))

	var decoded Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, rep.Results, decoded.Results)
	assert.Equal(t, rep.Summaries, decoded.Summaries)
}

func TestReportYAMLUsesJSONNames(t *testing.T) {
	rep := NewReport(Config{}, []Result{
		{File: "a.cnf", Heuristic: "default", Engine: EngineNaive, Verdict: "SAT", PureLiterals: 2},
	})
	var buf bytes.Buffer
	require.NoError(t, rep.WriteYAML(&buf))
	assert.Contains(t, buf.String(), "pure_literals: 2")

	var decoded Report
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, rep.Results, decoded.Results)
}
