package bench

import (
	"encoding/json"
	"io"
	"sort"
	"time"

	"github.com/ghodss/yaml"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// A Summary aggregates the results of one heuristic across all files and
// engines of a sweep.
type Summary struct {
	Heuristic     string  `json:"heuristic"`
	Runs          int     `json:"runs"`
	Sat           int     `json:"sat"`
	Unsat         int     `json:"unsat"`
	Aborted       int     `json:"aborted"`
	Decisions     int     `json:"decisions"`
	Backtracks    int     `json:"backtracks"`
	MeanDecisions float64 `json:"mean_decisions"`
	TotalMillis   float64 `json:"total_millis"`
}

// A Report is the serializable outcome of a whole sweep.
type Report struct {
	CreatedAt time.Time `json:"created_at"`
	Config    Config    `json:"config"`
	Results   []Result  `json:"results"`
	Summaries []Summary `json:"summaries"`
}

// NewReport assembles the report of a sweep, summarizing per heuristic.
func NewReport(cfg Config, results []Result) *Report {
	byHeur := lo.GroupBy(results, func(r Result) string { return r.Heuristic })
	summaries := lo.MapToSlice(byHeur, func(heur string, runs []Result) Summary {
		decisions := lo.SumBy(runs, func(r Result) int { return r.Decisions })
		return Summary{
			Heuristic:     heur,
			Runs:          len(runs),
			Sat:           lo.CountBy(runs, func(r Result) bool { return r.Verdict == "SAT" }),
			Unsat:         lo.CountBy(runs, func(r Result) bool { return r.Verdict == "UNSAT" }),
			Aborted:       lo.CountBy(runs, func(r Result) bool { return r.Verdict == "INDETERMINATE" }),
			Decisions:     decisions,
			Backtracks:    lo.SumBy(runs, func(r Result) int { return r.Backtracks }),
			MeanDecisions: float64(decisions) / float64(len(runs)),
			TotalMillis:   lo.SumBy(runs, func(r Result) float64 { return r.Millis }),
		}
	})
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Heuristic < summaries[j].Heuristic
	})
	return &Report{
		CreatedAt: time.Now().UTC(),
		Config:    cfg,
		Results:   results,
		Summaries: summaries,
	}
}

// WriteJSON writes the report as indented JSON.
func (rep *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(rep), "could not write report")
}

// WriteYAML writes the report as YAML, following the JSON field names.
func (rep *Report) WriteYAML(w io.Writer) error {
	raw, err := yaml.Marshal(rep)
	if err != nil {
		return errors.Wrap(err, "could not write report")
	}
	_, err = w.Write(raw)
	return errors.Wrap(err, "could not write report")
}
