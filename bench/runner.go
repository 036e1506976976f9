package bench

import (
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/satbench/dpll/solver"
)

// A Result is the outcome of solving one file with one configuration.
type Result struct {
	File         string  `json:"file"`
	Heuristic    string  `json:"heuristic"`
	Engine       string  `json:"engine"`
	Verdict      string  `json:"verdict"`
	Decisions    int     `json:"decisions"`
	Propagations int     `json:"propagations"`
	Conflicts    int     `json:"conflicts"`
	Backtracks   int     `json:"backtracks"`
	PureLiterals int     `json:"pure_literals"`
	Millis       float64 `json:"millis"`
}

// A Runner executes a sweep described by a Config.
type Runner struct {
	cfg Config
	log *logrus.Logger
}

// NewRunner makes a runner for the given sweep. A nil logger disables
// progress logging.
func NewRunner(cfg Config, log *logrus.Logger) *Runner {
	if log == nil {
		log = logrus.New()
		log.SetOutput(os.Stderr)
		log.SetLevel(logrus.PanicLevel)
	}
	return &Runner{cfg: cfg, log: log}
}

// Run solves every .cnf file of the configured directory with every
// heuristic/engine pair and returns the assembled report.
// A file that fails to parse aborts the whole sweep.
func (r *Runner) Run() (*Report, error) {
	files, err := r.listFiles()
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, errors.Errorf("no .cnf file in %q", r.cfg.Dir)
	}
	var results []Result
	for _, path := range files {
		f, err := r.parse(path)
		if err != nil {
			return nil, err
		}
		for _, heur := range r.cfg.Heuristics {
			for _, eng := range r.cfg.Engines {
				res, err := r.runOne(f, filepath.Base(path), heur, eng)
				if err != nil {
					return nil, err
				}
				results = append(results, res)
			}
		}
	}
	return NewReport(r.cfg, results), nil
}

func (r *Runner) listFiles() ([]string, error) {
	entries, err := os.ReadDir(r.cfg.Dir)
	if err != nil {
		return nil, errors.Wrapf(err, "could not list %q", r.cfg.Dir)
	}
	var files []string
	for _, e := range entries {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".cnf" {
			files = append(files, filepath.Join(r.cfg.Dir, e.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}

func (r *Runner) parse(path string) (*solver.Formula, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open %q", path)
	}
	defer f.Close()
	formula, err := solver.ParseCNF(f)
	if err != nil {
		return nil, errors.Wrapf(err, "could not parse %q", path)
	}
	return formula, nil
}

func (r *Runner) runOne(f *solver.Formula, file, heur, eng string) (Result, error) {
	s, err := solver.New(f, solver.Config{
		Heuristic:      heur,
		K:              r.cfg.K,
		TWL:            eng == EngineTWL,
		UsePureLiteral: r.cfg.PureLiteral,
		Rand:           rand.New(rand.NewSource(r.cfg.Seed)),
		MaxSteps:       r.cfg.MaxSteps,
	})
	if err != nil {
		return Result{}, err
	}
	start := time.Now()
	s.Solve()
	elapsed := time.Since(start)
	res := Result{
		File:         file,
		Heuristic:    heur,
		Engine:       eng,
		Verdict:      s.Status().String(),
		Decisions:    s.Stats.NbDecisions,
		Propagations: s.Stats.NbPropagations,
		Conflicts:    s.Stats.NbConflicts,
		Backtracks:   s.Stats.NbBacktracks,
		PureLiterals: s.Stats.NbPureLiterals,
		Millis:       float64(elapsed.Microseconds()) / 1000,
	}
	r.log.WithFields(logrus.Fields{
		"file":      file,
		"heuristic": heur,
		"engine":    eng,
		"verdict":   res.Verdict,
		"decisions": res.Decisions,
		"millis":    res.Millis,
	}).Info("solved")
	return res, nil
}
