// Package bench sweeps solver configurations over a directory of DIMACS
// files and aggregates the results into a report.
package bench

import (
	"os"

	"github.com/ghodss/yaml"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"

	"github.com/satbench/dpll/solver"
)

// Propagation engine names accepted in a Config.
const (
	EngineNaive = "naive"
	EngineTWL   = "twl"
)

// A Config describes a benchmark sweep: which files to solve and the matrix
// of heuristics and engines to solve them with.
type Config struct {
	// Dir is the directory scanned for .cnf files.
	Dir string `mapstructure:"dir" json:"dir"`
	// Heuristics lists the branching heuristics to sweep; empty means all.
	Heuristics []string `mapstructure:"heuristics" json:"heuristics"`
	// K tunes the moms/rmoms score.
	K int `mapstructure:"k" json:"k"`
	// Engines lists the propagation engines to sweep; empty means both.
	Engines []string `mapstructure:"engines" json:"engines"`
	// PureLiteral enables pure literal elimination for every run.
	PureLiteral bool `mapstructure:"pure_literal" json:"pure_literal"`
	// Seed drives the randomized heuristics, for reproducible sweeps.
	Seed int64 `mapstructure:"seed" json:"seed"`
	// MaxSteps bounds each run; 0 means no limit.
	MaxSteps int `mapstructure:"max_steps" json:"max_steps"`
}

var allHeuristics = []string{
	solver.HeuristicDefault, solver.HeuristicDLCS, solver.HeuristicDLIS,
	solver.HeuristicRDLCS, solver.HeuristicRDLIS,
	solver.HeuristicMOMS, solver.HeuristicRMOMS,
}

// LoadConfig reads a YAML sweep description, applies the defaults and
// validates the matrix.
func LoadConfig(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "could not read bench config")
	}
	return ParseConfig(raw)
}

// ParseConfig parses a YAML sweep description. Unknown keys are rejected, so
// a typo in a field name fails loudly instead of silently using a default.
func ParseConfig(raw []byte) (*Config, error) {
	var fields map[string]interface{}
	if err := yaml.Unmarshal(raw, &fields); err != nil {
		return nil, errors.Wrap(err, "invalid bench config")
	}
	var cfg Config
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &cfg,
		ErrorUnused: true,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(fields); err != nil {
		return nil, errors.Wrap(err, "invalid bench config")
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (cfg *Config) applyDefaults() {
	if cfg.Dir == "" {
		cfg.Dir = "."
	}
	if len(cfg.Heuristics) == 0 {
		cfg.Heuristics = append(cfg.Heuristics, allHeuristics...)
	}
	if len(cfg.Engines) == 0 {
		cfg.Engines = []string{EngineNaive, EngineTWL}
	}
}

func (cfg *Config) validate() error {
	for _, name := range cfg.Heuristics {
		if _, err := solver.NewHeuristic(name, cfg.K, nil); err != nil {
			return err
		}
	}
	for _, name := range cfg.Engines {
		if name != EngineNaive && name != EngineTWL {
			return errors.Errorf("unknown engine %q", name)
		}
	}
	return nil
}
