package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/satbench/dpll/bench"
	"github.com/satbench/dpll/solver"
)

// heuristicFlag is a pflag.Value rejecting unknown heuristic names at parse
// time instead of at solver construction.
type heuristicFlag string

var _ pflag.Value = (*heuristicFlag)(nil)

func (h *heuristicFlag) String() string { return string(*h) }
func (h *heuristicFlag) Type() string   { return "heuristic" }

func (h *heuristicFlag) Set(name string) error {
	if _, err := solver.NewHeuristic(name, 0, nil); err != nil {
		return err
	}
	*h = heuristicFlag(name)
	return nil
}

var log = logrus.New()

func main() {
	root := &cobra.Command{
		Use:          "dpll",
		Short:        "A DPLL SAT solver with pluggable branching heuristics",
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolP("verbose", "v", false, "sets verbose mode on")
	root.AddCommand(solveCmd(), benchCmd())
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func solveCmd() *cobra.Command {
	var (
		heuristic = heuristicFlag(solver.HeuristicDefault)
		k         int
		twl       bool
		pure      bool
		trace     bool
		seed      int64
		maxSteps  int
	)
	cmd := &cobra.Command{
		Use:   "solve file.cnf",
		Short: "Solves a DIMACS CNF problem",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLog(cmd)
			path := args[0]
			f, err := os.Open(path)
			if err != nil {
				return err
			}
			defer f.Close()
			formula, err := solver.ParseCNF(f)
			if err != nil {
				return err
			}
			log.WithFields(logrus.Fields{
				"file":    path,
				"vars":    formula.NbVars(),
				"clauses": formula.NbClauses(),
			}).Info("solving")
			var rec solver.Recorder
			cfg := solver.Config{
				Heuristic:      string(heuristic),
				K:              k,
				TWL:            twl,
				UsePureLiteral: pure,
				Seed:           seed,
				MaxSteps:       maxSteps,
			}
			if trace {
				cfg.LogSteps = true
				cfg.Trace = &rec
			}
			s, err := solver.New(formula, cfg)
			if err != nil {
				return err
			}
			s.Solve()
			s.OutputModel(cmd.OutOrStdout())
			log.WithFields(logrus.Fields{
				"decisions":     s.Stats.NbDecisions,
				"propagations":  s.Stats.NbPropagations,
				"conflicts":     s.Stats.NbConflicts,
				"backtracks":    s.Stats.NbBacktracks,
				"pure_literals": s.Stats.NbPureLiterals,
			}).Info("done")
			if trace {
				return rec.WriteTable(cmd.OutOrStdout())
			}
			return nil
		},
	}
	cmd.Flags().Var(&heuristic, "heuristic", "branching heuristic (default, dlcs, dlis, rdlcs, rdlis, moms, rmoms)")
	cmd.Flags().IntVar(&k, "k", 0, "k parameter of the moms and rmoms heuristics")
	cmd.Flags().BoolVar(&twl, "twl", false, "uses the two-watched-literals propagation engine")
	cmd.Flags().BoolVar(&pure, "pure", false, "eliminates pure literals before the search")
	cmd.Flags().BoolVar(&trace, "trace", false, "prints the decision table after solving")
	cmd.Flags().Int64Var(&seed, "seed", 0, "seed of the randomized heuristics")
	cmd.Flags().IntVar(&maxSteps, "max-steps", 0, "aborts the search after that many steps (0: no limit)")
	return cmd
}

func benchCmd() *cobra.Command {
	var (
		cfgPath string
		out     string
		format  string
	)
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Sweeps heuristic/engine configurations over a directory of CNF files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLog(cmd)
			cfg, err := bench.LoadConfig(cfgPath)
			if err != nil {
				return err
			}
			rep, err := bench.NewRunner(*cfg, log).Run()
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if out != "" {
				file, err := os.Create(out)
				if err != nil {
					return err
				}
				defer file.Close()
				w = file
			}
			switch format {
			case "json":
				return rep.WriteJSON(w)
			case "yaml":
				return rep.WriteYAML(w)
			default:
				return fmt.Errorf("unknown format %q", format)
			}
		},
	}
	cmd.Flags().StringVar(&cfgPath, "config", "bench.yaml", "sweep description file")
	cmd.Flags().StringVar(&out, "out", "", "report file (default: stdout)")
	cmd.Flags().StringVar(&format, "format", "json", "report format (json or yaml)")
	return cmd
}

func setupLog(cmd *cobra.Command) {
	log.SetOutput(cmd.ErrOrStderr())
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.WarnLevel)
	}
}
