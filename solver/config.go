package solver

import "math/rand"

// A Config selects the strategies of a Solver. The zero value is a valid
// configuration: default heuristic, naive propagation, no pure literal
// elimination, no tracing.
type Config struct {
	// UsePureLiteral runs pure literal elimination before the search.
	UsePureLiteral bool
	// Heuristic is the branching heuristic name; empty means "default".
	Heuristic string
	// K tunes the moms/rmoms score; it must be nonnegative.
	K int
	// TWL selects the two-watched-literals propagation engine instead of the
	// naive one.
	TWL bool
	// LogSteps records a DecisionStep for every transition.
	LogSteps bool
	// Trace receives the decision steps when LogSteps is set. When nil, an
	// in-memory Recorder is used and exposed through Solver.Trace.
	Trace TraceSink
	// Seed seeds the random source driving rdlcs/rdlis/rmoms polarity
	// choices, so that runs are reproducible.
	Seed int64
	// Rand overrides Seed with an explicit random source.
	Rand *rand.Rand
	// MaxSteps aborts the search after that many decide/propagate rounds.
	// 0 means no limit. An aborted solver stays in the Indet status.
	MaxSteps int
}

func (cfg Config) rand() *rand.Rand {
	if cfg.Rand != nil {
		return cfg.Rand
	}
	return rand.New(rand.NewSource(cfg.Seed))
}
