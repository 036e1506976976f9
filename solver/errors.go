package solver

import "fmt"

// A FormatError reports a malformed formula: a null literal inside a clause,
// or a variable identifier outside the declared range.
// An empty clause is not a FormatError: it is accepted and makes the formula
// trivially unsatisfiable.
type FormatError struct {
	Clause int // Index of the offending clause, or -1 when unknown.
	msg    string
}

func (e *FormatError) Error() string {
	if e.Clause < 0 {
		return fmt.Sprintf("invalid formula: %s", e.msg)
	}
	return fmt.Sprintf("invalid clause %d: %s", e.Clause, e.msg)
}

func formatErrorf(clause int, format string, args ...interface{}) *FormatError {
	return &FormatError{Clause: clause, msg: fmt.Sprintf(format, args...)}
}

// A ConfigError reports an invalid solver configuration, such as an unknown
// heuristic name or a negative k value.
type ConfigError struct {
	msg string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid configuration: %s", e.msg)
}

func configErrorf(format string, args ...interface{}) *ConfigError {
	return &ConfigError{msg: fmt.Sprintf(format, args...)}
}
