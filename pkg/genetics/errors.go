package genetics

import "fmt"

// ConfigError reports a bad catalog definition. It is fatal at startup
// and never recovered from.
type ConfigError struct {
	Locus string
	Msg   string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("catalog config error (locus %s): %s", e.Locus, e.Msg)
}

// ParseError reports a malformed genotype string. The offending segment
// is kept so callers can point the user at it.
type ParseError struct {
	Segment string
	Msg     string
}

func (e *ParseError) Error() string {
	if e.Segment == "" {
		return fmt.Sprintf("genotype parse error: %s", e.Msg)
	}
	return fmt.Sprintf("genotype parse error at %q: %s", e.Segment, e.Msg)
}

// ValidationError reports a well-formed but semantically invalid
// genotype, e.g. an allele outside its locus's set.
type ValidationError struct {
	Locus string
	Msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("genotype validation error (locus %s): %s", e.Locus, e.Msg)
}
