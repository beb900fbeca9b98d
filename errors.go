package vajra

import "fmt"

// DataErrorKind classifies why an input series was rejected.
type DataErrorKind int

const (
	EmptySeries DataErrorKind = iota
	InsufficientData
	UnorderedSeries
)

func (k DataErrorKind) String() string {
	switch k {
	case EmptySeries:
		return "empty series"
	case InsufficientData:
		return "insufficient data"
	case UnorderedSeries:
		return "unordered series"
	default:
		return "unknown"
	}
}

// DataError rejects a malformed or too-short price series before any
// simulation runs. A rejected series never produces partial metrics.
type DataError struct {
	Kind     DataErrorKind
	Len      int
	Required int
}

func (e *DataError) Error() string {
	if e.Kind == InsufficientData {
		return fmt.Sprintf("data error: %v (%v bars, need %v)", e.Kind, e.Len, e.Required)
	}
	return fmt.Sprintf("data error: %v", e.Kind)
}

// ConfigError rejects an invalid parameter combination before any simulation
// runs.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error: %v: %v", e.Field, e.Reason)
}
