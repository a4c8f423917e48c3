package core

// Level represents the severity level of a log record. Levels are
// ordered by increasing verbosity: a record passes the level gate only
// when its level is at or below the configured minimum level.
type Level int8

const (
	// NoLevel carries no severity and is never emitted
	NoLevel Level = iota
	// ErrorLevel for error messages
	ErrorLevel
	// WarningLevel for warning messages
	WarningLevel
	// InfoLevel for general informational messages
	InfoLevel
	// DebugLevel for detailed debugging information
	DebugLevel
)

// String returns the string representation of the level
func (l Level) String() string {
	switch l {
	case NoLevel:
		return "NONE"
	case ErrorLevel:
		return "ERROR"
	case WarningLevel:
		return "WARNING"
	case InfoLevel:
		return "INFO"
	case DebugLevel:
		return "DEBUG"
	default:
		return "UNKNOWN"
	}
}

// Letter returns the single-character marker used in formatted lines.
// Levels without a marker map to "_".
func (l Level) Letter() string {
	switch l {
	case ErrorLevel:
		return "E"
	case WarningLevel:
		return "W"
	case InfoLevel:
		return "I"
	case DebugLevel:
		return "D"
	default:
		return "_"
	}
}
