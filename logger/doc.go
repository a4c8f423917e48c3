// Package logger is the public API of nanolog. Most users only need to
// import this package.
//
// A Logger is immutable after construction: the configuration and the
// sink are fixed by New, and the only mutable state is a pair of atomic
// counters. Emission is synchronous — a call returns once the line has
// been written to the sink — so output order equals program order and
// the sequence number in each line is its position in the stream.
//
// The package initializes a default Logger (console, all levels,
// timestamps on) in init(). The package-level functions Errorf,
// Warningf, Infof, and Debugf delegate to it, so simple programs can
// log without any setup:
//
//	logger.Infof("MAIN", "booted in %d ms", elapsed)
//
// For custom configuration, start from DefaultConfig:
//
//	cfg := logger.DefaultConfig()
//	cfg.Backend = logger.File
//	cfg.MinLevel = logger.WarningLevel
//	log, err := logger.New(cfg)
//
// Logging never fails the caller: the emission entry points return
// nothing, formatting faults truncate silently, and sink I/O errors are
// absorbed after being counted. A disabled level costs one atomic add
// and returns before any formatting work.
package logger
