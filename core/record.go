package core

import (
	"sync"
	"time"
	"unicode/utf8"
)

const (
	// MaxTagLen is the maximum tag length in bytes. Longer tags are
	// truncated silently.
	MaxTagLen = 15

	// DefaultMaxMessage is the default bound for the rendered user
	// message in bytes.
	DefaultMaxMessage = 120

	// MaxLineLen is the bound for a fully composed output line,
	// including sequence number, level marker, tag, timestamp, color
	// escapes and trailing newline.
	MaxLineLen = 512
)

// Record represents a single log emission. Records are created per
// call, handed to the handler, and never stored beyond the call.
type Record struct {
	// Seq is the position of this record in the logger's emission
	// sequence, starting at 1. It only advances for records that
	// passed the level gate.
	Seq     uint64
	Time    time.Time
	Level   Level
	Tag     string
	Message string
}

// First reports whether this is the first record of the execution.
// The dispatching sink prepends the execution banner exactly when
// First returns true.
func (r *Record) First() bool {
	return r.Seq == 1
}

// recordPool is a pool of Record objects to reduce allocations
var recordPool = sync.Pool{
	New: func() interface{} {
		return &Record{}
	},
}

// GetRecord retrieves a Record from the pool
func GetRecord() *Record {
	return recordPool.Get().(*Record)
}

// PutRecord returns a Record to the pool
func PutRecord(r *Record) {
	if r == nil {
		return
	}
	*r = Record{}
	recordPool.Put(r)
}

// Truncate bounds s to at most max bytes. The cut never splits a UTF-8
// sequence, so the result is always valid text. Truncation is silent;
// oversized input is a formatting fault, not an error.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
