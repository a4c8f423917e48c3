// Package core defines the shared types used across the nanolog library.
//
// It provides the Level type for severity filtering and the Record type
// that represents a single log emission: a sequence number, a bounded
// tag, and a bounded pre-rendered message.
//
// Records are pooled via sync.Pool to keep the emission path
// allocation-free. Callers get a Record with GetRecord and must return
// it with PutRecord once the handler has consumed it.
//
// All string bounds (MaxTagLen, DefaultMaxMessage, MaxLineLen) are
// enforced by silent truncation through Truncate, which never splits a
// UTF-8 sequence. A message can be cut short but never overflows its
// buffer and never turns into invalid text.
package core
