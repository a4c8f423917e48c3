// Package result provides a lightweight typed-outcome convention for
// code that reports failures without exceptions: a Code, a component
// tag, and a bounded description travel together as one small value.
//
// Status implements error, so it plugs into ordinary Go error handling,
// and its string bounds match the logging side — a Status can be logged
// verbatim without ever overflowing a record.
package result
