// Package memoryhandler retains formatted log lines in a fixed-size
// ring buffer instead of writing them anywhere.
//
// The ring holds whole lines, oldest evicted first, and can be read
// back at any time with Lines. It backs the memory output backend on
// headless targets and doubles as a capture sink in tests.
package memoryhandler
