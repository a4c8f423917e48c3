// Package zaphandler adapts the Handler interface to go.uber.org/zap,
// letting records flow into an existing zap pipeline on development
// hosts. The level mapping is direct (Error, Warning, Info, Debug);
// the execution banner is omitted because zap owns the output framing.
package zaphandler
