// Package errors provides structured diagnostics for the two error classes
// the engine is allowed to handle locally: contract violations and
// structural anomalies (spec §7). Everything else — a component body, an
// effect, a cleanup, or a reducer throwing — is a user code fault and
// propagates to the caller untouched; this package is never used to wrap
// those.
//
// # Usage
//
//	err := errors.New("E101").WithComponent("Counter")
//	logger.Warn(err.Message, "code", err.Code, "detail", err.Detail)
//	fmt.Println(err.Format())
package errors
