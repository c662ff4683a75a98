// Package log provides the logging abstraction used by the watermark engine.
//
// Components receive a Logger instead of writing to a process-wide logger,
// so callers decide where diagnostics go and tests can capture them.
//
// Use the zerolog adapter in binaries:
//
//	logger := log.NewZerologAdapterWithLogger(zerolog.New(os.Stderr))
//
// Or discard everything:
//
//	logger := log.NewNoopLogger()
package log
