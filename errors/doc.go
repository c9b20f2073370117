// Package errors provides structured error types for the emulator.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes rich context: object path, title identifier, and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseParse, errors.KindInvalidData).
//		Path("param.sfo", "TITLE").
//		Detail("key table offset past end of file").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.NotFound(errors.PhaseIO, "title", "PCSG00000")
//	err := errors.ParseFailed("param.sfo", cause)
//
// All errors implement the standard error interface and support errors.Is/As.
//
// The import dispatcher deliberately uses none of these: dispatch never
// raises across its public entry point and degrades to a logged no-op
// instead. This package serves the loading, parsing, IO and configuration
// surfaces around the core.
package errors
