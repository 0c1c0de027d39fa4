// Package errors provides structured error types for the xrm library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes rich context: the offending resource path, a byte offset
// for tokenizer failures, and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseParse, errors.KindInvalidPath).
//		Input("Xmh.toc*").
//		Position(7).
//		Detail("path ends in a binding").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.NoDatabase()
//	err := errors.InvalidName("foo..bar.", cause)
//
// All errors implement the standard error interface and support errors.Is/As.
// Matching with Is compares Phase and Kind, so sentinel-style checks work:
//
//	if stderrors.Is(err, errors.NoMatch("")) {
//		// nothing in the database matched
//	}
package errors
