// Package errors provides foundational, type-safe error primitives used across docweaver.
//
// This package contains classified error types and helpers for robust error handling,
// including a fluent builder API for constructing ClassifiedError values with context.
//
// Key features:
//   - ErrorCategory: Broad error classification (resolution, config, filesystem, build)
//   - ErrorSeverity: Impact level (fatal, error, warning, info)
//   - ClassifiedError: Structured error with category, severity, and context
//   - ErrorBuilder: Fluent API for creating classified errors
//   - CLI adapter for error presentation and exit codes
//
// Every classified error aborts the build; nothing is retried.
//
// Example usage:
//
//	err := errors.ResolutionError("unknown component").
//		WithContext("component", name).
//		WithContext("page", pagePath).
//		Build()
package errors
