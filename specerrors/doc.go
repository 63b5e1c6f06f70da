// Package specerrors provides structured error types for the apispect library.
//
// Import path: github.com/apispect/apispect/specerrors
//
// This package enables programmatic error handling via [errors.Is] and [errors.As],
// allowing callers to distinguish between different categories of errors and implement
// appropriate recovery strategies.
//
// # Error Types
//
// The package provides four core error types:
//
//   - [NotFoundError]: Lookup failures for paths and methods in a descriptor
//   - [ParseError]: YAML/JSON parsing failures and unreadable sources
//   - [ResourceLimitError]: Resource exhaustion (file size, nesting depth)
//   - [ConfigError]: Invalid configuration or input options
//
// # Sentinel Errors
//
// Each error type has a corresponding sentinel error for use with errors.Is():
//
//   - [ErrNotFound]: Matches any [NotFoundError]
//   - [ErrParse]: Matches any [ParseError]
//   - [ErrResourceLimit]: Matches any [ResourceLimitError]
//   - [ErrConfig]: Matches any [ConfigError]
//
// # Usage Examples
//
// Check error category with errors.Is():
//
//	params, err := resolver.Parameters(doc, "/users/{id}", "get")
//	if errors.Is(err, specerrors.ErrNotFound) {
//	    // Path or method does not exist in the descriptor
//	}
//
// Extract error details with errors.As():
//
//	var nfErr *specerrors.NotFoundError
//	if errors.As(err, &nfErr) {
//	    if nfErr.Method != "" {
//	        fmt.Printf("no %s operation on %s\n", nfErr.Method, nfErr.Path)
//	    } else {
//	        fmt.Printf("no such path: %s\n", nfErr.Path)
//	    }
//	}
//
// # Error Chaining
//
// Error types with a Cause field support error chaining via Unwrap().
// This allows finding root causes through the standard error chain:
//
//	var parseErr *specerrors.ParseError
//	if errors.As(err, &parseErr) {
//	    if errors.Is(parseErr.Cause, os.ErrNotExist) {
//	        // The descriptor file doesn't exist
//	    }
//	}
package specerrors
