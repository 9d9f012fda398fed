// Package errors provides error handling conventions for the migration CLIs.
//
// It re-exports the constructors from github.com/cockroachdb/errors so every
// package wraps errors the same way, defines sentinel errors for common
// failure conditions, and provides [ExitError] for mapping failures to
// process exit codes.
//
// # Sentinel Errors
//
// Sentinel errors allow callers to check for specific conditions using [Is]:
//
//	if errors.Is(err, errors.ErrSourceNotFound) {
//	    // source directory missing
//	}
//
// # Exit Codes
//
//   - ExitSuccess (0): the migration completed
//   - ExitUser (1): any failure that stops the run
//
// # ExitError
//
// [ExitError] wraps an underlying error with an exit code and an optional
// suggestion that the CLI prints below the error message:
//
//	err := errors.NewUserError(errors.ErrSourceNotFound, "Pass the plugin directory as the first argument")
//	var exitErr *errors.ExitError
//	if errors.As(err, &exitErr) {
//	    os.Exit(exitErr.Code)
//	}
package errors
