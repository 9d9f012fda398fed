// Package logging provides structured logging for the migration CLIs using slog.
//
// Progress lines ("converted agent", "skipped directory") are emitted at Info
// level so a plain run reads like a transcript of what was migrated. Text
// output is colorized when stderr is a terminal; JSON output is available
// for scripting. Attribute values that look like secrets (tokens in MCP
// environment maps, for example) are masked by the text handler.
//
// # Basic Usage
//
//	logger := logging.New(logging.Config{
//		Level:  slog.LevelInfo,
//		Format: logging.FormatText,
//		Output: os.Stderr,
//	})
//	logger.Info("converted agent", "name", "reviewer")
//
// # Context
//
// Commands store the configured logger on the context with [NewContext];
// library code retrieves it with [FromContext], which falls back to
// [slog.Default].
//
// # Testing
//
// For tests, use [ForTest] to capture log output via the testing framework:
//
//	func TestSomething(t *testing.T) {
//		logger := logging.ForTest(t)
//	}
package logging
