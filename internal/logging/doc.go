// Package logging provides structured logging for readme-agent.
//
// This package wraps a global zap logger. It is silent by default so the
// terminal UI is never disturbed; set README_AGENT_LOG_LEVEL (or pass
// --log-level) to "debug", "info", "warn" or "error" to enable it.
//
// # Output
//
// The interactive UI owns stdout, so it logs to a file:
//
//	err := logging.InitializeWithOptions(logging.Options{
//	    Level:      "debug",
//	    OutputPath: "/home/me/.config/readme-agent/readme-agent.log",
//	})
//	defer logging.Sync()
//
// Non-interactive commands log to stderr.
//
// # Domain helpers
//
//	logging.LogSelection("readme", "api")
//	logging.LogGenerate("completed", url, run, elapsed, nil)
//	logging.LogClipboard("api", len(text), err)
package logging
