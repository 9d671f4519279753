// Package logging is the structured logger of the lvcheck tool.
//
// It keeps the rest of the code independent of zap: callers log through the
// Log interface with typed Field helpers, and only this package converts them
// to zap fields. The kernel packages never log.
package logging
