/*
Package logger provides leveled logging, defining the required behavior in [Logger]
and an implementation of it with [WebLogger].

A [WebLogger] message is composed of a timestamp, log level, call site, the message,
and an optional JSON-encoded [*LogContext]:

	2024/05/02 15:55:21 [WARN] middleware/signed_query.go:31 'bad signature' log_context: {"error":"bad signature"}

When the SENTRY_DSN environment variable is set, [New] wraps the WebLogger so
warnings and errors also ship to Sentry.
*/
package logger
