package logger

import "log"

// An OptFn is a functional option configuring a WebLogger when constructing a new one.
type OptFn func(*WebLogger)

// WithEnv sets the environment the WebLogger is operating in.
func WithEnv(env string) func(*WebLogger) {
	return func(l *WebLogger) {
		l.env = env
	}
}

// WithLevel sets the log level the WebLogger uses.
func WithLevel(level LogLevel) func(*WebLogger) {
	return func(l *WebLogger) {
		l.ll = level
	}
}

// WithLogger sets the log.Logger the WebLogger writes through.
func WithLogger(log *log.Logger) func(*WebLogger) {
	return func(l *WebLogger) {
		l.l = log
	}
}
