package plan

import "github.com/rs/zerolog"

// Option configures a Machine.
type Option func(*Machine)

// WithLogger sets the logger used for state transitions.
func WithLogger(logger zerolog.Logger) Option {
	return func(m *Machine) {
		m.logger = logger
	}
}

// WithKeepStaleSections keeps objectives, sequence and rubric when the
// overview is regenerated, even though they were produced for the previous
// request. By default they are cleared.
func WithKeepStaleSections() Option {
	return func(m *Machine) {
		m.keepStale = true
	}
}

// WithSessionID overrides the generated session ID stamped on LLM calls.
func WithSessionID(id string) Option {
	return func(m *Machine) {
		m.sessionID = id
	}
}
