package wmap

import (
	"io"
	"log/slog"
)

// DefaultMaxSupportCount is the enumeration bound used by callers that have
// no better estimate of a reasonable support size.
const DefaultMaxSupportCount = 1_000_000

// Option configures a Family.
type Option func(*options)

type options struct {
	logger        *slog.Logger
	distinctCheck bool
}

func defaultOptions() options {
	return options{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

// WithLogger routes the family's debug records to l. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithDistinctCheck makes FromDistinctWeights and FromDistinctValues verify
// their precondition and panic with ErrDuplicateSequence on a repeated
// sequence. Meant for tests and debugging.
func WithDistinctCheck() Option {
	return func(o *options) { o.distinctCheck = true }
}
