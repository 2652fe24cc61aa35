// Package holdlog bridges hold lifecycle events into structured logging via
// github.com/charmbracelet/log.
//
// The core library stays silent by default; attach an observer from this
// package when you want every ownership transfer on a log stream:
//
//	logger := holdlog.NewLogger(os.Stderr)
//	v := hold.New(15, hold.WithObserver(holdlog.NewObserver(logger)))
package holdlog

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/okarel/hold/hold"
)

// Prefix is the logger prefix used by NewLogger.
const Prefix = "hold"

// NewLogger returns a logger configured the way the rest of the project
// expects: prefix set, no timestamps.
func NewLogger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix:          Prefix,
		ReportTimestamp: false,
	})
}

// observer forwards events to a structured logger.
type observer struct {
	logger *log.Logger
}

// NewObserver returns a hold.Observer that logs one Info record per
// lifecycle event. A nil logger falls back to the package default from
// charmbracelet/log.
func NewObserver(logger *log.Logger) hold.Observer {
	if logger == nil {
		logger = log.Default()
	}
	return observer{logger: logger}
}

// Observe implements hold.Observer.
func (o observer) Observe(e hold.Event) {
	if e.Live {
		o.logger.Info(e.Op.String(),
			"instance", e.Instance,
			"value", e.Value,
			"derived", e.Derived,
		)
		return
	}
	o.logger.Info(e.Op.String(),
		"instance", e.Instance,
		"value", e.Value,
		"derived", "empty",
	)
}
