// Package diag carries non-fatal engineering diagnostics.
//
// Sizing violations and unsupported load components are reported here
// instead of aborting the calculation: the caller stays responsible for
// inspecting the resulting efficiency ratios.
package diag

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

// Sink receives diagnostic messages emitted during a calculation.
type Sink interface {
	Errorf(format string, args ...any)
	Warnf(format string, args ...any)
}

type logrusSink struct {
	log *logrus.Logger
}

func (s logrusSink) Errorf(format string, args ...any) { s.log.Errorf(format, args...) }
func (s logrusSink) Warnf(format string, args ...any)  { s.log.Warnf(format, args...) }

// NewLogrusSink wraps a logrus logger as a Sink.
func NewLogrusSink(log *logrus.Logger) Sink {
	return logrusSink{log: log}
}

var defaultSink Sink = func() Sink {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return logrusSink{log: log}
}()

// Default returns the process-default sink, used when a nil Sink is
// passed to a calculation object.
func Default() Sink { return defaultSink }

// OrDefault returns s unless it is nil.
func OrDefault(s Sink) Sink {
	if s == nil {
		return defaultSink
	}
	return s
}

type discardSink struct{}

func (discardSink) Errorf(string, ...any) {}
func (discardSink) Warnf(string, ...any)  {}

// Discard drops every message.
var Discard Sink = discardSink{}

// Recorder is a Sink that keeps the formatted messages it receives.
type Recorder struct {
	Errors   []string
	Warnings []string
}

func (r *Recorder) Errorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *Recorder) Warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}
