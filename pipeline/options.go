package pipeline

import (
	"github.com/google/uuid"

	"github.com/kbukum/pipekit/logger"
)

// Option configures a Pipeline or Flow.
type Option func(*options)

type options struct {
	name string
	log  *logger.Logger
}

// WithName names the pipeline in log output.
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// WithLogger logs every traversal: its start, and how many elements it
// produced when it finishes or fails. Each traversal gets its own run ID.
func WithLogger(log *logger.Logger) Option {
	return func(o *options) { o.log = log }
}

func buildOptions(kind string, opts []Option) options {
	o := options{name: kind}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// runLog reports one traversal. A nil *runLog logs nothing.
type runLog struct {
	log      *logger.Logger
	elements int
}

func (o options) startRun() *runLog {
	if o.log == nil {
		return nil
	}
	log := o.log.WithFields(logger.Fields(
		logger.FieldComponent, o.name,
		logger.FieldRunID, uuid.NewString(),
	))
	log.Debug("run started")
	return &runLog{log: log}
}

func (r *runLog) element() {
	if r != nil {
		r.elements++
	}
}

func (r *runLog) finished() {
	if r != nil {
		r.log.Debug("run finished", logger.Fields(logger.FieldElements, r.elements))
	}
}

func (r *runLog) failed(err error) {
	if r != nil {
		r.log.Error("run failed", logger.Fields(
			logger.FieldElements, r.elements,
			logger.FieldError, err.Error(),
		))
	}
}
