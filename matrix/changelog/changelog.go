// SPDX-License-Identifier: MIT

// Package changelog provides ready-made observers for matrix change events:
// a structured zap logger sink and an in-memory recorder.
//
// The matrix package itself never logs; attach one of these with
// m.OnChange(...) or matrix.WithObserver(...) when an audit trail is wanted.
//
//	logger, _ := zap.NewProduction()
//	m, _ := matrix.NewDense(2, 2, matrix.WithObserver(changelog.New[float64](logger, changelog.WithName("weights"))))
package changelog

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/genmatrix/matrix"
)

// ---------- Defaults ----------

const (
	// DefaultMessage is the log message of every change record.
	DefaultMessage = "matrix cell changed"

	// DefaultLevel is the level change records are written at.
	DefaultLevel = zapcore.DebugLevel
)

// Field keys, kept stable for log pipelines.
const (
	FieldMatrix = "matrix"
	FieldRow    = "row"
	FieldCol    = "col"
	FieldOld    = "old"
	FieldNew    = "new"
)

// Option configures the zap observer.
type Option func(*config)

type config struct {
	level   zapcore.Level
	message string
	name    string // empty: no FieldMatrix field
}

// WithLevel sets the level change records are written at.
func WithLevel(l zapcore.Level) Option {
	return func(c *config) { c.level = l }
}

// WithMessage overrides DefaultMessage. An empty message is ignored.
func WithMessage(msg string) Option {
	return func(c *config) {
		if msg != "" {
			c.message = msg
		}
	}
}

// WithName adds a "matrix" field identifying the observed matrix.
func WithName(name string) Option {
	return func(c *config) { c.name = name }
}

// New returns an observer that writes one record per change to logger.
// A nil logger yields a no-op observer. Records below the logger's level are
// dropped before any field is built.
func New[T matrix.Number](logger *zap.Logger, opts ...Option) matrix.Observer[T] {
	if logger == nil {
		logger = zap.NewNop()
	}
	cfg := config{level: DefaultLevel, message: DefaultMessage}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.name != "" {
		logger = logger.With(zap.String(FieldMatrix, cfg.name))
	}

	return func(ev matrix.ChangeEvent[T]) {
		ce := logger.Check(cfg.level, cfg.message)
		if ce == nil {
			return
		}
		ce.Write(
			zap.Int(FieldRow, ev.Row),
			zap.Int(FieldCol, ev.Col),
			zap.Any(FieldOld, ev.Old),
			zap.Any(FieldNew, ev.New),
		)
	}
}

// Recorder keeps every event it observes, in order. Safe for concurrent use.
// The zero value is ready to use.
type Recorder[T matrix.Number] struct {
	mu     sync.Mutex
	events []matrix.ChangeEvent[T]
}

// Observe appends ev. Pass r.Observe to OnChange or WithObserver.
func (r *Recorder[T]) Observe(ev matrix.ChangeEvent[T]) {
	r.mu.Lock()
	r.events = append(r.events, ev)
	r.mu.Unlock()
}

// Events returns a copy of the recorded events.
func (r *Recorder[T]) Events() []matrix.ChangeEvent[T] {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]matrix.ChangeEvent[T](nil), r.events...)
}

// Len returns the number of recorded events.
func (r *Recorder[T]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.events)
}

// Reset drops all recorded events.
func (r *Recorder[T]) Reset() {
	r.mu.Lock()
	r.events = nil
	r.mu.Unlock()
}
