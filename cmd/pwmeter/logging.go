package main

import (
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/npillmayer/schuko/tracing"
	"github.com/rs/zerolog"
	"golang.org/x/term"
)

// zerologSelector selects tracers writing to a zerolog logger. All
// tracers of a selector share the logger and the trace level, every
// tracer carries its key as field "trace".
type zerologSelector struct {
	mx     sync.RWMutex
	logger zerolog.Logger
	format string
	level  atomic.Uint32
}

// newZerologSelector creates a tracer selector writing to w. format is
// one of "console", "json" or "auto"; "auto" selects the console format
// if w is a terminal.
func newZerologSelector(w io.Writer, format string, level tracing.TraceLevel) *zerologSelector {
	sel := &zerologSelector{format: format}
	sel.setOutput(w)
	sel.level.Store(uint32(level))
	return sel
}

func (sel *zerologSelector) setOutput(w io.Writer) {
	out := w
	if sel.format == "console" || sel.format == "auto" && isTerminal(w) {
		console := zerolog.NewConsoleWriter()
		console.Out = w
		console.TimeFormat = time.Kitchen
		out = console
	}
	logger := zerolog.New(out).Level(zerolog.DebugLevel).With().Timestamp().Logger()
	sel.mx.Lock()
	sel.logger = logger
	sel.mx.Unlock()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Select is part of interface tracing.TraceSelector.
func (sel *zerologSelector) Select(key string) tracing.Trace {
	return &zerologTracer{sel: sel, key: key}
}

var _ tracing.TraceSelector = &zerologSelector{}

// zerologTracer implements tracing.Trace.
type zerologTracer struct {
	sel    *zerologSelector
	key    string
	fields []field
}

type field struct {
	key string
	val interface{}
}

func (t *zerologTracer) enabled(l tracing.TraceLevel) bool {
	return tracing.TraceLevel(t.sel.level.Load()) >= l
}

func (t *zerologTracer) event(l tracing.TraceLevel) *zerolog.Event {
	t.sel.mx.RLock()
	defer t.sel.mx.RUnlock()
	var ev *zerolog.Event
	switch l {
	case tracing.LevelDebug:
		ev = t.sel.logger.Debug()
	case tracing.LevelInfo:
		ev = t.sel.logger.Info()
	default:
		ev = t.sel.logger.Error()
	}
	if t.key != "" {
		ev = ev.Str("trace", t.key)
	}
	for _, f := range t.fields {
		ev = ev.Interface(f.key, f.val)
	}
	return ev
}

func (t *zerologTracer) output(l tracing.TraceLevel, s string, args ...interface{}) {
	if !t.enabled(l) {
		return
	}
	t.event(l).Msg(fmt.Sprintf(s, args...))
}

// Errorf is part of interface Trace
func (t *zerologTracer) Errorf(s string, args ...interface{}) {
	t.output(tracing.LevelError, s, args...)
}

// Infof is part of interface Trace
func (t *zerologTracer) Infof(s string, args ...interface{}) {
	t.output(tracing.LevelInfo, s, args...)
}

// Debugf is part of interface Trace
func (t *zerologTracer) Debugf(s string, args ...interface{}) {
	t.output(tracing.LevelDebug, s, args...)
}

// P is part of interface Trace
func (t *zerologTracer) P(key string, val interface{}) tracing.Trace {
	fields := make([]field, len(t.fields), len(t.fields)+1)
	copy(fields, t.fields)
	return &zerologTracer{sel: t.sel, key: t.key, fields: append(fields, field{key, val})}
}

// SetTraceLevel is part of interface Trace
func (t *zerologTracer) SetTraceLevel(l tracing.TraceLevel) {
	t.sel.level.Store(uint32(l))
}

// GetTraceLevel is part of interface Trace
func (t *zerologTracer) GetTraceLevel() tracing.TraceLevel {
	return tracing.TraceLevel(t.sel.level.Load())
}

// SetOutput is part of interface Trace
func (t *zerologTracer) SetOutput(w io.Writer) {
	t.sel.setOutput(w)
}
