package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type logEntry map[string]any

func decode(t *testing.T, buf *bytes.Buffer) []logEntry {
	t.Helper()
	var entries []logEntry
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var e logEntry
		require.NoError(t, json.Unmarshal([]byte(line), &e))
		entries = append(entries, e)
	}
	return entries
}

func TestZerologTracerLevels(t *testing.T) {
	buf := &bytes.Buffer{}
	sel := newZerologSelector(buf, "json", tracing.LevelInfo)
	tr := sel.Select("pwmeter.test")
	tr.Debugf("not shown")
	tr.Infof("shown %d", 1)
	tr.P("strength", 3).Errorf("failed")
	entries := decode(t, buf)
	require.Len(t, entries, 2)
	assert.Equal(t, "info", entries[0]["level"])
	assert.Equal(t, "shown 1", entries[0]["message"])
	assert.Equal(t, "pwmeter.test", entries[0]["trace"])
	assert.Equal(t, "error", entries[1]["level"])
	assert.Equal(t, float64(3), entries[1]["strength"])
	assert.Contains(t, entries[1], "time")
}

func TestZerologTracerSharedLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	sel := newZerologSelector(buf, "json", tracing.LevelError)
	a, b := sel.Select("a"), sel.Select("b")
	b.Infof("dropped")
	a.SetTraceLevel(tracing.LevelDebug)
	assert.Equal(t, tracing.LevelDebug, b.GetTraceLevel())
	b.P("k", "v").Debugf("kept")
	entries := decode(t, buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "kept", entries[0]["message"])
	assert.Equal(t, "v", entries[0]["k"])
}

func TestZerologTracerP(t *testing.T) {
	buf := &bytes.Buffer{}
	tr := newZerologSelector(buf, "json", tracing.LevelDebug).Select("x")
	p := tr.P("one", 1)
	p.P("two", 2).Debugf("both")
	p.Debugf("one only")
	entries := decode(t, buf)
	require.Len(t, entries, 2)
	assert.Contains(t, entries[0], "two")
	assert.NotContains(t, entries[1], "two", "P must not modify its receiver")
}

func TestZerologConsoleFormat(t *testing.T) {
	buf := &bytes.Buffer{}
	tr := newZerologSelector(buf, "console", tracing.LevelInfo).Select("pwmeter.cli")
	tr.Infof("hello")
	out := buf.String()
	assert.Contains(t, out, "hello")
	assert.Contains(t, out, "trace=")
	other := &bytes.Buffer{}
	tr.SetOutput(other)
	tr.Infof("moved")
	assert.NotContains(t, buf.String(), "moved")
	assert.Contains(t, other.String(), "moved")
}
