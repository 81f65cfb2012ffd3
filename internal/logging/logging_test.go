package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordingLogger struct {
	level Level
	loc   SourceLocation
	msg   string
	calls int
}

func (r *recordingLogger) Log(level Level, loc SourceLocation, msg string) {
	r.level, r.loc, r.msg = level, loc, msg
	r.calls++
}

func TestNoopLoggerDiscardsEverything(t *testing.T) {
	var l NoopLogger
	l.Log(LevelError, SourceLocation{}, "ignored")
}

func TestWarnCapturesCallerLocation(t *testing.T) {
	rec := &recordingLogger{}
	Warn(rec, "careful")
	assert.Equal(t, LevelWarn, rec.level)
	assert.Equal(t, "careful", rec.msg)
	assert.Contains(t, rec.loc.File, "logging_test.go")
	assert.Equal(t, 1, rec.calls)
}

func TestErrorAndDebugDispatchCorrectLevel(t *testing.T) {
	rec := &recordingLogger{}
	Error(rec, "boom")
	assert.Equal(t, LevelError, rec.level)

	Debug(rec, "trace")
	assert.Equal(t, LevelDebug, rec.level)
}

func TestNilLoggerIsSafeNoOp(t *testing.T) {
	Warn(nil, "should not panic")
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "debug", LevelDebug.String())
	assert.Equal(t, "warn", LevelWarn.String())
	assert.Equal(t, "error", LevelError.String())
}
