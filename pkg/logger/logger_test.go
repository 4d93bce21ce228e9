package logger_test

import (
	"bytes"
	"testing"

	"handoff-address/pkg/logger"

	"github.com/stretchr/testify/assert"
)

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(&buf, "error")

	l.Printf("lookup place_id=%s", "abc")
	l.Debugf("cache miss")
	l.Errorf("upstream failed: %v", "timeout")

	out := buf.String()
	assert.NotContains(t, out, "lookup place_id=abc")
	assert.NotContains(t, out, "cache miss")
	assert.Contains(t, out, "upstream failed: timeout")
	assert.Contains(t, out, "logger_test.go")
}

func TestLogger_DebugIncludesEverything(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(&buf, "DEBUG")

	l.Debug("parse", "free_text")
	l.Println("ready")

	assert.Contains(t, buf.String(), "parse free_text")
	assert.Contains(t, buf.String(), "ready")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, logger.DEBUG, logger.ParseLevel(" debug "))
	assert.Equal(t, logger.ERROR, logger.ParseLevel("ERROR"))
	assert.Equal(t, logger.INFO, logger.ParseLevel("verbose"))
}
