package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	var testCases = []struct {
		raw      string
		expect   zerolog.Level
		expectOK bool
	}{
		{raw: "debug", expect: zerolog.DebugLevel, expectOK: true},
		{raw: " WARNING ", expect: zerolog.WarnLevel, expectOK: true},
		{raw: "", expect: zerolog.InfoLevel, expectOK: true},
		{raw: "off", expect: zerolog.Disabled, expectOK: true},
		{raw: "verbose", expect: zerolog.InfoLevel},
	}
	for _, testCase := range testCases {
		actual, ok := ParseLevel(testCase.raw)
		assert.EqualValues(t, testCase.expect, actual, testCase.raw)
		assert.EqualValues(t, testCase.expectOK, ok, testCase.raw)
	}
}

func TestNewWithWriter(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvLogNoColor, "1")
	buf := &bytes.Buffer{}
	logger := NewWithWriter(buf, "warn")
	logger.Info().Msg("hidden")
	logger.Warn().Str("session", "abc").Msg("visible")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "visible")
	assert.Contains(t, buf.String(), "session=abc")
	assert.Contains(t, buf.String(), "app=cm64")
}

func TestNewWithWriter_EnvOverride(t *testing.T) {
	t.Setenv(EnvLogLevel, "debug")
	buf := &bytes.Buffer{}
	logger := NewWithWriter(buf, "error")
	logger.Debug().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}
