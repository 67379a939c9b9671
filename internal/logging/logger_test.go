package logging

import (
	"bytes"
	"encoding/json"
	"log"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func capture(t *testing.T, fn func()) string {
	t.Helper()
	var buf bytes.Buffer
	prev := log.Writer()
	log.SetOutput(&buf)
	defer log.SetOutput(prev)
	fn()
	return buf.String()
}

func lastJSONLine(t *testing.T, out string) map[string]interface{} {
	t.Helper()
	lines := strings.Split(strings.TrimSpace(out), "\n")
	line := lines[len(lines)-1]
	start := strings.Index(line, "{")
	require.GreaterOrEqual(t, start, 0, "no JSON payload in %q", line)
	var m map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(line[start:]), &m))
	return m
}

func TestInfoEmitsJSONFields(t *testing.T) {
	out := capture(t, func() {
		Info("encounter started", Fields{"stage": "rusty-gate"})
	})
	m := lastJSONLine(t, out)
	assert.Equal(t, "info", m["level"])
	assert.Equal(t, "encounter started", m["msg"])
	assert.Equal(t, "rusty-gate", m["stage"])
	assert.NotEmpty(t, m["ts"])
}

func TestErrorIncludesErrorText(t *testing.T) {
	out := capture(t, func() {
		Error("request failed", assert.AnError, nil)
	})
	m := lastJSONLine(t, out)
	assert.Equal(t, "error", m["level"])
	assert.Equal(t, assert.AnError.Error(), m["error"])
}

func TestDebugGatedByEnv(t *testing.T) {
	old := debugEnabled
	defer func() { debugEnabled = old }()

	debugEnabled = false
	out := capture(t, func() { Debug("turn resolved", Fields{"turn": 1}) })
	assert.Empty(t, strings.TrimSpace(out))

	debugEnabled = true
	out = capture(t, func() { Debug("turn resolved", Fields{"turn": 1}) })
	m := lastJSONLine(t, out)
	assert.Equal(t, "debug", m["level"])
	assert.Equal(t, "turn resolved", m["msg"])
}
