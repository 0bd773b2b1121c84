package log

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithFields_JSON(t *testing.T) {
	var buf bytes.Buffer

	SetLogger(logrus.DebugLevel, true, false)
	SetOutput(&buf)

	t.Cleanup(func() { SetLogger(logrus.InfoLevel, false, false) })

	Debug("generated conversions", "component", "location", "functions", 110, 42, "dropped")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lastLine(buf.Bytes()), &entry))

	assert.Equal(t, "generated conversions", entry["msg"])
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "location", entry["component"])
	assert.InDelta(t, 110, entry["functions"], 0)
	assert.NotContains(t, entry, "42")
}

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("warn")
	require.NoError(t, err)
	assert.Equal(t, logrus.WarnLevel, lvl)

	_, err = ParseLevel("loud")
	assert.Error(t, err)
}

func lastLine(b []byte) []byte {
	lines := bytes.Split(bytes.TrimSpace(b), []byte("\n"))
	return lines[len(lines)-1]
}
