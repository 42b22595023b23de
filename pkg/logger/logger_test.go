package logger

import (
	"bytes"
	"encoding/json"
	"log"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebugLoggerForwardsToLogger(t *testing.T) {
	origLogger, origDebug := Logger, DebugLogger
	t.Cleanup(func() {
		Logger, DebugLogger = origLogger, origDebug
	})

	var buf bytes.Buffer
	SetLogger(log.New(&buf, "", 0))
	DebugLogger = &debugLogger{}

	DebugLogger.Printf("loaded %d words", 3)
	assert.Equal(t, "loaded 3 words\n", buf.String())

	SetDebugLogger(Discard())
	DebugLogger.Println("dropped")
	assert.Equal(t, "loaded 3 words\n", buf.String())
}

func TestNewZerolog(t *testing.T) {
	var buf bytes.Buffer
	l := NewZerolog(&buf, zerolog.WarnLevel)

	l.Printf("rejected %q", "a b")

	var event map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &event))
	assert.Equal(t, "warn", event["level"])
	assert.Equal(t, `rejected "a b"`, event["message"])
	assert.Contains(t, event, "time")

	buf.Reset()
	l.Println("two", "parts")
	require.NoError(t, json.Unmarshal(buf.Bytes(), &event))
	assert.Equal(t, "two parts", event["message"])
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("DEBUG"))
	assert.Equal(t, zerolog.ErrorLevel, ParseLevel(" error "))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("loud"))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel(""))
}
