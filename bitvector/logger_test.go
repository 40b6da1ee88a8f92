package bitvector

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferLogger(buf *bytes.Buffer) *Logger {
	return NewLogger(slog.NewJSONHandler(buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

func records(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var rec map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &rec))
		out = append(out, rec)
	}
	return out
}

func TestLogger_OutOfRange(t *testing.T) {
	var buf bytes.Buffer
	v := New(4, WithLogger(newBufferLogger(&buf)))

	require.NoError(t, v.Set(3))
	assert.Zero(t, buf.Len(), "valid operations do not log")

	require.ErrorIs(t, v.Toggle(4), ErrOutOfRange)

	recs := records(t, &buf)
	require.Len(t, recs, 1)
	assert.Equal(t, "position out of range", recs[0]["msg"])
	assert.Equal(t, "DEBUG", recs[0]["level"])
	assert.Equal(t, "toggle", recs[0]["op"])
	assert.EqualValues(t, 4, recs[0]["pos"])
	assert.EqualValues(t, 4, recs[0]["len"])
}

func TestLogger_Parse(t *testing.T) {
	var buf bytes.Buffer
	logger := newBufferLogger(&buf)

	_, err := Parse("0110", WithLogger(logger))
	require.NoError(t, err)

	_, err = Parse("01a", WithLogger(logger))
	require.ErrorIs(t, err, ErrSyntax)

	recs := records(t, &buf)
	require.Len(t, recs, 2)
	assert.Equal(t, "parse completed", recs[0]["msg"])
	assert.EqualValues(t, 4, recs[0]["length"])
	assert.Equal(t, "parse failed", recs[1]["msg"])
	assert.Contains(t, recs[1]["error"], "offset 2")
}

func TestLogger_Noop(t *testing.T) {
	l := NoopLogger()
	assert.False(t, l.Enabled(t.Context(), slog.LevelError))

	v := New(1, WithLogger(nil))
	assert.ErrorIs(t, v.Set(1), ErrOutOfRange)
}

func TestWithLogLevel(t *testing.T) {
	o := applyOptions([]Option{WithLogLevel(slog.LevelWarn), nil})
	require.NotNil(t, o.logger)
	assert.False(t, o.logger.Enabled(t.Context(), slog.LevelDebug))
	assert.True(t, o.logger.Enabled(t.Context(), slog.LevelWarn))
}

func TestErrorMessages(t *testing.T) {
	oor := &ErrPositionOutOfRange{Pos: 10, Len: 10}
	assert.Equal(t, "position out of range: pos 10, len 10", oor.Error())

	ic := &ErrInvalidCharacter{Offset: 2, Char: 'x'}
	assert.Equal(t, `invalid bit string: unexpected 'x' at offset 2`, ic.Error())
}
