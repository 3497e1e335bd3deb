package log

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWrite_FormatsFields(t *testing.T) {
	var buf bytes.Buffer
	cleanup := InitWriter(&buf)
	defer cleanup()

	Info(CatSubmit, "Form submitted", "name", "Ada Lovelace", "age", 22)

	out := buf.String()
	require.Contains(t, out, "[INFO] [submit] Form submitted")
	require.Contains(t, out, `name="Ada Lovelace"`)
	require.Contains(t, out, "age=22")
}

func TestWrite_OddFieldCount(t *testing.T) {
	var buf bytes.Buffer
	defer InitWriter(&buf)()

	Warn(CatUI, "odd", "orphan")

	require.Contains(t, buf.String(), "orphan=<missing>")
}

func TestErrorErr(t *testing.T) {
	var buf bytes.Buffer
	defer InitWriter(&buf)()

	ErrorErr(CatSubmit, "Submit failed", errors.New("boom"))
	ErrorErr(CatSubmit, "Submit failed", nil)

	require.Contains(t, buf.String(), "[ERROR] [submit] Submit failed error=boom")
	require.Contains(t, buf.String(), "error=<nil>")
}

func TestMinLevelAndEnabled(t *testing.T) {
	var buf bytes.Buffer
	defer InitWriter(&buf)()

	SetMinLevel(LevelWarn)
	Debug(CatForm, "hidden")
	Info(CatForm, "hidden")
	Error(CatForm, "shown")
	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), "shown")

	buf.Reset()
	SetEnabled(false)
	Error(CatForm, "muted")
	require.Empty(t, buf.String())
}

func TestNoLoggerIsNoop(t *testing.T) {
	InitWriter(&bytes.Buffer{})()

	require.NotPanics(t, func() { Info(CatUI, "nobody listening") })
	require.Nil(t, NewListener(context.Background()))
}

func TestInit_AppendsToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")

	cleanup, err := Init(path)
	require.NoError(t, err)
	Info(CatConfig, "first")
	cleanup()

	cleanup, err = Init(path)
	require.NoError(t, err)
	Info(CatConfig, "second")
	cleanup()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "first")
	require.Contains(t, string(data), "second")
}

func TestNewListener_ReceivesEntries(t *testing.T) {
	defer InitWriter(&bytes.Buffer{})()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	listener := NewListener(ctx)
	require.NotNil(t, listener)

	Info(CatForm, "validation failed", "fields", 2)

	event, ok := listener.Listen()().(LogEvent)
	require.True(t, ok)
	require.Contains(t, event.Payload, "validation failed fields=2")
}

func TestLevel_String(t *testing.T) {
	require.Equal(t, "DEBUG", LevelDebug.String())
	require.Equal(t, "ERROR", LevelError.String())
	require.Equal(t, "UNKNOWN", Level(42).String())
}
