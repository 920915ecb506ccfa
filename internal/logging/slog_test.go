package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func newBufLogger(t *testing.T) (*SlogLogger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return NewSlogLogger(slog.New(h)), &buf
}

func TestSlogLogger_Levels(t *testing.T) {
	l, buf := newBufLogger(t)
	ctx := context.Background()

	l.Debug(ctx, "dbg")
	l.Info(ctx, "inf")
	l.Warn(ctx, "wrn")
	l.Error(ctx, "err")

	out := buf.String()
	require.Contains(t, out, "level=DEBUG")
	require.Contains(t, out, "msg=inf")
	require.Contains(t, out, "level=WARN")
	require.Contains(t, out, "msg=err")
}

func TestSlogLogger_WithAddsAttrs(t *testing.T) {
	l, buf := newBufLogger(t)

	child := l.With("component", "session")
	child.Info(context.Background(), "persisted")

	require.Contains(t, buf.String(), "component=session")
}
