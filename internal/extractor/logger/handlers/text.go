package handlers

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"strings"
)

// TextHandler writes records as "time LEVEL message key=value ..." lines.
type TextHandler struct {
	slog.Handler
	l     *log.Logger
	attrs []slog.Attr
}

func (h *TextHandler) Handle(_ context.Context, r slog.Record) error {
	timeStr := r.Time.Format("2006/01/02 15:04:05")

	parts := make([]string, 0, len(h.attrs)+r.NumAttrs()+3) //nolint:mnd
	parts = append(parts, timeStr, r.Level.String(), r.Message)

	for _, a := range h.attrs {
		parts = append(parts, formatAttr(a))
	}

	r.Attrs(func(a slog.Attr) bool {
		parts = append(parts, formatAttr(a))

		return true
	})

	h.l.Println(strings.Join(parts, " "))

	return nil
}

// WithAttrs keeps attrs so that loggers made by slog.With print them too.
func (h *TextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &TextHandler{
		Handler: h.Handler.WithAttrs(attrs),
		l:       h.l,
		attrs:   append(append([]slog.Attr{}, h.attrs...), attrs...),
	}
}

func formatAttr(a slog.Attr) string {
	return fmt.Sprintf("%s=%v", a.Key, a.Value.Any())
}

func NewTextHandler(out io.Writer, options *slog.HandlerOptions) *TextHandler {
	return &TextHandler{
		Handler: slog.NewTextHandler(out, options),
		l:       log.New(out, "", 0),
	}
}
