// Package slogcustom содержит цветной slog handler для терминала.
package slogcustom

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"

	"github.com/fatih/color"
)

// CustomHandler реализует slog.Handler с цветным выводом уровней.
type CustomHandler struct {
	l     *log.Logger
	level slog.Level
	attrs []slog.Attr
}

// NewCustomHandler создаёт handler, пишущий в out записи не ниже level.
func NewCustomHandler(out io.Writer, level slog.Level) *CustomHandler {
	return &CustomHandler{
		l:     log.New(out, "", 0),
		level: level,
	}
}

func (c *CustomHandler) Handle(_ context.Context, r slog.Record) error {
	level := r.Level.String() + ":"

	switch r.Level {
	case slog.LevelDebug:
		level = color.MagentaString(level)
	case slog.LevelInfo:
		level = color.HiBlueString(level)
	case slog.LevelWarn:
		level = color.YellowString(level)
	case slog.LevelError:
		level = color.RedString(level)
	}

	attrsStr := ""
	for _, a := range c.attrs {
		attrsStr += color.GreenString(a.Key) + "=" + fmt.Sprint(a.Value.Any()) + " "
	}
	r.Attrs(func(a slog.Attr) bool {
		attrsStr += color.GreenString(a.Key) + "=" + fmt.Sprint(a.Value.Any()) + " "
		return true
	})

	c.l.Println(
		r.Time.Format("15:04:05.000"),
		level,
		r.Message,
		attrsStr,
	)
	return nil
}

// WithAttrs возвращает handler с накопленными атрибутами.
func (c *CustomHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(c.attrs)+len(attrs))
	merged = append(merged, c.attrs...)
	merged = append(merged, attrs...)

	return &CustomHandler{
		l:     c.l,
		level: c.level,
		attrs: merged,
	}
}

func (c *CustomHandler) WithGroup(_ string) slog.Handler {
	return c
}

func (c *CustomHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= c.level
}
