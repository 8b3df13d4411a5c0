package logging

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/fatih/color"
)

// leadingKeys are printed inline, in this order, before the message.
var leadingKeys = []string{"component", "method", "path", "status"}

// ConsoleHandler is a human-oriented slog.Handler: one colored header line
// per record followed by the remaining attributes, one per line.
type ConsoleHandler struct {
	mu     *sync.Mutex
	w      io.Writer
	level  slog.Leveler
	color  bool
	groups []string
	attrs  []slog.Attr
}

// NewConsoleHandler returns a ConsoleHandler writing to w. Color escape
// sequences are emitted only when useColor is true.
func NewConsoleHandler(w io.Writer, level slog.Leveler, useColor bool) *ConsoleHandler {
	if level == nil {
		level = slog.LevelInfo
	}
	return &ConsoleHandler{mu: &sync.Mutex{}, w: w, level: level, color: useColor}
}

func (h *ConsoleHandler) clone() *ConsoleHandler {
	nh := *h
	nh.groups = append([]string(nil), h.groups...)
	nh.attrs = append([]slog.Attr(nil), h.attrs...)
	return &nh
}

func (h *ConsoleHandler) Enabled(_ context.Context, l slog.Level) bool {
	return l >= h.level.Level()
}

func (h *ConsoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := h.clone()
	for _, a := range attrs {
		nh.attrs = append(nh.attrs, h.qualify(a))
	}
	return nh
}

func (h *ConsoleHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	nh := h.clone()
	nh.groups = append(nh.groups, name)
	return nh
}

func (h *ConsoleHandler) qualify(a slog.Attr) slog.Attr {
	for i := len(h.groups) - 1; i >= 0; i-- {
		a = slog.Group(h.groups[i], a)
	}
	return a
}

func (h *ConsoleHandler) paint(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if h.color {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

func levelColor(l slog.Level) color.Attribute {
	switch {
	case l >= slog.LevelError:
		return color.FgRed
	case l >= slog.LevelWarn:
		return color.FgYellow
	case l >= slog.LevelInfo:
		return color.FgBlue
	default:
		return color.FgCyan
	}
}

func (h *ConsoleHandler) Handle(_ context.Context, record slog.Record) error {
	kv := map[string]slog.Value{}
	for _, a := range h.attrs {
		flatten(kv, "", a)
	}
	record.Attrs(func(a slog.Attr) bool {
		flatten(kv, "", h.qualify(a))
		return true
	})

	var buf bytes.Buffer
	plain := h.paint()
	if !record.Time.IsZero() {
		plain.Fprintf(&buf, "%s ", record.Time.Format(time.RFC3339))
	}
	h.paint(levelColor(record.Level)).Fprintf(&buf, "%-5s ", record.Level)

	for _, key := range leadingKeys {
		if v, ok := kv[key]; ok {
			plain.Fprintf(&buf, "%s ", v)
			delete(kv, key)
		}
	}

	h.paint(color.FgGreen).Fprint(&buf, record.Message)
	if e, ok := kv["error"]; ok {
		delete(kv, "error")
		h.paint(color.FgRed).Fprintf(&buf, " %s", e)
	}
	buf.WriteByte('\n')

	keys := make([]string, 0, len(kv))
	for k := range kv {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		plain.Fprintf(&buf, "    %s=%s\n", k, kv[k])
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if _, err := h.w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("write log record: %w", err)
	}
	return nil
}

// flatten expands groups into dotted keys.
func flatten(kv map[string]slog.Value, prefix string, a slog.Attr) {
	v := a.Value.Resolve()
	key := a.Key
	if prefix != "" {
		key = prefix + "." + key
	}
	if v.Kind() == slog.KindGroup {
		for _, ga := range v.Group() {
			flatten(kv, key, ga)
		}
		return
	}
	if a.Key == "" {
		return
	}
	kv[key] = v
}
