package logging

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"
)

// runIDWidth is how many leading characters of a run ID the console shows.
const runIDWidth = 8

// consoleHandler writes one line per record:
//
//	2026-10-15T09:12:44Z DEBUG matcher: transcript scored above_floor=1 [matcher.go:101] run_id=3f2a9c1e
//
// The component becomes the message prefix and the run ID closes the line;
// every other attribute renders as key=value in order.
type consoleHandler struct {
	out       *syncWriter
	level     slog.Leveler
	addSource bool

	component string
	runID     string
	// fields holds attributes bound with WithAttrs, already rendered.
	fields string
	// group is the dotted prefix from WithGroup.
	group string
}

type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) write(p []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.w.Write(p)
	return err
}

func newConsoleHandler(w io.Writer, level slog.Leveler, addSource bool) slog.Handler {
	return &consoleHandler{out: &syncWriter{w: w}, level: level, addSource: addSource}
}

func (h *consoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *consoleHandler) Handle(_ context.Context, record slog.Record) error {
	component, runID := h.component, h.runID
	var fields strings.Builder
	fields.WriteString(h.fields)
	record.Attrs(func(attr slog.Attr) bool {
		h.take(&fields, &component, &runID, h.group, attr)
		return true
	})

	ts := record.Time
	if ts.IsZero() {
		ts = time.Now()
	}

	line := make([]byte, 0, 128+fields.Len())
	line = append(line, formatTimestamp(ts)...)
	line = append(line, ' ')
	line = append(line, levelName(record.Level)...)
	line = append(line, ' ')
	if component != "" {
		line = append(line, component...)
		line = append(line, ": "...)
	}
	msg := strings.TrimSpace(record.Message)
	if msg == "" {
		msg = "(no message)"
	}
	line = append(line, msg...)
	line = append(line, fields.String()...)
	if h.addSource {
		if src := record.Source(); src != nil && src.File != "" {
			line = append(line, " ["...)
			line = append(line, filepath.Base(src.File)...)
			line = append(line, ':')
			line = strconv.AppendInt(line, int64(src.Line), 10)
			line = append(line, ']')
		}
	}
	if runID != "" {
		line = append(line, " "+FieldRunID+"="...)
		line = append(line, shortRunID(runID)...)
	}
	line = append(line, '\n')
	return h.out.write(line)
}

// take routes attr to the component or run ID slot when it is one of those
// top-level keys, and renders it into fields otherwise.
func (h *consoleHandler) take(fields *strings.Builder, component, runID *string, group string, attr slog.Attr) {
	attr.Value = attr.Value.Resolve()
	if attr.Equal(slog.Attr{}) {
		return
	}
	if group == "" {
		switch attr.Key {
		case FieldComponent:
			if *component == "" {
				*component = attrString(attr.Value)
			}
			return
		case FieldRunID:
			*runID = attrString(attr.Value)
			return
		}
	}
	if attr.Value.Kind() == slog.KindGroup {
		prefix := group
		if attr.Key != "" {
			prefix = joinKey(group, attr.Key)
		}
		for _, member := range attr.Value.Group() {
			h.take(fields, component, runID, prefix, member)
		}
		return
	}
	key := joinKey(group, attr.Key)
	if key == "" {
		return
	}
	fields.WriteByte(' ')
	fields.WriteString(key)
	fields.WriteByte('=')
	fields.WriteString(formatValue(attr.Value))
}

func (h *consoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	next := *h
	var fields strings.Builder
	fields.WriteString(h.fields)
	for _, attr := range attrs {
		h.take(&fields, &next.component, &next.runID, h.group, attr)
	}
	next.fields = fields.String()
	return &next
}

func (h *consoleHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	next := *h
	next.group = joinKey(h.group, name)
	return &next
}

func joinKey(prefix, key string) string {
	switch {
	case prefix == "":
		return key
	case key == "":
		return prefix
	default:
		return prefix + "." + key
	}
}

func shortRunID(id string) string {
	if len(id) <= runIDWidth {
		return id
	}
	return id[:runIDWidth]
}

func levelName(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return "ERROR"
	case level >= slog.LevelWarn:
		return "WARN"
	case level >= slog.LevelInfo:
		return "INFO"
	default:
		return "DEBUG"
	}
}
