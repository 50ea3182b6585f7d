package registry

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"prettylog/internal/pretty"
)

// destination is a slog.Handler that renders records through a
// pretty.Formatter and writes the resulting line to one writer. The writer
// and formatter are guarded by mu so Setup can swap the formatter while other
// goroutines log.
type destination struct {
	mu        sync.Mutex
	writer    io.Writer
	level     *slog.LevelVar
	formatter *pretty.Formatter
	attrs     []slog.Attr
	groups    []string
}

func newDestination(w io.Writer, level *slog.LevelVar, formatter *pretty.Formatter) *destination {
	return &destination{writer: w, level: level, formatter: formatter}
}

func (d *destination) setFormatter(formatter *pretty.Formatter) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.formatter = formatter
}

func (d *destination) setWriter(w io.Writer) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.writer = w
}

func (d *destination) Enabled(_ context.Context, level slog.Level) bool {
	return level >= d.level.Level()
}

func (d *destination) Handle(_ context.Context, record slog.Record) error {
	if record.Level < d.level.Level() {
		return nil
	}

	timestamp := record.Time
	if timestamp.IsZero() {
		timestamp = time.Now()
	}

	kvs := make([]kv, 0, record.NumAttrs()+len(d.attrs))
	flattenAttrs(&kvs, d.groups, d.attrs)
	record.Attrs(func(attr slog.Attr) bool {
		flattenAttr(&kvs, d.groups, attr)
		return true
	})

	// An error-valued attr becomes the trace block under the message.
	var trace string
	filtered := kvs[:0]
	for _, kv := range kvs {
		if kv.key == "error" && trace == "" {
			trace = traceText(kv.value)
			continue
		}
		filtered = append(filtered, kv)
	}
	kvs = filtered

	var b strings.Builder
	b.Grow(len(record.Message) + len(kvs)*24)
	b.WriteString(strings.TrimSpace(record.Message))
	for _, kv := range kvs {
		if kv.key == "" {
			continue
		}
		b.WriteByte(' ')
		b.WriteString(kv.key)
		b.WriteByte('=')
		b.WriteString(formatValue(kv.value))
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	line := d.formatter.Format(pretty.Record{
		Level:   record.Level,
		Message: b.String(),
		Time:    timestamp,
		Trace:   trace,
	})
	_, err := io.WriteString(d.writer, line+"\n")
	return err
}

// traceText renders an error attr value; a failing render yields no trace
// rather than losing the record.
func traceText(v slog.Value) (text string) {
	defer func() {
		if recover() != nil {
			text = ""
		}
	}()
	v = v.Resolve()
	if err, ok := v.Any().(error); ok {
		if err == nil {
			return ""
		}
		return err.Error()
	}
	if v.Kind() == slog.KindString {
		return v.String()
	}
	return attrString(v)
}

func (d *destination) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := d.clone()
	clone.attrs = append(clone.attrs, attrs...)
	return clone
}

func (d *destination) WithGroup(name string) slog.Handler {
	clone := d.clone()
	clone.groups = append(clone.groups, name)
	return clone
}

func (d *destination) clone() *destination {
	d.mu.Lock()
	defer d.mu.Unlock()
	clone := &destination{
		writer:    d.writer,
		level:     d.level,
		formatter: d.formatter,
	}
	if len(d.attrs) > 0 {
		clone.attrs = make([]slog.Attr, len(d.attrs))
		copy(clone.attrs, d.attrs)
	}
	if len(d.groups) > 0 {
		clone.groups = make([]string, len(d.groups))
		copy(clone.groups, d.groups)
	}
	return clone
}

type kv struct {
	key   string
	value slog.Value
}

func flattenAttrs(dst *[]kv, prefix []string, attrs []slog.Attr) {
	for _, attr := range attrs {
		flattenAttr(dst, prefix, attr)
	}
}

func flattenAttr(dst *[]kv, prefix []string, attr slog.Attr) {
	if attr.Equal(slog.Attr{}) {
		return
	}
	attr.Value = attr.Value.Resolve()
	switch attr.Value.Kind() {
	case slog.KindGroup:
		values := attr.Value.Group()
		nextPrefix := prefix
		if attr.Key != "" {
			nextPrefix = append(append([]string(nil), prefix...), attr.Key)
		}
		flattenAttrs(dst, nextPrefix, values)
	default:
		key := attr.Key
		if len(prefix) > 0 && key != "" {
			key = strings.Join(prefix, ".") + "." + key
		}
		*dst = append(*dst, kv{key: key, value: attr.Value})
	}
}
