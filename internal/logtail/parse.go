package logtail

import (
	"strings"
	"time"

	"github.com/go-logfmt/logfmt"
)

// Attr is one key=value pair from a log record.
type Attr struct {
	Key   string
	Value string
}

// Entry is a parsed log record.
type Entry struct {
	Time    time.Time
	Level   string
	Message string
	Attrs   []Attr
}

// Parse decodes a line produced by slog.TextHandler. Lines that are not
// valid logfmt, or carry no msg key, are returned as a bare message.
func Parse(line string) Entry {
	dec := logfmt.NewDecoderSize(strings.NewReader(line), maxLineBytes)
	if !dec.ScanRecord() {
		return Entry{Message: line}
	}

	var e Entry
	seen := false
	for dec.ScanKeyval() {
		key, value := string(dec.Key()), string(dec.Value())
		switch key {
		case "time":
			if ts, err := time.Parse(time.RFC3339Nano, value); err == nil {
				e.Time = ts
			}
		case "level":
			e.Level = value
		case "msg":
			e.Message = value
			seen = true
		default:
			e.Attrs = append(e.Attrs, Attr{Key: key, Value: value})
		}
	}
	if dec.Err() != nil || !seen {
		return Entry{Message: line}
	}
	return e
}

// ParseLines parses each non-blank line in order.
func ParseLines(lines []string) []Entry {
	entries := make([]Entry, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		entries = append(entries, Parse(line))
	}
	return entries
}
