package models

import (
	"strconv"
	"strings"
	"time"
)

// Record is a single document of a remote collection: a stable id plus its
// dynamically typed fields. Field presence is never guaranteed.
type Record struct {
	ID     string         `json:"id"`
	Fields map[string]any `json:"fields"`
}

// Snapshot is the full ordered state of a collection as of the last push.
// The order is the remote query's order and is never changed locally.
type Snapshot []Record

// Len returns the number of records.
func (s Snapshot) Len() int { return len(s) }

// Find returns the record with the given id.
func (s Snapshot) Find(id string) (Record, bool) {
	for _, r := range s {
		if r.ID == id {
			return r, true
		}
	}
	return Record{}, false
}

// serverTimestamp is the sentinel type behind ServerTimestamp.
type serverTimestamp struct{}

// ServerTimestamp asks the datastore adapter to fill the field with the
// store's own commit time.
var ServerTimestamp = serverTimestamp{}

// IsServerTimestamp reports whether v is the ServerTimestamp sentinel.
func IsServerTimestamp(v any) bool {
	_, ok := v.(serverTimestamp)
	return ok
}

// String returns the trimmed string value of a field, or "" when absent or
// not a string.
func (r Record) String(key string) string {
	v, ok := r.Fields[key]
	if !ok || v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case []byte:
		return strings.TrimSpace(string(t))
	default:
		return ""
	}
}

// FirstString returns the first non-empty string field among keys.
func (r Record) FirstString(keys ...string) string {
	for _, k := range keys {
		if s := r.String(k); s != "" {
			return s
		}
	}
	return ""
}

// Number returns a numeric field as float64. Numeric strings are accepted.
func (r Record) Number(key string) (float64, bool) {
	v, ok := r.Fields[key]
	if !ok || v == nil {
		return 0, false
	}
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int32:
		return float64(t), true
	case int64:
		return float64(t), true
	case uint64:
		return float64(t), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// Bool returns a boolean field. The second result is false when the field is
// absent or not a boolean.
func (r Record) Bool(key string) (bool, bool) {
	v, ok := r.Fields[key]
	if !ok || v == nil {
		return false, false
	}
	b, ok := v.(bool)
	return b, ok
}

// dateLayouts are the textual date forms found in the collections: RFC3339
// from API writes and the datetime-local form posted by the admin page.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// Time returns a date field. Datastore adapters deliver native timestamps as
// time.Time; strings and unix milliseconds are parsed as a fallback. Strings
// without a zone are read as process-local time.
func (r Record) Time(key string) (time.Time, bool) {
	return r.TimeIn(key, time.Local)
}

// TimeIn is Time with zone-less strings read in loc.
func (r Record) TimeIn(key string, loc *time.Location) (time.Time, bool) {
	if loc == nil {
		loc = time.Local
	}
	v, ok := r.Fields[key]
	if !ok || v == nil {
		return time.Time{}, false
	}
	switch t := v.(type) {
	case time.Time:
		if t.IsZero() {
			return time.Time{}, false
		}
		return t, true
	case *time.Time:
		if t == nil || t.IsZero() {
			return time.Time{}, false
		}
		return *t, true
	case string:
		s := strings.TrimSpace(t)
		for _, layout := range dateLayouts {
			if parsed, err := time.ParseInLocation(layout, s, loc); err == nil {
				return parsed, true
			}
		}
		return time.Time{}, false
	case int64:
		return time.UnixMilli(t), true
	case float64:
		return time.UnixMilli(int64(t)), true
	default:
		return time.Time{}, false
	}
}

// Clone returns a copy of the record with its own field map.
func (r Record) Clone() Record {
	fields := make(map[string]any, len(r.Fields))
	for k, v := range r.Fields {
		fields[k] = v
	}
	return Record{ID: r.ID, Fields: fields}
}
