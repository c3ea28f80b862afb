package logger

import (
	"log/slog"
	"maps"
	"slices"
	"strconv"
	"time"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Params groups rule parameters under "params" in key order. Empty input
// yields an empty Attr.
func Params(values map[string]any) slog.Attr {
	if len(values) == 0 {
		return slog.Attr{}
	}
	attrs := make([]slog.Attr, 0, len(values))
	for _, k := range slices.Sorted(maps.Keys(values)) {
		attrs = append(attrs, slog.Any(k, values[k]))
	}
	return Group("params", attrs...)
}

// Errors groups non-nil errors under "errors". All-nil input yields an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error records err under "error". A nil err yields an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// Field records the form field id under "field".
func Field(id string) slog.Attr {
	return slog.String("field", id)
}

// Rule records the translation key of a failed rule under "rule".
func Rule(key string) slog.Attr {
	return slog.String("rule", key)
}

// Element records a page element id under "element".
func Element(id string) slog.Attr {
	return slog.String("element", id)
}

func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}
