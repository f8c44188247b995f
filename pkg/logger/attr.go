package logger

import (
	"log/slog"
	"strconv"
)

func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups non-nil errors under "errors", or returns an empty Attr.
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

// Error records err under "error", or returns an empty Attr for nil.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Form records the form name, e.g. "transaction".
func Form(name string) slog.Attr {
	return slog.String("form", name)
}

// FormID records the form session identifier.
func FormID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("form_id", id)
}

func Field(name string) slog.Attr {
	return slog.String("field", name)
}

func Rule(kind string) slog.Attr {
	return slog.String("rule", kind)
}

// FieldErrors records the active error map under "field_errors".
func FieldErrors(errs map[string]string) slog.Attr {
	if len(errs) == 0 {
		return slog.Attr{}
	}
	as := make([]slog.Attr, 0, len(errs))
	for field, msg := range errs {
		as = append(as, slog.String(field, msg))
	}
	return slog.Attr{Key: "field_errors", Value: slog.GroupValue(as...)}
}
