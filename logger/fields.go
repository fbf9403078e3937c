package logger

import "time"

// Standard field key constants for structured logging.
const (
	FieldComponent = "component"
	FieldCallID    = "call_id"
	FieldKey       = "key"
	FieldStatus    = "status"
	FieldError     = "error"
	FieldDuration  = "duration_ms"
	FieldNamespace = "namespace"
)

// Fields builds a map[string]any from alternating key-value pairs.
//
//	logger.Fields("key", "user", "status", "success")
func Fields(kvs ...any) map[string]any {
	m := make(map[string]any, len(kvs)/2)
	for i := 0; i < len(kvs)-1; i += 2 {
		if key, ok := kvs[i].(string); ok {
			m[key] = kvs[i+1]
		}
	}
	return m
}

// ErrorFields creates fields for an operation that failed.
func ErrorFields(key string, err error) map[string]any {
	return map[string]any{
		FieldKey:   key,
		FieldError: err.Error(),
	}
}

// DurationFields creates fields for a timed call.
func DurationFields(key string, d time.Duration) map[string]any {
	return map[string]any{
		FieldKey:      key,
		FieldDuration: d.Milliseconds(),
	}
}
