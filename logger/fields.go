package logger

import (
	"time"
)

// Standard field key constants for structured logging.
const (
	FieldComponent  = "component"
	FieldRunID      = "run_id"
	FieldOperation  = "operation"
	FieldError      = "error"
	FieldCode       = "code"
	FieldDuration   = "duration_ms"
	FieldFile       = "file"
	FieldRecording  = "recording"
	FieldRecordings = "recordings"
	FieldSegments   = "segments"
	FieldRepaired   = "repaired"
	FieldDropped    = "dropped"
	FieldTable      = "table"
	FieldRows       = "rows"
	FieldOutputDir  = "output_dir"
)

// Fields builds a map[string]interface{} from alternating key-value pairs.
//
//	logger.Info("done", logger.Fields("recording", id, "segments", 42))
func Fields(kvs ...interface{}) map[string]interface{} {
	m := make(map[string]interface{}, len(kvs)/2)
	for i := 0; i < len(kvs)-1; i += 2 {
		if key, ok := kvs[i].(string); ok {
			m[key] = kvs[i+1]
		}
	}
	return m
}

// DurationFields creates fields for a timed operation.
func DurationFields(op string, d time.Duration) map[string]interface{} {
	return map[string]interface{}{
		FieldOperation: op,
		FieldDuration:  d.Milliseconds(),
	}
}
