// Package logger provides structured logging for diarize2kaldi using zerolog.
//
// Log lines go to stderr by default so the tool's own output channels stay
// clean. Console and JSON formats are supported.
//
// # Configuration
//
//	logging:
//	  level: "info"
//	  format: "console"
//
// # Usage
//
//	log := logger.NewWithWriter(&cfg, "diarize2kaldi", os.Stderr).WithComponent("converter")
//	log.Info("recording converted", logger.Fields(logger.FieldRecording, id))
package logger
