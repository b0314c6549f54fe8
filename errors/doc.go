// Package errors provides the structured error type used across diarize2kaldi.
// Every failure that reaches the command line carries an ErrorCode and the
// process exit status that goes with it.
package errors
