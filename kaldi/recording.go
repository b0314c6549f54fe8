package kaldi

import (
	"path/filepath"
	"strings"

	"github.com/kbukum/diarize2kaldi/errors"
)

// RecordingID derives the recording identifier from an input path by taking
// its base name and removing suffix. Case is preserved.
//
// Names that do not end in suffix, consist only of suffix, or contain
// whitespace cannot form a Kaldi ID and are rejected.
func RecordingID(path, suffix string) (string, error) {
	base := filepath.Base(path)
	if !strings.HasSuffix(base, suffix) || len(base) == len(suffix) {
		return "", errors.InvalidInputName(path, suffix)
	}
	id := base[:len(base)-len(suffix)]
	if strings.ContainsAny(id, " \t\r\n") {
		return "", errors.InvalidInputName(path, suffix).
			WithDetail("reason", "recording ID contains whitespace")
	}
	return id, nil
}
