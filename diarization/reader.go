package diarization

import (
	"context"

	"github.com/spf13/afero"

	"github.com/kbukum/diarize2kaldi/errors"
	"github.com/kbukum/diarize2kaldi/logger"
)

// Reader loads diarization result files from a filesystem.
type Reader struct {
	fs  afero.Fs
	log *logger.Logger
}

// NewReader creates a Reader over fs.
func NewReader(fs afero.Fs, log *logger.Logger) *Reader {
	return &Reader{
		fs:  fs,
		log: log.WithComponent("reader"),
	}
}

// Read reads and decodes the whole file at path.
func (r *Reader) Read(ctx context.Context, path string) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := afero.ReadFile(r.fs, path)
	if err != nil {
		return nil, errors.InputRead(path, err)
	}

	result, err := Decode(data)
	if err != nil {
		if appErr, ok := errors.AsAppError(err); ok {
			return nil, appErr.WithDetail(logger.FieldFile, path)
		}
		return nil, errors.InputRead(path, err)
	}

	r.log.WithContext(ctx).Debug("diarization result loaded", logger.Fields(
		logger.FieldFile, path,
		logger.FieldSegments, len(result.Segments),
		"speakers", result.NumSpeakers(),
	))
	return result, nil
}

// compile-time check
var _ Source = (*Reader)(nil)
