package kaldi

import (
	"context"
	"sort"
	"time"

	"github.com/kbukum/diarize2kaldi/diarization"
	"github.com/kbukum/diarize2kaldi/errors"
	"github.com/kbukum/diarize2kaldi/logger"
)

// Stats summarizes one conversion.
type Stats struct {
	Recordings int
	Segments   int
	Repaired   int
	Dropped    int
}

// Converter builds a DataDir from diarization result files.
type Converter struct {
	cfg    Config
	source diarization.Source
	log    *logger.Logger
}

// NewConverter creates a Converter. cfg is copied and defaulted.
func NewConverter(cfg Config, source diarization.Source, log *logger.Logger) *Converter {
	cfg.ApplyDefaults()
	return &Converter{
		cfg:    cfg,
		source: source,
		log:    log.WithComponent("converter"),
	}
}

// Convert processes paths in lexicographic order and returns the assembled
// data directory. paths itself is left untouched. The first failing file
// aborts the conversion.
func (c *Converter) Convert(ctx context.Context, paths []string) (*DataDir, Stats, error) {
	start := time.Now()
	log := c.log.WithContext(ctx)

	ordered := make([]string, len(paths))
	copy(ordered, paths)
	sort.Strings(ordered)

	dir := &DataDir{}
	var stats Stats
	seen := make(map[string]string, len(ordered))

	for _, path := range ordered {
		if err := ctx.Err(); err != nil {
			return nil, stats, err
		}

		rec, err := RecordingID(path, c.cfg.Suffix)
		if err != nil {
			return nil, stats, err
		}
		if first, dup := seen[rec]; dup {
			if !c.cfg.AllowDuplicateRecordings {
				return nil, stats, errors.DuplicateRecording(rec, first, path)
			}
			log.Warn("duplicate recording merged", logger.Fields(
				logger.FieldRecording, rec,
				logger.FieldFile, path,
				"first", first,
			))
		} else {
			seen[rec] = path
			stats.Recordings++
		}

		result, err := c.source.Read(ctx, path)
		if err != nil {
			return nil, stats, err
		}

		corrected := Repair(result.Segments)
		kept, dropped, err := ApplyPolicy(rec, corrected, c.cfg.OnInverted)
		if err != nil {
			if appErr, ok := errors.AsAppError(err); ok {
				return nil, stats, appErr.WithDetail(logger.FieldFile, path)
			}
			return nil, stats, err
		}
		repaired := 0
		for _, k := range corrected {
			if k.Repaired {
				repaired++
			}
			if k.Inverted() && c.cfg.OnInverted != InvertedError {
				log.Warn("inverted segment", logger.Fields(
					logger.FieldRecording, rec,
					"segment", k.Index,
					"start", k.Start,
					"end", k.End,
					"policy", c.cfg.OnInverted,
				))
			}
		}

		dir.Add(rec, kept)
		stats.Segments += len(kept)
		stats.Repaired += repaired
		stats.Dropped += dropped

		log.Debug("recording converted", logger.Fields(
			logger.FieldRecording, rec,
			logger.FieldSegments, len(kept),
			logger.FieldRepaired, repaired,
			logger.FieldDropped, dropped,
		))
	}

	if dups := dir.DuplicateUtterances(); len(dups) > 0 {
		log.Warn("utterance IDs are not unique", logger.Fields(
			"count", len(dups),
			"first", dups[0],
		))
	}
	if c.cfg.Sort {
		dir.Sort()
	}

	fields := logger.DurationFields("convert", time.Since(start))
	fields[logger.FieldRecordings] = stats.Recordings
	fields[logger.FieldSegments] = stats.Segments
	fields[logger.FieldRepaired] = stats.Repaired
	fields[logger.FieldDropped] = stats.Dropped
	log.Info("conversion finished", fields)

	return dir, stats, nil
}
