package kaldi

import (
	"bytes"
	"context"

	"github.com/kbukum/diarize2kaldi/errors"
	"github.com/kbukum/diarize2kaldi/logger"
	"github.com/kbukum/diarize2kaldi/storage"
)

// Table file names inside a Kaldi data directory.
const (
	TableWavSCP   = "wav.scp"
	TableSegments = "segments"
	TableUtt2Spk  = "utt2spk"
	TableSpk2Utt  = "spk2utt"
)

// table renders its rows into a buffer and returns the row count.
type table struct {
	name  string
	lines func(*bytes.Buffer) int
}

// Writer stores the tables of a DataDir.
type Writer struct {
	store   storage.Storage
	spk2utt bool
	log     *logger.Logger
}

// NewWriter creates a Writer over store. When spk2utt is set the spk2utt
// table is written after the three required ones.
func NewWriter(store storage.Storage, spk2utt bool, log *logger.Logger) *Writer {
	return &Writer{
		store:   store,
		spk2utt: spk2utt,
		log:     log.WithComponent("writer"),
	}
}

// Write stores wav.scp, segments and utt2spk in that order, followed by
// spk2utt when enabled. Each row ends with "\n" and there is no header.
// A failure leaves the tables written before it in place.
func (w *Writer) Write(ctx context.Context, dir *DataDir) error {
	wav := dir.WavSCP()
	utts := dir.Utterances()

	tables := []table{
		{TableWavSCP, func(b *bytes.Buffer) int {
			for _, e := range wav {
				writeLine(b, e.Line())
			}
			return len(wav)
		}},
		{TableSegments, func(b *bytes.Buffer) int {
			for _, u := range utts {
				writeLine(b, u.SegmentLine())
			}
			return len(utts)
		}},
		{TableUtt2Spk, func(b *bytes.Buffer) int {
			for _, u := range utts {
				writeLine(b, u.Utt2SpkLine())
			}
			return len(utts)
		}},
	}
	if w.spk2utt {
		tables = append(tables, table{TableSpk2Utt, func(b *bytes.Buffer) int {
			speakers := dir.Spk2Utt()
			for _, s := range speakers {
				writeLine(b, s.Line())
			}
			return len(speakers)
		}})
	}

	log := w.log.WithContext(ctx)
	for _, t := range tables {
		var buf bytes.Buffer
		rows := t.lines(&buf)
		if err := w.store.Upload(ctx, t.name, &buf); err != nil {
			return errors.OutputWrite(t.name, err)
		}
		log.Debug("table written", logger.Fields(
			logger.FieldTable, t.name,
			logger.FieldRows, rows,
		))
	}
	return nil
}

func writeLine(b *bytes.Buffer, line string) {
	b.WriteString(line)
	b.WriteByte('\n')
}
