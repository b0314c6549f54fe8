package diarization

import (
	"bytes"
	"fmt"
	"math"

	"github.com/goccy/go-json"

	"github.com/kbukum/diarize2kaldi/errors"
)

// MaxSeconds bounds segment boundaries so their centisecond values fit in
// an int. It is about 31,700 years.
const MaxSeconds = 1e12

type document struct {
	Segments *[]json.RawMessage `json:"segments"`
}

// Decode parses a diarization result document.
//
// Malformed JSON is returned as a plain error. Entries that are valid JSON but
// not [non-negative integer, number, number] triples are DATA_SHAPE errors.
func Decode(data []byte) (*Result, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode diarization result: %w", err)
	}
	if doc.Segments == nil {
		return nil, errors.New(errors.ErrCodeDataShape, `missing "segments" array`)
	}

	raw := *doc.Segments
	result := &Result{Segments: make([]Segment, 0, len(raw))}
	for i, entry := range raw {
		seg, err := decodeSegment(i, entry)
		if err != nil {
			return nil, err
		}
		result.Segments = append(result.Segments, seg)
	}
	return result, nil
}

func decodeSegment(index int, entry json.RawMessage) (Segment, error) {
	dec := json.NewDecoder(bytes.NewReader(entry))
	dec.UseNumber()

	var fields []any
	if err := dec.Decode(&fields); err != nil {
		return Segment{}, errors.DataShape(index, "expected [speaker, start, end] array").WithCause(err)
	}
	if len(fields) != 3 {
		return Segment{}, errors.DataShape(index, fmt.Sprintf("expected 3 elements, got %d", len(fields)))
	}

	speaker, err := speakerIndex(fields[0])
	if err != nil {
		return Segment{}, errors.DataShape(index, err.Error())
	}
	start, err := seconds("start", fields[1])
	if err != nil {
		return Segment{}, errors.DataShape(index, err.Error())
	}
	end, err := seconds("end", fields[2])
	if err != nil {
		return Segment{}, errors.DataShape(index, err.Error())
	}

	return Segment{Speaker: speaker, Start: start, End: end}, nil
}

func speakerIndex(v any) (int, error) {
	n, ok := v.(json.Number)
	if !ok {
		return 0, fmt.Errorf("speaker index must be an integer, got %T", v)
	}
	i, err := n.Int64()
	if err != nil {
		return 0, fmt.Errorf("speaker index must be an integer, got %s", n)
	}
	if i < 0 {
		return 0, fmt.Errorf("speaker index must be non-negative, got %d", i)
	}
	return int(i), nil
}

func seconds(name string, v any) (float64, error) {
	n, ok := v.(json.Number)
	if !ok {
		return 0, fmt.Errorf("%s must be a number, got %T", name, v)
	}
	f, err := n.Float64()
	if err != nil {
		return 0, fmt.Errorf("%s must be a number, got %s", name, n)
	}
	if math.Abs(f) > MaxSeconds {
		return 0, fmt.Errorf("%s must be at most %g seconds in magnitude, got %s", name, MaxSeconds, n)
	}
	return f, nil
}
