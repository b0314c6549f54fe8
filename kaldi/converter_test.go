package kaldi

import (
	"context"
	"fmt"
	"reflect"
	"testing"

	"github.com/kbukum/diarize2kaldi/diarization"
	"github.com/kbukum/diarize2kaldi/errors"
	"github.com/kbukum/diarize2kaldi/logger"
)

// memSource serves results from memory and records the read order.
type memSource struct {
	results map[string]*diarization.Result
	reads   []string
}

func (m *memSource) Read(_ context.Context, path string) (*diarization.Result, error) {
	m.reads = append(m.reads, path)
	r, ok := m.results[path]
	if !ok {
		return nil, errors.InputRead(path, fmt.Errorf("no such file"))
	}
	return r, nil
}

func segs(s ...diarization.Segment) *diarization.Result {
	return &diarization.Result{Segments: s}
}

func seg(speaker int, start, end float64) diarization.Segment {
	return diarization.Segment{Speaker: speaker, Start: start, End: end}
}

func segmentLines(d *DataDir) []string {
	var out []string
	for _, u := range d.Utterances() {
		out = append(out, u.SegmentLine())
	}
	return out
}

func TestConvert_RoundTrip(t *testing.T) {
	src := &memSource{results: map[string]*diarization.Result{
		"fooA.json": segs(seg(0, 0.0, 1.5), seg(1, 1.2, 3.0), seg(0, 3.0, 4.0)),
	}}
	c := NewConverter(Config{}, src, logger.Nop())

	dir, stats, err := c.Convert(context.Background(), []string{"fooA.json"})
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}

	want := []string{
		"00-fooA_000000-000150 00-fooA 0.00 1.50",
		"01-fooA_000151-000300 01-fooA 1.51 3.00",
		"00-fooA_000300-000400 00-fooA 3.00 4.00",
	}
	if got := segmentLines(dir); !reflect.DeepEqual(got, want) {
		t.Errorf("segments = %q, want %q", got, want)
	}
	if want := (Stats{Recordings: 1, Segments: 3, Repaired: 1}); stats != want {
		t.Errorf("stats = %+v, want %+v", stats, want)
	}
}

func TestConvert_MultiFile(t *testing.T) {
	src := &memSource{results: map[string]*diarization.Result{
		"a.json": segs(seg(0, 0, 1)),
		"b.json": segs(seg(0, 0, 2)),
	}}
	dir, _, err := NewConverter(Config{}, src, logger.Nop()).Convert(context.Background(), []string{"a.json", "b.json"})
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if n := len(dir.WavSCP()); n != 2 {
		t.Errorf("expected 2 wav.scp rows, got %d", n)
	}
	if n := len(dir.Utterances()); n != 2 {
		t.Errorf("expected 2 segments/utt2spk rows, got %d", n)
	}
}

func TestConvert_SortsPaths(t *testing.T) {
	results := map[string]*diarization.Result{
		"c.json": segs(seg(0, 0, 1)),
		"a.json": segs(seg(1, 0, 1)),
		"b.json": segs(seg(0, 2, 3)),
	}
	paths := []string{"c.json", "a.json", "b.json"}

	src := &memSource{results: results}
	unsorted, _, err := NewConverter(Config{}, src, logger.Nop()).Convert(context.Background(), paths)
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"a.json", "b.json", "c.json"}; !reflect.DeepEqual(src.reads, want) {
		t.Errorf("read order = %v, want %v", src.reads, want)
	}
	if paths[0] != "c.json" {
		t.Error("caller's path slice was reordered")
	}

	sorted, _, err := NewConverter(Config{}, &memSource{results: results}, logger.Nop()).
		Convert(context.Background(), []string{"a.json", "b.json", "c.json"})
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(segmentLines(unsorted), segmentLines(sorted)) {
		t.Error("output depends on argument order")
	}
}

func TestConvert_DuplicateRecording(t *testing.T) {
	results := map[string]*diarization.Result{
		"x/fooA.json": segs(seg(0, 0, 1)),
		"y/fooA.json": segs(seg(0, 2, 3), seg(1, 3, 4)),
	}
	paths := []string{"y/fooA.json", "x/fooA.json"}

	_, _, err := NewConverter(Config{}, &memSource{results: results}, logger.Nop()).
		Convert(context.Background(), paths)
	if !errors.IsCode(err, errors.ErrCodeDuplicateRecording) {
		t.Fatalf("expected DUPLICATE_RECORDING, got %v", err)
	}

	dir, stats, err := NewConverter(Config{AllowDuplicateRecordings: true}, &memSource{results: results}, logger.Nop()).
		Convert(context.Background(), paths)
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	want := []WavEntry{{"00-fooA", "fooA"}, {"01-fooA", "fooA"}}
	if got := dir.WavSCP(); !reflect.DeepEqual(got, want) {
		t.Errorf("WavSCP() = %v, want %v", got, want)
	}
	if stats.Recordings != 1 || stats.Segments != 3 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestConvert_InvertedPolicies(t *testing.T) {
	results := map[string]*diarization.Result{
		"r.json": segs(seg(0, 0, 10), seg(1, 2, 4), seg(0, 3, 5)),
	}

	tests := []struct {
		policy   string
		wantRows int
		wantCode errors.ErrorCode
	}{
		{policy: "", wantCode: errors.ErrCodeInvertedSegment},
		{policy: InvertedError, wantCode: errors.ErrCodeInvertedSegment},
		{policy: InvertedDrop, wantRows: 2},
		{policy: InvertedKeep, wantRows: 3},
	}
	for _, tc := range tests {
		t.Run("policy="+tc.policy, func(t *testing.T) {
			c := NewConverter(Config{OnInverted: tc.policy}, &memSource{results: results}, logger.Nop())
			dir, stats, err := c.Convert(context.Background(), []string{"r.json"})
			if tc.wantCode != "" {
				if !errors.IsCode(err, tc.wantCode) {
					t.Fatalf("expected %s, got %v", tc.wantCode, err)
				}
				appErr, _ := errors.AsAppError(err)
				if appErr.Details["file"] != "r.json" {
					t.Errorf("expected file detail, got %v", appErr.Details)
				}
				return
			}
			if err != nil {
				t.Fatalf("Convert() error = %v", err)
			}
			if n := len(dir.Utterances()); n != tc.wantRows {
				t.Errorf("expected %d rows, got %d", tc.wantRows, n)
			}
			if tc.policy == InvertedDrop && stats.Dropped != 1 {
				t.Errorf("expected 1 dropped segment, got %d", stats.Dropped)
			}
		})
	}
}

func TestConvert_DroppedSegmentStillAdvancesPrevious(t *testing.T) {
	src := &memSource{results: map[string]*diarization.Result{
		"r.json": segs(seg(0, 0, 10), seg(1, 2, 4), seg(0, 3, 5)),
	}}
	dir, _, err := NewConverter(Config{OnInverted: InvertedDrop}, src, logger.Nop()).
		Convert(context.Background(), []string{"r.json"})
	if err != nil {
		t.Fatal(err)
	}
	// the third segment is nudged past the dropped one's end, 4.00
	want := []string{"00-r_000000-001000 00-r 0.00 10.00", "00-r_000401-000500 00-r 4.01 5.00"}
	if got := segmentLines(dir); !reflect.DeepEqual(got, want) {
		t.Errorf("segments = %q, want %q", got, want)
	}
}

func TestConvert_Errors(t *testing.T) {
	src := &memSource{results: map[string]*diarization.Result{"a.json": segs(seg(0, 0, 1))}}

	tests := []struct {
		name  string
		paths []string
		code  errors.ErrorCode
	}{
		{name: "bad suffix", paths: []string{"a.json", "b.txt"}, code: errors.ErrCodeInputRead},
		{name: "missing file", paths: []string{"a.json", "missing.json"}, code: errors.ErrCodeInputRead},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := NewConverter(Config{}, src, logger.Nop()).Convert(context.Background(), tc.paths)
			if !errors.IsCode(err, tc.code) {
				t.Errorf("expected %s, got %v", tc.code, err)
			}
		})
	}
}

func TestConvert_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	src := &memSource{results: map[string]*diarization.Result{"a.json": segs(seg(0, 0, 1))}}
	_, _, err := NewConverter(Config{}, src, logger.Nop()).Convert(ctx, []string{"a.json"})
	if err != context.Canceled {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if len(src.reads) != 0 {
		t.Error("expected no reads after cancellation")
	}
}

func TestConvert_Sort(t *testing.T) {
	src := &memSource{results: map[string]*diarization.Result{
		"a.json": segs(seg(1, 0, 1), seg(0, 1, 2)),
	}}
	dir, _, err := NewConverter(Config{Sort: true}, src, logger.Nop()).Convert(context.Background(), []string{"a.json"})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"00-a_000100-000200 00-a 1.00 2.00", "01-a_000000-000100 01-a 0.00 1.00"}
	if got := segmentLines(dir); !reflect.DeepEqual(got, want) {
		t.Errorf("segments = %q, want %q", got, want)
	}
}
