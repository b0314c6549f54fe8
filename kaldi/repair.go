package kaldi

import (
	"github.com/kbukum/diarize2kaldi/diarization"
	"github.com/kbukum/diarize2kaldi/errors"
)

// Nudge is the gap in seconds placed after the previous segment's end when a
// segment has to be moved forward.
const Nudge = 0.01

// Corrected is a segment after boundary repair.
type Corrected struct {
	// Index is the position of the segment in the input sequence.
	Index   int
	Speaker int
	Start   float64
	End     float64
	// Repaired is set when Start was moved forward.
	Repaired bool
}

// Inverted reports whether the interval is empty or reversed.
func (c Corrected) Inverted() bool {
	return c.Start >= c.End
}

// Repair makes segment starts non-decreasing relative to the preceding
// segment's end in one forward pass.
//
// A segment starting before the previous segment's original end gets
// start = previous end + Nudge. End times are never changed, and the running
// end is always the original end even when that end is smaller than the one
// before it. The input slice is not modified.
func Repair(segments []diarization.Segment) []Corrected {
	out := make([]Corrected, len(segments))
	prev := 0.0
	for i, s := range segments {
		c := Corrected{Index: i, Speaker: s.Speaker, Start: s.Start, End: s.End}
		if prev > s.Start {
			c.Start = prev + Nudge
			c.Repaired = true
		}
		prev = s.End
		out[i] = c
	}
	return out
}

// ApplyPolicy handles inverted intervals in corrected according to policy.
// It returns the segments to emit and the number dropped.
func ApplyPolicy(recording string, corrected []Corrected, policy string) ([]Corrected, int, error) {
	kept := make([]Corrected, 0, len(corrected))
	dropped := 0
	for _, c := range corrected {
		if !c.Inverted() {
			kept = append(kept, c)
			continue
		}
		switch policy {
		case InvertedDrop:
			dropped++
		case InvertedKeep:
			kept = append(kept, c)
		default:
			return nil, 0, errors.InvertedSegment(recording, c.Index, c.Start, c.End)
		}
	}
	return kept, dropped, nil
}
