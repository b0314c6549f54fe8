package diarization

import "context"

// Segment represents a speaker-attributed time range.
type Segment struct {
	// Speaker is the diarizer's speaker index within the recording.
	Speaker int
	// Start is the segment start time in seconds.
	Start float64
	// End is the segment end time in seconds.
	End float64
}

// Result holds one recording's segments in emission order. The order is not
// guaranteed to be sorted and segments may overlap.
type Result struct {
	Segments []Segment
}

// NumSpeakers returns the number of distinct speaker indices in the result.
func (r *Result) NumSpeakers() int {
	seen := make(map[int]struct{})
	for _, s := range r.Segments {
		seen[s.Speaker] = struct{}{}
	}
	return len(seen)
}

// Source loads the diarization result stored at path.
type Source interface {
	Read(ctx context.Context, path string) (*Result, error)
}
