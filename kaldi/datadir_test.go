package kaldi

import (
	"reflect"
	"testing"
)

func TestDataDir_WavDedup(t *testing.T) {
	var d DataDir
	d.Add("fooA", []Corrected{
		{Speaker: 0, Start: 0, End: 1},
		{Speaker: 1, Start: 1, End: 2},
		{Speaker: 0, Start: 2, End: 3},
		{Speaker: 0, Start: 3, End: 4},
	})

	want := []WavEntry{{"00-fooA", "fooA"}, {"01-fooA", "fooA"}}
	if got := d.WavSCP(); !reflect.DeepEqual(got, want) {
		t.Errorf("WavSCP() = %v, want %v", got, want)
	}
	if n := len(d.Utterances()); n != 4 {
		t.Errorf("expected 4 utterances, got %d", n)
	}
}

func TestDataDir_RowAlignment(t *testing.T) {
	var d DataDir
	d.Add("r1", []Corrected{{Speaker: 2, Start: 0.5, End: 1.25}, {Speaker: 0, Start: 1.3, End: 2}})
	d.Add("r2", []Corrected{{Speaker: 1, Start: 0, End: 9.999}})

	for i, u := range d.Utterances() {
		seg := u.SegmentLine()
		utt := u.Utt2SpkLine()
		prefix := u.ID + " " + u.Channel
		if seg[:len(prefix)] != prefix || utt != prefix {
			t.Errorf("row %d misaligned: %q / %q", i, seg, utt)
		}
		if !utteranceIDPattern.MatchString(u.ID) {
			t.Errorf("row %d: malformed ID %q", i, u.ID)
		}
	}

	last := d.Utterances()[2]
	if got := last.SegmentLine(); got != "01-r2_000000-000999 01-r2 0.00 10.00" {
		t.Errorf("SegmentLine() = %q", got)
	}
}

func TestDataDir_Spk2Utt(t *testing.T) {
	var d DataDir
	d.Add("fooA", []Corrected{
		{Speaker: 1, Start: 0, End: 1},
		{Speaker: 0, Start: 1, End: 2},
		{Speaker: 1, Start: 2, End: 3},
	})

	got := d.Spk2Utt()
	want := []Speaker{
		{Channel: "01-fooA", Utterances: []string{"01-fooA_000000-000100", "01-fooA_000200-000300"}},
		{Channel: "00-fooA", Utterances: []string{"00-fooA_000100-000200"}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Spk2Utt() = %v, want %v", got, want)
	}
	if line := got[0].Line(); line != "01-fooA 01-fooA_000000-000100 01-fooA_000200-000300" {
		t.Errorf("Line() = %q", line)
	}
}

func TestDataDir_Sort(t *testing.T) {
	var d DataDir
	d.Add("b", []Corrected{{Speaker: 1, Start: 5, End: 6}, {Speaker: 0, Start: 6, End: 7}})
	d.Add("a", []Corrected{{Speaker: 0, Start: 2, End: 3}, {Speaker: 0, Start: 1, End: 2}})
	d.Sort()

	var channels []string
	for _, w := range d.WavSCP() {
		channels = append(channels, w.Channel)
	}
	if want := []string{"00-a", "00-b", "01-b"}; !reflect.DeepEqual(channels, want) {
		t.Errorf("wav.scp channels = %v, want %v", channels, want)
	}

	var ids []string
	for _, u := range d.Utterances() {
		ids = append(ids, u.ID)
	}
	want := []string{"00-a_000100-000200", "00-a_000200-000300", "00-b_000600-000700", "01-b_000500-000600"}
	if !reflect.DeepEqual(ids, want) {
		t.Errorf("utterance order = %v, want %v", ids, want)
	}

	// after sorting, wav.scp still deduplicates
	d.Add("a", []Corrected{{Speaker: 0, Start: 9, End: 10}})
	if n := len(d.WavSCP()); n != 3 {
		t.Errorf("expected 3 wav.scp rows, got %d", n)
	}
}

func TestDataDir_DuplicateUtterances(t *testing.T) {
	var d DataDir
	d.Add("r", []Corrected{
		{Speaker: 0, Start: 1.001, End: 2},
		{Speaker: 0, Start: 1.009, End: 2.001},
		{Speaker: 1, Start: 3, End: 4},
	})
	got := d.DuplicateUtterances()
	if want := []string{"00-r_000100-000200"}; !reflect.DeepEqual(got, want) {
		t.Errorf("DuplicateUtterances() = %v, want %v", got, want)
	}
}

func TestDataDir_UtterancesIsCopy(t *testing.T) {
	var d DataDir
	d.Add("r", []Corrected{{Speaker: 0, Start: 0, End: 1}})
	u := d.Utterances()
	u[0].ID = "changed"
	if d.Utterances()[0].ID == "changed" {
		t.Error("Utterances() should return a copy")
	}
}
