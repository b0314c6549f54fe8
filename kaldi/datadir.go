package kaldi

import (
	"sort"
	"strings"

	"github.com/kbukum/diarize2kaldi/util"
)

// WavEntry is one wav.scp row. The speaker channel stands in for the audio
// source, so a recording with n speakers has n rows.
type WavEntry struct {
	Channel   string
	Recording string
}

// Line renders the row without a trailing newline.
func (w WavEntry) Line() string {
	return w.Channel + " " + w.Recording
}

// Utterance is one emitted segment. It backs both the segments row and the
// utt2spk row at the same index.
type Utterance struct {
	ID      string
	Channel string
	Start   float64
	End     float64
}

// SegmentLine renders the segments row.
func (u Utterance) SegmentLine() string {
	return u.ID + " " + u.Channel + " " + FormatSeconds(u.Start) + " " + FormatSeconds(u.End)
}

// Utt2SpkLine renders the utt2spk row.
func (u Utterance) Utt2SpkLine() string {
	return u.ID + " " + u.Channel
}

// DataDir accumulates the tables of a Kaldi data directory in memory.
// The zero value is empty and ready to use.
type DataDir struct {
	wav        util.OrderedSet[WavEntry]
	utterances []Utterance
}

// Add appends one utterance per corrected segment of recording and records
// the speaker channel in wav.scp. Rows keep the order of corrected.
func (d *DataDir) Add(recording string, corrected []Corrected) {
	for _, c := range corrected {
		channel := SpeakerChannelID(c.Speaker, recording)
		d.wav.Add(WavEntry{Channel: channel, Recording: recording})
		d.utterances = append(d.utterances, Utterance{
			ID:      UtteranceID(c.Speaker, recording, c.Start, c.End),
			Channel: channel,
			Start:   c.Start,
			End:     c.End,
		})
	}
}

// WavSCP returns the distinct wav.scp rows in first-seen order.
func (d *DataDir) WavSCP() []WavEntry {
	return d.wav.Items()
}

// Utterances returns the segments/utt2spk rows in emission order.
func (d *DataDir) Utterances() []Utterance {
	out := make([]Utterance, len(d.utterances))
	copy(out, d.utterances)
	return out
}

// Spk2Utt groups utterance IDs by speaker channel. Channels appear in the
// order of their first utterance and utterances keep their row order.
func (d *DataDir) Spk2Utt() []Speaker {
	var order util.OrderedSet[string]
	groups := make(map[string][]string)
	for _, u := range d.utterances {
		order.Add(u.Channel)
		groups[u.Channel] = append(groups[u.Channel], u.ID)
	}
	out := make([]Speaker, 0, order.Len())
	for _, ch := range order.Items() {
		out = append(out, Speaker{Channel: ch, Utterances: groups[ch]})
	}
	return out
}

// Speaker is one spk2utt row.
type Speaker struct {
	Channel    string
	Utterances []string
}

// Line renders the row without a trailing newline.
func (s Speaker) Line() string {
	return s.Channel + " " + strings.Join(s.Utterances, " ")
}

// DuplicateUtterances returns utterance IDs that occur more than once.
func (d *DataDir) DuplicateUtterances() []string {
	seen := make(map[string]int, len(d.utterances))
	var dups util.OrderedSet[string]
	for _, u := range d.utterances {
		seen[u.ID]++
		if seen[u.ID] == 2 {
			dups.Add(u.ID)
		}
	}
	return dups.Items()
}

// Sort orders wav.scp by channel and the utterance rows by utterance ID,
// comparing bytes as `LC_ALL=C sort` does. segments and utt2spk stay aligned
// since both are rendered from the same rows. The sort is stable.
func (d *DataDir) Sort() {
	wav := d.wav.Items()
	sort.SliceStable(wav, func(i, j int) bool { return wav[i].Channel < wav[j].Channel })
	d.wav = *util.NewOrderedSet(wav...)

	sort.SliceStable(d.utterances, func(i, j int) bool {
		return d.utterances[i].ID < d.utterances[j].ID
	})
}
