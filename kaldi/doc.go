// Package kaldi turns diarization results into a Kaldi data directory.
//
// For every recording the segment sequence is repaired in one forward pass:
// a segment starting before the previous segment's end is moved to that end
// plus 10ms. Each repaired segment becomes one utterance whose speaker is the
// (diarized speaker, recording) pair, written to three tables:
//
//	wav.scp   <speaker-channel-id> <recording-id>
//	segments  <utterance-id> <speaker-channel-id> <start> <end>
//	utt2spk   <utterance-id> <speaker-channel-id>
//
// A speaker channel ID is "NN-<recording>", an utterance ID is
// "NN-<recording>_SSSSSS-EEEEEE" with boundaries in truncated centiseconds.
package kaldi
