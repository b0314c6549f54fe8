// Package diarization defines the speaker diarization result model and reads
// results produced by an external diarizer.
//
// A result file is a JSON document whose "segments" key holds an array of
// [speaker_index, start_seconds, end_seconds] triples in the order the
// diarizer emitted them:
//
//	{"segments": [[0, 0.0, 1.5], [1, 1.2, 3.0]]}
//
// # Usage
//
//	r := diarization.NewReader(afero.NewOsFs(), log)
//	result, err := r.Read(ctx, "fooA.json")
package diarization
