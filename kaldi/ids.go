package kaldi

import (
	"fmt"
	"strconv"
)

// Centiseconds converts seconds to whole centiseconds, truncating toward zero.
// 1.509 becomes 150, not 151.
func Centiseconds(seconds float64) int {
	return int(seconds * 100)
}

// FormatSeconds renders a boundary for the segments table with two decimals.
// It rounds, so it may disagree with Centiseconds in the last digit.
func FormatSeconds(seconds float64) string {
	return strconv.FormatFloat(seconds, 'f', 2, 64)
}

// SpeakerChannelID identifies one diarized speaker within one recording.
func SpeakerChannelID(speaker int, recording string) string {
	return fmt.Sprintf("%02d-%s", speaker, recording)
}

// UtteranceID identifies one segment. Its boundary fields are the truncated
// centiseconds of start and end, zero padded to six digits.
func UtteranceID(speaker int, recording string, start, end float64) string {
	return fmt.Sprintf("%s_%06d-%06d", SpeakerChannelID(speaker, recording), Centiseconds(start), Centiseconds(end))
}
