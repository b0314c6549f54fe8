package kaldi

import "github.com/kbukum/diarize2kaldi/validation"

// Policies for segments whose start is not before their end after repair.
const (
	// InvertedError aborts the conversion.
	InvertedError = "error"
	// InvertedDrop skips the segment and logs a warning.
	InvertedDrop = "drop"
	// InvertedKeep emits the segment unchanged and logs a warning.
	InvertedKeep = "keep"
)

// DefaultSuffix is stripped from input file names to form recording IDs.
const DefaultSuffix = ".json"

// Config controls how diarization results are converted.
type Config struct {
	// Suffix is the fixed 5-character file name suffix removed to derive
	// the recording ID.
	Suffix string `yaml:"suffix" mapstructure:"suffix" validate:"len=5"`
	// OnInverted selects what happens to segments with start >= end.
	OnInverted string `yaml:"on_inverted" mapstructure:"on_inverted" validate:"oneof=error drop keep"`
	// AllowDuplicateRecordings accepts several input files with the same
	// recording ID; their wav.scp rows are merged.
	AllowDuplicateRecordings bool `yaml:"allow_duplicate_recordings" mapstructure:"allow_duplicate_recordings"`
	// Sort orders every table by its key in byte order before writing.
	Sort bool `yaml:"sort" mapstructure:"sort"`
	// Spk2Utt also writes the spk2utt table.
	Spk2Utt bool `yaml:"spk2utt" mapstructure:"spk2utt"`
}

// ApplyDefaults fills in zero-valued fields.
func (c *Config) ApplyDefaults() {
	if c.Suffix == "" {
		c.Suffix = DefaultSuffix
	}
	if c.OnInverted == "" {
		c.OnInverted = InvertedError
	}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	return validation.Validate(c)
}
