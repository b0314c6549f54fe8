package config

import (
	"github.com/kbukum/diarize2kaldi/kaldi"
	"github.com/kbukum/diarize2kaldi/logger"
	"github.com/kbukum/diarize2kaldi/validation"
)

// AppName names the config and env files searched for and the log tool tag.
const AppName = "diarize2kaldi"

// AppConfig is the complete configuration of the converter.
//
//	logging:
//	  level: debug
//	  format: json
//	convert:
//	  sort: true
//	  on_inverted: drop
type AppConfig struct {
	Logging logger.Config `yaml:"logging" mapstructure:"logging"`
	Convert kaldi.Config  `yaml:"convert" mapstructure:"convert"`
}

// ApplyDefaults applies default values to every section.
func (c *AppConfig) ApplyDefaults() {
	c.Logging.ApplyDefaults()
	c.Convert.ApplyDefaults()
}

// Validate validates every section.
func (c *AppConfig) Validate() error {
	return validation.Validate(c)
}

// Load reads the application configuration and applies defaults. It does not
// validate, so callers can apply flag overrides first.
func Load(opts ...LoaderOption) (*AppConfig, ResolvedFiles, error) {
	cfg := &AppConfig{}
	files, err := LoadConfig(AppName, cfg, opts...)
	if err != nil {
		return nil, files, err
	}
	cfg.ApplyDefaults()
	return cfg, files, nil
}
