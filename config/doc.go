// Package config loads diarize2kaldi configuration.
//
// Viper reads an optional YAML, JSON or TOML file, found either through an
// explicit path or by searching ./diarize2kaldi.yml, ./config/diarize2kaldi.yml
// and ~/.config/diarize2kaldi/config.yml. Variables from a .env file and the
// process environment follow, the latter winning:
//
//	D2K_CONVERT_SORT=true        -> convert.sort
//	D2K_CONVERT_ON_INVERTED=drop -> convert.on_inverted
//	D2K_LOGGING_LEVEL=debug      -> logging.level
//
// # Usage
//
//	cfg, files, err := config.Load(config.WithConfigFile(path))
package config
