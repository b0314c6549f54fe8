// Package validation checks configuration structs using struct tags.
//
//	type Config struct {
//	    OnInverted string `mapstructure:"on_inverted" validate:"oneof=error drop keep"`
//	}
//	err := validation.Validate(cfg)
//
// Failures are returned as INVALID_CONFIG errors listing every offending field.
package validation
