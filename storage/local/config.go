package local

import "fmt"

// DefaultDirPerm is the permission used when creating the output directory.
const DefaultDirPerm = 0o755

// DefaultFilePerm is the permission used for written tables.
const DefaultFilePerm = 0o644

// Config holds local filesystem storage configuration.
type Config struct {
	// BasePath is the output directory.
	BasePath string `mapstructure:"base_path" json:"base_path"`
	// CreateDir creates BasePath when it does not exist.
	CreateDir bool `mapstructure:"create_dir" json:"create_dir"`
}

// Validate checks that the local configuration is valid.
func (c *Config) Validate() error {
	if c.BasePath == "" {
		return fmt.Errorf("local: base_path is required")
	}
	return nil
}
