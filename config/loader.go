package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/afero"
	"github.com/spf13/viper"

	"github.com/kbukum/diarize2kaldi/errors"
)

// EnvPrefix marks environment variables that override configuration keys.
// D2K_CONVERT_SORT=true sets convert.sort.
const EnvPrefix = "D2K_"

// Resolver finds the config and env files for an application.
type Resolver struct {
	Fs      afero.Fs
	HomeDir string
}

// ResolvedFiles contains the resolved config and env file paths. Empty
// fields mean no file was found.
type ResolvedFiles struct {
	ConfigFile string
	EnvFile    string
}

// ResolveFiles returns the explicit paths from opts where given and searches
// the standard locations for the rest.
func (r *Resolver) ResolveFiles(name string, opts LoaderConfig) ResolvedFiles {
	resolved := ResolvedFiles{
		ConfigFile: opts.ConfigFile,
		EnvFile:    opts.EnvFile,
	}
	if resolved.ConfigFile == "" {
		resolved.ConfigFile = r.first(r.configSearchPaths(name))
	}
	if resolved.EnvFile == "" {
		resolved.EnvFile = r.first([]string{
			fmt.Sprintf(".env.%s", name),
			".env",
			"config/.env",
		})
	}
	return resolved
}

func (r *Resolver) configSearchPaths(name string) []string {
	paths := []string{
		fmt.Sprintf("%s.yml", name),
		fmt.Sprintf("%s.yaml", name),
		filepath.Join("config", name+".yml"),
		filepath.Join("config", name+".yaml"),
	}
	if r.HomeDir != "" {
		paths = append(paths, filepath.Join(r.HomeDir, ".config", name, "config.yml"))
	}
	return paths
}

func (r *Resolver) first(paths []string) string {
	for _, p := range paths {
		if ok, _ := afero.Exists(r.Fs, p); ok {
			return p
		}
	}
	return ""
}

// LoaderConfig holds dependencies and optional file overrides.
type LoaderConfig struct {
	Fs         afero.Fs
	ConfigFile string // explicit config file, must exist when set
	EnvFile    string // explicit .env file, must exist when set
	HomeDir    string
	Environ    func() []string
}

// LoaderOption is a functional option for LoadConfig.
type LoaderOption func(*LoaderConfig)

// WithFileSystem sets the filesystem config and env files are read from.
func WithFileSystem(fs afero.Fs) LoaderOption {
	return func(lc *LoaderConfig) { lc.Fs = fs }
}

// WithConfigFile sets an explicit config file path.
func WithConfigFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.ConfigFile = path }
}

// WithEnvFile sets an explicit .env file path.
func WithEnvFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.EnvFile = path }
}

// WithHomeDir overrides the home directory used for the per-user config file.
func WithHomeDir(dir string) LoaderOption {
	return func(lc *LoaderConfig) { lc.HomeDir = dir }
}

// WithEnviron replaces os.Environ as the source of environment variables.
func WithEnviron(environ func() []string) LoaderOption {
	return func(lc *LoaderConfig) { lc.Environ = environ }
}

// LoadConfig loads configuration for the named application into cfg.
//
// Values are layered, later layers winning: the config file, the .env file,
// then the process environment. Only variables carrying EnvPrefix are used.
// A missing optional file is not an error; an explicit file that is missing
// or cannot be parsed is.
func LoadConfig(name string, cfg any, opts ...LoaderOption) (ResolvedFiles, error) {
	lc := LoaderConfig{Environ: os.Environ}
	for _, opt := range opts {
		opt(&lc)
	}
	if lc.Fs == nil {
		lc.Fs = afero.NewOsFs()
	}
	if lc.HomeDir == "" {
		lc.HomeDir, _ = os.UserHomeDir()
	}

	resolver := &Resolver{Fs: lc.Fs, HomeDir: lc.HomeDir}
	files := resolver.ResolveFiles(name, lc)

	if err := requireExisting(lc.Fs, lc.ConfigFile, lc.EnvFile); err != nil {
		return files, err
	}
	return files, loadFromResolvedFiles(cfg, files, lc)
}

func requireExisting(fs afero.Fs, paths ...string) error {
	for _, p := range paths {
		if p == "" {
			continue
		}
		if ok, _ := afero.Exists(fs, p); !ok {
			return errors.InvalidConfig(fmt.Sprintf("config file %s does not exist", p)).
				WithDetail("file", p)
		}
	}
	return nil
}

// loadFromResolvedFiles loads configuration from specific files.
func loadFromResolvedFiles(cfg any, files ResolvedFiles, lc LoaderConfig) error {
	v := viper.New()
	v.SetFs(lc.Fs)

	// 1. config file
	if files.ConfigFile != "" {
		v.SetConfigFile(files.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return errors.InvalidConfig(fmt.Sprintf("cannot parse config file %s", files.ConfigFile)).
				WithDetail("file", files.ConfigFile).
				WithCause(err)
		}
	}

	// 2. .env file, overridden by the real environment as godotenv.Load would
	env := make(map[string]string)
	if files.EnvFile != "" {
		data, err := afero.ReadFile(lc.Fs, files.EnvFile)
		if err != nil {
			return errors.InvalidConfig(fmt.Sprintf("cannot read env file %s", files.EnvFile)).WithCause(err)
		}
		parsed, err := godotenv.Parse(bytes.NewReader(data))
		if err != nil {
			return errors.InvalidConfig(fmt.Sprintf("cannot parse env file %s", files.EnvFile)).WithCause(err)
		}
		for k, val := range parsed {
			env[k] = val
		}
	}
	for _, kv := range lc.Environ() {
		pair := strings.SplitN(kv, "=", 2)
		if len(pair) == 2 {
			env[pair[0]] = pair[1]
		}
	}

	// 3. environment variables
	bindEnvVars(v, env)

	// 4. unmarshal into config struct
	if err := v.Unmarshal(cfg); err != nil {
		return errors.InvalidConfig("cannot decode configuration").WithCause(err)
	}
	return nil
}

// bindEnvVars sets every prefixed variable under all nested key forms it may
// stand for, so CONVERT_ON_INVERTED reaches convert.on_inverted.
func bindEnvVars(v *viper.Viper, env map[string]string) {
	for key, value := range env {
		if !strings.HasPrefix(key, EnvPrefix) {
			continue
		}
		for _, variant := range generateEnvKeyVariants(strings.TrimPrefix(key, EnvPrefix)) {
			v.Set(variant, value)
		}
	}
}

// generateEnvKeyVariants creates all possible key variants for an env key.
// Examples:
//
//	CONVERT_SORT        -> [convert_sort, convert.sort]
//	CONVERT_ON_INVERTED -> [convert_on_inverted, convert.on.inverted, convert.on_inverted]
func generateEnvKeyVariants(envKey string) []string {
	lowerKey := strings.ToLower(envKey)
	parts := strings.Split(lowerKey, "_")

	if len(parts) <= 1 {
		return []string{lowerKey}
	}

	variants := []string{
		lowerKey,
		strings.ReplaceAll(lowerKey, "_", "."),
	}

	// progressive nesting: a.b_c_d, a.b.c_d, ...
	for i := 1; i < len(parts); i++ {
		prefix := strings.Join(parts[:i], ".")
		suffix := strings.Join(parts[i:], "_")
		variants = append(variants, prefix+"."+suffix)
	}

	return removeDuplicates(variants)
}

// removeDuplicates removes duplicate strings from a slice.
func removeDuplicates(items []string) []string {
	seen := make(map[string]bool, len(items))
	result := make([]string, 0, len(items))

	for _, item := range items {
		if !seen[item] {
			seen[item] = true
			result = append(result, item)
		}
	}

	return result
}
