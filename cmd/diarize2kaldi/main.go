// Command diarize2kaldi converts diarization results into a Kaldi data
// directory.
//
//	diarize2kaldi [flags] <output_dir> <diarization_file>...
//
// It writes wav.scp, segments and utt2spk (and optionally spk2utt) into
// output_dir, creating the directory if needed.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"

	"github.com/kbukum/diarize2kaldi/config"
	"github.com/kbukum/diarize2kaldi/diarization"
	"github.com/kbukum/diarize2kaldi/errors"
	"github.com/kbukum/diarize2kaldi/kaldi"
	"github.com/kbukum/diarize2kaldi/logger"
	"github.com/kbukum/diarize2kaldi/storage/local"
	"github.com/kbukum/diarize2kaldi/version"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], afero.NewOsFs(), os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

type options struct {
	configFile  string
	showVersion bool
	sort        bool
	spk2utt     bool
	onInverted  string
	allowDups   bool
	suffix      string
	logLevel    string
	logFormat   string
}

func newFlagSet(opts *options, stderr io.Writer) *pflag.FlagSet {
	fs := pflag.NewFlagSet(config.AppName, pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.SortFlags = false

	fs.StringVarP(&opts.configFile, "config", "c", "", "config file (default: search ./diarize2kaldi.yml, ./config/, ~/.config/diarize2kaldi/)")
	fs.BoolVar(&opts.sort, "sort", false, "sort every table by key in byte order")
	fs.BoolVar(&opts.spk2utt, "spk2utt", false, "also write spk2utt")
	fs.StringVar(&opts.onInverted, "on-inverted", kaldi.InvertedError, "segments with start >= end after repair: error|drop|keep")
	fs.BoolVar(&opts.allowDups, "allow-duplicate-recordings", false, "merge input files that share a recording ID")
	fs.StringVar(&opts.suffix, "suffix", kaldi.DefaultSuffix, "5-character input file suffix stripped to form the recording ID")
	fs.StringVar(&opts.logLevel, "log-level", "info", "log level: trace|debug|info|warn|error")
	fs.StringVar(&opts.logFormat, "log-format", "console", "log format: console|json")
	fs.BoolVar(&opts.showVersion, "version", false, "print version and exit")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: %s [flags] <output_dir> <diarization_file>...\n\nflags:\n", config.AppName)
		fs.PrintDefaults()
	}
	return fs
}

// applyFlags copies explicitly set flags over cfg, so flags beat every
// other configuration source.
func applyFlags(fs *pflag.FlagSet, opts *options, cfg *config.AppConfig) {
	if fs.Changed("sort") {
		cfg.Convert.Sort = opts.sort
	}
	if fs.Changed("spk2utt") {
		cfg.Convert.Spk2Utt = opts.spk2utt
	}
	if fs.Changed("on-inverted") {
		cfg.Convert.OnInverted = opts.onInverted
	}
	if fs.Changed("allow-duplicate-recordings") {
		cfg.Convert.AllowDuplicateRecordings = opts.allowDups
	}
	if fs.Changed("suffix") {
		cfg.Convert.Suffix = opts.suffix
	}
	if fs.Changed("log-level") {
		cfg.Logging.Level = opts.logLevel
	}
	if fs.Changed("log-format") {
		cfg.Logging.Format = opts.logFormat
	}
}

// usageFailure reports a command-line error followed by the usage text.
func usageFailure(flags *pflag.FlagSet, stderr io.Writer, err *errors.AppError) int {
	fmt.Fprintf(stderr, "error: %s\n", err.Message)
	flags.Usage()
	return errors.ExitCode(err)
}

// logOutput picks the stream named by logging.output; anything but stdout
// means stderr.
func logOutput(output string, stdout, stderr io.Writer) io.Writer {
	if strings.EqualFold(output, "stdout") {
		return stdout
	}
	return stderr
}

func run(ctx context.Context, args []string, fsys afero.Fs, stdout, stderr io.Writer) int {
	var opts options
	flags := newFlagSet(&opts, stderr)
	if err := flags.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return errors.ExitOK
		}
		return usageFailure(flags, stderr, errors.Usage(err.Error()).WithCause(err))
	}
	if opts.showVersion {
		fmt.Fprintf(stdout, "%s %s\n", config.AppName, version.Get())
		return errors.ExitOK
	}

	positional := flags.Args()
	if len(positional) < 2 {
		return usageFailure(flags, stderr,
			errors.Usage("expected an output directory and at least one diarization file"))
	}
	outputDir, inputs := positional[0], positional[1:]

	cfg, files, err := config.Load(
		config.WithFileSystem(fsys),
		config.WithConfigFile(opts.configFile),
	)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return errors.ExitCode(err)
	}
	applyFlags(flags, &opts, cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return errors.ExitCode(err)
	}

	log := logger.NewWithWriter(&cfg.Logging, config.AppName, logOutput(cfg.Logging.Output, stdout, stderr))
	ctx = logger.ContextWithRunID(ctx, uuid.NewString())
	log.WithContext(ctx).Debug("configuration loaded", logger.Fields(
		"config_file", files.ConfigFile,
		"env_file", files.EnvFile,
		"inputs", len(inputs),
	))

	if err := convert(ctx, fsys, cfg, log, outputDir, inputs); err != nil {
		appErr := errors.Wrap(err)
		log.WithContext(ctx).WithError(err).Error("conversion failed", logger.Fields(
			logger.FieldCode, string(appErr.Code),
			"details", appErr.Details,
		))
		return appErr.ExitCode
	}
	return errors.ExitOK
}

func convert(ctx context.Context, fsys afero.Fs, cfg *config.AppConfig, log *logger.Logger, outputDir string, inputs []string) error {
	reader := diarization.NewReader(fsys, log)
	dir, _, err := kaldi.NewConverter(cfg.Convert, reader, log).Convert(ctx, inputs)
	if err != nil {
		return err
	}

	store, err := local.NewStorage(fsys, local.Config{BasePath: outputDir, CreateDir: true})
	if err != nil {
		return errors.OutputWrite(outputDir, err)
	}
	if err := kaldi.NewWriter(store, cfg.Convert.Spk2Utt, log).Write(ctx, dir); err != nil {
		return err
	}

	log.WithContext(ctx).Info("data directory written", logger.Fields(
		logger.FieldOutputDir, store.BasePath(),
	))
	return nil
}
