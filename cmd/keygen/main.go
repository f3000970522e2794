package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// usageError marks failures that should exit with code 2.
type usageError struct{ msg string }

func (e usageError) Error() string { return e.msg }

const usageLine = "usage: keygen --spec <keys.yaml> --out <file.gen.go>"

// run executes the generator and returns an exit code.
// It exists separately from main to allow unit testing without os.Exit.
func run(args []string, stderr io.Writer) int {
	if args == nil {
		// cobra falls back to os.Args on nil.
		args = []string{}
	}
	cmd := newRootCommand(stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	if err == nil {
		return 0
	}

	var usage usageError
	if errors.As(err, &usage) {
		_, _ = fmt.Fprintln(stderr, usage.msg)
		return 2
	}
	for _, e := range multierr.Errors(err) {
		_, _ = fmt.Fprintln(stderr, "keygen:", e)
	}
	return 1
}

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

// newRootCommand builds the keygen command. Flags are bound into a private viper
// instance so the ENVDI_KEYGEN_* environment variables can supply them.
func newRootCommand(stderr io.Writer) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("ENVDI_KEYGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate named accessors for declared di keys",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) > 0 {
				return usageError{msg: "unexpected arguments " + strings.Join(args, " ") + "\n" + usageLine}
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			specPath := strings.TrimSpace(v.GetString("spec"))
			outPath := strings.TrimSpace(v.GetString("out"))
			if specPath == "" || outPath == "" {
				return usageError{msg: usageLine}
			}
			return generate(specPath, outPath, newLogger(stderr, v.GetBool("verbose")))
		},
	}
	cmd.SetOut(stderr)
	cmd.SetErr(stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{msg: err.Error() + "\n" + usageLine}
	})

	flags := cmd.Flags()
	flags.String("spec", "", "path to the keys spec (YAML or JSON)")
	flags.String("out", "", "output .gen.go file path")
	flags.BoolP("verbose", "v", false, "log generation steps to stderr")
	_ = v.BindPFlags(flags)

	return cmd
}

// newLogger returns a console logger writing to w, or a no-op logger.
func newLogger(w io.Writer, verbose bool) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	return zap.New(zapcore.NewCore(enc, zapcore.AddSync(w), zapcore.DebugLevel))
}

// generate loads, validates, renders and writes one spec.
func generate(specPath, outPath string, log *zap.Logger) error {
	log = log.With(zap.String("spec", specPath))

	spec, err := loadSpec(specPath)
	if err != nil {
		return err
	}
	if err := validateSpec(&spec); err != nil {
		return err
	}
	log.Debug("spec loaded", zap.String("package", spec.Package), zap.Int("keys", len(spec.Keys)))

	src, err := render(buildTemplateData(spec, filepath.Base(specPath)))
	if err != nil {
		return err
	}

	outPath = filepath.Clean(outPath)
	if err := writeFileAtomic(outPath, src, 0o644); err != nil {
		return err
	}
	log.Debug("generated", zap.String("out", outPath), zap.Int("bytes", len(src)))
	return nil
}
