/*
Copyright 2019 Alexander Eldeib.
*/

// Package cmdutil holds state and helpers shared by the azmodels commands.
package cmdutil

import (
	"io"
	"os"
	"path/filepath"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/alexeldeib/azmodels/pkg/config"
	"github.com/alexeldeib/azmodels/pkg/printer"
)

// Globals is filled in from persistent flags and the environment before any
// command runs.
type Globals struct {
	Config *config.Config
	Log    logr.Logger
	Out    io.Writer
	In     io.Reader

	output string
	cloud  string
	strict bool
	debug  bool
}

// NewRootCommand returns a command carrying the persistent flags every
// subcommand reads through g.
func NewRootCommand(use string, g *Globals) *cobra.Command {
	root := &cobra.Command{
		Use:           use,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return g.Complete(cmd)
		},
	}
	flags := root.PersistentFlags()
	flags.StringVarP(&g.output, "output", "o", config.OutputJSON, "Output format, json or yaml. Overrides "+config.EnvOutput+".")
	flags.StringVar(&g.cloud, "cloud", "", "Azure cloud environment name, e.g. AzureUSGovernmentCloud. Overrides "+config.EnvCloud+".")
	flags.BoolVar(&g.strict, "strict", false, "Reject undeclared fields and fail on any lint finding. Overrides "+config.EnvStrict+".")
	flags.BoolVar(&g.debug, "debug", false, "Enable development logging. Overrides "+config.EnvDebug+".")
	return root
}

// Complete builds the configuration and logger. Explicit flags win over the
// environment.
func (g *Globals) Complete(cmd *cobra.Command) error {
	opts, err := config.FromEnvironment()
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("output") {
		opts = append(opts, config.Output(g.output))
	}
	if flags.Changed("cloud") {
		opts = append(opts, config.Cloud(g.cloud))
	}
	if flags.Changed("strict") {
		opts = append(opts, config.Strict(g.strict))
	}
	if flags.Changed("debug") {
		opts = append(opts, config.Debug(g.debug))
	}

	if g.Config, err = config.New(opts...); err != nil {
		return errors.Wrap(err, "invalid configuration")
	}
	g.Log = NewLogger(g.Config.Debug(), cmd.ErrOrStderr()).WithName("azmodels")
	g.Out = cmd.OutOrStdout()
	g.In = cmd.InOrStdin()
	return nil
}

// Printer returns a document printer for the configured output.
func (g *Globals) Printer() *printer.Printer {
	return printer.ForConfig(g.Out, g.Config)
}

// NewLogger returns a zap backed logger writing to w. Debug selects the
// development encoder and enables V(1) messages.
func NewLogger(debug bool, w io.Writer) logr.Logger {
	encoder := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	level := zapcore.InfoLevel
	opts := []zap.Option{zap.AddCaller()}
	if debug {
		encoder = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
		level = zapcore.DebugLevel
		opts = append(opts, zap.Development())
	}
	core := zapcore.NewCore(encoder, zapcore.AddSync(w), level)
	return zapr.NewLogger(zap.New(core, opts...))
}

// Open returns a reader for file, or for in when file is "-".
func Open(file string, in io.Reader) (io.ReadCloser, error) {
	if file == "-" {
		return io.NopCloser(in), nil
	}

	path, err := filepath.Abs(file)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to resolve %s", file)
	}

	reader, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s", file)
	}
	return reader, nil
}
