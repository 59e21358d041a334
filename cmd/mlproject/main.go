package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/mlproject/mlproject/configs"
	"github.com/mlproject/mlproject/internal/common"
	"github.com/mlproject/mlproject/internal/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	appName        = "mlproject"
	configFileName = "mlproject"
)

// app holds what the root command builds before any subcommand runs.
type app struct {
	cfg    configs.Config
	logger *slog.Logger
	files  *common.Files
	closer io.Closer
}

func newRootCmd() (*cobra.Command, *app) {
	a := &app{logger: logger.Discard()}

	root := &cobra.Command{
		Use:           appName,
		Short:         "Project scaffolding and structured I/O helpers for ML pipelines",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "path to an mlproject.yaml config file")
	flags.String("log-level", "", "log level (debug, info, warn, error)")
	flags.String("log-dir", "", "directory receiving the log file")

	root.AddCommand(
		newScaffoldCmd(a),
		newConfigCmd(a),
		newJSONCmd(a),
		newSizeCmd(a),
		newArtifactCmd(a),
	)

	return root, a
}

func (a *app) setup(cmd *cobra.Command) error {
	v, err := configs.NewViper()
	if err != nil {
		return err
	}

	flags := cmd.Root().PersistentFlags()
	if err := errors.Join(
		v.BindPFlag("logging.level", flags.Lookup("log-level")),
		v.BindPFlag("logging.dir", flags.Lookup("log-dir")),
	); err != nil {
		return fmt.Errorf("failed to bind flags: %w", err)
	}

	if err := readConfigFile(v, flags.Lookup("config").Value.String()); err != nil {
		return err
	}

	cfg, err := configs.Load(v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	level, _ := logger.ParseLevel(a.cfg.Logging.Level)
	log, closer, err := logger.New(logger.Options{
		Level:   level,
		Format:  a.cfg.Logging.Format,
		Dir:     a.cfg.Logging.Dir,
		File:    a.cfg.Logging.File,
		Console: cmd.OutOrStdout(),
	})
	if err != nil {
		return err
	}
	a.logger = log
	a.closer = closer

	if used := v.ConfigFileUsed(); used != "" {
		a.logger.With("config_file", used).Debug("config file loaded")
	} else {
		a.logger.Debug("no config file found, relying on flags, env and defaults")
	}

	compression, _ := common.ParseCompression(a.cfg.Artifacts.Compression)
	a.files = common.New(a.logger, common.WithCompression(compression))

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logger.WithContext(ctx, a.logger))

	return nil
}

func readConfigFile(v *viper.Viper, explicit string) error {
	if explicit != "" {
		v.SetConfigFile(explicit)
	} else {
		v.SetConfigName(configFileName)
		if execPath, err := os.Executable(); err == nil {
			v.AddConfigPath(filepath.Dir(execPath))
		}
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
	}

	if err := v.MergeInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("error reading config file: %w", err)
	}

	return nil
}

func (a *app) close() error {
	if a.closer == nil {
		return nil
	}
	err := a.closer.Close()
	a.closer = nil
	return err
}

// run executes the CLI with args, writing command output and console logs to out.
func run(ctx context.Context, out io.Writer, args []string) error {
	root, a := newRootCmd()
	root.SetOut(out)
	root.SetErr(out)
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	if err != nil {
		a.logger.With("err", err.Error()).Error("failed to execute command")
	}

	return errors.Join(err, a.close())
}

func main() {
	if err := run(context.Background(), os.Stdout, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
