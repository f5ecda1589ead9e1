// Package cli implements the tasker command tree.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/tasker/internal/adapters/fs"
	"github.com/bft-labs/tasker/internal/app"
	"github.com/bft-labs/tasker/internal/cliconfig"
)

var longHelp = strings.TrimSpace(`
Keep an ordered task list in a local JSON file.

Tasks are addressed by their zero-based position in the list. Adding with
--index or deleting shifts the positions of the tasks that follow.

Configuration is read from $HOME/.tasker/config.toml, then TASKER_*
environment variables, then flags; later sources win.
`)

var exampleUsage = strings.TrimSpace(`
  tasker add "test the code"
  tasker add "push git commit" --index 0
  tasker status 0
  tasker list
  tasker --file ~/work.json delete 2
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

// env carries configuration and output streams to subcommands.
type env struct {
	cfg     cliconfig.Config
	cfgPath string
	stderr  io.Writer
	logger  zerolog.Logger
}

// Run executes the command line args and returns the process exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	root, e := newRootCommand(stdout, stderr)
	root.SetArgs(args)

	cmd, err := root.ExecuteC()
	if err == nil {
		return ExitOK
	}
	if strings.HasPrefix(err.Error(), "unknown command") {
		err = &UsageError{Err: err}
	}

	// The message is printed regardless of log level.
	fmt.Fprintln(stderr, "Error:", err)
	e.logger.Error().Err(err).Msg("tasker")
	var ue *UsageError
	if errors.As(err, &ue) {
		fmt.Fprintln(stderr, cmd.UsageString())
	}
	return ExitCode(err)
}

// newRootCommand builds the command tree writing command output to stdout
// and logs to stderr.
func newRootCommand(stdout, stderr io.Writer) (*cobra.Command, *env) {
	e := &env{
		cfg:    cliconfig.DefaultConfig(),
		stderr: stderr,
		logger: cliconfig.NewLogger(stderr, "warn"),
	}

	root := &cobra.Command{
		Use:           "tasker",
		Short:         "Manage a personal task list stored in a JSON file",
		Long:          longHelp,
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return e.configure(cmd)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &UsageError{Err: err}
	})

	root.PersistentFlags().StringVar(&e.cfgPath, "config", "", "path to config file (default: $HOME/.tasker/config.toml)")
	root.PersistentFlags().StringVarP(&e.cfg.TaskFile, "file", "f", e.cfg.TaskFile, "task list file")
	root.PersistentFlags().BoolVar(&e.cfg.AtomicWrite, "atomic-write", e.cfg.AtomicWrite, "write to a temp file and rename it over the task file")
	root.PersistentFlags().StringVar(&e.cfg.LogLevel, "log-level", e.cfg.LogLevel, "log level (debug, info, warn, error)")

	root.AddCommand(
		newListCommand(e),
		newAddCommand(e),
		newEditCommand(e),
		newStatusCommand(e),
		newDeleteCommand(e),
		newWatchCommand(e),
		newExportCommand(e),
	)
	return root, e
}

// configure loads the config file, then applies environment variables,
// keeping any flag the user set explicitly.
func (e *env) configure(cmd *cobra.Command) error {
	changed := map[string]bool{}
	cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

	cfgFile := e.cfgPath
	explicit := cfgFile != ""
	if !explicit {
		cfgFile = cliconfig.DefaultConfigPath()
	}
	if explicit || (cfgFile != "" && cliconfig.FileExists(cfgFile)) {
		fc, err := cliconfig.LoadFileConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if err := cliconfig.ApplyFileConfig(&e.cfg, fc, changed); err != nil {
			return err
		}
	}

	if err := cliconfig.ApplyEnvConfig(&e.cfg, changed); err != nil {
		return err
	}
	if err := e.cfg.Validate(); err != nil {
		return err
	}

	e.logger = cliconfig.NewLogger(e.stderr, e.cfg.LogLevel)
	e.logger.Debug().Interface("config", e.cfg).Msg("configuration")
	return nil
}

func (e *env) repository() *fs.TaskFileRepository {
	return fs.NewTaskFileRepository(e.cfg.TaskFile, fs.WithAtomicWrite(e.cfg.AtomicWrite))
}

func (e *env) openStore(ctx context.Context, out io.Writer) (*app.Store, error) {
	return app.Open(ctx, e.repository(),
		app.WithOutput(out),
		app.WithLogger(e.logger.With().Str("path", e.cfg.TaskFile).Logger()),
	)
}
