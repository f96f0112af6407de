// Package cli implements the hookdom command: it mounts the example app on
// an in-memory document, replays scripted events against it and inspects
// the store the app persists to.
package cli

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/vcrobe/hookdom/config"
	"github.com/vcrobe/hookdom/console"
	"github.com/vcrobe/hookdom/storage"
)

// RootOptions holds global flags for all commands, and the configuration
// they resolve to once flags are parsed.
type RootOptions struct {
	ConfigPath  string
	StoreDriver string
	StorePath   string
	Verbose     bool
	Format      string // "json" | "text"

	Config  config.Config
	Session string
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the hookdom CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "hookdom",
		Short: "hookdom - a hooks-based renderer",
		Long: `Render the counter and text input app on an in-memory document.

State is persisted to the configured store, so consecutive invocations
behave like reloads of the same page.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.resolve(cmd)
		},
	}

	// Global flags
	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "path to a YAML config file")
	cmd.PersistentFlags().StringVar(&opts.StoreDriver, "store-driver", "", fmt.Sprintf("storage driver %v (overrides config)", storage.Drivers()))
	cmd.PersistentFlags().StringVar(&opts.StorePath, "store-path", "", "storage path (overrides config)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	// Add subcommands
	cmd.AddCommand(NewRenderCommand(opts))
	cmd.AddCommand(NewRunCommand(opts))
	cmd.AddCommand(NewStoreCommand(opts))

	return cmd
}

// resolve validates the flags, loads the config file, applies the flag
// overrides and sets up logging for this invocation.
func (o *RootOptions) resolve(cmd *cobra.Command) error {
	if !isValidFormat(o.Format) {
		return NewExitError(ExitCommandError, fmt.Sprintf("invalid format %q: must be one of %v", o.Format, ValidFormats))
	}

	cfg, err := config.Load(o.ConfigPath)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load config", err)
	}
	if o.StoreDriver != "" {
		cfg.Storage.Driver = o.StoreDriver
	}
	if o.StorePath != "" {
		cfg.Storage.Path = o.StorePath
	}
	if err := cfg.Validate(); err != nil {
		return WrapExitError(ExitCommandError, "invalid configuration", err)
	}

	level, err := console.ParseLevel(cfg.Log.Level)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid configuration", err)
	}
	if o.Verbose {
		level = slog.LevelDebug
	}

	o.Config = cfg
	o.Session = uuid.Must(uuid.NewV7()).String()
	console.Init(console.Options{
		Level:  level,
		Format: cfg.Log.Format,
		Writer: cmd.ErrOrStderr(),
	})
	console.L = console.L.With("session", o.Session)
	console.Debug("config resolved", "driver", cfg.Storage.Driver, "path", cfg.Storage.Path, "scheduler", cfg.Scheduler)
	return nil
}

// openStore opens the configured store. The caller closes it.
func (o *RootOptions) openStore() (storage.KV, error) {
	kv, err := storage.Open(o.Config.Storage.Driver, o.Config.Storage.Path)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to open store", err)
	}
	return kv, nil
}

func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    o.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   o.Verbose,
	}
}

func closeStore(kv storage.KV) {
	if err := kv.Close(); err != nil {
		console.Error("error closing store", "error", err)
	}
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
