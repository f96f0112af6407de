package cli

import (
	"github.com/spf13/cobra"

	"github.com/vcrobe/hookdom/storage"
)

// Entry is the output of the store subcommands.
type Entry struct {
	Key   string `json:"key"`
	Value string `json:"value,omitempty"`
}

// NewStoreCommand creates the store command and its subcommands.
func NewStoreCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "store",
		Short: "Inspect the store the app persists to",
		Long: `Read, write and delete raw entries of the configured store.

The app uses the keys "state" (JSON {"count":N}) and "inputValue".

Example:
  hookdom store get state --store-driver bolt --store-path ./app.db
  hookdom store set inputValue hello`,
	}

	cmd.AddCommand(&cobra.Command{
		Use:           "get <key>",
		Short:         "Print the value of a key",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(rootOpts, func(kv storage.KV) error {
				f := rootOpts.formatter(cmd)
				v, err := kv.Get(args[0])
				if err != nil {
					return f.Failure(ExitFailure, "get "+args[0], err)
				}
				return f.Success(Entry{Key: args[0], Value: v}, v)
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:           "set <key> <value>",
		Short:         "Set the value of a key",
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(rootOpts, func(kv storage.KV) error {
				f := rootOpts.formatter(cmd)
				if err := kv.Set(args[0], args[1]); err != nil {
					return f.Failure(ExitFailure, "set "+args[0], err)
				}
				f.VerboseLog("set %s", args[0])
				return f.Success(Entry{Key: args[0], Value: args[1]}, "ok")
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:           "del <key>",
		Aliases:       []string{"delete", "rm"},
		Short:         "Delete a key",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(rootOpts, func(kv storage.KV) error {
				f := rootOpts.formatter(cmd)
				if err := kv.Delete(args[0]); err != nil {
					return f.Failure(ExitFailure, "delete "+args[0], err)
				}
				return f.Success(Entry{Key: args[0]}, "ok")
			})
		},
	})

	return cmd
}

func withStore(opts *RootOptions, fn func(storage.KV) error) error {
	kv, err := opts.openStore()
	if err != nil {
		return err
	}
	defer closeStore(kv)
	return fn(kv)
}
