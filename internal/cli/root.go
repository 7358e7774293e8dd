// Package cli implements the storectl command line tool. It talks to a
// running store daemon over its Unix socket.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/leonardcser/offstore/internal/config"
	"github.com/leonardcser/offstore/internal/kv"
	"github.com/leonardcser/offstore/internal/store"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	SocketPath string
}

// NewRootCommand creates the root command for the storectl CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:          "storectl",
		Short:        "Inspect and manage the offline store daemon",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.SocketPath != "" {
				return nil
			}
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			opts.SocketPath = cfg.SocketPath
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.SocketPath, "sock", "", "store daemon socket path (default from OFFSTORE_SOCK)")

	cmd.AddCommand(NewGetCommand(opts))
	cmd.AddCommand(NewPutCommand(opts))
	cmd.AddCommand(NewDelCommand(opts))
	cmd.AddCommand(NewKeysCommand(opts))
	cmd.AddCommand(NewPurgeCommand(opts))
	cmd.AddCommand(NewInfoCommand(opts))

	return cmd
}

func (o *RootOptions) client() *kv.Client { return kv.NewClient(o.SocketPath) }

func (o *RootOptions) store() *store.Store {
	return store.New(o.client(), store.Options{})
}
