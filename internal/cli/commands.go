package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leonardcser/offstore/internal/kv"
)

// NewGetCommand prints the raw stored record for a physical key.
func NewGetCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Print the raw record stored under a physical key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := opts.client().Get(cmd.Context(), args[0])
			if err != nil {
				if errors.Is(err, kv.ErrNotFound) {
					return fmt.Errorf("key %q not found", args[0])
				}
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(v))
			return nil
		},
	}
}

// NewPutCommand writes a raw value under a physical key. Intended for
// debugging; normal writes go through the facade so they get enveloped.
func NewPutCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "put <key> <value>",
		Short: "Write a raw value under a physical key",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.client().Set(cmd.Context(), args[0], []byte(args[1]))
		},
	}
}

// NewDelCommand deletes a physical key.
func NewDelCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "del <key>",
		Short: "Delete a physical key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.client().Delete(cmd.Context(), args[0])
		},
	}
}

// NewKeysCommand lists keys, optionally under a prefix.
func NewKeysCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "keys [prefix]",
		Short: "List stored keys, optionally filtered by prefix",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prefix := ""
			if len(args) == 1 {
				prefix = args[0]
			}
			keys, err := opts.client().Keys(cmd.Context(), prefix)
			if err != nil {
				return err
			}
			for _, k := range keys {
				fmt.Fprintln(cmd.OutOrStdout(), k)
			}
			return nil
		},
	}
}

// NewPurgeCommand runs the facade's namespace sweeps: "cache" clears
// the cache namespace, "user" clears session and drafts (settings are
// always left alone).
func NewPurgeCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "purge <cache|user>",
		Short: "Clear the cache namespace or all user data",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st := opts.store()
			switch args[0] {
			case "cache":
				return st.InvalidateCache(cmd.Context())
			case "user":
				return st.ClearUserData(cmd.Context())
			default:
				return fmt.Errorf("unknown namespace %q: must be cache or user", args[0])
			}
		},
	}
}

// NewInfoCommand prints per-namespace record counts as JSON.
func NewInfoCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show per-namespace record counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := opts.store().Info(cmd.Context())
			if err != nil {
				return err
			}
			out, err := json.MarshalIndent(info, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
}
