package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/anggasct/points/internal/logging"
	"github.com/spf13/cobra"
)

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "points",
		Short:         "points drives directional rail junctions",
		Long:          `points loads junctions from a YAML layout file, routes vehicle arrivals through them and renders their switching tables.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(
		newRunCmd(),
		newTableCmd(),
		newGraphCmd(),
		newValidateCmd(),
		newVersionCmd(),
	)
	return rootCmd
}

// commandLogger builds the logger selected by --log-level, writing to the command's stderr.
func commandLogger(cmd *cobra.Command) (*slog.Logger, error) {
	raw, _ := cmd.Flags().GetString("log-level")
	level, err := logging.ParseLevel(raw)
	if err != nil {
		return nil, err
	}
	return logging.NewWithWriter(cmd.ErrOrStderr(), level), nil
}
