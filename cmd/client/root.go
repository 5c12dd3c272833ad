// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/config-hub/internal/adapter"
	"github.com/MKhiriev/config-hub/internal/config"
	"github.com/MKhiriev/config-hub/internal/logger"
)

// cliOptions holds the persistent flags shared by every subcommand and the
// client built from them.
type cliOptions struct {
	server     string
	path       string
	timeout    time.Duration
	jsonValues bool

	client adapter.ConfigClient
}

func newRootCmd() *cobra.Command {
	opts := &cliOptions{}

	rootCmd := &cobra.Command{
		Use:           "confctl <command>",
		Short:         "CLI client for the config-hub service",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.connect(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.server, "server", "", "server URL (default from ADAPTER_ADDRESS or http://localhost:8000)")
	rootCmd.PersistentFlags().StringVarP(&opts.path, "path", "p", "", "configuration path (group)")
	rootCmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", 0, "request timeout (default from ADAPTER_REQUEST_TIMEOUT or 15s)")

	rootCmd.AddGroup(
		&cobra.Group{ID: "configs", Title: "Configs:"},
		&cobra.Group{ID: "system", Title: "System:"},
	)

	cobra.EnableCommandSorting = false

	// Configs
	rootCmd.AddCommand(newSetCmd(opts))
	rootCmd.AddCommand(newGetCmd(opts))
	rootCmd.AddCommand(newUpdateCmd(opts))
	rootCmd.AddCommand(newDeleteCmd(opts))
	rootCmd.AddCommand(newDeletePathCmd(opts))

	// System
	rootCmd.AddCommand(newHealthCmd(opts))
	rootCmd.AddCommand(newVersionCmd(opts))

	return rootCmd
}

// connect builds the API client from env/JSON configuration, overridden by
// the --server and --timeout flags when they are set.
func (o *cliOptions) connect(cmd *cobra.Command) error {
	cfg, err := config.GetClientConfig()
	if err != nil {
		return fmt.Errorf("loading client config: %w", err)
	}

	if cmd.Flags().Changed("server") {
		cfg.HTTPAddress = o.server
	}
	if cmd.Flags().Changed("timeout") {
		cfg.RequestTimeout = o.timeout
	}

	o.client, err = adapter.NewHTTPConfigClient(*cfg, logger.Nop())
	if err != nil {
		return fmt.Errorf("creating client: %w", err)
	}
	return nil
}

// requirePath fails unless --path was given. An empty path is allowed.
func (o *cliOptions) requirePath(cmd *cobra.Command) error {
	if !cmd.Flags().Changed("path") {
		return fmt.Errorf("--path is required")
	}
	return nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
