// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/config-hub/models"
)

func newSetCmd(opts *cliOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "set name=value [name=value...]",
		Short:   "Create or overwrite configs under --path",
		GroupID: "configs",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.requirePath(cmd); err != nil {
				return err
			}
			values, err := parsePairs(args, opts.jsonValues)
			if err != nil {
				return err
			}

			resp, err := opts.client.SaveConfigs(cmd.Context(), opts.path, values)
			if err != nil {
				return fmt.Errorf("saving configs: %w", err)
			}
			return printJSON(cmd.OutOrStdout(), resp)
		},
	}
	cmd.Flags().BoolVar(&opts.jsonValues, "json-values", false, "treat values as raw JSON instead of strings")
	return cmd
}

func newGetCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "get [key]",
		Short:   "Show all configs of --path, or a single key",
		GroupID: "configs",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.requirePath(cmd); err != nil {
				return err
			}

			if len(args) == 1 {
				entry, err := opts.client.GetConfig(cmd.Context(), opts.path, args[0])
				if err != nil {
					return fmt.Errorf("getting config %s: %w", args[0], err)
				}
				return printJSON(cmd.OutOrStdout(), entry)
			}

			configs, err := opts.client.GetConfigs(cmd.Context(), opts.path)
			if err != nil {
				return fmt.Errorf("getting configs: %w", err)
			}
			return printJSON(cmd.OutOrStdout(), configs)
		},
	}
}

func newUpdateCmd(opts *cliOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "update name=value [name=value...]",
		Short:   "Overwrite existing configs under --path",
		GroupID: "configs",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.requirePath(cmd); err != nil {
				return err
			}
			values, err := parsePairs(args, opts.jsonValues)
			if err != nil {
				return err
			}

			resp, err := opts.client.UpdateConfigs(cmd.Context(), opts.path, values)
			if err != nil {
				return fmt.Errorf("updating configs: %w", err)
			}
			return printJSON(cmd.OutOrStdout(), resp)
		},
	}
	cmd.Flags().BoolVar(&opts.jsonValues, "json-values", false, "treat values as raw JSON instead of strings")
	return cmd
}

func newDeleteCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <key>",
		Short:   "Delete one config of --path",
		GroupID: "configs",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.requirePath(cmd); err != nil {
				return err
			}

			resp, err := opts.client.DeleteConfig(cmd.Context(), opts.path, args[0])
			if err != nil {
				return fmt.Errorf("deleting config %s: %w", args[0], err)
			}
			return printJSON(cmd.OutOrStdout(), resp)
		},
	}
}

func newDeletePathCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "delete-path",
		Short:   "Delete every config of --path",
		GroupID: "configs",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.requirePath(cmd); err != nil {
				return err
			}

			resp, err := opts.client.DeletePath(cmd.Context(), opts.path)
			if err != nil {
				return fmt.Errorf("deleting path: %w", err)
			}
			return printJSON(cmd.OutOrStdout(), resp)
		},
	}
}

func newHealthCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "health",
		Short:   "Check that the server is up",
		GroupID: "system",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := opts.client.Health(cmd.Context())
			if err != nil {
				return fmt.Errorf("health check: %w", err)
			}
			return printJSON(cmd.OutOrStdout(), resp)
		},
	}
}

func newVersionCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   "Show client build info and the server version",
		GroupID: "system",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

			resp, err := opts.client.Version(cmd.Context())
			if err != nil {
				return fmt.Errorf("server version: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Server version: %s\n", resp.Version)
			return nil
		},
	}
}
