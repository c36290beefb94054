// Cinematch - Film Catalog Queries and Similar-Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package main

import (
	"github.com/spf13/cobra"
)

// newRootCommand builds the command tree. The caller closes ctx after
// Execute returns.
func newRootCommand(ctx *commandContext) *cobra.Command {
	flags := &ctx.flags

	rootCmd := &cobra.Command{
		Use:           "cinematch",
		Short:         "Film catalog queries and similar-title recommendations",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&flags.config, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVarP(&flags.dataset, "dataset", "d", "", "Parquet or CSV dataset (overrides CATALOG_PATH)")
	rootCmd.PersistentFlags().BoolVar(&flags.json, "json", false, "Write JSON instead of a table")

	rootCmd.AddCommand(newRecommendCommand(ctx))
	rootCmd.AddCommand(newScoreCommand(ctx))
	rootCmd.AddCommand(newVotesCommand(ctx))
	rootCmd.AddCommand(newActorCommand(ctx))
	rootCmd.AddCommand(newDirectorCommand(ctx))
	rootCmd.AddCommand(newReleasesCommand(ctx))

	return rootCmd
}
