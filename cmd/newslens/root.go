// Package main provides the entry point for the newslens CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for newslens.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "newslens",
		Short: "Keyword trend analysis for Korean news search results",
		Long: `newslens searches Naver news for a keyword, fetches the matching articles,
and ranks the keywords that recur across them.

Keywords are ranked by how many articles mention them, then by total
mentions, so a token that appears once in fifty articles outranks one
repeated fifty times in a single article.

API credentials come from the NEWSLENS_CLIENT_ID / NEWSLENS_CLIENT_SECRET
environment variables or from a .newslens profile file.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewAnalyzeCmd())
	cmd.AddCommand(NewStopwordsCmd())
	cmd.AddCommand(NewHistoryCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
