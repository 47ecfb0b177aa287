package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/newslens/newslens/internal/stopword"
)

// NewStopwordsCmd creates the stopwords command group.
func NewStopwordsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stopwords",
		Short: "Manage the stopword list",
		Long: `Stopwords are tokens excluded from keyword extraction.

The list is stored as a sorted JSON file, by default in the XDG data
directory. Changes are written atomically so a crash never corrupts
the list.

Examples:
  # Show the current stopword list
  newslens stopwords list

  # Add stopwords
  newslens stopwords add 기자 뉴스

  # Remove a stopword
  newslens stopwords remove 기자`,
	}

	cmd.PersistentFlags().String("stopwords", "",
		"Stopword file path (default: XDG data directory)")

	cmd.AddCommand(newStopwordsListCmd())
	cmd.AddCommand(newStopwordsAddCmd())
	cmd.AddCommand(newStopwordsRemoveCmd())

	return cmd
}

// stopwordStore builds the store from the --stopwords flag.
func stopwordStore(cmd *cobra.Command) (*stopword.Store, error) {
	path, err := cmd.Flags().GetString("stopwords")
	if err != nil {
		return nil, err
	}
	if path == "" {
		path = defaultStopwordPath()
	}
	return stopword.NewStore(path), nil
}

// newStopwordsListCmd creates the stopwords list command.
func newStopwordsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the stopword list",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := stopwordStore(cmd)
			if err != nil {
				return err
			}

			words := store.Load().Sorted()
			if len(words) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "no stopwords configured (%s)\n", store.Path())
				return nil
			}

			for _, word := range words {
				fmt.Fprintln(cmd.OutOrStdout(), word)
			}
			return nil
		},
	}
}

// newStopwordsAddCmd creates the stopwords add command.
func newStopwordsAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <word>...",
		Short: "Add words to the stopword list",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := stopwordStore(cmd)
			if err != nil {
				return err
			}

			updated := store.Load().Add(args...)
			if err := store.Save(updated); err != nil {
				return fmt.Errorf("failed to save stopwords: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "added %d word(s); %d total\n", len(args), len(updated))
			return nil
		},
	}
}

// newStopwordsRemoveCmd creates the stopwords remove command.
func newStopwordsRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <word>...",
		Short: "Remove words from the stopword list",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := stopwordStore(cmd)
			if err != nil {
				return err
			}

			current := store.Load()
			var removed int
			for _, word := range args {
				if current.Contains(word) {
					removed++
				}
			}

			updated := current.Remove(args...)
			if err := store.Save(updated); err != nil {
				return fmt.Errorf("failed to save stopwords: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "removed %d word(s); %d total\n", removed, len(updated))
			return nil
		},
	}
}
