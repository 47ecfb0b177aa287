package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/newslens/newslens/internal/config"
	"github.com/newslens/newslens/internal/history"
	"github.com/newslens/newslens/internal/report"
)

// NewHistoryCmd creates the history command group.
func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List and replay past analysis runs",
		Long: `History lists analysis runs saved to the local database and can
re-print the stored keyword ranking of any run.

Examples:
  # List the 20 most recent runs
  newslens history list

  # Re-print the ranking of run 3
  newslens history show 3

  # Delete run 3
  newslens history delete 3`,
	}

	cmd.AddCommand(newHistoryListCmd())
	cmd.AddCommand(newHistoryShowCmd())
	cmd.AddCommand(newHistoryDeleteCmd())

	return cmd
}

// openHistory opens the history database without creating it.
// A missing database just means nothing has been saved yet.
func openHistory() (*history.HistoryDB, error) {
	opts := history.DefaultOptions()
	opts.CreateIfNotExists = false
	return history.Open(config.XDGDataDir(), opts)
}

// newHistoryListCmd creates the history list command.
func newHistoryListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent runs",
		RunE: func(cmd *cobra.Command, _ []string) error {
			limit, err := cmd.Flags().GetInt("limit")
			if err != nil {
				return err
			}

			db, err := openHistory()
			if err != nil {
				fmt.Fprintln(cmd.OutOrStdout(), "no saved runs")
				return nil
			}
			defer db.Close()

			runs, err := db.ListRuns(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(runs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no saved runs")
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%-5s %-20s %-16s %9s %8s\n",
				"ID", "Keyword", "Started", "Collected", "Skipped")
			for _, run := range runs {
				fmt.Fprintf(cmd.OutOrStdout(), "%-5d %-20s %-16s %9d %8d\n",
					run.ID,
					run.Keyword,
					run.StartedAt.Format("2006-01-02 15:04"),
					run.Collected,
					run.Skipped,
				)
			}
			return nil
		},
	}

	cmd.Flags().Int("limit", 20, "Maximum number of runs to list (0 for all)")
	return cmd
}

// newHistoryShowCmd creates the history show command.
func newHistoryShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <run-id>",
		Short: "Re-print the stored ranking of a run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid run ID %q", args[0])
			}

			db, err := openHistory()
			if err != nil {
				return fmt.Errorf("no saved runs: %w", err)
			}
			defer db.Close()

			result, err := db.GetRun(cmd.Context(), id)
			if err != nil {
				return err
			}
			if result == nil {
				return fmt.Errorf("run %d not found", id)
			}

			writer := report.NewSimpleWriter(cmd.OutOrStdout(), report.WithArticleList(true))
			_, err = writer.Write(result)
			return err
		},
	}
}

// newHistoryDeleteCmd creates the history delete command.
func newHistoryDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <run-id>",
		Short: "Delete a stored run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid run ID %q", args[0])
			}

			db, err := openHistory()
			if err != nil {
				return fmt.Errorf("no saved runs: %w", err)
			}
			defer db.Close()

			deleted, err := db.DeleteRun(cmd.Context(), id)
			if err != nil {
				return err
			}
			if !deleted {
				return fmt.Errorf("run %d not found", id)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "deleted run %d\n", id)
			return nil
		},
	}
}
