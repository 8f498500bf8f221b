package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/abhisek/nismprep/internal/store"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past test results",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		results, err := s.EventRepo().ListResults(cmd.Context(), limit)
		if err != nil {
			return fmt.Errorf("query results: %w", err)
		}

		if len(results) == 0 {
			fmt.Println("No test results recorded yet.")
			return nil
		}

		fmt.Printf("%-19s  %-22s  %-12s  %5s  %8s  %s\n",
			"Submitted", "Module", "Test", "Score", "Time", "Auto")
		fmt.Println(strings.Repeat("─", 80))
		for _, r := range results {
			auto := ""
			if r.AutoSubmitted {
				auto = "⏱"
			}
			submitted := time.UnixMilli(r.SubmittedAtMs).Local().Format("2006-01-02 15:04:05")
			mins := r.TimeSpentSecs / 60
			secs := r.TimeSpentSecs % 60
			fmt.Printf("%-19s  %-22s  %-12s  %4d%%  %5d:%02d  %s\n",
				submitted, r.ModuleID, r.TestID, r.Score, mins, secs, auto)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 50, "Number of results to show")
}
