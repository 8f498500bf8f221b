package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/nismprep/internal/progress"
	"github.com/abhisek/nismprep/internal/question"
	"github.com/abhisek/nismprep/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show test-taking statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ledger := progress.NewLedger(s.SnapshotRepo(), s.EventRepo())
		if err := ledger.Load(cmd.Context()); err != nil {
			return fmt.Errorf("load progress: %w", err)
		}

		if ledger.TotalTests() == 0 {
			fmt.Println("No tests taken yet.")
			return nil
		}

		fmt.Printf("Tests taken:    %d\n", ledger.TotalTests())
		fmt.Printf("Average score:  %d%%\n", ledger.AverageScore())
		fmt.Printf("Time studied:   %dh\n", ledger.TimeSpentHours())

		fmt.Println()
		fmt.Printf("%-28s  %-10s  %s\n", "Module", "Completed", "Progress")
		fmt.Println(strings.Repeat("─", 56))
		for _, mod := range question.Catalog() {
			mp := ledger.ModuleProgress(mod.ID)
			fmt.Printf("%-28s  %2d of %-4d  %3d%%\n",
				mod.Name, len(mp.Completed), mod.TestCount(), mp.Progress)
		}
		return nil
	},
}
