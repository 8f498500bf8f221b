package cmd

import (
	"fmt"
	"os"

	"github.com/abhisek/nismprep/internal/account"
	"github.com/abhisek/nismprep/internal/app"
	"github.com/abhisek/nismprep/internal/explain"
	"github.com/abhisek/nismprep/internal/llm"
	"github.com/abhisek/nismprep/internal/progress"
	"github.com/abhisek/nismprep/internal/question"
	"github.com/abhisek/nismprep/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	bank, err := question.NewBank()
	if err != nil {
		return fmt.Errorf("load question bank: %w", err)
	}

	ledger := progress.NewLedger(st.SnapshotRepo(), st.EventRepo())
	if err := ledger.Load(ctx); err != nil {
		// A corrupt or unreadable snapshot falls back to a fresh ledger.
		fmt.Fprintln(os.Stderr, "Could not load saved progress:", err)
	}

	opts := app.Options{
		Store:    st,
		Ledger:   ledger,
		Bank:     bank,
		Accounts: account.NewService(st.ProfileRepo()),
		Version:  version,
	}

	if provider, ok := llm.NewProviderFromEnv(ctx, st.EventRepo()); ok {
		opts.Explainer = explain.NewService(provider, explain.DefaultConfig())
	} else {
		fmt.Fprintln(os.Stderr, "No LLM provider configured; AI explanations will be unavailable.")
	}

	return app.Run(opts)
}
