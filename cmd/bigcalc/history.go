package main

import (
	"fmt"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"bigcalc/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show expressions evaluated in previous sessions",
	RunE:  runHistoryShow,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Forget all recorded expressions",
	RunE:  runHistoryClear,
}

func init() {
	historyCmd.Flags().Int("limit", 20, "show at most N most recent entries")
	historyCmd.AddCommand(historyClearCmd)
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(".")
	if err != nil {
		return err
	}
	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		return fmt.Errorf("failed to get limit flag: %w", err)
	}

	store, err := history.Open("bigcalc", cfg.History.Limit)
	if err != nil {
		return err
	}
	entries, err := store.Load()
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "history is empty")
		return nil
	}
	if limit > 0 && len(entries) > limit {
		entries = entries[len(entries)-limit:]
	}

	out := cmd.OutOrStdout()
	for _, e := range entries {
		expr := runewidth.Truncate(e.Expr, 40, "…")
		fmt.Fprintf(out, "%s  [base %2d]  %s = %s\n",
			e.When.Format("2006-01-02 15:04"), e.Base, expr, e.Result)
	}
	return nil
}

func runHistoryClear(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(".")
	if err != nil {
		return err
	}
	store, err := history.Open("bigcalc", cfg.History.Limit)
	if err != nil {
		return err
	}
	if err := store.Clear(); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "history cleared")
	return nil
}
