// Copyright Inventory Capture Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/inventorycapture/partscout/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent searches",
	Long: `History lists recent searches from the local store, newest first. Every
search run through 'partscout search' or browse mode is recorded with its
result count.`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().Int("limit", 20, "maximum entries to show")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg := loadConfig(cmd)
	limit, _ := cmd.Flags().GetInt("limit")

	store, err := history.Open(cfg.StateDir)
	if err != nil {
		return fmt.Errorf("opening search history: %w", err)
	}
	defer store.Close()

	entries, err := store.Recent(context.Background(), limit)
	if err != nil {
		return fmt.Errorf("reading search history: %w", err)
	}
	if len(entries) == 0 {
		fmt.Println("No recorded searches.")
		return nil
	}

	fmt.Printf("%-20s  %-12s  %-12s  %-30s  %s\n", "When", "Field", "Match", "Query", "Results")
	for _, e := range entries {
		fmt.Printf("%-20s  %-12s  %-12s  %-30s  %d\n",
			e.SearchedAt.Local().Format("2006-01-02 15:04:05"),
			e.Query.Field, e.Query.Match, e.Query.Value, e.NumResults)
	}
	return nil
}
