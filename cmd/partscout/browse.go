// Copyright Inventory Capture Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/inventorycapture/partscout/internal/history"
	"github.com/inventorycapture/partscout/internal/subs"
	"github.com/inventorycapture/partscout/internal/suggest"
	"github.com/inventorycapture/partscout/internal/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Interactive search with incremental suggestions",
	Long: `Browse opens the interactive terminal interface: type to get debounced
part-number suggestions, run searches, switch grouping modes, sort columns,
expand and collapse groups, view supplier details, and toggle part
subscriptions without leaving the screen.`,
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	cfg := loadConfig(cmd)

	client, store, logger, err := clientFor(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()

	hist, err := history.Open(cfg.StateDir)
	if err != nil {
		logger.Warn("opening search history", zap.Error(err))
		hist = nil
	} else {
		defer hist.Close()
	}

	engine := suggest.NewEngine(client.Suggest, suggest.Config{
		Field: cfg.Defaults.Field,
		Match: cfg.Defaults.Match,
	})
	defer engine.Close()

	_, authenticated := store.Current()
	deps := tui.Deps{
		API:           client,
		Engine:        engine,
		Subs:          subs.NewSet(client),
		History:       hist,
		Logger:        logger,
		Authenticated: authenticated,
		SearchSource:  "browse",
	}

	program := tea.NewProgram(tui.New(deps), tea.WithAltScreen(), tea.WithOutput(os.Stdout))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running browse session: %w", err)
	}
	return nil
}
