// Copyright Inventory Capture Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/inventorycapture/partscout/internal/history"
	"github.com/inventorycapture/partscout/internal/queryfile"
	"github.com/inventorycapture/partscout/internal/results"
	"github.com/inventorycapture/partscout/pkg/types"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search distributor inventory for a part or manufacturer",
	Long: `Search runs one query against the aggregation service and prints the
listings grouped under their in-stock and brokered sections. Anonymous
sessions see supplier name, country, and upload date redacted.

A search can be saved with --out and replayed later with --from. Pass
--save-defaults to persist the current field and match type as the seed
for future searches.`,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().String("field", "", "search field: mpn or manufacturer (default from config)")
	searchCmd.Flags().String("match", "", "match type: exact or begins_with (default from config)")
	searchCmd.Flags().String("group-by", "none", "grouping: none, part, or supplier")
	searchCmd.Flags().String("sort", "", "sort column: part_number, mfr, dc, qty, supplier_name, country")
	searchCmd.Flags().Bool("desc", false, "sort descending")
	searchCmd.Flags().Bool("json", false, "output parsed records as JSON")
	searchCmd.Flags().String("out", "", "save the query and results to a YAML file")
	searchCmd.Flags().String("from", "", "load and re-run a query from a saved YAML file")
	searchCmd.Flags().Bool("save-defaults", false, "persist the field and match type to the config file")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg := loadConfig(cmd)

	q, err := resolveQuery(cmd, args, cfg.Defaults)
	if err != nil {
		return err
	}
	if err := q.Validate(); err != nil {
		return err
	}

	if save, _ := cmd.Flags().GetBool("save-defaults"); save {
		if err := saveDefaults(q.Field, q.Match); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Saved defaults: field=%s match=%s\n", q.Field, q.Match)
	}

	client, store, logger, err := clientFor(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()

	resp, err := client.Search(context.Background(), q, "cli")
	if err != nil {
		return err
	}
	set := results.Decode(resp, logger)

	recordHistory(cfg, q, set.Total(), logger)

	if path, _ := cmd.Flags().GetString("out"); path != "" {
		if err := queryfile.Write(path, q, set); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Saved search to %s\n", path)
	}

	if sortName, _ := cmd.Flags().GetString("sort"); sortName != "" {
		key, ok := results.ParseSortKey(sortName)
		if !ok {
			return fmt.Errorf("unknown sort column %q", sortName)
		}
		state := results.SortState{Key: key}
		if desc, _ := cmd.Flags().GetBool("desc"); desc {
			state.Direction = results.Desc
		}
		state.Apply(set.Records)
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		return results.FormatJSON(set, os.Stdout)
	}

	mode, err := parseGroupMode(cmd)
	if err != nil {
		return err
	}
	_, authenticated := store.Current()
	results.FormatTable(set, mode, results.Redactor{Authenticated: authenticated}, os.Stdout)
	return nil
}

// resolveQuery builds the query from a saved file or from args plus the
// field/match selectors, falling back to configured defaults.
func resolveQuery(cmd *cobra.Command, args []string, defaults types.SearchDefaults) (types.Query, error) {
	if path, _ := cmd.Flags().GetString("from"); path != "" {
		if len(args) > 0 {
			return types.Query{}, fmt.Errorf("--from cannot be combined with a query argument")
		}
		qf, err := queryfile.Read(path)
		if err != nil {
			return types.Query{}, err
		}
		return qf.Query, nil
	}

	if len(args) == 0 {
		return types.Query{}, fmt.Errorf("provide a query (at least %d characters) or --from FILE", types.MinQueryLength)
	}

	q := types.Query{
		Field: defaults.Field,
		Match: defaults.Match,
		Value: strings.Join(args, " "),
	}
	if field, _ := cmd.Flags().GetString("field"); field != "" {
		q.Field = types.SearchField(field)
	}
	if match, _ := cmd.Flags().GetString("match"); match != "" {
		q.Match = types.MatchType(match)
	}
	return q, nil
}

func parseGroupMode(cmd *cobra.Command) (results.GroupMode, error) {
	name, _ := cmd.Flags().GetString("group-by")
	switch name {
	case "", "none":
		return results.GroupFlat, nil
	case "part":
		return results.GroupByPart, nil
	case "supplier":
		return results.GroupBySupplier, nil
	}
	return results.GroupFlat, fmt.Errorf("unknown grouping %q: use none, part, or supplier", name)
}

// saveDefaults persists the selectors through viper, creating the config
// file on first use.
func saveDefaults(field types.SearchField, match types.MatchType) error {
	viper.Set("defaults.field", string(field))
	viper.Set("defaults.match", string(match))
	if err := viper.WriteConfig(); err == nil {
		return nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("locating config dir: %w", err)
	}
	dir := filepath.Join(home, ".config", "partscout")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	return viper.WriteConfigAs(filepath.Join(dir, "partscout.yaml"))
}

// recordHistory appends to the local search log; failures are logged, never
// fatal to the search itself.
func recordHistory(cfg types.ClientConfig, q types.Query, numResults int, logger *zap.Logger) {
	hist, err := history.Open(cfg.StateDir)
	if err != nil {
		logger.Warn("opening search history", zap.Error(err))
		return
	}
	defer hist.Close()
	if err := hist.Record(context.Background(), q, numResults); err != nil {
		logger.Warn("recording search history", zap.Error(err))
	}
}
