// Copyright Inventory Capture Inc., 2026. All rights reserved.

// Package main is the entry point for the partscout CLI, a terminal client
// for the Inventory Capture component-distributor aggregation service.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/inventorycapture/partscout/internal/api"
	"github.com/inventorycapture/partscout/internal/logging"
	"github.com/inventorycapture/partscout/internal/session"
	"github.com/inventorycapture/partscout/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

const (
	defaultBaseURL   = "https://api.inventorycapture.com"
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "partscout/0.1"
)

// rootCmd is the base command for the partscout CLI.
var rootCmd = &cobra.Command{
	Use:   "partscout",
	Short: "Search electronic-component distributor inventory from the terminal",
	Long: `partscout searches aggregated distributor inventory for electronic
components: one-shot searches with grouped and sorted output, an interactive
browse mode with incremental suggestions, part subscriptions, supplier
registration, and pricing-file uploads.

Sign in with 'partscout login' to see supplier identities; anonymous
sessions get redacted supplier fields.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./partscout.yaml or ~/.config/partscout/config.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false, "verbose structured logging to stderr")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("partscout")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "partscout"))
		}
	}

	viper.SetDefault("api.base_url", defaultBaseURL)
	viper.SetDefault("http.timeout", defaultTimeout)
	viper.SetDefault("http.user_agent", defaultUserAgent)
	viper.SetDefault("defaults.field", string(types.FieldMPN))
	viper.SetDefault("defaults.match", string(types.MatchBeginsWith))

	viper.SetEnvPrefix("PARTSCOUT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig materializes the typed configuration from viper state.
func loadConfig(cmd *cobra.Command) types.ClientConfig {
	debug, _ := cmd.Flags().GetBool("debug")

	cfg := types.ClientConfig{
		API: types.APIConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   viper.GetDuration("http.timeout"),
				UserAgent: viper.GetString("http.user_agent"),
			},
			BaseURL:    viper.GetString("api.base_url"),
			MaxRetries: viper.GetInt("api.max_retries"),
		},
		Defaults: types.SearchDefaults{
			Field: types.SearchField(viper.GetString("defaults.field")),
			Match: types.MatchType(viper.GetString("defaults.match")),
		},
		StateDir: viper.GetString("state_dir"),
		Debug:    debug || viper.GetBool("debug"),
	}
	if cfg.StateDir == "" {
		home, err := os.UserHomeDir()
		if err == nil {
			cfg.StateDir = filepath.Join(home, ".local", "state", "partscout")
		} else {
			cfg.StateDir = ".partscout"
		}
	}
	return cfg
}

// clientFor builds the API client backed by the on-disk session store, so
// every request picks up the current token and a 401 clears it.
func clientFor(cfg types.ClientConfig) (*api.Client, *session.Store, *zap.Logger, error) {
	store, err := session.NewStore(filepath.Join(cfg.StateDir, "session"))
	if err != nil {
		return nil, nil, nil, fmt.Errorf("opening session store: %w", err)
	}
	logger := logging.New(cfg.Debug)
	return api.NewClient(cfg.API, store, logger), store, logger, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
