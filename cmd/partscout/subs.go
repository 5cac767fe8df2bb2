// Copyright Inventory Capture Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var subsCmd = &cobra.Command{
	Use:   "subs",
	Short: "Manage part subscriptions (list, add, remove)",
	Long: `Subs manages the part numbers the signed-in account follows. Subscribed
parts are highlighted in browse mode and can be removed from there as well.`,
}

var subsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List subscribed part numbers",
	RunE:  runSubsList,
}

var subsAddCmd = &cobra.Command{
	Use:   "add [part numbers...]",
	Short: "Subscribe to one or more part numbers",
	RunE:  runSubsAdd,
}

var subsRemoveCmd = &cobra.Command{
	Use:   "remove [part numbers...]",
	Short: "Unsubscribe from one or more part numbers",
	RunE:  runSubsRemove,
}

func init() {
	subsCmd.AddCommand(subsListCmd, subsAddCmd, subsRemoveCmd)
	rootCmd.AddCommand(subsCmd)
}

func runSubsList(cmd *cobra.Command, args []string) error {
	cfg := loadConfig(cmd)

	client, _, logger, err := clientFor(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()

	parts, err := client.Subscriptions(context.Background())
	if err != nil {
		return fmt.Errorf("listing subscriptions: %w", err)
	}
	if len(parts) == 0 {
		fmt.Println("No subscribed parts.")
		return nil
	}
	for _, pn := range parts {
		fmt.Println(pn)
	}
	return nil
}

func runSubsAdd(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("provide one or more part numbers")
	}
	cfg := loadConfig(cmd)

	client, _, logger, err := clientFor(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()

	for _, pn := range args {
		if err := client.Subscribe(context.Background(), pn); err != nil {
			return fmt.Errorf("subscribing to %s: %w", pn, err)
		}
		fmt.Printf("Subscribed to %s\n", pn)
	}
	return nil
}

func runSubsRemove(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("provide one or more part numbers")
	}
	cfg := loadConfig(cmd)

	client, _, logger, err := clientFor(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()

	for _, pn := range args {
		if err := client.Unsubscribe(context.Background(), pn); err != nil {
			return fmt.Errorf("unsubscribing from %s: %w", pn, err)
		}
		fmt.Printf("Unsubscribed from %s\n", pn)
	}
	return nil
}
