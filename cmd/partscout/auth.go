// Copyright Inventory Capture Inc., 2026. All rights reserved.

package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/inventorycapture/partscout/pkg/types"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to the aggregation service",
	Long: `Login exchanges a username and password for a bearer token and stores
it in the local session directory. Signed-in sessions see unredacted
supplier fields and can manage subscriptions.`,
	RunE: runLogin,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the stored session",
	RunE:  runLogout,
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a buyer account",
	RunE:  runRegister,
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in user and verify the session token",
	RunE:  runWhoami,
}

func init() {
	loginCmd.Flags().String("username", "", "account username")
	loginCmd.Flags().String("password", "", "account password (prompted when omitted)")

	registerCmd.Flags().String("email", "", "contact email address")
	registerCmd.Flags().String("password", "", "account password (prompted when omitted)")
	registerCmd.Flags().String("first-name", "", "first name")
	registerCmd.Flags().String("last-name", "", "last name")

	rootCmd.AddCommand(loginCmd, logoutCmd, registerCmd, whoamiCmd)
}

func runLogin(cmd *cobra.Command, args []string) error {
	cfg := loadConfig(cmd)

	username, _ := cmd.Flags().GetString("username")
	if username == "" {
		return fmt.Errorf("provide --username")
	}
	password, err := flagOrPrompt(cmd, "password", "Password: ")
	if err != nil {
		return err
	}

	client, store, logger, err := clientFor(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()

	sess, err := client.SignIn(context.Background(), username, password)
	if err != nil {
		return fmt.Errorf("signing in: %w", err)
	}
	if err := store.Save(sess); err != nil {
		return fmt.Errorf("storing session: %w", err)
	}
	fmt.Printf("Signed in as %s\n", sess.Username)
	return nil
}

func runLogout(cmd *cobra.Command, args []string) error {
	cfg := loadConfig(cmd)

	_, store, logger, err := clientFor(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if err := store.Clear(); err != nil {
		return fmt.Errorf("clearing session: %w", err)
	}
	fmt.Println("Signed out.")
	return nil
}

func runRegister(cmd *cobra.Command, args []string) error {
	cfg := loadConfig(cmd)

	email, _ := cmd.Flags().GetString("email")
	if email == "" {
		return fmt.Errorf("provide --email")
	}
	password, err := flagOrPrompt(cmd, "password", "Password: ")
	if err != nil {
		return err
	}
	firstName, _ := cmd.Flags().GetString("first-name")
	lastName, _ := cmd.Flags().GetString("last-name")

	client, _, logger, err := clientFor(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()

	req := types.RegisterRequest{
		Email:     email,
		Password:  password,
		FirstName: firstName,
		LastName:  lastName,
	}
	if err := client.Register(context.Background(), req); err != nil {
		return fmt.Errorf("registering: %w", err)
	}
	fmt.Printf("Registered %s. Sign in with 'partscout login'.\n", email)
	return nil
}

func runWhoami(cmd *cobra.Command, args []string) error {
	cfg := loadConfig(cmd)

	client, store, logger, err := clientFor(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()

	sess, ok := store.Current()
	if !ok {
		fmt.Println("Not signed in.")
		return nil
	}

	if err := client.Verify(context.Background()); err != nil {
		return fmt.Errorf("session for %s is no longer valid: %w", sess.Username, err)
	}
	fmt.Printf("Signed in as %s\n", sess.Username)
	return nil
}

// flagOrPrompt reads a flag value, prompting on stdin when it was omitted.
func flagOrPrompt(cmd *cobra.Command, flag, prompt string) (string, error) {
	v, _ := cmd.Flags().GetString(flag)
	if v != "" {
		return v, nil
	}
	fmt.Fprint(os.Stderr, prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", flag, err)
	}
	v = strings.TrimSpace(line)
	if v == "" {
		return "", fmt.Errorf("%s must not be empty", flag)
	}
	return v, nil
}
