package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/madelynseal/spord-tracker/internal/config"
	"github.com/madelynseal/spord-tracker/internal/store"
	"github.com/spf13/cobra"
)

var (
	configPath string
	username   string
)

func main() {
	root := &cobra.Command{
		Use:           "spordcli",
		Short:         "Maintenance commands for the spord tracker",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath, "Path to the config file")

	addUser := &cobra.Command{
		Use:   "add-user",
		Short: "Create a login account, prompting for the password",
		RunE:  runAddUser,
	}
	addUser.Flags().StringVar(&username, "username", "", "Username for the new account (prompted when omitted)")

	writeConfig := &cobra.Command{
		Use:   "write-config",
		Short: "Write a default configuration file",
		RunE:  runWriteConfig,
	}

	root.AddCommand(addUser, writeConfig)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func runAddUser(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadOrCreate(configPath)
	if err != nil {
		return err
	}

	// Schema init must run before the first open: opening creates the
	// database file, which the existence guard would then mistake for an
	// initialized one.
	if err := store.EnsureInitialized(nil, cfg.Store.Location); err != nil {
		return err
	}
	db, err := store.OpenIfNeeded(nil, cfg.Store.Location)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.CreateUserInteractive(username); err != nil {
		if errors.Is(err, store.ErrPasswordMismatch) {
			return errors.New("passwords did not match, user not created")
		}
		return err
	}

	fmt.Println("User created successfully.")
	return nil
}

func runWriteConfig(cmd *cobra.Command, args []string) error {
	if err := config.WriteDefault(configPath); err != nil {
		return err
	}
	fmt.Println("Wrote default config to", configPath)
	return nil
}
