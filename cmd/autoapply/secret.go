package main

import (
	"fmt"
	"os"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Vbhatt03/Automated-Application/internal/secrets"
)

var secretCmd = &cobra.Command{
	Use:   "secret",
	Short: "Manage stored credentials",
}

var secretSetCmd = &cobra.Command{
	Use:   "set <name>",
	Short: "Store a secret in the OS keyring",
	Long: "Store a secret under the given name, e.g. hunter-api-key,\n" +
		"imap-password, linkedin-email or linkedin-password.\n" +
		"The value is read from stdin without echo.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintf(os.Stderr, "value for %s: ", args[0])
		value, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return fmt.Errorf("read secret: %w", err)
		}
		return secrets.Set(args[0], string(value))
	},
}

var secretDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Remove a secret from the OS keyring",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return secrets.Delete(args[0])
	},
}

func init() {
	secretCmd.AddCommand(secretSetCmd, secretDeleteCmd)
	rootCmd.AddCommand(secretCmd)
}
