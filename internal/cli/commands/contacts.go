package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/nogueira-gui/conecta-apiserver/internal/cli/ui"
)

var (
	contactsEmergencyOnly bool
)

// contactsCmd is the contacts command
var contactsCmd = &cobra.Command{
	Use:   "contacts",
	Short: "list your contact directory",
	Long: `List your contact directory.

Displays all contacts with phone numbers and relationship, marking
favorites and emergency contacts.`,
	Example: `  # List all contacts
  $ conectactl contacts

  # List only emergency contacts
  $ conectactl contacts --emergency
  $ conectactl contacts -e`,
	RunE: runContactsList,
}

func init() {
	contactsCmd.Flags().BoolVarP(&contactsEmergencyOnly, "emergency", "e", false, "List only emergency contacts")

	// Silence usage to avoid showing help on every error
	contactsCmd.SilenceUsage = true
}

func runContactsList(cmd *cobra.Command, args []string) error {
	// Validate arguments
	if len(args) > 0 {
		ui.PrintError("unexpected argument: %s", args[0])
		fmt.Printf("\nRun '%s --help' for usage.\n", cmd.CommandPath())
		return fmt.Errorf("invalid arguments")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	apiClient, err := authenticatedClient()
	if err != nil {
		return err
	}

	if contactsEmergencyOnly {
		ui.PrintInfo("Fetching emergency contacts...")
	} else {
		ui.PrintInfo("Fetching contacts...")
	}

	contacts, err := apiClient.ListContacts(ctx, contactsEmergencyOnly)
	if err != nil {
		ui.PrintError("failed to list contacts: %v", err)
		return fmt.Errorf("list operation failed")
	}

	emergencyCount := 0
	for _, c := range contacts {
		if c.Emergency {
			emergencyCount++
		}
	}

	fmt.Println()
	fmt.Println(ui.RenderContactList(contacts))
	fmt.Println(ui.RenderContactSummary(len(contacts), emergencyCount))

	return nil
}
