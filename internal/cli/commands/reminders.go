package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/nogueira-gui/conecta-apiserver/internal/cli/client"
	"github.com/nogueira-gui/conecta-apiserver/internal/cli/config"
	"github.com/nogueira-gui/conecta-apiserver/internal/cli/types"
	"github.com/nogueira-gui/conecta-apiserver/internal/cli/ui"
)

var (
	reminderDeleteForce bool
)

// remindersCmd is the reminders command
var remindersCmd = &cobra.Command{
	Use:   "reminders",
	Short: "list your health reminders",
	Long: `List your health reminders in a tree view.

Displays all reminders with their schedule, recurrence and status. Use the
subcommands to create or delete reminders.

The output includes:
  • Reminder title, type and schedule
  • Recurrence (daily, weekly, monthly) when set
  • Active or inactive status`,
	Example: `  # List your reminders
  $ conectactl reminders

  # Create a reminder interactively
  $ conectactl reminders create

  # Delete a reminder
  $ conectactl reminders delete 3f8a1c2e-...`,
	RunE: runRemindersList,
}

// remindersCreateCmd is the reminder create subcommand
var remindersCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "create a health reminder",
	Long: `Create a health reminder through interactive prompts.

You will be asked for the title, type, date, time and recurrence.`,
	Example: `  # Interactive creation (will prompt for details)
  $ conectactl reminders create`,
	RunE: runRemindersCreate,
}

// remindersDeleteCmd is the reminder delete subcommand
var remindersDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "delete a health reminder",
	Long: `Delete a health reminder by its ID.

By default, you will be prompted to confirm the deletion. Use --force to skip confirmation.`,
	Example: `  # Delete a reminder
  $ conectactl reminders delete 3f8a1c2e-...

  # Force delete without confirmation
  $ conectactl reminders delete 3f8a1c2e-... --force`,
	Args: cobra.ExactArgs(1),
	RunE: runRemindersDelete,
}

func init() {
	remindersDeleteCmd.Flags().BoolVarP(&reminderDeleteForce, "force", "f", false, "Skip confirmation prompt")

	remindersCmd.AddCommand(remindersCreateCmd)
	remindersCmd.AddCommand(remindersDeleteCmd)

	// Silence usage to avoid showing help on every error
	remindersCmd.SilenceUsage = true
	remindersCreateCmd.SilenceUsage = true
	remindersDeleteCmd.SilenceUsage = true
}

func runRemindersList(cmd *cobra.Command, args []string) error {
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

	ui.PrintInfo("Fetching reminders...")

	reminders, err := apiClient.ListReminders(ctx)
	if err != nil {
		ui.PrintError("failed to list reminders: %v", err)
		return fmt.Errorf("list operation failed")
	}

	fmt.Println()
	fmt.Println(ui.RenderReminderTree(reminders))
	fmt.Println(ui.RenderReminderSummary(len(reminders)))

	return nil
}

func runRemindersCreate(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	apiClient, err := authenticatedClient()
	if err != nil {
		return err
	}

	ui.PrintInfo("Creating reminder (Interactive Mode)")
	fmt.Println()

	// Step 1: Collect title
	var title string
	titlePrompt := &survey.Input{
		Message: "Reminder title:",
		Help:    "for example: Tomar remédio da pressão",
	}
	if err := survey.AskOne(titlePrompt, &title, survey.WithValidator(survey.Required)); err != nil {
		return fmt.Errorf("input cancelled")
	}

	// Step 2: Select reminder type
	typeOptions := []string{
		"medication",
		"appointment",
		"exam",
		"other",
	}
	var reminderType string
	typePrompt := &survey.Select{
		Message: "Select reminder type:",
		Options: typeOptions,
	}
	if err := survey.AskOne(typePrompt, &reminderType); err != nil {
		return fmt.Errorf("selection cancelled")
	}

	// Step 3: Collect date and time
	var date string
	datePrompt := &survey.Input{
		Message: "Date (YYYY-MM-DD):",
		Default: time.Now().Format("2006-01-02"),
	}
	if err := survey.AskOne(datePrompt, &date, survey.WithValidator(survey.Required)); err != nil {
		return fmt.Errorf("input cancelled")
	}

	var timeOfDay string
	timePrompt := &survey.Input{
		Message: "Time (HH:MM):",
		Default: "08:00",
	}
	if err := survey.AskOne(timePrompt, &timeOfDay, survey.WithValidator(survey.Required)); err != nil {
		return fmt.Errorf("input cancelled")
	}

	// Step 4: Recurrence
	recurring := false
	recurringPrompt := &survey.Confirm{
		Message: "Does this reminder repeat?",
	}
	if err := survey.AskOne(recurringPrompt, &recurring); err != nil {
		return fmt.Errorf("confirmation prompt failed: %w", err)
	}

	recurringType := ""
	if recurring {
		recurrenceOptions := []string{"daily", "weekly", "monthly"}
		recurrencePrompt := &survey.Select{
			Message: "How often?",
			Options: recurrenceOptions,
		}
		if err := survey.AskOne(recurrencePrompt, &recurringType); err != nil {
			return fmt.Errorf("selection cancelled")
		}
	}

	// Build create request
	req := &types.CreateReminderRequest{
		Title:         title,
		Type:          reminderType,
		ScheduledDate: date,
		Time:          timeOfDay,
		Recurring:     recurring,
		RecurringType: recurringType,
	}

	// Display configuration
	ui.PrintInfo("Creating reminder:")
	fmt.Printf("  Title: %s\n", req.Title)
	fmt.Printf("  Type: %s\n", req.Type)
	fmt.Printf("  When: %s %s\n", req.ScheduledDate, req.Time)
	if recurring {
		fmt.Printf("  Repeats: %s\n", req.RecurringType)
	}
	fmt.Println()

	// Create the resource
	ui.PrintInfo("Creating...")
	if err := apiClient.CreateReminder(ctx, req); err != nil {
		ui.PrintError("Failed to create: %v", err)
		return fmt.Errorf("creation failed")
	}

	ui.PrintSuccess("Reminder '%s' created successfully!", title)
	fmt.Println()
	fmt.Println("View reminders: conectactl reminders")

	return nil
}

func runRemindersDelete(cmd *cobra.Command, args []string) error {
	// Args are already validated by cobra.ExactArgs(1)
	reminderID := args[0]

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	apiClient, err := authenticatedClient()
	if err != nil {
		return err
	}

	// Confirm deletion unless --force
	if !reminderDeleteForce {
		confirm := false
		prompt := &survey.Confirm{
			Message: fmt.Sprintf("Delete reminder '%s'?", reminderID),
		}
		if err := survey.AskOne(prompt, &confirm); err != nil {
			return fmt.Errorf("confirmation prompt failed: %w", err)
		}

		if !confirm {
			ui.PrintInfo("Deletion cancelled")
			return nil
		}
	}

	// Perform deletion
	ui.PrintInfo("Deleting reminder '%s'...", reminderID)

	if err := apiClient.DeleteReminder(ctx, reminderID); err != nil {
		ui.PrintError("failed to delete: %v", err)
		return fmt.Errorf("deletion failed")
	}

	ui.PrintSuccess("Successfully deleted reminder '%s'", reminderID)
	return nil
}

// authenticatedClient loads the saved config and builds a client with the stored token
func authenticatedClient() (*client.APIClient, error) {
	cfg, err := config.Load()
	if err != nil {
		ui.PrintError("failed to load config: %v", err)
		return nil, fmt.Errorf("config load failed")
	}

	if !cfg.IsAuthenticated() {
		ui.PrintError("not authenticated, please login first")
		fmt.Println("\nRun 'conectactl login' to authenticate.")
		return nil, fmt.Errorf("authentication required")
	}

	apiClient, err := client.NewAPIClient(cfg.Server, cfg.AccessToken)
	if err != nil {
		ui.PrintError("failed to create client: %v", err)
		return nil, fmt.Errorf("client creation failed")
	}

	return apiClient, nil
}
