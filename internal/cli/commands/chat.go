package commands

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/nogueira-gui/conecta-apiserver/internal/cli/client"
	"github.com/nogueira-gui/conecta-apiserver/internal/cli/config"
	"github.com/nogueira-gui/conecta-apiserver/internal/cli/tui"
	"github.com/nogueira-gui/conecta-apiserver/internal/cli/ui"
)

// chatCmd is the chat command
var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "start interactive chat with the assistant",
	Long: `Start an interactive chat session with the Conecta60+ assistant.

Features:
  • Streaming responses in real time
  • Conversation context kept across turns
  • Reminder drafts created straight from chat`,
	Example: `  # Start interactive chat
  $ conectactl chat

  # Keyboard controls:
  • Type a message and press Enter to send
  • Esc quits the session`,
	RunE: runChat,
}

func init() {
	chatCmd.SilenceUsage = true
}

func runChat(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		ui.PrintError("unexpected argument: %s", args[0])
		fmt.Println("\nRun 'conectactl chat' to start interactive session.")
		return fmt.Errorf("invalid arguments")
	}

	cfg, err := config.Load()
	if err != nil {
		ui.PrintError("failed to load config: %v", err)
		return fmt.Errorf("config load failed")
	}

	if !cfg.IsAuthenticated() {
		ui.PrintError("not authenticated, please login first")
		fmt.Println("\nRun 'conectactl login' to authenticate.")
		return fmt.Errorf("authentication required")
	}

	apiClient, err := client.NewAPIClient(cfg.Server, cfg.AccessToken)
	if err != nil {
		ui.PrintError("failed to create client: %v", err)
		return fmt.Errorf("client creation failed")
	}

	sessionID := generateSessionID()
	program := tui.NewChatProgram(apiClient, sessionID)
	if err := program.Run(); err != nil {
		return fmt.Errorf("failed to run chat TUI: %w", err)
	}

	return nil
}

func generateSessionID() string {
	return uuid.New().String()
}
