package cmd

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/nording/deskbot/internal/app"
)

var rootCmd = &cobra.Command{
	Use:   "deskbot",
	Short: "A terminal tech support chat",
	Long:  `deskbot is a terminal chat client for a locally installed model runtime, styled as a friendly tech support agent.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Default behavior: run the chat application
		application, err := app.NewApplication()
		if err != nil {
			log.Fatalf("Failed to create application: %v", err)
		}
		defer application.Stop()

		if err := application.Start(); err != nil {
			log.Fatalf("Application error: %v", err)
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Printf("Command execution error: %v", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(profileCmd)
}
