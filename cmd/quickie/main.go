package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/studiowebux/quickie/internal/config"
	"github.com/studiowebux/quickie/internal/history"
	"github.com/studiowebux/quickie/internal/project"
	"github.com/studiowebux/quickie/internal/tui"
)

var (
	version = "0.1.0"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "quickie [project]",
	Short: "Quickie - terminal editor for quick code scaffolds",
	Long: `Quickie is a terminal editor for spinning up small code experiments fast.

Run without arguments to pick or create a project on the welcome screen, or
provide a project name to jump straight into it. Projects live under
~/Code/Quickies and new ones are bootstrapped with the configured toolchain.

Examples:
  quickie                       # Start the TUI on the welcome screen
  quickie scratch-api           # Create or open the 'scratch-api' project
  quickie history               # List recent terminal commands
  quickie history -n 50 -p api  # Last 50 commands recorded for project 'api'
  quickie --help                # Show help`,
	Version: version,
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Initialize configuration
		if err := config.Initialize(); err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}

		name := ""
		if len(args) > 0 {
			name = args[0]
			if err := project.ValidateName(name); err != nil {
				return err
			}
		}

		return runTUI(cmd, name)
	},
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded terminal commands",
	Long: `List commands recorded by project terminals, newest first.

Use --project to narrow the listing to one project, or --clear to wipe the
whole history database.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Initialize(); err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}
		return runHistory(cmd)
	},
}

// Flags for history command
var (
	historyLimit   int
	historyProject string
	historyClear   bool
)

func init() {
	// history flags
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Number of entries to show")
	historyCmd.Flags().StringVarP(&historyProject, "project", "p", "", "Only show commands for this project")
	historyCmd.Flags().BoolVar(&historyClear, "clear", false, "Delete all recorded commands")

	// Add subcommands
	rootCmd.AddCommand(historyCmd)
}

// runTUI starts the interactive TUI
func runTUI(cmd *cobra.Command, projectName string) error {
	return tui.Run(projectName)
}

// runHistory prints or clears the command history database
func runHistory(cmd *cobra.Command) error {
	mgr, err := history.NewManager(config.DatabasePath)
	if err != nil {
		return err
	}
	defer mgr.Close()

	if historyClear {
		if err := mgr.Clear(); err != nil {
			return err
		}
		fmt.Println("History cleared")
		return nil
	}

	entries, err := mgr.Recent(historyProject, historyLimit)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Println("No commands recorded yet")
		return nil
	}

	for _, entry := range entries {
		fmt.Printf("%s  %-20s  %s\n", entry.Timestamp.Format("2006-01-02 15:04:05"), entry.Project, entry.Command)
	}

	return nil
}
