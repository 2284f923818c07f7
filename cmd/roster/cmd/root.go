// Package cmd implements the roster CLI commands.
//
// The command structure follows standard Go CLI patterns with a root
// command that dispatches to subcommands (gen, status).
package cmd

import (
	"fmt"
	"os"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// Command represents a CLI command.
type Command struct {
	Name        string
	Short       string
	Long        string
	Usage       string
	Run         func(args []string) error
	SubCommands []*Command
}

var rootCmd = &Command{
	Name:  "roster",
	Short: "Roster - pooled list views for retained-mode scene graphs",
	Long: `Roster maintains pooled view-instance lists over a host scene graph:
instances are reused across repopulations, created only on growth, and
hidden rather than destroyed on shrink.

This CLI scaffolds typed list binders so a view type, its prefab, and
its registry entry stay in one generated file.

Use "roster <command> --help" for more information about a command.`,
	Usage: "roster <command> [flags]",
}

// Commands registered with the CLI.
var commands = make(map[string]*Command)

// RegisterCommand adds a command to the CLI.
func RegisterCommand(cmd *Command) {
	commands[cmd.Name] = cmd
	rootCmd.SubCommands = append(rootCmd.SubCommands, cmd)
}

// Execute runs the CLI with the given arguments.
func Execute() error {
	args := os.Args[1:]

	if len(args) == 0 {
		printHelp(rootCmd)
		return nil
	}

	switch args[0] {
	case "-h", "--help", "help":
		printHelp(rootCmd)
		return nil
	case "-v", "--version", "version":
		fmt.Printf("roster CLI version %s (built %s)\n", Version, BuildTime)
		return nil
	}

	cmdName := args[0]
	cmd, ok := commands[cmdName]
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n\n", cmdName)
		printHelp(rootCmd)
		return fmt.Errorf("unknown command: %s", cmdName)
	}

	cmdArgs := args[1:]
	for _, arg := range cmdArgs {
		if arg == "-h" || arg == "--help" || arg == "help" {
			printCommandHelp(cmd)
			return nil
		}
	}

	return cmd.Run(cmdArgs)
}

func printHelp(cmd *Command) {
	fmt.Println(cmd.Long)
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Printf("  %s\n", cmd.Usage)
	fmt.Println()
	fmt.Println("Commands:")
	for _, sub := range cmd.SubCommands {
		fmt.Printf("  %-14s %s\n", sub.Name, sub.Short)
	}
	fmt.Println()
	fmt.Println("Flags:")
	fmt.Println("  -h, --help           Show help for a command")
	fmt.Println("  -v, --version        Show version information")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  roster gen ScoreRow score     Generate a ScoreRow binder for the score type")
	fmt.Println("  roster status                 Show project configuration")
}

func printCommandHelp(cmd *Command) {
	fmt.Println(cmd.Long)
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Printf("  %s\n", cmd.Usage)
}
