package cmd

import (
	"fmt"

	"github.com/go-roster/roster/cmd/roster/internal/config"
)

func init() {
	RegisterCommand(&Command{
		Name:  "status",
		Short: "Show project configuration",
		Long: `Show the resolved project configuration.

Reports the project root, module path, and where generated binders
will be written. Values come from roster.yaml where present and from
defaults otherwise.`,
		Usage: "roster status",
		Run:   runStatus,
	})
}

func runStatus(args []string) error {
	root, err := config.FindProjectRoot()
	if err != nil {
		return err
	}
	resolved, err := config.Resolve(root)
	if err != nil {
		return err
	}

	fmt.Printf("Project root:   %s\n", resolved.Root)
	fmt.Printf("Module path:    %s\n", resolved.ModulePath)
	fmt.Printf("Binder package: %s\n", resolved.Package)
	fmt.Printf("Binder dir:     %s\n", resolved.Dir)
	return nil
}
