package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode"

	"github.com/go-roster/roster/cmd/roster/internal/config"
	"github.com/go-roster/roster/cmd/roster/internal/templates"
)

func init() {
	RegisterCommand(&Command{
		Name:  "gen",
		Short: "Generate a typed list binder",
		Long: `Generate a typed list binder for a data type.

The generated file defines a view type implementing scene.Bindable,
a prefab for it, an init-time registry entry mapping the data type to
that prefab, and a constructor returning a pooled list.

The data type must be declared (or aliased) in the output package.
Output location and package name come from roster.yaml (gen.dir,
gen.package), defaulting to views/ and package views.

Examples:
  roster gen ScoreRow score
  roster gen InventoryCell inventoryItem`,
		Usage: "roster gen <ViewName> <dataType>",
		Run:   runGen,
	})
}

var identifierRE = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

func runGen(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("view name and data type are required\n\nUsage: roster gen <ViewName> <dataType>")
	}
	view, data := args[0], args[1]

	if !identifierRE.MatchString(view) {
		return fmt.Errorf("invalid view name %q: must be a Go identifier", view)
	}
	if !unicode.IsUpper(rune(view[0])) {
		return fmt.Errorf("view name %q must be exported (start with an upper-case letter)", view)
	}
	if !identifierRE.MatchString(data) {
		return fmt.Errorf("invalid data type %q: must be a Go identifier", data)
	}

	root, err := config.FindProjectRoot()
	if err != nil {
		return err
	}
	resolved, err := config.Resolve(root)
	if err != nil {
		return err
	}

	path, err := generateBinder(resolved, view, data)
	if err != nil {
		return err
	}

	rel, relErr := filepath.Rel(root, path)
	if relErr != nil {
		rel = path
	}
	fmt.Printf("Generated %s\n", rel)
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Printf("  - declare type %s in package %s (or alias it there)\n", data, resolved.Package)
	fmt.Printf("  - fill in %s.Populate\n", view)
	return nil
}

// generateBinder renders the binder template and writes it under the
// resolved output directory. It refuses to overwrite an existing file.
// Split from runGen so tests can call it without a real project.
func generateBinder(resolved *config.Resolved, view, data string) (string, error) {
	content, err := templates.RenderBinder(&templates.BinderData{
		Package:    resolved.Package,
		View:       view,
		Data:       data,
		PrefabName: snakeCase(view),
	})
	if err != nil {
		return "", fmt.Errorf("failed to render binder template: %w", err)
	}

	dir := filepath.Join(resolved.Root, resolved.Dir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", dir, err)
	}

	path := filepath.Join(dir, snakeCase(view)+"_view.go")
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("%s already exists; remove it first to regenerate", path)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}

// snakeCase converts an exported Go identifier to snake_case.
func snakeCase(name string) string {
	var b strings.Builder
	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
