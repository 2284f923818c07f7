package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeProject(t *testing.T, yaml string) string {
	t.Helper()
	root := t.TempDir()
	gomod := "module example.com/game\n\ngo 1.24.0\n"
	if err := os.WriteFile(filepath.Join(root, "go.mod"), []byte(gomod), 0o644); err != nil {
		t.Fatalf("write go.mod: %v", err)
	}
	if yaml != "" {
		if err := os.WriteFile(filepath.Join(root, "roster.yaml"), []byte(yaml), 0o644); err != nil {
			t.Fatalf("write roster.yaml: %v", err)
		}
	}
	return root
}

func TestResolveDefaults(t *testing.T) {
	root := writeProject(t, "")

	resolved, err := Resolve(root)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if resolved.ModulePath != "example.com/game" {
		t.Errorf("ModulePath = %q", resolved.ModulePath)
	}
	if resolved.Package != "views" || resolved.Dir != "views" {
		t.Errorf("defaults = %q %q, want views views", resolved.Package, resolved.Dir)
	}
}

func TestResolveFromYAML(t *testing.T) {
	root := writeProject(t, "gen:\n  package: hud\n  dir: internal/hud\n")

	resolved, err := Resolve(root)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if resolved.Package != "hud" || resolved.Dir != "internal/hud" {
		t.Errorf("resolved = %q %q", resolved.Package, resolved.Dir)
	}
}

func TestResolvePackageDefaultsFromDir(t *testing.T) {
	root := writeProject(t, "gen:\n  dir: ui/list-views\n")

	resolved, err := Resolve(root)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if resolved.Package != "list_views" {
		t.Errorf("Package = %q, want list_views", resolved.Package)
	}
}

func TestResolveRejectsAbsoluteDir(t *testing.T) {
	root := writeProject(t, "gen:\n  dir: /tmp/out\n")

	if _, err := Resolve(root); err == nil {
		t.Error("absolute gen.dir should be rejected")
	}
}

func TestResolveRejectsBadPackage(t *testing.T) {
	root := writeProject(t, "gen:\n  package: Bad-Name\n")

	if _, err := Resolve(root); err == nil {
		t.Error("invalid package name should be rejected")
	}
}

func TestResolveMissingGoMod(t *testing.T) {
	if _, err := Resolve(t.TempDir()); err == nil {
		t.Error("Resolve without go.mod should fail")
	}
}

func TestLoadOptionalMissingFile(t *testing.T) {
	cfg, err := LoadOptional(t.TempDir())
	if err != nil {
		t.Fatalf("LoadOptional: %v", err)
	}
	if cfg == nil || cfg.Gen.Package != "" {
		t.Error("missing roster.yaml should yield an empty config")
	}
}
