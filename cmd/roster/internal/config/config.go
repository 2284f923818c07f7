// Package config resolves the optional roster.yaml project configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
	"gopkg.in/yaml.v3"
)

// Config represents the optional roster.yaml configuration.
type Config struct {
	Gen GenConfig `yaml:"gen"`
}

// GenConfig contains binder generation settings.
type GenConfig struct {
	// Package is the Go package name for generated binders.
	Package string `yaml:"package,omitempty"`
	// Dir is the output directory, relative to the project root.
	Dir string `yaml:"dir,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root       string
	ModulePath string
	Package    string
	Dir        string
}

// LoadOptional reads roster.yaml if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, "roster.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read roster.yaml: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse roster.yaml: %w", err)
	}

	return &cfg, nil
}

// Resolve loads roster.yaml (if present) and resolves defaults.
// Generated binders go to <root>/views in package "views" unless
// configured otherwise.
func Resolve(dir string) (*Resolved, error) {
	modulePath, err := modulePath(dir)
	if err != nil {
		return nil, err
	}

	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	outDir := strings.TrimSpace(cfg.Gen.Dir)
	if outDir == "" {
		outDir = "views"
	}
	if filepath.IsAbs(outDir) {
		return nil, fmt.Errorf("gen.dir must be relative to the project root, got %q", outDir)
	}

	pkg := strings.TrimSpace(cfg.Gen.Package)
	if pkg == "" {
		pkg = defaultPackage(outDir)
	}
	if err := validatePackage(pkg); err != nil {
		return nil, err
	}

	return &Resolved{
		Root:       dir,
		ModulePath: modulePath,
		Package:    pkg,
		Dir:        outDir,
	}, nil
}

// FindProjectRoot walks up from the current directory to find go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not in a Go module (no go.mod found)")
		}
		dir = parent
	}
}

func modulePath(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		return "", fmt.Errorf("failed to read go.mod: %w", err)
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return "", fmt.Errorf("could not determine module path from go.mod")
	}
	return path, nil
}

func defaultPackage(outDir string) string {
	base := filepath.Base(outDir)
	if base == "." || base == string(filepath.Separator) {
		return "views"
	}
	return strings.ReplaceAll(base, "-", "_")
}

func validatePackage(pkg string) error {
	if pkg == "" {
		return fmt.Errorf("package name cannot be empty")
	}
	for i, r := range pkg {
		switch {
		case r >= 'a' && r <= 'z', r == '_':
		case r >= '0' && r <= '9':
			if i == 0 {
				return fmt.Errorf("invalid package name %q: cannot start with a digit", pkg)
			}
		default:
			return fmt.Errorf("invalid package name %q: use lower-case identifiers", pkg)
		}
	}
	return nil
}
