// Package templates provides embedded template files for binder generation.
package templates

import (
	"embed"
	"strings"
	"text/template"
)

//go:embed gen/*.tmpl
var FS embed.FS

// BinderData contains the data for binder template substitution.
type BinderData struct {
	Package    string // e.g., "views"
	View       string // e.g., "ScoreRow"
	Data       string // e.g., "score"
	PrefabName string // e.g., "score_row"
}

// RenderBinder renders the typed-binder template with the given data.
func RenderBinder(data *BinderData) (string, error) {
	content, err := FS.ReadFile("gen/binder.go.tmpl")
	if err != nil {
		return "", err
	}

	tmpl, err := template.New("binder").Parse(string(content))
	if err != nil {
		return "", err
	}

	var buf strings.Builder
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
