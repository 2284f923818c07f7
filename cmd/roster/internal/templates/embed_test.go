package templates

import (
	"strings"
	"testing"
)

func TestRenderBinder(t *testing.T) {
	src, err := RenderBinder(&BinderData{
		Package:    "views",
		View:       "ScoreRow",
		Data:       "score",
		PrefabName: "score_row",
	})
	if err != nil {
		t.Fatalf("RenderBinder: %v", err)
	}

	for _, want := range []string{
		"package views",
		"type ScoreRow struct",
		`scene.NewPrefab("score_row"`,
		"registry.Register[score](ScoreRowPrefab)",
		"*list.List[score]",
	} {
		if !strings.Contains(src, want) {
			t.Errorf("rendered binder missing %q", want)
		}
	}

	if strings.Contains(src, "{{") {
		t.Error("rendered binder still contains template actions")
	}
}
