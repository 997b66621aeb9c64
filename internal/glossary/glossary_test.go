package glossary

import (
	"fmt"
	"strings"
	"testing"

	"github.com/japaniel/minecore/internal/model"
)

func TestBuildPlainString(t *testing.T) {
	nodes := []model.GlossaryNode{{Kind: model.GlossaryString, Text: "sukiyaki\nhot pot"}}
	entries, files := Build(nodes, "", nil)
	if len(entries) != 1 || entries[0] != "sukiyaki<br>hot pot" {
		t.Fatalf("entries = %+v", entries)
	}
	if len(files) != 0 {
		t.Fatalf("expected no files, got %+v", files)
	}
}

func TestBuildStructuredSpanWithStyle(t *testing.T) {
	node := &model.StructuredNode{
		Tag:   "span",
		Style: map[string]any{"fontWeight": "bold"},
		Content: model.StructuredContent{
			IsString: true,
			String:   "kanji reading",
		},
	}
	nodes := []model.GlossaryNode{{Kind: model.GlossaryStructured, Structured: &model.StructuredNode{Content: model.StructuredContent{IsNode: true, Node: node}}}}

	entries, _ := Build(nodes, "", nil)
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	got := entries[0]
	if !strings.HasPrefix(got, "<span") || !strings.HasSuffix(got, "</span>") {
		t.Fatalf("got %q, want wrapped in <span>...</span>", got)
	}
	if !strings.Contains(got, "font-weight: bold;") {
		t.Fatalf("got %q, want font-weight style", got)
	}
	if !strings.Contains(got, "kanji reading") {
		t.Fatalf("got %q, want content preserved", got)
	}
}

func TestBuildStructuredListPreservesOrder(t *testing.T) {
	content := model.StructuredContent{
		IsList: true,
		Children: []model.StructuredContent{
			{IsString: true, String: "a"},
			{IsNode: true, Node: &model.StructuredNode{Tag: "br"}},
			{IsString: true, String: "b"},
		},
	}
	nodes := []model.GlossaryNode{{Kind: model.GlossaryStructured, Structured: &model.StructuredNode{Content: content}}}

	entries, _ := Build(nodes, "", nil)
	want := "a<br>b"
	if entries[0] != want {
		t.Fatalf("entries[0] = %q, want %q", entries[0], want)
	}
}

func TestBuildImageFileHashIsDeterministic(t *testing.T) {
	loader := func(path string) ([]byte, error) {
		return []byte("same bytes"), nil
	}
	nodes := []model.GlossaryNode{
		{Kind: model.GlossaryImage, Image: &model.ImageNode{Path: "a.png"}},
		{Kind: model.GlossaryImage, Image: &model.ImageNode{Path: "b.png"}},
	}

	_, files1 := Build(nodes, "/dict/", loader)
	_, files2 := Build(nodes, "/dict/", loader)

	name1 := files1["/dict/a.png"]
	name2 := files1["/dict/b.png"]
	if name1 == "" || name2 == "" {
		t.Fatalf("missing file map entries: %+v", files1)
	}
	if name1 != name2 {
		t.Fatalf("same content hashed to different names: %q != %q", name1, name2)
	}
	if files2["/dict/a.png"] != name1 {
		t.Fatalf("hash not stable across calls: %q != %q", files2["/dict/a.png"], name1)
	}
	if !strings.HasSuffix(name1, ".png") {
		t.Fatalf("filename %q missing original extension", name1)
	}
}

func TestBuildImageMissingFileFallsBack(t *testing.T) {
	loader := func(path string) ([]byte, error) {
		return nil, fmt.Errorf("not found")
	}
	nodes := []model.GlossaryNode{{Kind: model.GlossaryImage, Image: &model.ImageNode{Path: "missing.png"}}}

	entries, files := Build(nodes, "/dict/", loader)
	if len(files) != 0 {
		t.Fatalf("expected no file map entry on load failure, got %+v", files)
	}
	if !strings.Contains(entries[0], "file not found") {
		t.Fatalf("entries[0] = %q, want fallback message", entries[0])
	}
}

func TestBuildCollapsibleImageWrapsDetails(t *testing.T) {
	nodes := []model.GlossaryNode{{
		Kind: model.GlossaryImage,
		Image: &model.ImageNode{
			Path:        "a.png",
			Collapsible: true,
			Collapsed:   true,
			Description: "a picture",
		},
	}}
	entries, _ := Build(nodes, "/dict/", func(string) ([]byte, error) { return []byte("x"), nil })

	got := entries[0]
	if !strings.HasPrefix(got, "<details>") || !strings.HasSuffix(got, "</details>") {
		t.Fatalf("got %q, want <details> wrapper (collapsed, no open attr)", got)
	}
	if !strings.Contains(got, "a picture") {
		t.Fatalf("got %q, want description included", got)
	}
}
