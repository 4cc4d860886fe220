package render

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/patrickprogramme/lyricruby/pkg/model"
	"gopkg.in/yaml.v3"
)

func sampleDoc() Document {
	return Document{
		Title: "<chanson>",
		Lines: []model.Line{
			{
				Lyric: model.Lyric{
					Timestamps: [2]string{"00:00:01", "00:00:04"},
					Start:      1,
					End:        4,
					Text:       "[今日](きょう)は",
				},
				Reading: "きょうは",
				Romaji:  "kyouha",
			},
			{
				Lyric: model.Lyric{
					Timestamps: [2]string{"00:00:04", "00:00:09"},
					Start:      4,
					End:        9,
					Text:       "[壊](こわ",
				},
			},
		},
	}
}

func TestRenderJSON(t *testing.T) {
	b, err := (&Renderer{}).Render(model.FormatJSON, sampleDoc())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	var got struct {
		Title string           `json:"title"`
		Lines []map[string]any `json:"lines"`
	}
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	first := got.Lines[0]
	if first["text"] != "[今日](きょう)は" || first["start"] != float64(1) || first["romaji"] != "kyouha" {
		t.Fatalf("unexpected first line: %v", first)
	}
	if _, ok := got.Lines[1]["romaji"]; ok {
		t.Fatalf("empty romaji should be omitted: %v", got.Lines[1])
	}
}

func TestRenderYAMLInlinesLyric(t *testing.T) {
	b, err := (&Renderer{}).Render(model.FormatYAML, sampleDoc())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	var got Document
	if err := yaml.Unmarshal(b, &got); err != nil {
		t.Fatalf("invalid yaml: %v", err)
	}
	if len(got.Lines) != 2 || got.Lines[0].End != 4 || got.Lines[0].Reading != "きょうは" {
		t.Fatalf("unexpected document: %+v", got)
	}
	if !strings.Contains(string(b), "    start: 1") {
		t.Fatalf("lyric fields not inlined:\n%s", b)
	}
}

func TestRenderTXT(t *testing.T) {
	b, err := (&Renderer{}).Render(model.FormatTXT, sampleDoc())
	if err != nil {
		t.Fatal(err)
	}
	want := "[00:00:01 - 00:00:04] [今日](きょう)は\n    kyouha\n[00:00:04 - 00:00:09] [壊](こわ\n"
	if string(b) != want {
		t.Fatalf("got %q; want %q", b, want)
	}
}

func TestRenderTable(t *testing.T) {
	b, err := (&Renderer{}).Render(model.FormatTable, sampleDoc())
	if err != nil {
		t.Fatal(err)
	}
	out := string(b)
	// go-pretty met les en-têtes en majuscules
	for _, want := range []string{"DÉBUT", "LECTURE", "ROMAJI", "kyouha", "00:00:09", "╭"} {
		if !strings.Contains(out, want) {
			t.Errorf("table misses %q:\n%s", want, out)
		}
	}

	bare := lyricsTable([]model.Line{{Lyric: model.Lyric{Text: "la"}}}, false)
	if strings.Contains(bare, "ROMAJI") || strings.Contains(bare, "LECTURE") {
		t.Errorf("optional columns should be hidden:\n%s", bare)
	}
}

func TestRenderHTMLEmbedded(t *testing.T) {
	r, err := DefaultRenderer("")
	if err != nil {
		t.Fatal(err)
	}
	b, err := r.Render(model.FormatHTML, sampleDoc())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := string(b)
	for _, want := range []string{
		"<title>&lt;chanson&gt;</title>",
		"<ruby>今日<rt>きょう</rt></ruby>は",
		"[壊](こわ", // markup malformé affiché tel quel
		`data-start="4"`,
		"00:00:01",
		"kyouha",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("html misses %q:\n%s", want, out)
		}
	}
}

func TestDefaultRendererPrefersDiskTemplates(t *testing.T) {
	dir := t.TempDir()
	tpl := `{{ range .Lines }}{{ ruby .Text }};{{ end }}`
	if err := os.WriteFile(filepath.Join(dir, HTMLTemplate), []byte(tpl), 0o644); err != nil {
		t.Fatal(err)
	}
	r, err := DefaultRenderer(dir)
	if err != nil {
		t.Fatal(err)
	}
	b, err := r.Render(model.FormatHTML, sampleDoc())
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "<ruby>今日<rt>きょう</rt></ruby>は;[壊](こわ;" {
		t.Fatalf("got %q", b)
	}
}

func TestRendererParseError(t *testing.T) {
	fsys := fstest.MapFS{"bad.tmpl": {Data: []byte("{{ range }")}}
	r, err := NewRendererFromFS(fsys, []string{"*.tmpl"})
	if err != nil {
		t.Fatal(err)
	}
	if got := r.TemplateNames(); len(got) != 1 || got[0] != "*.tmpl" {
		t.Fatalf("TemplateNames before parse = %v", got)
	}
	if err := r.ParseNow(); err == nil {
		t.Fatal("expected parse error")
	}
	if _, err := r.Execute("bad.tmpl", nil); err == nil {
		t.Fatal("expected error to be remembered")
	}
}

func TestRenderUnknownFormat(t *testing.T) {
	if _, err := (&Renderer{}).Render(model.Format("pdf"), Document{}); err == nil {
		t.Fatal("expected error")
	}
}
