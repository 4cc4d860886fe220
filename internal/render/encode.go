package render

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/patrickprogramme/lyricruby/pkg/model"
	"gopkg.in/yaml.v3"
)

// Document regroupe ce qui est rendu : un titre (nom du fichier source) et les lignes.
type Document struct {
	Title string       `json:"title" yaml:"title"`
	Lines []model.Line `json:"lines" yaml:"lines"`
}

// Render produit le document dans le format demandé.
func (r *Renderer) Render(format model.Format, doc Document) ([]byte, error) {
	switch format {
	case model.FormatJSON:
		b, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encodage json: %w", err)
		}
		return append(b, '\n'), nil
	case model.FormatYAML:
		b, err := yaml.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("encodage yaml: %w", err)
		}
		return b, nil
	case model.FormatTXT:
		return []byte(plainText(doc.Lines)), nil
	case model.FormatTable:
		return []byte(lyricsTable(doc.Lines, r != nil && r.Color) + "\n"), nil
	case model.FormatHTML:
		return r.Execute(HTMLTemplate, doc)
	default:
		return nil, fmt.Errorf("format de rendu non supporté: %q", format)
	}
}

// plainText : une ligne par parole, précédée de son intervalle ; le romaji éventuel
// est indenté sur la ligne suivante.
func plainText(lines []model.Line) string {
	var b strings.Builder
	for _, l := range lines {
		fmt.Fprintf(&b, "[%s - %s] %s\n", l.Start.TimestampHHMMSS(), l.End.TimestampHHMMSS(), l.Text)
		if l.Romaji != "" {
			b.WriteString("    ")
			b.WriteString(l.Romaji)
			b.WriteByte('\n')
		}
	}
	return b.String()
}
