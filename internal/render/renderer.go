package render

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"text/template"

	"github.com/patrickprogramme/lyricruby/internal/assets"
	"github.com/patrickprogramme/lyricruby/internal/ruby"
	"github.com/patrickprogramme/lyricruby/pkg/model"
)

// HTMLTemplate : nom (basename) du template utilisé pour l'export html.
const HTMLTemplate = "lyrics.html.tmpl"

// Renderer gère parsing paresseux (lazy) des templates et fournit des méthodes de rendu.
type Renderer struct {
	templates *template.Template // templates parsés
	fsys      fs.FS              // source des templates (embed.FS ou os.DirFS)
	patterns  []string           // patterns relatifs au fsys, ex: "templates/*.tmpl"
	once      sync.Once          // protège l'initialisation paresseuse
	err       error              // mémorise l'erreur d'initialisation (utile avec once)

	// Color active les couleurs du rendu table (terminal uniquement).
	Color bool
}

// NewRendererFromFS construit un Renderer configuré pour parser ultérieurement les patterns
// fournis depuis le fsys (ne parse pas immédiatement).
func NewRendererFromFS(fsys fs.FS, patterns []string) (*Renderer, error) {
	if fsys == nil {
		return nil, fmt.Errorf("fsys est nil")
	}
	if len(patterns) == 0 {
		return nil, fmt.Errorf("aucun template fourni")
	}
	cp := append([]string(nil), patterns...)
	return &Renderer{
		fsys:     fsys,
		patterns: cp,
	}, nil
}

// DefaultRenderer lit les templates de tplDir s'il en contient, sinon ceux embarqués.
// Un tplDir vide force les templates embarqués.
func DefaultRenderer(tplDir string) (*Renderer, error) {
	if tplDir != "" {
		if matches, _ := filepath.Glob(filepath.Join(tplDir, "*.tmpl")); len(matches) > 0 {
			return NewRendererFromFS(os.DirFS(tplDir), []string{"*.tmpl"})
		}
	}
	return NewRendererFromFS(assets.Embedded, []string{"templates/*.tmpl"})
}

// parseTemplates effectue le parsing des templates une seule fois (sync.Once).
func (r *Renderer) parseTemplates() error {
	r.once.Do(func() {
		t := template.New("root").Funcs(baseFuncMap())
		for _, p := range r.patterns {
			var parseErr error
			t, parseErr = t.ParseFS(r.fsys, p)
			if parseErr != nil {
				r.err = fmt.Errorf("parse pattern %q: %w", p, parseErr)
				return
			}
		}
		r.templates = t
	})
	return r.err
}

// ParseNow force l'initialisation / parsing immédiat et retourne l'erreur si problème.
func (r *Renderer) ParseNow() error {
	if r == nil {
		return fmt.Errorf("nil renderer")
	}
	return r.parseTemplates()
}

// Execute exécute le template nommé tmplName (basename du fichier .tmpl) avec data.
func (r *Renderer) Execute(tmplName string, data any) ([]byte, error) {
	if r == nil {
		return nil, fmt.Errorf("renderer is nil")
	}
	if err := r.parseTemplates(); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, tmplName, data); err != nil {
		return nil, fmt.Errorf("execute template %s: %w", tmplName, err)
	}
	return buf.Bytes(), nil
}

// TemplateNames retourne la liste des noms (basenames) des templates parsés.
// Si le parsing n'a pas encore été fait, renvoie les basenames des patterns.
func (r *Renderer) TemplateNames() []string {
	if r == nil {
		return nil
	}
	if r.templates == nil {
		out := make([]string, 0, len(r.patterns))
		for _, p := range r.patterns {
			out = append(out, filepath.Base(p))
		}
		return out
	}
	names := make([]string, 0, len(r.templates.Templates()))
	for _, t := range r.templates.Templates() {
		if n := t.Name(); n != "" && n != "root" {
			names = append(names, n)
		}
	}
	return names
}

// baseFuncMap construit la liste des fonctions exposées aux templates.
func baseFuncMap() template.FuncMap {
	return template.FuncMap{
		"ruby":      rubyOrRaw,
		"sanitize":  ruby.Sanitize,
		"timestamp": formatTimestamp,
	}
}

func formatTimestamp(s model.Seconds) string {
	return s.TimestampHHMMSS()
}

// rubyOrRaw : une ligne au markup malformé est affichée telle quelle plutôt que
// de faire échouer toute la page.
func rubyOrRaw(markup string) string {
	html, err := ruby.ToHTML(markup)
	if err != nil {
		return markup
	}
	return html
}
