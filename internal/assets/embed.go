package assets

import "embed"

//go:embed lyricruby.example.yaml lyricruby.example.toml
//go:embed templates/*tmpl
var Embedded embed.FS

// Nom de l'asset de config par défaut (chemin DANS Embedded)
const DefaultConfigAsset = "lyricruby.example.yaml"

// DefaultConfigAssetByExt : modèle de configuration selon l'extension du fichier cible.
var DefaultConfigAssetByExt = map[string]string{
	".yaml": "lyricruby.example.yaml",
	".yml":  "lyricruby.example.yaml",
	".toml": "lyricruby.example.toml",
}

// DefaultTemplatePaths : liste ordonnée des templates "par défaut" embarqués.
// Ce sont des chemins relatifs DANS Embedded (ex: "templates/lyrics.html.tmpl").
var DefaultTemplatePaths = []string{
	"templates/lyrics.html.tmpl",
}

// TemplateByName donne un accès par clé (map).
var TemplateByName = map[string]string{
	"lyrics_html": "templates/lyrics.html.tmpl",
}
