package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/patrickprogramme/lyricruby/internal/kana"
	"github.com/patrickprogramme/lyricruby/pkg/model"
)

// Validate vérifie les valeurs énumérées de la configuration.
// Retourne warnings (non-fataux) et une erreur si c'est critique.
func (c *Config) Validate() (warnings []string, err error) {
	if c == nil {
		return nil, fmt.Errorf("config nil")
	}

	if _, err := model.ParseFormat(c.OutputFormat); err != nil {
		return warnings, fmt.Errorf("output_format : %w", err)
	}
	if err := kana.ValidateSyllabicN(c.Romaji.SyllabicN); err != nil {
		return warnings, fmt.Errorf("romaji.syllabic_n : %w", err)
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return warnings, fmt.Errorf("log.format : valeur inconnue %q (console ou json)", c.Log.Format)
	}

	if limit := runtime.NumCPU() * 4; c.Workers > limit {
		warnings = append(warnings, fmt.Sprintf("workers=%d dépasse %d, la romanisation n'en profitera pas", c.Workers, limit))
	}

	if c.SaveOutput {
		parent := filepath.Dir(filepath.Clean(c.OutputDir))
		if st, serr := os.Stat(parent); serr != nil {
			if os.IsNotExist(serr) {
				warnings = append(warnings, fmt.Sprintf("le dossier parent de output_dir n'existe pas : %s", parent))
			} else {
				return warnings, fmt.Errorf("impossible d'accéder au dossier parent %s : %w", parent, serr)
			}
		} else if !st.IsDir() {
			return warnings, fmt.Errorf("le parent de output_dir n'est pas un répertoire : %s", parent)
		}
	}

	return warnings, nil
}
