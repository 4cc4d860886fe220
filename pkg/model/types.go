package model

import (
	"fmt"
	"strings"
)

// Seconds est un alias explicite pour représenter une durée en secondes.
type Seconds int64

// TimestampHHMMSS formate Seconds en "HH:MM:SS" (toujours 2 chiffres par composant).
// Exemple : 65 -> "00:01:05", 3661 -> "01:01:01".
func (s Seconds) TimestampHHMMSS() string {
	total := int64(s)
	h := total / 3600
	m := (total % 3600) / 60
	sec := total % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, sec)
}

func (s Seconds) Milliseconds() int64 {
	return int64(s) * 1000
}

// constantes pour les formats de sortie
type Format string

const (
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
	FormatTXT   Format = "txt"
	FormatTable Format = "table"
	FormatHTML  Format = "html"
)

// du format en chaine à la constante de type Format, return une erreur si format inconnu
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "txt", "text":
		return FormatTXT, nil
	case "table":
		return FormatTable, nil
	case "html":
		return FormatHTML, nil
	default:
		return "", fmt.Errorf("format demandé inconnu: %s", s)
	}
}

// IsStructured indique si le format sérialise les enregistrements (json/yaml).
func (f Format) IsStructured() bool {
	return f == FormatJSON || f == FormatYAML
}

// Extension retourne l'extension de fichier associée ; table est écrit en .txt.
func (f Format) Extension() string {
	if f == FormatTable {
		return ".txt"
	}
	return "." + string(f)
}

func (f Format) String() string {
	return string(f)
}
