package ui

import "context"

// Sources possibles du transcript lu par ReadInput.
const (
	SourceStdin     = "stdin"
	SourceClipboard = "clipboard"
)

type Interface interface {
	// ReadInput lit le transcript :
	// - path == "-"  : entrée standard
	// - http(s)://   : téléchargement
	// - path != ""   : fichier
	// - path == ""   : entrée standard si elle est redirigée, sinon presse-papier
	// source vaut SourceStdin, SourceClipboard ou le chemin du fichier.
	ReadInput(ctx context.Context, path string) (text string, source string, err error)

	PrintInfo(ctx context.Context, s string)
	PrintError(ctx context.Context, s string)

	// CopyToClipboard copie text (sans effet s'il y est déjà).
	CopyToClipboard(ctx context.Context, text string) error

	// IsTerminal indique si la sortie standard est un terminal (couleurs, tableaux).
	IsTerminal() bool
}
