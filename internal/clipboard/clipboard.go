package clipboard

import (
	"errors"
	"strings"

	"github.com/atotto/clipboard"
)

// ReadAll lit le contenu texte du presse-papier, normalisé (voir Normalize).
func ReadAll() (string, error) {
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", err
	}
	return Normalize(text), nil
}

// WriteAll écrit une chaîne de caractères dans le presse-papier.
// Retourne une erreur si l'opération échoue.
func WriteAll(text string) error {
	if text == "" {
		return errors.New("le texte à copier ne peut pas être vide")
	}
	return clipboard.WriteAll(text)
}

// Equals vérifie si le contenu actuel du presse-papier est égal à text (après Normalize).
// En cas d'erreur de lecture, retourne false.
func Equals(text string) bool {
	current, err := clipboard.ReadAll()
	if err != nil {
		return false
	}
	return Normalize(current) == Normalize(text)
}

// Normalize retire un BOM éventuel et ramène les fins de ligne Windows à "\n".
func Normalize(s string) string {
	s = strings.TrimPrefix(s, "\ufeff")
	return strings.ReplaceAll(s, "\r\n", "\n")
}
