package ruby

import (
	"fmt"
	"strings"
)

// htmlToMarkup remplace les balises de présentation par les délimiteurs du markup.
var htmlToMarkup = strings.NewReplacer(
	"<ruby>", "[",
	"<rt>", "](",
	"</rt></ruby>", ")",
)

var sanitizer = strings.NewReplacer(
	"<", "&lt;",
	">", "&gt;",
)

// ToHTML convertit le markup [base](lecture) en <ruby>base<rt>lecture</rt></ruby>.
// Un markup malformé n'est pas converti à moitié : l'erreur est retournée.
func ToHTML(markup string) (string, error) {
	segs, err := Scan(markup)
	if err != nil {
		return "", fmt.Errorf("markup vers html: %w", err)
	}
	var b strings.Builder
	b.Grow(len(markup) + len(segs)*len("<ruby><rt></rt></ruby>"))
	for _, s := range segs {
		b.WriteString(s.HTML())
	}
	return b.String(), nil
}

// FromHTML est l'inverse de ToHTML pour une présentation bien formée.
// Simple remplacement de balises : aucune validation n'est faite.
func FromHTML(html string) string {
	return htmlToMarkup.Replace(html)
}

// Reading supprime les bases et garde les lectures : "[今日](きょう)は" -> "きょうは".
func Reading(markup string) (string, error) {
	segs, err := Scan(markup)
	if err != nil {
		return "", fmt.Errorf("extraction de la lecture: %w", err)
	}
	var b strings.Builder
	b.Grow(len(markup))
	for _, s := range segs {
		if s.Kind == KindAnnotated {
			b.WriteString(s.Reading)
			continue
		}
		b.WriteString(s.Text)
	}
	return b.String(), nil
}

// Sanitize échappe uniquement "<" et ">".
// "&" n'est pas échappé : ce n'est pas un échappement HTML complet, et un
// "&lt;" déjà présent dans le texte ressort tel quel.
func Sanitize(s string) string {
	return sanitizer.Replace(s)
}
