package kana

import (
	"strings"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// KatakanaToHiragana remplace chaque katakana connu par son hiragana.
// Les autres runes (hiragana, kanji, ASCII, ponctuation, katakana hors table)
// sont recopiées : le résultat a toujours le même nombre de runes que l'entrée.
func KatakanaToHiragana(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if h, ok := kataToHira[r]; ok {
			b.WriteRune(h)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Fold ramène le texte à une forme canonique avant la conversion :
// katakana demi-chasse -> pleine chasse, ASCII pleine chasse -> ASCII,
// puis composition NFC (か + ゙ -> が).
// En cas d'erreur de transformation, l'entrée est retournée inchangée.
func Fold(s string) string {
	if s == "" {
		return s
	}
	// une chaîne par appel : transform.Chain garde un état interne
	t := transform.Chain(width.Fold, norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
