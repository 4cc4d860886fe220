package fsutil

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// maxNameBytes : limite (en octets) du nom produit ; la plupart des systèmes
// de fichiers refusent au-delà de 255.
const maxNameBytes = 200

// invalidFileRunes : caractères interdits dans un nom de fichier (Windows compris),
// \x00-\x1F sont les caractères de contrôle.
var invalidFileRunes = regexp.MustCompile(`[<>"/\\|?*\x00-\x1F]`)

// multiSpace détecte les séquences de blancs pour les réduire à un seul espace.
var multiSpace = regexp.MustCompile(`\s+`)

// SanitizeFilename transforme un titre (souvent japonais) en nom de fichier valide :
// ":" devient "-", les autres caractères interdits deviennent des espaces, les
// blancs sont réduits, les points finaux retirés, la longueur bornée sans couper
// de rune. Un résultat vide donne "untitled".
func SanitizeFilename(name string) string {
	clean := strings.ReplaceAll(name, ":", "-")
	clean = invalidFileRunes.ReplaceAllString(clean, " ")
	clean = multiSpace.ReplaceAllString(strings.TrimSpace(clean), " ")
	clean = strings.TrimRight(clean, ". ")
	clean = truncateRunes(clean, maxNameBytes)

	if clean == "" {
		return "untitled"
	}
	return CapitalizeFirst(clean)
}

// truncateRunes coupe s à au plus n octets, sur une frontière de rune.
func truncateRunes(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return strings.TrimRight(s[:n], ". ")
}

// CapitalizeFirst met en majuscule la première rune de s (sans effet sur les kana).
func CapitalizeFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
