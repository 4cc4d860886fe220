package kana

import (
	"fmt"
	"strings"
)

// Romanizer convertit de l'hiragana en romaji. La valeur zéro est utilisable
// et équivaut à NewRomanizer().
type Romanizer struct {
	nasal string // romanisation de ん ("n" ou "nn")
}

// Option configure un Romanizer.
type Option func(*Romanizer)

// WithSyllabicN choisit la romanisation de ん : "n" (hepburn) ou "nn" (wāpuro).
func WithSyllabicN(n string) Option {
	return func(r *Romanizer) {
		r.nasal = n
	}
}

// NewRomanizer construit un Romanizer ; ValidateSyllabicN doit avoir été appelé
// sur les valeurs venant de l'utilisateur.
func NewRomanizer(opts ...Option) Romanizer {
	r := Romanizer{nasal: defaultNasal}
	for _, opt := range opts {
		opt(&r)
	}
	if r.nasal == "" {
		r.nasal = defaultNasal
	}
	return r
}

// ValidateSyllabicN vérifie une valeur de configuration pour ん.
func ValidateSyllabicN(n string) error {
	switch n {
	case "n", "nn":
		return nil
	default:
		return fmt.Errorf("romanisation de ん inconnue %q (attendu \"n\" ou \"nn\")", n)
	}
}

// Default est le Romanizer utilisé par les fonctions du package.
var Default = NewRomanizer()

// HiraganaToRomaji convertit avec Default.
func HiraganaToRomaji(s string) string {
	return Default.HiraganaToRomaji(s)
}

// ToRomaji convertit avec Default un texte kana quelconque.
func ToRomaji(s string) string {
	return Default.ToRomaji(s)
}

// ToRomaji normalise (Fold), ramène le katakana en hiragana puis romanise.
// Fold réécrit aussi les variantes de largeur hors table : "ＡＢＣ！" donne
// "ABC!". Pour recopier ces caractères tels quels, appeler HiraganaToRomaji
// sur KatakanaToHiragana(s).
func (r Romanizer) ToRomaji(s string) string {
	return r.HiraganaToRomaji(KatakanaToHiragana(Fold(s)))
}

// syllable retourne la romanisation d'une rune de la table.
func (r Romanizer) syllable(c rune) (string, bool) {
	if c == syllabicN {
		if r.nasal == "" {
			return defaultNasal, true
		}
		return r.nasal, true
	}
	v, ok := syllables[c]
	return v, ok
}

// HiraganaToRomaji parcourt la chaîne de gauche à droite avec une rune
// d'avance/de retard :
//   - syllabe de la table : on ajoute sa valeur ;
//   - petit ゃ/ゅ/ょ : si la rune précédente est dans la table, on retire le
//     dernier caractère émis (la voyelle) avant d'ajouter ya/yu/yo ; après
//     ん romanisé "n", rien n'est retiré (んゃ -> nya) ;
//   - petit っ : on double la première lettre de la syllabe suivante, rien si
//     elle n'existe pas ou n'est pas dans la table ;
//   - ー : rien (la longueur de voyelle n'est pas notée) ;
//   - sinon la rune est recopiée.
func (r Romanizer) HiraganaToRomaji(s string) string {
	runes := []rune(s)
	out := make([]byte, 0, len(s))

	for i, c := range runes {
		if v, ok := r.syllable(c); ok {
			out = append(out, v...)
			continue
		}

		if y, ok := combiners[c]; ok {
			if i > 0 {
				if v, prev := r.syllable(runes[i-1]); prev && len(out) > 0 && !(runes[i-1] == syllabicN && len(v) < 2) {
					out = out[:len(out)-1]
				}
			}
			out = append(out, y...)
			continue
		}

		switch c {
		case geminate:
			if i+1 < len(runes) {
				if next, ok := r.syllable(runes[i+1]); ok && next != "" {
					out = append(out, next[0])
				}
			}
		case longVowel:
			// élision
		default:
			out = append(out, string(c)...)
		}
	}
	return string(out)
}

// IsKana indique si toutes les runes non blanches de s sont connues des tables
// (hiragana, katakana, petits kana, ー). Utile pour signaler une lecture qui
// contient encore des kanji.
func IsKana(s string) bool {
	for _, c := range KatakanaToHiragana(Fold(s)) {
		if strings.ContainsRune(" \t　", c) {
			continue
		}
		if _, ok := syllables[c]; ok {
			continue
		}
		if _, ok := combiners[c]; ok {
			continue
		}
		if c == syllabicN || c == geminate || c == longVowel {
			continue
		}
		return false
	}
	return true
}
