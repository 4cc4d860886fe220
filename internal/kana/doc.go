// Package kana convertit le katakana en hiragana puis l'hiragana en romaji.
//
// Les tables sont des constantes du processus : elles ne sont jamais modifiées
// après l'initialisation du package, les fonctions peuvent donc être appelées
// depuis plusieurs goroutines sans verrou.
//
// Les caractères absents des tables (kanji, ponctuation, ASCII) sont recopiés
// tels quels : le résultat est « au mieux », ce n'est pas une erreur.
package kana
