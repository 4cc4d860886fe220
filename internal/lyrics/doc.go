// Package lyrics transforme un transcript horodaté en []model.Lyric.
//
// Format attendu : des blocs séparés par une ligne vide, chaque bloc commence
// par "HH:MM:SS --> HH:MM:SS" suivi d'une ou plusieurs lignes de paroles.
// La toute première ligne du transcript (en-tête) est ignorée.
package lyrics
