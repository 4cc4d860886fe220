// Package ruby convertit les annotations furigana entre deux notations :
//
//   - markup compact : [今日](きょう)は
//   - présentation   : <ruby>今日<rt>きょう</rt></ruby>は
//
// Le markup est découpé par un scanner en une passe (Scan) qui produit des
// Segment typés ; les erreurs de syntaxe remontent en *ParseError.
package ruby
