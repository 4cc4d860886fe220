package ruby

type scanState int

const (
	inPlain scanState = iota
	inBase
	inReading
)

// Scan découpe le markup en segments en une seule passe.
//
// Grammaire : texte brut, puis pour chaque annotation "[" BASE "](" LECTURE ")".
// Règles :
//   - la base ne peut être vide ni contenir "[" ;
//   - "]" doit être immédiatement suivi de "(" ;
//   - la lecture ne peut contenir "(", "[" ou "]" ;
//   - un "]" ou ")" isolé dans le texte brut reste du texte brut.
//
// Le résultat contient toujours au moins un segment (texte brut vide pour une
// entrée vide). Les délimiteurs sont ASCII : on travaille sur les octets sans
// couper de rune UTF-8.
func Scan(markup string) ([]Segment, error) {
	var segs []Segment
	state := inPlain
	plainStart := 0
	open := 0 // position du "[" courant
	var base string
	readingStart := 0

	for i := 0; i < len(markup); i++ {
		c := markup[i]
		switch state {
		case inPlain:
			if c != baseOpen {
				continue
			}
			if i > plainStart {
				segs = append(segs, Segment{Kind: KindPlain, Text: markup[plainStart:i]})
			}
			open = i
			state = inBase

		case inBase:
			switch c {
			case baseOpen:
				return nil, &ParseError{Offset: i, Reason: "'[' imbriqué dans une base"}
			case baseClose:
				base = markup[open+1 : i]
				if base == "" {
					return nil, &ParseError{Offset: open, Reason: "base vide"}
				}
				if i+1 >= len(markup) || markup[i+1] != readingOpen {
					return nil, &ParseError{Offset: i, Reason: "']' doit être suivi de '('"}
				}
				i++
				readingStart = i + 1
				state = inReading
			}

		case inReading:
			switch c {
			case readingOpen, baseOpen, baseClose:
				return nil, &ParseError{Offset: i, Reason: "délimiteur imbriqué dans une lecture"}
			case readingClose:
				segs = append(segs, Segment{
					Kind:    KindAnnotated,
					Base:    base,
					Reading: markup[readingStart:i],
				})
				plainStart = i + 1
				state = inPlain
			}
		}
	}

	switch state {
	case inBase:
		return nil, &ParseError{Offset: open, Reason: "base non terminée (']' manquant)"}
	case inReading:
		return nil, &ParseError{Offset: readingStart - 1, Reason: "lecture non terminée (')' manquant)"}
	}

	if plainStart < len(markup) || len(segs) == 0 {
		segs = append(segs, Segment{Kind: KindPlain, Text: markup[plainStart:]})
	}
	return segs, nil
}
