package ruby

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedAnnotation est enveloppée par toutes les erreurs de syntaxe du markup.
var ErrMalformedAnnotation = errors.New("annotation malformée")

const (
	baseOpen     = '['
	baseClose    = ']'
	readingOpen  = '('
	readingClose = ')'
)

// Kind distingue le texte brut d'un couple base/lecture.
type Kind int

const (
	KindPlain Kind = iota
	KindAnnotated
)

func (k Kind) String() string {
	switch k {
	case KindPlain:
		return "plain"
	case KindAnnotated:
		return "annotated"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Segment est un morceau de markup.
// KindPlain : seul Text est renseigné.
// KindAnnotated : Base (jamais vide) et Reading (peut être vide).
type Segment struct {
	Kind    Kind
	Text    string
	Base    string
	Reading string
}

// Markup ré-écrit le segment en notation compacte.
func (s Segment) Markup() string {
	if s.Kind == KindAnnotated {
		return string(baseOpen) + s.Base + string(baseClose) + string(readingOpen) + s.Reading + string(readingClose)
	}
	return s.Text
}

// HTML écrit le segment en notation de présentation.
func (s Segment) HTML() string {
	if s.Kind == KindAnnotated {
		return "<ruby>" + s.Base + "<rt>" + s.Reading + "</rt></ruby>"
	}
	return s.Text
}

// Join reconstruit le markup complet d'une suite de segments.
func Join(segs []Segment) string {
	var b strings.Builder
	for _, s := range segs {
		b.WriteString(s.Markup())
	}
	return b.String()
}

// ParseError décrit une erreur de syntaxe du markup.
// Offset est la position (en octets) du délimiteur fautif dans l'entrée.
type ParseError struct {
	Offset int
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s à l'octet %d : %s", ErrMalformedAnnotation, e.Offset, e.Reason)
}

func (e *ParseError) Unwrap() error {
	return ErrMalformedAnnotation
}
