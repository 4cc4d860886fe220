package model

import "fmt"

// Lyric représente une ligne de paroles horodatée.
// Timestamps conserve les deux bornes telles qu'elles apparaissent dans le transcript.
type Lyric struct {
	Timestamps [2]string `json:"timestamps" yaml:"timestamps"`
	Start      Seconds   `json:"start" yaml:"start"` // inclus
	End        Seconds   `json:"end" yaml:"end"`     // exclus (approximatif)
	Text       string    `json:"text" yaml:"text"`   // markup [base](lecture), < et > échappés
}

// Duration retourne End - Start (jamais négatif pour un Lyric construit par le parser).
func (l Lyric) Duration() Seconds {
	return l.End - l.Start
}

func (l Lyric) String() string {
	return fmt.Sprintf("Lyric[%s-%s %q]", l.Start.TimestampHHMMSS(), l.End.TimestampHHMMSS(), l.Text)
}

// Line enrichit un Lyric avec sa lecture en kana et sa romanisation.
type Line struct {
	Lyric   `yaml:",inline"`
	Reading string `json:"reading,omitempty" yaml:"reading,omitempty"`
	Romaji  string `json:"romaji,omitempty" yaml:"romaji,omitempty"`
}
