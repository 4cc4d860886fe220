package lyrics

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedTimestamp : horodatage illisible ou plage début > fin.
	ErrMalformedTimestamp = errors.New("horodatage malformé")
	// ErrNoTimestamp : ligne de paroles sans plage horaire valide à laquelle se rattacher.
	ErrNoTimestamp = errors.New("paroles sans horodatage valide")
)

// LineError rattache une erreur à une ligne du transcript (numérotée à partir de 1).
type LineError struct {
	Line    int
	Content string
	Err     error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("ligne %d (%q) : %v", e.Line, e.Content, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}
