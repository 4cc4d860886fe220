package lyrics

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/patrickprogramme/lyricruby/pkg/model"
)

const rangeSeparator = "-->"

// ConvertTimestamp convertit "H:M:S" en secondes (h*3600 + m*60 + s).
// Le zéro initial est facultatif. Une partie décimale des secondes
// ("00:01:02.500" ou "00:01:02,500") est tronquée.
func ConvertTimestamp(ts string) (model.Seconds, error) {
	value := strings.TrimSpace(ts)
	parts := strings.Split(value, ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("%w : %q (attendu HH:MM:SS)", ErrMalformedTimestamp, ts)
	}

	// partie décimale éventuelle (style SRT/VTT)
	if idx := strings.IndexAny(parts[2], ".,"); idx >= 0 {
		if !isDigits(parts[2][idx+1:]) {
			return 0, fmt.Errorf("%w : %q (fraction invalide)", ErrMalformedTimestamp, ts)
		}
		parts[2] = parts[2][:idx]
	}

	var total int64
	for i, weight := range [3]int64{3600, 60, 1} {
		if !isDigits(parts[i]) {
			return 0, fmt.Errorf("%w : %q (composant %d non numérique)", ErrMalformedTimestamp, ts, i+1)
		}
		n, err := strconv.ParseInt(parts[i], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w : %q : %v", ErrMalformedTimestamp, ts, err)
		}
		if n > (math.MaxInt64-total)/weight {
			return 0, fmt.Errorf("%w : %q (valeur hors limites)", ErrMalformedTimestamp, ts)
		}
		total += n * weight
	}
	return model.Seconds(total), nil
}

// parseRange lit "START --> END" ; les deux bornes sont conservées telles quelles
// (espaces autour retirés).
func parseRange(line string) (raw [2]string, start, end model.Seconds, err error) {
	left, right, found := strings.Cut(line, rangeSeparator)
	if !found {
		return raw, 0, 0, fmt.Errorf("%w : %q (séparateur %q manquant)", ErrMalformedTimestamp, line, rangeSeparator)
	}
	raw = [2]string{strings.TrimSpace(left), strings.TrimSpace(right)}

	if start, err = ConvertTimestamp(raw[0]); err != nil {
		return raw, 0, 0, err
	}
	if end, err = ConvertTimestamp(raw[1]); err != nil {
		return raw, 0, 0, err
	}
	if start > end {
		return raw, 0, 0, fmt.Errorf("%w : début %s après la fin %s", ErrMalformedTimestamp, raw[0], raw[1])
	}
	return raw, start, end, nil
}

// isDigits : chaîne non vide composée uniquement de chiffres ASCII.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
