package lyrics

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/patrickprogramme/lyricruby/internal/ruby"
	"github.com/patrickprogramme/lyricruby/pkg/model"
)

// Options règle la tolérance du parser.
type Options struct {
	// Strict : la première ligne fautive interrompt le parsing.
	// Sinon elle est notée dans Result.Issues et le parsing continue.
	Strict bool
}

// Result contient les paroles extraites, dans l'ordre du transcript,
// et les lignes rejetées en mode tolérant.
type Result struct {
	Lyrics []model.Lyric
	Issues []LineError
}

// block : plage horaire courante.
type block struct {
	raw        [2]string
	start, end model.Seconds
	valid      bool
}

// Parse applique la machine à états ligne vide -> horodatage -> paroles :
//   - les lignes vides sont ignorées ;
//   - la première ligne (index 0) n'est jamais lue comme paroles ;
//   - une ligne non vide qui suit une ligne vide est une plage "START --> END" ;
//   - toute autre ligne non vide est une ligne de paroles, rattachée à la
//     dernière plage valide et nettoyée par ruby.FromHTML puis ruby.Sanitize.
//
// Chaque ligne est débarrassée de ses espaces de début et de fin avant
// analyse : le texte stocké perd donc son indentation.
//
// En mode strict, l'erreur retournée est un *LineError et Result contient les
// paroles lues avant la ligne fautive.
func Parse(transcript string, opts Options) (Result, error) {
	var res Result
	var cur block

	lines := strings.Split(transcript, "\n")
	for i, rawLine := range lines {
		line := strings.TrimSpace(rawLine)
		if line == "" || i == 0 {
			continue
		}

		if strings.TrimSpace(lines[i-1]) == "" {
			raw, start, end, err := parseRange(line)
			if err != nil {
				cur = block{}
				if stop := res.reject(i, line, err, opts); stop != nil {
					return res, stop
				}
				continue
			}
			cur = block{raw: raw, start: start, end: end, valid: true}
			continue
		}

		if !cur.valid {
			if stop := res.reject(i, line, ErrNoTimestamp, opts); stop != nil {
				return res, stop
			}
			continue
		}

		res.Lyrics = append(res.Lyrics, model.Lyric{
			Timestamps: cur.raw,
			Start:      cur.start,
			End:        cur.end,
			Text:       ruby.Sanitize(ruby.FromHTML(line)),
		})
	}
	return res, nil
}

// ParseReader lit tout r puis appelle Parse.
func ParseReader(r io.Reader, opts Options) (Result, error) {
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		return Result{}, fmt.Errorf("lecture du transcript: %w", err)
	}
	return Parse(buf.String(), opts)
}

// reject note la ligne fautive ; retourne une erreur seulement en mode strict.
func (r *Result) reject(idx int, line string, err error, opts Options) error {
	le := LineError{Line: idx + 1, Content: line, Err: err}
	if opts.Strict {
		return &le
	}
	r.Issues = append(r.Issues, le)
	return nil
}
