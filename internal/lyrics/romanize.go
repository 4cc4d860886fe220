package lyrics

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/patrickprogramme/lyricruby/internal/kana"
	"github.com/patrickprogramme/lyricruby/internal/ruby"
	"github.com/patrickprogramme/lyricruby/pkg/model"
)

// Romanize calcule la lecture (bases retirées) et le romaji de chaque ligne.
// Une annotation malformée n'arrête pas le traitement : la ligne garde une
// lecture et un romaji vides, et l'erreur est jointe au retour.
func Romanize(lyrics []model.Lyric, r kana.Romanizer) ([]model.Line, error) {
	out := make([]model.Line, len(lyrics))
	errs := make([]error, len(lyrics))
	for i, l := range lyrics {
		out[i], errs[i] = romanizeOne(i, l, r)
	}
	return out, errors.Join(errs...)
}

// RomanizeAll fait le même travail que Romanize sur `workers` goroutines.
// L'ordre des lignes est conservé ; l'annulation de ctx interrompt la distribution.
func RomanizeAll(ctx context.Context, lyrics []model.Lyric, r kana.Romanizer, workers int) ([]model.Line, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if workers <= 1 || len(lyrics) < 2 {
		return Romanize(lyrics, r)
	}
	if workers > len(lyrics) {
		workers = len(lyrics)
	}

	out := make([]model.Line, len(lyrics))
	errs := make([]error, len(lyrics))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				out[i], errs[i] = romanizeOne(i, lyrics[i], r)
			}
		}()
	}

feed:
	for i := range lyrics {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, errors.Join(errs...)
}

func romanizeOne(idx int, l model.Lyric, r kana.Romanizer) (model.Line, error) {
	line := model.Line{Lyric: l}
	reading, err := ruby.Reading(l.Text)
	if err != nil {
		return line, fmt.Errorf("paroles %d (%s) : %w", idx+1, l.Start.TimestampHHMMSS(), err)
	}
	line.Reading = reading
	line.Romaji = r.ToRomaji(reading)
	return line, nil
}
