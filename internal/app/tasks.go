package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/patrickprogramme/lyricruby/internal/fsutil"
	"github.com/patrickprogramme/lyricruby/internal/kana"
	"github.com/patrickprogramme/lyricruby/internal/lyrics"
	"github.com/patrickprogramme/lyricruby/internal/ui"
	"github.com/patrickprogramme/lyricruby/pkg/model"
)

// titre utilisé quand le transcript ne vient pas d'un fichier
const defaultTitle = "lyrics"

// resolveFormat : flag --format, sinon output_format de la config.
func (a *App) resolveFormat() (model.Format, error) {
	raw := a.flags.Format
	if raw == "" {
		raw = a.cfg.OutputFormat
	}
	f, err := model.ParseFormat(raw)
	if err != nil {
		return "", fmt.Errorf("format de sortie : %w", err)
	}
	return f, nil
}

func (a *App) strict() bool {
	if a.flags.Strict != nil {
		return *a.flags.Strict
	}
	return a.cfg.Strict
}

func (a *App) romaji() bool {
	if a.flags.Romaji != nil {
		return *a.flags.Romaji
	}
	return a.cfg.Romaji.Enabled
}

func (a *App) copy() bool {
	if a.flags.Copy != nil {
		return *a.flags.Copy
	}
	return a.cfg.CopyToClipboard
}

// buildLines enrichit les paroles (lecture + romaji) si la romanisation est active.
// Une annotation malformée n'est pas fatale : la ligne reste sans romaji.
func (a *App) buildLines(ctx context.Context, logger *slog.Logger, lys []model.Lyric) ([]model.Line, error) {
	if !a.romaji() {
		lines := make([]model.Line, len(lys))
		for i, l := range lys {
			lines[i] = model.Line{Lyric: l}
		}
		return lines, nil
	}

	r := kana.NewRomanizer(kana.WithSyllabicN(a.cfg.Romaji.SyllabicN))
	lines, err := lyrics.RomanizeAll(ctx, lys, r, a.cfg.Workers)
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}
	if err != nil {
		logger.Warn("romanisation incomplète", slog.String("error", err.Error()))
	}
	for i, l := range lines {
		if l.Reading != "" && !kana.IsKana(l.Reading) {
			// kanji sans lecture : recopiés tels quels dans le romaji
			logger.Debug("lecture non kana", slog.Int("lyric", i+1), slog.String("reading", l.Reading))
		}
	}
	return lines, nil
}

// writeOutput : --out explicite, sinon sauvegarde dans output_dir si save_output,
// sinon écriture sur a.out. Retourne le chemin écrit (vide pour a.out).
func (a *App) writeOutput(title string, format model.Format, content []byte) (string, error) {
	switch {
	case a.flags.OutPath != "":
		if err := fsutil.WriteFileAtomic(a.flags.OutPath, content, 0o644); err != nil {
			return "", fmt.Errorf("écriture de %s : %w", a.flags.OutPath, err)
		}
		return a.flags.OutPath, nil
	case a.cfg.SaveOutput:
		name := fsutil.SanitizeFilename(title)
		path, err := fsutil.SaveUnique(a.cfg.OutputDir, name, format.Extension(), content, false)
		if err != nil {
			return "", fmt.Errorf("sauvegarde dans %s : %w", a.cfg.OutputDir, err)
		}
		return path, nil
	default:
		if _, err := a.out.Write(content); err != nil {
			return "", fmt.Errorf("écriture du rendu : %w", err)
		}
		return "", nil
	}
}

// titleFor : nom du fichier (sans extension) ou titre par défaut.
func titleFor(source string) string {
	switch source {
	case "", ui.SourceStdin, ui.SourceClipboard:
		return defaultTitle
	}
	if t := fsutil.BaseName(source); t != "" && t != "." && t != "/" {
		return t
	}
	return defaultTitle
}
