package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/patrickprogramme/lyricruby/internal/config"
	"github.com/patrickprogramme/lyricruby/internal/logging"
	"github.com/patrickprogramme/lyricruby/internal/lyrics"
	"github.com/patrickprogramme/lyricruby/internal/render"
	"github.com/patrickprogramme/lyricruby/internal/ui"
)

// ErrEmptyInput : le transcript lu ne contient que des blancs.
var ErrEmptyInput = errors.New("transcript vide")

// CLIFlags contient les information venant des flags de l'app.
// Les pointeurs nil laissent la valeur de la configuration.
type CLIFlags struct {
	ConfigPath string
	Input      string // fichier, "-", URL ou vide (stdin redirigé / presse-papier)
	Format     string
	OutPath    string
	Romaji     *bool
	Strict     *bool
	Copy       *bool
}

// App orchestre les différentes dépendances (UI, rendu, FS...)
type App struct {
	cfg      *config.Config
	ui       ui.Interface
	flags    *CLIFlags
	renderer *render.Renderer
	logger   *slog.Logger
	out      io.Writer
}

// New construit l'application. out reçoit le rendu quand il n'est pas sauvegardé.
// Pour les tests, on injecte une UI factice et un buffer.
func New(cfg *config.Config, uiClient ui.Interface, flags *CLIFlags, renderer *render.Renderer, logger *slog.Logger, out io.Writer) *App {
	if flags == nil {
		flags = &CLIFlags{}
	}
	if logger == nil {
		logger = logging.Discard()
	}
	if renderer == nil {
		// les templates embarqués sont toujours présents
		renderer, _ = render.DefaultRenderer("")
	}
	return &App{
		cfg:      cfg,
		ui:       uiClient,
		flags:    flags,
		renderer: renderer,
		logger:   logger,
		out:      out,
	}
}

// Run exécute le flux principal : lecture, parsing, romanisation, rendu, sortie.
func (a *App) Run(ctx context.Context) error {
	started := time.Now()
	logger, _ := logging.WithRunID(a.logger)

	text, source, err := a.ui.ReadInput(ctx, a.flags.Input)
	if err != nil {
		return fmt.Errorf("lecture de l'entrée : %w", err)
	}
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("%s : %w", source, ErrEmptyInput)
	}
	logger.Debug("transcript lu", slog.String("source", source), slog.Int("bytes", len(text)))

	format, err := a.resolveFormat()
	if err != nil {
		return err
	}

	res, err := lyrics.Parse(text, lyrics.Options{Strict: a.strict()})
	if err != nil {
		return fmt.Errorf("analyse de %s : %w", source, err)
	}
	for _, issue := range res.Issues {
		logger.Warn("ligne ignorée",
			slog.Int("line", issue.Line),
			slog.String("content", issue.Content),
			slog.String("error", issue.Err.Error()),
		)
	}

	lines, err := a.buildLines(ctx, logger, res.Lyrics)
	if err != nil {
		return err
	}

	// couleurs seulement vers un terminal, jamais dans un fichier
	a.renderer.Color = a.ui.IsTerminal() && a.flags.OutPath == "" && !a.cfg.SaveOutput
	title := titleFor(source)
	content, err := a.renderer.Render(format, render.Document{Title: title, Lines: lines})
	if err != nil {
		return fmt.Errorf("rendu %s : %w", format, err)
	}

	dest, err := a.writeOutput(title, format, content)
	if err != nil {
		return err
	}
	if dest != "" {
		a.ui.PrintInfo(ctx, fmt.Sprintf("Paroles écrites dans :\n%s", dest))
	}

	if a.copy() {
		if err := a.ui.CopyToClipboard(ctx, string(content)); err != nil {
			logger.Warn("copie impossible", slog.String("error", err.Error()))
		} else {
			a.ui.PrintInfo(ctx, "Rendu copié dans le presse-papier.")
		}
	}

	logger.Info("conversion terminée",
		slog.String("source", source),
		slog.String("format", format.String()),
		slog.Int("lyrics", len(lines)),
		slog.Int("issues", len(res.Issues)),
		slog.Duration("elapsed", time.Since(started)),
	)
	return nil
}
