package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/patrickprogramme/lyricruby/internal/config"
)

// Options décrit la construction du logger.
type Options struct {
	Level  string    // debug | info | warn | error
	Format string    // console | json
	Output io.Writer // stderr si nil : stdout est réservé au rendu
}

// New construit un logger slog à partir des options.
func New(opts Options) (*slog.Logger, error) {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	level := parseLevel(opts.Level)

	format := strings.ToLower(strings.TrimSpace(opts.Format))
	if format == "" {
		format = "console"
	}

	var handler slog.Handler
	switch format {
	case "json":
		handler = slog.NewJSONHandler(out, &slog.HandlerOptions{
			Level:       level,
			ReplaceAttr: renameJSONKeys,
		})
	case "console":
		handler = slog.NewTextHandler(out, &slog.HandlerOptions{
			Level:       level,
			ReplaceAttr: dropTime,
		})
	default:
		return nil, fmt.Errorf("log format : valeur non supportée %q", opts.Format)
	}

	return slog.New(handler), nil
}

// NewFromConfig crée le logger d'après la section log de la configuration.
func NewFromConfig(cfg *config.Config, out io.Writer) (*slog.Logger, error) {
	if cfg == nil {
		return New(Options{Level: "info", Format: "console", Output: out})
	}
	return New(Options{Level: cfg.Log.Level, Format: cfg.Log.Format, Output: out})
}

// WithRunID attache un identifiant d'exécution à toutes les entrées du logger.
// Retourne aussi l'identifiant pour l'afficher ailleurs.
func WithRunID(logger *slog.Logger) (*slog.Logger, string) {
	id := uuid.NewString()
	return logger.With(slog.String("run_id", id)), id
}

// Discard retourne un logger qui n'écrit rien (tests, modes silencieux).
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// renameJSONKeys : ts/level/msg au lieu de time/level/msg.
func renameJSONKeys(groups []string, a slog.Attr) slog.Attr {
	if len(groups) > 0 {
		return a
	}
	switch a.Key {
	case slog.TimeKey:
		a.Key = "ts"
	case slog.LevelKey:
		a.Value = slog.StringValue(strings.ToLower(a.Value.String()))
	}
	return a
}

// dropTime : en console, l'heure n'apporte rien pour une exécution de quelques millisecondes.
func dropTime(groups []string, a slog.Attr) slog.Attr {
	if len(groups) == 0 && a.Key == slog.TimeKey {
		return slog.Attr{}
	}
	return a
}
