package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/patrickprogramme/lyricruby/internal/assets"
	"github.com/patrickprogramme/lyricruby/internal/bootstrap"
	"github.com/patrickprogramme/lyricruby/internal/config"
	"github.com/patrickprogramme/lyricruby/internal/logging"
	"github.com/spf13/cobra"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

// binDir : dossier de l'exécutable, "." s'il est introuvable.
func binDir() string {
	exePath, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exePath)
}

// configPath : --config, sinon lyricruby.yaml à côté du binaire.
func (c *commandContext) configPath() string {
	if c.configFlag != nil {
		if p := strings.TrimSpace(*c.configFlag); p != "" {
			return p
		}
	}
	return filepath.Join(binDir(), config.DefaultFileName)
}

// templateDir : les templates vivent à côté du fichier de configuration.
func (c *commandContext) templateDir() string {
	return filepath.Join(filepath.Dir(c.configPath()), "templates")
}

func (c *commandContext) ensureConfig(cmd *cobra.Command) (*config.Config, error) {
	c.configOnce.Do(func() {
		errOut := cmd.ErrOrStderr()
		path := c.configPath()

		// Load crée le fichier depuis l'exemple embarqué s'il est absent
		cfg, err := config.Load(path)
		if err != nil {
			c.configErr = fmt.Errorf("chargement de la configuration : %w", err)
			return
		}

		// s'assurer que les templates existent (best-effort)
		if err := bootstrap.EnsureTemplatesPresent(c.templateDir(), assets.Embedded, assets.DefaultTemplatePaths); err != nil {
			fmt.Fprintf(errOut, "warning : templates : %v\n", err)
		}

		warnings, err := cfg.Validate()
		for _, w := range warnings {
			fmt.Fprintf(errOut, "warning : %s\n", w)
		}
		if err != nil {
			c.configErr = fmt.Errorf("configuration invalide (%s) : %w", path, err)
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) logger(cmd *cobra.Command) (*slog.Logger, error) {
	cfg, err := c.ensureConfig(cmd)
	if err != nil {
		return nil, err
	}
	return logging.NewFromConfig(cfg, cmd.ErrOrStderr())
}
