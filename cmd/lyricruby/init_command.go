package main

import (
	"fmt"
	"path/filepath"

	"github.com/patrickprogramme/lyricruby/internal/assets"
	"github.com/patrickprogramme/lyricruby/internal/bootstrap"
	"github.com/patrickprogramme/lyricruby/internal/config"
	"github.com/spf13/cobra"
)

func newInitCommand(ctx *commandContext) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:         "init [dossier]",
		Short:       "Exporte la configuration et les templates par défaut",
		Long:        "Sans dossier : à côté du fichier de configuration. La configuration existante n'est jamais remplacée ; --force remplace les templates modifiés (avec sauvegarde).",
		Args:        cobra.MaximumNArgs(1),
		Annotations: map[string]string{skipConfigAnnotation: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := filepath.Dir(ctx.configPath())
			if len(args) == 1 {
				dir = args[0]
			}
			out := cmd.OutOrStdout()

			cfgPath := filepath.Join(dir, config.DefaultFileName)
			created, err := bootstrap.EnsureConfigPresent(cfgPath, assets.Embedded, assets.DefaultConfigAsset)
			if err != nil {
				return err
			}
			if created {
				fmt.Fprintf(out, "%-20s %s\n", bootstrap.StatusWritten, cfgPath)
			} else {
				fmt.Fprintf(out, "%-20s %s\n", "kept", cfgPath)
			}

			status, err := bootstrap.ExportDefaults(assets.Embedded, "templates", filepath.Join(dir, "templates"), force)
			for _, p := range bootstrap.SortedPaths(status) {
				fmt.Fprintf(out, "%-20s %s\n", status[p], p)
			}
			if err != nil {
				return fmt.Errorf("export des templates : %w", err)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "remplace les templates modifiés (sauvegarde .bak)")
	return cmd
}
