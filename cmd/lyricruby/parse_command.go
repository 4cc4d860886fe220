package main

import (
	"github.com/patrickprogramme/lyricruby/internal/app"
	"github.com/patrickprogramme/lyricruby/internal/render"
	"github.com/patrickprogramme/lyricruby/internal/ui"
	"github.com/spf13/cobra"
)

func newParseCommand(ctx *commandContext) *cobra.Command {
	flags := &app.CLIFlags{}
	var romaji, strict, copyOut bool

	cmd := &cobra.Command{
		Use:   "parse [fichier|-|url]",
		Short: "Analyse un transcript horodaté et rend les paroles",
		Long: `Analyse un transcript (fichier, "-" pour l'entrée standard, URL http(s)).
Sans argument : entrée standard si elle est redirigée, sinon presse-papier.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig(cmd)
			if err != nil {
				return err
			}
			logger, err := ctx.logger(cmd)
			if err != nil {
				return err
			}

			if len(args) == 1 {
				flags.Input = args[0]
			}
			if cmd.Flags().Changed("romaji") {
				flags.Romaji = &romaji
			}
			if cmd.Flags().Changed("strict") {
				flags.Strict = &strict
			}
			if cmd.Flags().Changed("copy") {
				flags.Copy = &copyOut
			}

			renderer, err := render.DefaultRenderer(ctx.templateDir())
			if err != nil {
				return err
			}
			term := ui.NewTerminalWith(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
			a := app.New(cfg, term, flags, renderer, logger, cmd.OutOrStdout())
			return a.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVarP(&flags.Format, "format", "f", "", "format de sortie : json, yaml, txt, table, html")
	cmd.Flags().StringVarP(&flags.OutPath, "out", "o", "", "fichier de sortie (sinon config / sortie standard)")
	cmd.Flags().BoolVar(&romaji, "romaji", true, "calcule lecture et romaji")
	cmd.Flags().BoolVar(&strict, "strict", false, "s'arrête à la première ligne fautive")
	cmd.Flags().BoolVar(&copyOut, "copy", false, "copie le rendu dans le presse-papier")

	return cmd
}
