package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/patrickprogramme/lyricruby/internal/kana"
	"github.com/patrickprogramme/lyricruby/internal/ruby"
	"github.com/spf13/cobra"
)

// textInput : les arguments joints par un espace, sinon l'entrée standard entière.
func textInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	b, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("lecture de l'entrée standard : %w", err)
	}
	return strings.TrimRight(string(b), "\r\n"), nil
}

func newRomajiCommand(ctx *commandContext) *cobra.Command {
	var markup bool
	var syllabicN string

	cmd := &cobra.Command{
		Use:   "romaji [texte...]",
		Short: "Translittère du kana en romaji",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig(cmd)
			if err != nil {
				return err
			}
			n := cfg.Romaji.SyllabicN
			if cmd.Flags().Changed("syllabic-n") {
				if err := kana.ValidateSyllabicN(syllabicN); err != nil {
					return err
				}
				n = syllabicN
			}

			text, err := textInput(cmd, args)
			if err != nil {
				return err
			}
			if markup {
				if text, err = ruby.Reading(text); err != nil {
					return err
				}
			}
			r := kana.NewRomanizer(kana.WithSyllabicN(n))
			fmt.Fprintln(cmd.OutOrStdout(), r.ToRomaji(text))
			return nil
		},
	}
	cmd.Flags().BoolVar(&markup, "markup", false, "le texte est du markup [base](lecture) : la lecture est extraite d'abord")
	cmd.Flags().StringVar(&syllabicN, "syllabic-n", "", `romanisation de ん : "n" ou "nn" (défaut : config)`)
	return cmd
}

func newRubyCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "ruby [markup...]",
		Short:       "Convertit [base](lecture) en <ruby>base<rt>lecture</rt></ruby>",
		Annotations: map[string]string{skipConfigAnnotation: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := textInput(cmd, args)
			if err != nil {
				return err
			}
			html, err := ruby.ToHTML(text)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), html)
			return nil
		},
	}
}

func newUnrubyCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "unruby [html...]",
		Short:       "Convertit <ruby>base<rt>lecture</rt></ruby> en [base](lecture)",
		Annotations: map[string]string{skipConfigAnnotation: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := textInput(cmd, args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ruby.FromHTML(text))
			return nil
		},
	}
}

func newReadingCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "reading [markup...]",
		Short:       "Remplace chaque annotation par sa lecture",
		Annotations: map[string]string{skipConfigAnnotation: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := textInput(cmd, args)
			if err != nil {
				return err
			}
			reading, err := ruby.Reading(text)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), reading)
			return nil
		},
	}
}
