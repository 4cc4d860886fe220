package main

import (
	"github.com/spf13/cobra"
)

// annotation posée sur les commandes qui n'ont pas besoin de la configuration
const skipConfigAnnotation = "skip-config"

func newRootCommand() *cobra.Command {
	var configFlag string

	ctx := newCommandContext(&configFlag)

	rootCmd := &cobra.Command{
		Use:           "lyricruby",
		Short:         "Paroles japonaises horodatées : furigana, lecture et romaji",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig(cmd)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "chemin du fichier de configuration (.yaml ou .toml)")

	rootCmd.AddCommand(newParseCommand(ctx))
	rootCmd.AddCommand(newRomajiCommand(ctx))
	rootCmd.AddCommand(newRubyCommand())
	rootCmd.AddCommand(newUnrubyCommand())
	rootCmd.AddCommand(newReadingCommand())
	rootCmd.AddCommand(newInitCommand(ctx))

	return rootCmd
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations[skipConfigAnnotation] == "true" {
			return true
		}
	}
	return false
}
