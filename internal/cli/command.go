package cli

import (
	"github.com/spf13/cobra"

	"github.com/heartmarshall/phoneme-service/internal/app"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "phonemes WORD...",
		Short: "Convert words to phoneme strings",
		Long: `phonemes looks up each WORD in a pronunciation dictionary and prints
one JSON object per word with the phoneme string and a status message.

Examples:
  phonemes cat                          # {"req_id":"...","phonemes":"K AE T","message":"data processed"}
  phonemes --dict cmudict.txt --format cmu tomato
  phonemes --variants read              # include every pronunciation variant`,
		Args:          cobra.MinimumNArgs(1),
		Version:       app.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	setupFlags(rootCmd, flags)

	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return Run(cmd.Context(), cmd.OutOrStdout(), flags, args)
	}

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $CONFIG_PATH or ./config.yaml)")

	cmd.Flags().StringVarP(&flags.DictPath, "dict", "d", "", "dictionary file (overrides dictionary.path)")
	cmd.Flags().StringVarP(&flags.Format, "format", "f", "", "dictionary format: sphinx or cmu (overrides dictionary.format)")
	cmd.Flags().BoolVar(&flags.Variants, "variants", false, "include every pronunciation variant with IPA")
}
