// Package cli wires the emotone commands: analyzing a text is the root
// command, regenerating the reference embeddings is a subcommand.
package cli

import (
	"github.com/spf13/cobra"

	"emotone/internal/app"
)

var rootCmd = &cobra.Command{
	Use:   `emotone "<text>"`,
	Short: "Emotone - emotional tone classifier",
	Long: "Classifies the emotional tone of a short text by comparing its embedding\n" +
		"against six reference emotions: sadness, happiness, fear, anger, surprise\n" +
		"and disgust. Run `emotone generate` once before the first analysis.",
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := app.Build()
		if err != nil {
			return err
		}
		return runAnalyze(cmd, deps, args[0])
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(generateCmd)
}
