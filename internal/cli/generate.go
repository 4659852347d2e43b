package cli

import (
	"github.com/spf13/cobra"

	"emotone/internal/app"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Regenerate the six reference emotion embeddings",
	Long: "Requests an embedding for each of the six emotion labels and rewrites the\n" +
		"store wholesale. Either all six succeed or the existing store is left as is.",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := app.Build()
		if err != nil {
			return err
		}
		set, err := deps.Classifier.Generate(cmd.Context())
		if err != nil {
			return err
		}
		deps.Log.Info("reference embeddings written",
			"path", deps.Config.StorePath,
			"labels", len(set),
			"dimensions", set.Dimensions())
		return nil
	},
}
