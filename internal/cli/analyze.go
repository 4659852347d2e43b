package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"emotone/internal/app"
	"emotone/internal/emotion"
)

var (
	matchColor = color.New(color.FgGreen)
	faintColor = color.New(color.FgRed)
)

func runAnalyze(cmd *cobra.Command, deps app.Deps, text string) error {
	set, err := deps.Classifier.LoadStore()
	if err != nil {
		return err
	}
	res, err := deps.Classifier.Score(cmd.Context(), text, set)
	if err != nil {
		return err
	}
	// A low-confidence classification is still a successful run.
	printResult(cmd.OutOrStdout(), res, deps.Config.Threshold)
	return nil
}

func printResult(w io.Writer, res emotion.Result, threshold float32) {
	for _, s := range res.Scores {
		line := fmt.Sprintf("%s: %.2f", s.Label, s.Percent)
		if s.Percent >= threshold {
			matchColor.Fprintln(w, line)
		} else {
			faintColor.Fprintln(w, line)
		}
	}
	verdict := fmt.Sprintf("best match: %s (%.2f%%)", res.Best, res.Confidence)
	if res.Confident {
		matchColor.Fprintln(w, verdict)
	} else {
		fmt.Fprintf(w, "%s, below threshold %.1f\n", verdict, threshold)
	}
}
