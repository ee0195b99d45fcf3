package cli

import (
	"fmt"
	"os"

	"email_size_analyzer/internal/pkg/bytemeter"
	"email_size_analyzer/internal/service"

	"github.com/spf13/cobra"
)

// NewSanitizeCmd creates the sanitize command.
func NewSanitizeCmd(g *globalOptions) *cobra.Command {
	opts := &analyzeOptions{}
	var outFile string

	cmd := &cobra.Command{
		Use:   "sanitize FILE",
		Short: "Strip pasted editor markup and report the size saved",
		Long: `Removes word-processor and online-document markup, empty spans and comments
(conditional comments are kept), then collapses whitespace.

Without --write the cleaned HTML is not saved; only the report is printed.`,
		Example: `  emailsize sanitize pasted.html --write clean.html`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			html, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			analyzer := service.NewAnalyzer(g.logger(), service.DefaultSavingsHeuristics(), 1)
			report := analyzer.SanitizeAndMeasure(string(html), opts.toService())

			if outFile != "" {
				if err := os.WriteFile(outFile, []byte(report.CleanedHTML), 0o644); err != nil {
					return err
				}
			}

			format, _ := parseOutput(g.output)
			if format != outputText {
				return writeStructured(cmd.OutOrStdout(), format, report)
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%s %s removed\n", success("✓"), bytemeter.Label(report.BytesRemoved))
			fmt.Fprintf(w, "  %s %s (%s) -> %s (%s)\n", dim("size:"),
				report.Before.TotalSizeLabel, colorStatus(report.Before.Status),
				report.After.TotalSizeLabel, colorStatus(report.After.Status))
			if outFile != "" {
				fmt.Fprintf(w, "  %s %s\n", dim("written:"), outFile)
			}
			return nil
		},
	}
	opts.addFlags(cmd)
	cmd.Flags().StringVarP(&outFile, "write", "w", "", "Write the cleaned HTML to this file")

	return cmd
}
