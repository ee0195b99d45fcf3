package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"email_size_analyzer/internal/domain/models"
	"email_size_analyzer/internal/service"

	"github.com/spf13/cobra"
)

// NewCompareCmd creates the compare command.
func NewCompareCmd(g *globalOptions) *cobra.Command {
	opts := &analyzeOptions{}

	cmd := &cobra.Command{
		Use:   "compare FILE...",
		Short: "Rank email variants by size and recommend one",
		Long: `Analyzes every file as a variant of the same email and recommends the smallest
variant that stays within the target size, or the smallest one overall.`,
		Example: `  emailsize compare variant-a.html variant-b.html variant-c.html`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			variants := make([]models.Variant, 0, len(args))
			for _, path := range args {
				html, err := os.ReadFile(path)
				if err != nil {
					return err
				}
				variants = append(variants, models.Variant{
					ID:        filepath.Base(path),
					HTML:      string(html),
					Subject:   opts.subject,
					Preheader: opts.preheader,
				})
			}

			analyzer := service.NewAnalyzer(g.logger(), service.DefaultSavingsHeuristics(), runtime.NumCPU())
			result, err := analyzer.AnalyzeBatch(context.Background(), variants, !opts.noEnvelope)
			if err != nil {
				return err
			}

			format, _ := parseOutput(g.output)
			if format != outputText {
				return writeStructured(cmd.OutOrStdout(), format, result)
			}

			w := cmd.OutOrStdout()
			for i, r := range result.Results {
				marker := " "
				if r.ID == result.RecommendedID {
					marker = success("★")
				}
				fmt.Fprintf(w, "%s %d. %-30s %10s  %s\n", marker, i+1, r.ID, r.Verdict.TotalSizeLabel, colorStatus(r.Verdict.Status))
			}
			fmt.Fprintf(w, "\n%s %s\n", bold("recommended:"), result.RecommendedID)
			return nil
		},
	}
	opts.addFlags(cmd)

	return cmd
}
