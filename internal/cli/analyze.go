package cli

import (
	"os"

	"email_size_analyzer/internal/service"

	"github.com/spf13/cobra"
)

type analyzeOptions struct {
	subject    string
	preheader  string
	noEnvelope bool
}

func (o *analyzeOptions) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.subject, "subject", "", "Subject line counted in the envelope estimate")
	cmd.Flags().StringVar(&o.preheader, "preheader", "", "Preheader text counted in the envelope estimate")
	cmd.Flags().BoolVar(&o.noEnvelope, "no-envelope", false, "Measure the markup only")
}

func (o *analyzeOptions) toService() service.AnalyzeOptions {
	return service.AnalyzeOptions{
		Subject:         o.subject,
		Preheader:       o.preheader,
		IncludeEnvelope: !o.noEnvelope,
	}
}

// NewAnalyzeCmd creates the analyze command.
func NewAnalyzeCmd(g *globalOptions) *cobra.Command {
	opts := &analyzeOptions{}

	cmd := &cobra.Command{
		Use:   "analyze FILE",
		Short: "Report the estimated size and status of an HTML email",
		Example: `  emailsize analyze campaign.html
  emailsize analyze campaign.html --subject "Spring sale" -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			html, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			analyzer := service.NewAnalyzer(g.logger(), service.DefaultSavingsHeuristics(), 1)
			verdict := analyzer.Analyze(string(html), opts.toService())

			format, _ := parseOutput(g.output)
			if format != outputText {
				return writeStructured(cmd.OutOrStdout(), format, verdict)
			}
			writeVerdict(cmd.OutOrStdout(), args[0], verdict)
			return nil
		},
	}
	opts.addFlags(cmd)

	return cmd
}
