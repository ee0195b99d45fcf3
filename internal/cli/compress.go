package cli

import (
	"fmt"
	"os"

	"email_size_analyzer/internal/adaptors"
	"email_size_analyzer/internal/domain/models"
	"email_size_analyzer/internal/pkg/bytemeter"
	"email_size_analyzer/internal/service"

	"github.com/spf13/cobra"
)

type compressOptions struct {
	outFile string
	width   int
	maxSize int
	format  string
	quality int
}

// NewCompressCmd creates the compress command.
func NewCompressCmd(g *globalOptions) *cobra.Command {
	opts := &compressOptions{}

	cmd := &cobra.Command{
		Use:   "compress IMAGE",
		Short: "Resize and recompress an image for email",
		Example: `  emailsize compress hero.png --write hero.jpg
  emailsize compress hero.png --format webp --max-size 61440 --write hero.webp`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			logger := g.logger()
			compressor := service.NewImageCompressor(logger, adaptors.NewImageCodec(logger))
			cfg := models.DefaultCompressionConfig()
			cfg.TargetWidth = opts.width
			cfg.MaxSizeBytes = opts.maxSize
			cfg.Format = models.ParseImageFormat(opts.format)
			cfg.Quality = opts.quality

			result := compressor.Compress(data, cfg)
			if result.Success && opts.outFile != "" {
				if err := os.WriteFile(opts.outFile, result.Bytes, 0o644); err != nil {
					return err
				}
			}

			format, _ := parseOutput(g.output)
			if format != outputText {
				if err := writeStructured(cmd.OutOrStdout(), format, result); err != nil {
					return err
				}
			} else {
				writeCompression(cmd, result, opts.outFile)
			}

			if !result.Success {
				return fmt.Errorf("compression failed: %s", result.Error)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.outFile, "write", "w", "", "Write the compressed image to this file")
	cmd.Flags().IntVar(&opts.width, "width", models.ImageDefaultWidth, "Target width in pixels (never upscales)")
	cmd.Flags().IntVar(&opts.maxSize, "max-size", models.ImageTargetBytes, "Size ceiling in bytes")
	cmd.Flags().StringVar(&opts.format, "format", string(models.FormatJPEG), "Output format: jpeg, webp or png")
	cmd.Flags().IntVar(&opts.quality, "quality", models.DefaultQuality, "Starting quality")

	return cmd
}

func writeCompression(cmd *cobra.Command, r *models.CompressionResult, outFile string) {
	w := cmd.OutOrStdout()
	if !r.Success {
		return
	}
	fmt.Fprintf(w, "%s %s -> %s (%.1f%% smaller)\n", success("✓"),
		bytemeter.Label(uint64(r.OriginalSizeBytes)), bytemeter.Label(uint64(r.FinalSizeBytes)), r.PercentReduction)
	fmt.Fprintf(w, "  %s %dx%d -> %dx%d %s\n", dim("dimensions:"),
		r.OriginalDimensions.Width, r.OriginalDimensions.Height, r.Dimensions.Width, r.Dimensions.Height, r.FormatUsed)
	if r.SourceReturned {
		fmt.Fprintf(w, "  %s original kept after %d attempt(s)\n", dim("encoder:"), r.Attempts)
	} else {
		fmt.Fprintf(w, "  %s quality %d after %d attempt(s)\n", dim("encoder:"), r.QualityUsed, r.Attempts)
	}
	if r.Warning != "" {
		fmt.Fprintf(w, "  %s %s\n", warning("!"), r.Warning)
	}
	if outFile != "" {
		fmt.Fprintf(w, "  %s %s\n", dim("written:"), outFile)
	}
}
