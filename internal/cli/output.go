package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"email_size_analyzer/internal/domain/models"
	"email_size_analyzer/internal/pkg/bytemeter"

	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"
)

type outputFormat string

const (
	outputText outputFormat = "text"
	outputJSON outputFormat = "json"
	outputYAML outputFormat = "yaml"
)

func parseOutput(s string) (outputFormat, error) {
	switch f := outputFormat(s); f {
	case outputText, outputJSON, outputYAML:
		return f, nil
	}
	return "", fmt.Errorf("unsupported output format %q (use text, json or yaml)", s)
}

// writeStructured renders v as JSON or YAML. YAML is produced from the JSON
// encoding so both formats share field names and order.
func writeStructured(w io.Writer, format outputFormat, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	if format == outputJSON {
		_, err = fmt.Fprintln(w, string(data))
		return err
	}

	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	defer enc.Close()
	return enc.Encode(&node)
}

func colorStatus(s models.SizeStatus) string {
	label := string(s)
	switch s {
	case models.StatusOptimal, models.StatusGood:
		return success(label)
	case models.StatusWarning:
		return warning(label)
	default:
		return danger(label)
	}
}

func writeVerdict(w io.Writer, name string, v *models.SizeVerdict) {
	if name != "" {
		fmt.Fprintf(w, "%s\n", bold(name))
	}
	fmt.Fprintf(w, "  %s %s (%s)\n", dim("size:"), v.TotalSizeLabel, colorStatus(v.Status))
	fmt.Fprintf(w, "  %s %s markup + %s envelope\n", dim("breakdown:"), bytemeter.Label(v.RawBytes), bytemeter.Label(v.EnvelopeBytes))
	fmt.Fprintf(w, "  %s %d%% of the clipping limit, %s remaining\n", dim("limit:"), v.PercentOfHardLimit, bytemeter.Label(v.BytesRemaining))
	fmt.Fprintf(w, "  %s %s words, %s characters\n", dim("copy:"), humanize.Comma(int64(v.WordCount)), humanize.Comma(int64(v.CharCount)))
	fmt.Fprintf(w, "  %s %d tables, %d divs, %d spans, depth %d, %d inline styles\n", dim("structure:"),
		v.Structure.TableCount, v.Structure.DivCount, v.Structure.SpanCount, v.Structure.MaxNestingDepth, v.Structure.InlineStyleCount)

	for _, m := range v.Source.Matches {
		fmt.Fprintf(w, "  %s %s\n", warning("!"), m)
	}
	if v.Error != "" {
		fmt.Fprintf(w, "  %s %s\n", danger("error:"), v.Error)
	}

	if len(v.Suggestions) == 0 {
		return
	}
	fmt.Fprintf(w, "  %s\n", dim("suggestions:"))
	for _, s := range v.Suggestions {
		fmt.Fprintf(w, "    [P%d] %s (~%s)\n", s.Priority, s.Description, bytemeter.Label(s.EstimatedSavingsBytes))
		fmt.Fprintf(w, "         %s\n", dim(s.Action))
	}
}
