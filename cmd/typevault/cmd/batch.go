package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"braces.dev/errtrace"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/authcorp/typevault/value"
)

// batchEntry is one item of a batch file:
//
//   - type: color-hex
//     value: "#f00"
//   - type: year
//     value: 2024
//   - type: date-only
//     value: null
//     nullable: true
type batchEntry struct {
	Type      string  `yaml:"type"`
	Value     *string `yaml:"value"`
	Nullable  bool    `yaml:"nullable"`
	Immutable bool    `yaml:"immutable"`
}

func (e batchEntry) options() []value.Option {
	return normalizeOptions{nullable: e.Nullable, immutable: e.Immutable}.valueOptions()
}

// errBatchFailed reports that at least one entry was rejected.
type errBatchFailed struct {
	failed, total int
}

func (e *errBatchFailed) Error() string {
	return fmt.Sprintf("%d of %d entries failed", e.failed, e.total)
}

func decodeBatch(r io.Reader) ([]batchEntry, error) {
	var entries []batchEntry
	if err := yaml.NewDecoder(r).Decode(&entries); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, errtrace.Wrap(fmt.Errorf("decode batch: %w", err))
	}
	return entries, nil
}

// runBatch writes one line per entry: the canonical value, or "error: ..." for
// a rejected entry.
func runBatch(root *rootOptions, entries []batchEntry, out io.Writer) error {
	failed := 0
	for i, entry := range entries {
		canonical, err := normalize(entry.Type, entry.Value, entry.options()...)
		if err != nil {
			failed++
			root.logger.Warn("entry rejected", slog.Int("index", i), slogType(entry.Type), slogError(err))
			fmt.Fprintf(out, "%d\t%s\terror: %v\n", i, entry.Type, err)
			continue
		}
		root.logger.Debug("entry normalized", slog.Int("index", i), slogType(entry.Type), slogValue(canonical))
		fmt.Fprintf(out, "%d\t%s\t%s\n", i, entry.Type, canonical)
	}
	if failed > 0 {
		return errtrace.Wrap(&errBatchFailed{failed: failed, total: len(entries)})
	}
	return nil
}

func newBatchCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "batch <file.yaml>",
		Short: "Normalize every entry of a YAML batch file",
		Long: `Normalize every entry of a YAML batch file. Use - to read from stdin.
Each entry has a type, a value and optional nullable/immutable flags.
Every entry is processed; the command fails when any entry was rejected.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var r io.Reader = cmd.InOrStdin()
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return errtrace.Wrap(err)
				}
				defer f.Close()
				r = f
			}

			entries, err := decodeBatch(r)
			if err != nil {
				return errtrace.Wrap(err)
			}
			root.logger.Debug("batch loaded", slog.String("file", args[0]), slog.Int("entries", len(entries)))
			return errtrace.Wrap(runBatch(root, entries, cmd.OutOrStdout()))
		},
	}
}
