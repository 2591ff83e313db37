package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/c360studio/bibgraph/builder"
	"github.com/c360studio/bibgraph/config"
	"github.com/c360studio/bibgraph/metric"
	"github.com/c360studio/bibgraph/rdf"
	"github.com/c360studio/bibgraph/source"
)

func convertCmd(configPath *string) *cobra.Command {
	var (
		output     string
		formatName string
		showIssues bool
	)

	cmd := &cobra.Command{
		Use:   "convert <input.csv> [input2.csv ...]",
		Short: "Convert CSV files into an RDF graph",
		Long: `Convert reads one or more CSV files (glob patterns accepted), maps
every row according to the configuration, and serializes the combined
graph. Use "-" as the output to write to stdout.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			model, err := loadModel(*configPath)
			if err != nil {
				return err
			}
			return runConvert(model, args, output, formatName, showIssues, nil)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file path (default derived from format, \"-\" for stdout)")
	cmd.Flags().StringVarP(&formatName, "format", "f", "", "Output format: ttl, xml, n3, nt (default from config)")
	cmd.Flags().BoolVar(&showIssues, "show-issues", false, "Print every recoverable issue, not just the summary")

	return cmd
}

func loadModel(configPath string) (*config.Model, error) {
	cfg, err := config.NewLoader(slog.Default()).Load(configPath)
	if err != nil {
		return nil, err
	}
	return config.NewModel(cfg)
}

// runConvert is the shared conversion path for the convert and watch
// commands. A nil metrics disables instrumentation.
func runConvert(model *config.Model, patterns []string, output, formatName string, showIssues bool, metrics *metric.Metrics) error {
	start := time.Now()

	format, err := resolveFormat(model, formatName)
	if err != nil {
		return err
	}

	paths, err := source.ExpandPatterns(patterns)
	if err != nil {
		metrics.RecordRun("error", time.Since(start))
		return err
	}

	var rows []source.Row
	for _, path := range paths {
		fileRows, err := source.ReadFile(path)
		if err != nil {
			metrics.RecordRun("error", time.Since(start))
			return err
		}
		slog.Info("Read input", "path", path, "rows", len(fileRows))
		rows = append(rows, fileRows...)
	}

	graph, report, err := builder.BuildGraph(model, rows)
	if err != nil {
		metrics.RecordRun("error", time.Since(start))
		return err
	}

	data, err := rdf.Serialize(graph, format, model.Prefixes())
	if err != nil {
		metrics.RecordRun("error", time.Since(start))
		return fmt.Errorf("serialize graph: %w", err)
	}

	if err := writeOutput(output, format, data); err != nil {
		metrics.RecordRun("error", time.Since(start))
		return err
	}

	metrics.RecordRun("success", time.Since(start))
	metrics.RecordRows(report.RowsProcessed, report.RowsSkipped, report.Triples)
	for _, issue := range report.Issues {
		metrics.RecordIssue(string(issue.Kind))
	}

	slog.Info("Conversion complete",
		"run_id", report.RunID,
		"rows", report.RowsProcessed,
		"skipped", report.RowsSkipped,
		"triples", report.Triples,
		"issues", len(report.Issues),
		"duration", time.Since(start))

	if showIssues {
		for _, issue := range report.Issues {
			fmt.Fprintln(os.Stderr, issue)
		}
	} else {
		for _, issue := range report.Issues {
			slog.Warn("Conversion issue", "detail", issue.String())
		}
	}
	fmt.Fprintln(os.Stderr, report.Summary())

	return nil
}

func resolveFormat(model *config.Model, formatName string) (rdf.Format, error) {
	if formatName == "" {
		formatName = model.OutputFormat()
	}
	return rdf.ParseFormat(formatName)
}

// writeOutput writes the serialized graph. An empty path derives
// "output.<ext>" from the format; "-" writes to stdout.
func writeOutput(output string, format rdf.Format, data []byte) error {
	if output == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if output == "" {
		info, _ := rdf.GetFormatInfo(format)
		output = "output" + info.Extension
	}
	if err := os.WriteFile(output, data, 0644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	slog.Info("Wrote output", "path", output, "bytes", len(data))
	return nil
}
