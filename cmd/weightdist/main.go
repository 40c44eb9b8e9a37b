// Package main provides the CLI entry point for weightdist.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/knaka75/weightdist/pkg/weightdist"
	"github.com/knaka75/weightdist/pkg/weightdist/config"
	"github.com/knaka75/weightdist/pkg/weightdist/logging"
	"github.com/knaka75/weightdist/pkg/weightdist/output"
	"github.com/knaka75/weightdist/pkg/weightdist/parser"
	"github.com/knaka75/weightdist/pkg/weightdist/preview"
)

var (
	containers  int
	outputPath  string
	configPath  string
	verbose     bool
	previewRows int
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "weightdist [input file]",
		Short: "Distribute table weights across container columns",
		Long: `weightdist finds the weight column of a CSV or XLSX table, provisions
container columns ahead of it, and splits each row's weight equally
across the containers.`,
		Args: cobra.ExactArgs(1),
		RunE: run,
	}

	rootCmd.Flags().IntVarP(&containers, "containers", "c", weightdist.DefaultOptions().Containers, "Number of container columns")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: processed_<input name>)")
	rootCmd.Flags().StringVar(&configPath, "config", "", "YAML config file with flag defaults")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log pipeline decisions to stderr")

	previewCmd := &cobra.Command{
		Use:   "preview [input file]",
		Short: "Show a file's dimensions and first rows",
		Args:  cobra.ExactArgs(1),
		RunE:  runPreview,
	}
	previewCmd.Flags().IntVar(&previewRows, "rows", 10, "Number of rows to show")
	rootCmd.AddCommand(previewCmd)

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	// Validate input file exists
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	if err := applyConfig(cmd); err != nil {
		return err
	}
	if verbose {
		logging.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	table, err := parser.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("read failed: %w", err)
	}

	result, err := weightdist.Process(table, weightdist.Options{Containers: containers})
	if err != nil {
		return err
	}

	target := outputPath
	if target == "" {
		target = "processed_" + filepath.Base(inputPath)
	}
	if err := output.WriteFile(result.Table, target); err != nil {
		return fmt.Errorf("write failed: %w", err)
	}

	printSummary(cmd.OutOrStdout(), result, target)
	return nil
}

// applyConfig fills in flags the user left unset from the config file.
// Explicit flags win over file values.
func applyConfig(cmd *cobra.Command) error {
	if configPath == "" {
		return nil
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if cfg.Containers != 0 && !cmd.Flags().Changed("containers") {
		containers = cfg.Containers
	}
	if cfg.Output != "" && !cmd.Flags().Changed("output") {
		outputPath = cfg.Output
	}
	if cfg.Verbose && !cmd.Flags().Changed("verbose") {
		verbose = true
	}
	return nil
}

func printSummary(w io.Writer, result *weightdist.Result, target string) {
	fmt.Fprintf(w, "Detected weight column %q at position %d (%d numeric values)\n",
		result.DetectedColumn, result.DetectedIndex+1, result.NumericCount)
	if result.Shifted {
		fmt.Fprintf(w, "Shifted the layout right by %d columns; weight column is now %q\n",
			result.ShiftAmount, result.WeightColumn)
	} else {
		fmt.Fprintf(w, "Kept the layout; the first %d columns host the containers\n",
			len(result.ContainerColumns))
	}
	fmt.Fprintf(w, "Containers: %s\n", strings.Join(result.ContainerColumns, ", "))
	fmt.Fprintf(w, "Distributed %d of %d rows\n", result.ProcessedRows, result.Table.RowCount())
	printExamples(w, result)
	fmt.Fprintf(w, "Output written to %s\n", target)
}

// printExamples shows the per-container share of the first distributed rows.
func printExamples(w io.Writer, result *weightdist.Result) {
	if result.ProcessedRows == 0 || len(result.ContainerColumns) == 0 {
		return
	}
	weightIdx := result.Table.Index(result.WeightColumn)
	containerIdx := result.Table.Index(result.ContainerColumns[0])
	if weightIdx < 0 || containerIdx < 0 {
		return
	}

	fmt.Fprintln(w, "Example calculations:")
	shown := 0
	rows := result.Table.RowCount()
	for row := 0; row < rows && shown < 3; row++ {
		weightCell := result.Table.Columns[weightIdx].Cell(row)
		weight, ok := weightCell.Numeric()
		if !ok || weight <= 0 {
			continue
		}
		share := result.Table.Columns[containerIdx].Cell(row)
		fmt.Fprintf(w, "  row %d: weight %s -> %s per container\n",
			row+1, weightCell.String(), share.String())
		shown++
	}
}

func runPreview(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	s, err := preview.Head(inputPath, previewRows)
	if err != nil {
		return fmt.Errorf("preview failed: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "File dimensions: %d rows x %d columns\n", s.RowCount, s.ColumnCount)
	return preview.Render(out, s)
}
