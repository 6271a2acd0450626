package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-parser/internal/ingestion"
	"github.com/jonathan/resume-parser/internal/observability"
	"github.com/jonathan/resume-parser/internal/parsing"
	"github.com/jonathan/resume-parser/internal/schemas"
	"github.com/jonathan/resume-parser/internal/types"
)

var parseCmd = &cobra.Command{
	Use:   "parse [files...]",
	Short: "Parse resume files into structured JSON",
	Long:  "Parse one or more resume files (PDF, DOCX, DOC, or TXT) into structured JSON records. Multiple files are parsed concurrently.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runParse,
}

var (
	parseOutputFile string
	parsePretty     bool
	parseVerbose    bool
	parseValidate   bool
)

func init() {
	parseCmd.Flags().StringVarP(&parseOutputFile, "output", "o", "", "Write JSON to file instead of stdout (single input only)")
	parseCmd.Flags().BoolVarP(&parsePretty, "pretty", "p", false, "Indent JSON output")
	parseCmd.Flags().BoolVarP(&parseVerbose, "verbose", "v", false, "Print a human-readable summary of each record")
	parseCmd.Flags().BoolVar(&parseValidate, "validate", false, "Validate each record against the ResumeRecord schema")

	rootCmd.AddCommand(parseCmd)
}

type parseResult struct {
	record  *types.ResumeRecord
	warning string
}

func runParse(_ *cobra.Command, args []string) error {
	if parseOutputFile != "" && len(args) > 1 {
		return fmt.Errorf("--output can only be used with a single input file")
	}

	results, err := parseFiles(args)
	if err != nil {
		return err
	}

	for i, res := range results {
		if res.warning != "" {
			fmt.Fprintf(os.Stderr, "Warning: %s: %s\n", args[i], res.warning)
		}

		if parseValidate {
			if err := schemas.ValidateResumeRecord(res.record); err != nil {
				return fmt.Errorf("%s: %w", args[i], err)
			}
		}

		if parseVerbose {
			observability.NewPrinter(os.Stderr).PrintResumeRecord(res.record)
		}

		jsonBytes, err := marshalJSON(res.record, parsePretty)
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}

		if parseOutputFile != "" {
			if err := os.WriteFile(parseOutputFile, jsonBytes, 0o644); err != nil {
				return fmt.Errorf("failed to write output file: %w", err)
			}
			fmt.Fprintf(os.Stdout, "Output: %s\n", parseOutputFile)
			continue
		}

		fmt.Fprintf(os.Stdout, "%s\n", jsonBytes)
	}

	return nil
}

// parseFiles extracts text from and parses each file concurrently. Results
// keep the input order. A resume with no recognizable section headers is not
// an error; it yields a record plus a warning.
func parseFiles(paths []string) ([]parseResult, error) {
	parser := parsing.NewParser()
	results := make([]parseResult, len(paths))

	var g errgroup.Group
	for i, path := range paths {
		g.Go(func() error {
			text, err := ingestion.ExtractText(path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			record, err := parser.Parse(text)
			if err != nil {
				if !errors.Is(err, parsing.ErrNoStructure) {
					return fmt.Errorf("%s: %w", path, err)
				}
				results[i].warning = "no section headers recognized; contact information extracted from document head"
			}
			results[i].record = record
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
