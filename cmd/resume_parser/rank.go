package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-parser/internal/observability"
	"github.com/jonathan/resume-parser/internal/ranking"
	"github.com/jonathan/resume-parser/internal/types"
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank resume experiences against a job description",
	Long:  "Score every work experience in a resume against a job description, print the full ranking, and select the most relevant entries.",
	RunE:  runRank,
}

var (
	rankResumeFile string
	rankJobFile    string
	rankJobURL     string
	rankMaxItems   int
	rankPretty     bool
	rankVerbose    bool
)

func init() {
	rankCmd.Flags().StringVarP(&rankResumeFile, "resume", "r", "", "Path to resume file or parsed record JSON (required)")
	rankCmd.Flags().StringVarP(&rankJobFile, "job", "j", "", "Path to job description text file")
	rankCmd.Flags().StringVar(&rankJobURL, "job-url", "", "URL of a job posting to fetch")
	rankCmd.Flags().IntVar(&rankMaxItems, "max-items", 0, "Experiences kept by relevance selection (0 = default)")
	rankCmd.Flags().BoolVarP(&rankPretty, "pretty", "p", false, "Indent JSON output")
	rankCmd.Flags().BoolVarP(&rankVerbose, "verbose", "v", false, "Print a human-readable ranking summary")
	_ = rankCmd.MarkFlagRequired("resume")

	rootCmd.AddCommand(rankCmd)
}

// rankOutput mirrors the REST /rank response shape.
type rankOutput struct {
	Ranked   []types.RankedExperienceEntry `json:"ranked"`
	Selected []types.RankedExperienceEntry `json:"selected"`
}

func runRank(_ *cobra.Command, _ []string) error {
	record, err := loadResumeRecord(rankResumeFile)
	if err != nil {
		return err
	}

	jobDescription, err := readJobDescription(context.Background(), rankJobFile, rankJobURL)
	if err != nil {
		return err
	}

	out := rankOutput{
		Ranked:   ranking.RankExperiences(record.Experiences, jobDescription),
		Selected: ranking.SelectRelevantExperiences(record.Experiences, jobDescription, rankMaxItems),
	}

	if rankVerbose {
		observability.NewPrinter(os.Stderr).PrintRankedExperiences(out.Ranked)
	}

	jsonBytes, err := marshalJSON(out, rankPretty)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Fprintf(os.Stdout, "%s\n", jsonBytes)

	return nil
}

func marshalJSON(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
