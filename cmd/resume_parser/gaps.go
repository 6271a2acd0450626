package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-parser/internal/observability"
	"github.com/jonathan/resume-parser/internal/ranking"
)

var gapsCmd = &cobra.Command{
	Use:   "gaps",
	Short: "Identify skills a job asks for that a resume lacks",
	Long:  "Compare the skills listed in a resume against the key terms of a job description and report terms the resume does not cover.",
	RunE:  runGaps,
}

var (
	gapsResumeFile string
	gapsJobFile    string
	gapsJobURL     string
	gapsPretty     bool
	gapsVerbose    bool
)

func init() {
	gapsCmd.Flags().StringVarP(&gapsResumeFile, "resume", "r", "", "Path to resume file or parsed record JSON (required)")
	gapsCmd.Flags().StringVarP(&gapsJobFile, "job", "j", "", "Path to job description text file")
	gapsCmd.Flags().StringVar(&gapsJobURL, "job-url", "", "URL of a job posting to fetch")
	gapsCmd.Flags().BoolVarP(&gapsPretty, "pretty", "p", false, "Indent JSON output")
	gapsCmd.Flags().BoolVarP(&gapsVerbose, "verbose", "v", false, "Print a human-readable gap summary")
	_ = gapsCmd.MarkFlagRequired("resume")

	rootCmd.AddCommand(gapsCmd)
}

type gapsOutput struct {
	SkillGaps []string `json:"skill_gaps"`
}

func runGaps(_ *cobra.Command, _ []string) error {
	record, err := loadResumeRecord(gapsResumeFile)
	if err != nil {
		return err
	}

	jobDescription, err := readJobDescription(context.Background(), gapsJobFile, gapsJobURL)
	if err != nil {
		return err
	}

	gaps := ranking.IdentifySkillGaps(record.Skills.All(), jobDescription)

	if gapsVerbose {
		observability.NewPrinter(os.Stderr).PrintSkillGaps(gaps)
	}

	jsonBytes, err := marshalJSON(gapsOutput{SkillGaps: gaps}, gapsPretty)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Fprintf(os.Stdout, "%s\n", jsonBytes)

	return nil
}
