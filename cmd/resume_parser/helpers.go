package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/jonathan/resume-parser/internal/fetch"
	"github.com/jonathan/resume-parser/internal/ingestion"
	"github.com/jonathan/resume-parser/internal/parsing"
	"github.com/jonathan/resume-parser/internal/types"
)

// loadResumeRecord loads a resume from disk. A .json file is treated as an
// already-parsed record; anything else goes through text extraction and
// parsing.
func loadResumeRecord(path string) (*types.ResumeRecord, error) {
	if ingestion.FileExtension(path) == "json" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read resume record: %w", err)
		}
		var record types.ResumeRecord
		if err := json.Unmarshal(data, &record); err != nil {
			return nil, fmt.Errorf("failed to parse resume record JSON: %w", err)
		}
		return &record, nil
	}

	text, err := ingestion.ExtractText(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	record, err := parsing.NewParser().Parse(text)
	if err != nil && !errors.Is(err, parsing.ErrNoStructure) {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return record, nil
}

// readJobDescription resolves the job description from a local text file or a
// posting URL. Exactly one source must be given.
func readJobDescription(ctx context.Context, jobFile, jobURL string) (string, error) {
	switch {
	case jobFile != "" && jobURL != "":
		return "", fmt.Errorf("cannot use --job with --job-url")
	case jobFile != "":
		data, err := os.ReadFile(jobFile)
		if err != nil {
			return "", fmt.Errorf("failed to read job description: %w", err)
		}
		return string(data), nil
	case jobURL != "":
		result, err := fetch.JobPosting(ctx, jobURL, nil)
		if err != nil {
			return "", fmt.Errorf("failed to fetch job posting: %w", err)
		}
		return result.Text, nil
	default:
		return "", fmt.Errorf("must provide either --job or --job-url")
	}
}
